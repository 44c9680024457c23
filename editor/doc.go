// Package editor is the edit engine: it composes line store mutations,
// repaints and cursor relocation into atomic user-visible operations.
//
// A Session owns the buffer together with its View (scroll offset and
// cursor). Every operation runs to completion on the calling goroutine and
// leaves the View valid: Top+Row is a buffer line and Col is within it.
// Column math counts runes, not display cells.
package editor
