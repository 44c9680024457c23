// Package term defines the terminal capability the editor core draws on and
// the key events its drivers feed in, together with the ANSI and tcell
// backends.
//
// Coordinates are 0-based (col, row) cells. Write emits text at the current
// cursor and leaves the cursor after it; nothing is truncated or wrapped.
package term

import "errors"

// Terminal is the drawing surface used by the renderer and the edit engine.
type Terminal interface {
	// Size returns the current width and height in cells. It is queried per
	// operation because the window may be resized between events.
	Size() (width, height int, err error)
	MoveCursor(col, row int) error
	Write(p []byte) error
}

// Flusher is implemented by terminals that stage output until flushed.
// Callers flush once at the end of an operation.
type Flusher interface {
	Flush() error
}

// KeyReader blocks until the next key event is available.
type KeyReader interface {
	ReadKey() (KeyEvent, error)
}

// ErrClosed is returned by ReadKey once the backend has been shut down.
var ErrClosed = errors.New("term: closed")

// KeyEvent is one decoded key press.
//
// Name uses bubbletea key naming ("left", "enter", "ctrl+s", "a", " "), so
// bubbles/key bindings match KeyEvent values directly. Runes is set for
// printable input, and may hold more than one rune for pasted text.
type KeyEvent struct {
	Name   string
	Runes  []rune
	Alt    bool
	Resize bool
}

func (k KeyEvent) String() string { return k.Name }

// RuneKey returns the event for typing r.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Name: string(r), Runes: []rune{r}}
}

// NamedKey returns the event for a non-printable key such as "enter".
func NamedKey(name string) KeyEvent {
	return KeyEvent{Name: name}
}

// ResizeEvent is delivered when the window size changed.
func ResizeEvent() KeyEvent {
	return KeyEvent{Name: "resize", Resize: true}
}
