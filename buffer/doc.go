// Package buffer implements the in-memory line store for linepad.
//
// Coordinates are 0-based (Row, Col) in runes. The store always holds at
// least one line; an empty document is a single empty line.
package buffer
