package editor

import (
	"github.com/iw2rmb/linepad/buffer"
	"github.com/iw2rmb/linepad/viewport"
)

// Cursor is the terminal cursor in screen cells.
type Cursor struct {
	Col int
	Row int
	// Remembered is the last column set by horizontal movement or editing.
	// Vertical movement returns to it when the target line is long enough.
	Remembered int
}

// View is the scroll offset and cursor, kept and updated together.
type View struct {
	// Top is the buffer line rendered at screen row 0.
	Top    int
	Cursor Cursor
}

// Line returns the buffer line under the cursor.
func (v View) Line() int { return viewport.Line(v.Top, v.Cursor.Row) }

// Pos returns the buffer position under the cursor.
func (v View) Pos() buffer.Pos {
	return viewport.ToBuffer(v.Top, v.Cursor.Col, v.Cursor.Row)
}
