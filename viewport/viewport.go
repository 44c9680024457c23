// Package viewport maps between screen rows and buffer lines under vertical
// scrolling.
//
// top is the buffer line rendered at screen row 0, so line = top + row.
// Scrolling always moves exactly one line per step.
package viewport

import "github.com/iw2rmb/linepad/buffer"

// TopForUpwardMove returns the scroll offset after the cursor tries to move
// up from row. Only a cursor on row 0 scrolls, and never above line 0.
func TopForUpwardMove(top, row int) int {
	if row == 0 && top > 0 {
		return top - 1
	}
	return top
}

// TopForDownwardMove returns the scroll offset after the cursor tries to move
// down from row. Only a cursor on the last window row scrolls. The caller
// checks that a next buffer line exists.
func TopForDownwardMove(top, row, height int) int {
	if row == height-1 {
		return top + 1
	}
	return top
}

// VerticalTarget resolves the column on a line reached by vertical movement.
// The remembered column is kept unless the line is shorter.
func VerticalTarget(remembered, lineLen int) int {
	if remembered > lineLen {
		return lineLen
	}
	return remembered
}

// Line returns the buffer line shown at screen row.
func Line(top, row int) int { return top + row }

// Row returns the screen row showing line, if it is inside a window of the
// given height.
func Row(top, line, height int) (int, bool) {
	row := line - top
	if row < 0 || row >= height {
		return 0, false
	}
	return row, true
}

// ToBuffer maps screen coordinates to a buffer position.
func ToBuffer(top, col, row int) buffer.Pos {
	return buffer.Pos{Row: Line(top, row), Col: col}
}
