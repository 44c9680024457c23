// Package termtest provides a recording cell-grid terminal for tests.
package termtest

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Screen is an in-memory term.Terminal. Each rune occupies one cell; text
// written past the right edge is counted in Overflow and dropped.
type Screen struct {
	width, height int
	cells         [][]rune
	col, row      int

	// Moves and Writes count calls since construction or ResetCounters.
	Moves  int
	Writes int
	// Overflow counts runes written past the right edge.
	Overflow int
	// Touched records every row that received a Write.
	Touched map[int]bool

	// Err, when set, is returned by every method.
	Err error
}

func New(width, height int) *Screen {
	s := &Screen{Touched: map[int]bool{}}
	s.Resize(width, height)
	return s
}

// Resize changes the grid size, keeping overlapping content.
func (s *Screen) Resize(width, height int) {
	cells := make([][]rune, height)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(" ", width))
		if r < len(s.cells) {
			copy(cells[r], s.cells[r])
		}
	}
	s.width, s.height = width, height
	s.cells = cells
}

func (s *Screen) Size() (int, int, error) {
	if s.Err != nil {
		return 0, 0, s.Err
	}
	return s.width, s.height, nil
}

func (s *Screen) MoveCursor(col, row int) error {
	if s.Err != nil {
		return s.Err
	}
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return fmt.Errorf("termtest: cursor (%d, %d) outside %dx%d", col, row, s.width, s.height)
	}
	s.col, s.row = col, row
	s.Moves++
	return nil
}

func (s *Screen) Write(p []byte) error {
	if s.Err != nil {
		return s.Err
	}
	s.Writes++
	s.Touched[s.row] = true
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		p = p[size:]
		if s.col < s.width {
			s.cells[s.row][s.col] = r
		} else {
			s.Overflow++
		}
		s.col++
	}
	return nil
}

// Cursor returns the current cursor cell.
func (s *Screen) Cursor() (col, row int) { return s.col, s.row }

// Row returns the content of screen row r without trailing blanks.
func (s *Screen) Row(r int) string {
	return strings.TrimRight(string(s.cells[r]), " ")
}

// Rows returns every screen row without trailing blanks.
func (s *Screen) Rows() []string {
	out := make([]string, s.height)
	for r := range out {
		out[r] = s.Row(r)
	}
	return out
}

// Fill paints every cell with r, to make missing blanking visible.
func (s *Screen) Fill(r rune) {
	for _, row := range s.cells {
		for i := range row {
			row[i] = r
		}
	}
}

func (s *Screen) ResetCounters() {
	s.Moves = 0
	s.Writes = 0
	s.Overflow = 0
	s.Touched = map[int]bool{}
}
