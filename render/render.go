// Package render repaints buffer lines onto a term.Terminal.
//
// The terminal is addressed by absolute coordinates with no scroll regions,
// so every row is blanked before new content is written over it.
package render

import (
	"bytes"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/linepad/term"
	"github.com/iw2rmb/linepad/viewport"
)

// Lines is the read side of the line store.
type Lines interface {
	LineCount() int
	Line(row int) string
}

type Renderer struct {
	term  term.Terminal
	clip  bool
	blank []byte
}

type Option func(*Renderer)

// WithClip truncates written content at the right edge by display width.
// Without it the content is written whole and may overflow.
func WithClip(on bool) Option {
	return func(r *Renderer) { r.clip = on }
}

func New(t term.Terminal, opts ...Option) *Renderer {
	r := &Renderer{term: t}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RepaintWindow repaints screen rows [from, height) with lines top+from
// onward. Rows below the last line are left blank.
func (r *Renderer) RepaintWindow(lines Lines, top, from, width, height int) error {
	if from < 0 {
		from = 0
	}
	for row := from; row < height; row++ {
		if err := r.clearRow(0, row, width); err != nil {
			return err
		}
		line := top + row
		if line >= lines.LineCount() {
			continue
		}
		if err := r.writeAt(0, row, width, lines.Line(line)); err != nil {
			return err
		}
	}
	return nil
}

// RepaintLine repaints columns [from, width) of the screen row showing line.
// A line outside the window of the given height is not drawn.
func (r *Renderer) RepaintLine(lines Lines, top, line, from, width, height int) error {
	row, ok := viewport.Row(top, line, height)
	if !ok {
		return nil
	}
	if err := r.clearRow(from, row, width); err != nil {
		return err
	}

	text := []rune(lines.Line(line))
	if from >= len(text) {
		return nil
	}
	return r.writeAt(from, row, width, string(text[from:]))
}

func (r *Renderer) clearRow(from, row, width int) error {
	n := width - from
	if n <= 0 {
		return nil
	}
	if err := r.term.MoveCursor(from, row); err != nil {
		return fmt.Errorf("move to row %d: %w", row, err)
	}
	if len(r.blank) < n {
		r.blank = bytes.Repeat([]byte{' '}, width)
	}
	if err := r.term.Write(r.blank[:n]); err != nil {
		return fmt.Errorf("blank row %d: %w", row, err)
	}
	return nil
}

func (r *Renderer) writeAt(col, row, width int, s string) error {
	if r.clip {
		s = runewidth.Truncate(s, width-col, "")
	}
	if s == "" {
		return nil
	}
	if err := r.term.MoveCursor(col, row); err != nil {
		return fmt.Errorf("move to row %d: %w", row, err)
	}
	if err := r.term.Write([]byte(s)); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
