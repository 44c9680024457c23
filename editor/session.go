package editor

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iw2rmb/linepad/buffer"
	"github.com/iw2rmb/linepad/render"
	"github.com/iw2rmb/linepad/term"
	"github.com/iw2rmb/linepad/textfile"
	"github.com/iw2rmb/linepad/viewport"
)

// ErrNoPath is returned by Save when the session was never given a file.
var ErrNoPath = errors.New("editor: no file path")

// Direction selects a cursor movement.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

// Session is one editing session on one terminal.
type Session struct {
	term   term.Terminal
	render *render.Renderer
	log    *log.Logger

	buf  *buffer.Buffer
	view View
	mode Mode
	path string
}

// New returns a session holding an empty buffer. Nothing is drawn until
// Load, Open or RepaintWindowFrom is called.
func New(t term.Terminal, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		term:   t,
		render: render.New(t, render.WithClip(cfg.Clip)),
		log:    logger,
		buf:    buffer.Empty(),
	}
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) View() View { return s.view }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) SetMode(m Mode) { s.mode = m }

func (s *Session) Path() string { return s.path }

// Load reads path and shows it from the first line. A missing file opens an
// empty document; other read failures are logged and also open an empty
// document, with path kept as the save target.
func (s *Session) Load(path string) error {
	b, err := textfile.Load(path)
	if err != nil {
		s.log.Printf("load: %v", err)
	}
	s.log.Printf("opened %s: %d lines", path, b.LineCount())
	return s.Open(b, path)
}

// Open replaces the buffer, resets the view and repaints the window.
func (s *Session) Open(b *buffer.Buffer, path string) error {
	s.buf = b
	s.path = path
	s.view = View{}
	return s.RepaintWindowFrom(0)
}

// Save writes the buffer to the session's path.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := textfile.Save(s.buf, s.path); err != nil {
		return err
	}
	s.log.Printf("saved %s: %d lines", s.path, s.buf.LineCount())
	return nil
}

// SetView moves the view to v and repaints. v must satisfy Check and put the
// cursor on screen.
func (s *Session) SetView(v View) error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	if v.Cursor.Row >= h || v.Cursor.Col >= w {
		return fmt.Errorf("editor: cursor (%d, %d) outside %dx%d terminal", v.Cursor.Col, v.Cursor.Row, w, h)
	}
	prev := s.view
	s.view = v
	if err := s.Check(); err != nil {
		s.view = prev
		return err
	}
	return s.RepaintWindowFrom(0)
}

// InsertChar inserts r at the cursor and moves right by one column.
//
// At the rightmost column there is no room to advance, so r starts a new
// line below the current one instead. Existing content is not reflowed.
func (s *Session) InsertChar(r rune) error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	line := s.view.Line()
	cur := &s.view.Cursor

	if cur.Col < w-1 {
		s.buf.InsertChar(line, cur.Col, r)
		cur.Col++
		cur.Remembered = cur.Col
		if err := s.render.RepaintLine(s.buf, s.view.Top, line, 0, w, h); err != nil {
			return err
		}
		return s.placeCursor()
	}

	s.buf.InsertLine(line+1, []rune{r})
	from := s.stepDown(h)
	cur.Col = clampCol(1, w)
	cur.Remembered = cur.Col
	if err := s.render.RepaintWindow(s.buf, s.view.Top, from, w, h); err != nil {
		return err
	}
	return s.placeCursor()
}

// DeleteChar removes the character left of the cursor. At column 0 the
// current line is joined onto the previous one. At the start of the buffer it
// does nothing.
func (s *Session) DeleteChar() error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	line := s.view.Line()
	cur := &s.view.Cursor

	switch {
	case cur.Col > 0:
		cur.Col--
		s.buf.RemoveChar(line, cur.Col)
		cur.Remembered = cur.Col
		if err := s.render.RepaintLine(s.buf, s.view.Top, line, cur.Col, w, h); err != nil {
			return err
		}
	case line > 0:
		joinAt := s.buf.LineLen(line - 1)
		s.buf.JoinWithPrevious(line)
		from := s.stepUp()
		cur.Col = clampCol(joinAt, w)
		cur.Remembered = cur.Col
		// The line count dropped: every row from the join down moved.
		if err := s.render.RepaintWindow(s.buf, s.view.Top, from, w, h); err != nil {
			return err
		}
	default:
		return nil
	}
	return s.placeCursor()
}

// InsertLineBreak splits the current line at the cursor and moves to the
// start of the new line.
func (s *Session) InsertLineBreak() error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	s.buf.SplitLine(s.view.Line(), s.view.Cursor.Col)
	s.stepDown(h)
	s.view.Cursor.Col = 0
	s.view.Cursor.Remembered = 0
	if err := s.render.RepaintWindow(s.buf, s.view.Top, 0, w, h); err != nil {
		return err
	}
	return s.placeCursor()
}

// MoveCursor moves the cursor one step. Vertical moves past the window edge
// scroll by one line and repaint; all other moves only reposition the
// terminal cursor.
func (s *Session) MoveCursor(dir Direction) error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	line := s.view.Line()
	cur := &s.view.Cursor

	switch dir {
	case DirLeft:
		if cur.Col > 0 {
			cur.Col--
		}
		cur.Remembered = cur.Col
	case DirRight:
		if cur.Col < s.buf.LineLen(line) && cur.Col < w-1 {
			cur.Col++
		}
		cur.Remembered = cur.Col
	case DirHome:
		cur.Col = 0
		cur.Remembered = 0
	case DirEnd:
		cur.Col = clampCol(s.buf.LineLen(line), w)
		cur.Remembered = cur.Col
	case DirUp:
		if line == 0 {
			return nil
		}
		top := s.view.Top
		s.stepUp()
		return s.afterVerticalMove(top != s.view.Top, w, h)
	case DirDown:
		if line+1 >= s.buf.LineCount() {
			return nil
		}
		top := s.view.Top
		s.stepDown(h)
		return s.afterVerticalMove(top != s.view.Top, w, h)
	}
	return s.placeCursor()
}

func (s *Session) afterVerticalMove(scrolled bool, w, h int) error {
	cur := &s.view.Cursor
	target := viewport.VerticalTarget(cur.Remembered, s.buf.LineLen(s.view.Line()))
	cur.Col = clampCol(target, w)
	if scrolled {
		if err := s.render.RepaintWindow(s.buf, s.view.Top, 0, w, h); err != nil {
			return err
		}
	}
	return s.placeCursor()
}

// RepaintWindowFrom repaints screen rows from row to the bottom and puts the
// terminal cursor back.
func (s *Session) RepaintWindowFrom(row int) error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	if err := s.render.RepaintWindow(s.buf, s.view.Top, row, w, h); err != nil {
		return err
	}
	return s.placeCursor()
}

// Redraw fits the view into the current terminal size and repaints the whole
// window. Drivers call it after a resize.
func (s *Session) Redraw() error {
	w, h, err := s.size()
	if err != nil {
		return err
	}
	if w < 1 || h < 1 {
		return nil
	}
	cur := &s.view.Cursor
	if cur.Row >= h {
		shift := cur.Row - (h - 1)
		s.view.Top += shift
		cur.Row -= shift
	}
	cur.Col = clampCol(cur.Col, w)
	if err := s.render.RepaintWindow(s.buf, s.view.Top, 0, w, h); err != nil {
		return err
	}
	return s.placeCursor()
}

// Check reports whether the view addresses a valid buffer position.
func (s *Session) Check() error {
	v := s.view
	if s.buf.LineCount() < 1 {
		return errors.New("editor: buffer has no lines")
	}
	if v.Top < 0 || v.Cursor.Row < 0 || v.Cursor.Col < 0 {
		return fmt.Errorf("editor: negative view %+v", v)
	}
	pos := v.Pos()
	if got := s.buf.ClampPos(pos); got != pos {
		return fmt.Errorf("editor: cursor at line %d col %d is outside the buffer (nearest %d:%d)",
			pos.Row, pos.Col, got.Row, got.Col)
	}
	return nil
}

// stepDown moves the cursor to the next screen row, scrolling one line when
// it is on the last row. It returns the first screen row that needs repaint.
func (s *Session) stepDown(h int) int {
	row := s.view.Cursor.Row
	if next := viewport.TopForDownwardMove(s.view.Top, row, h); next != s.view.Top {
		s.view.Top = next
		return 0
	}
	s.view.Cursor.Row++
	return s.view.Cursor.Row
}

// stepUp is stepDown's counterpart for the previous row.
func (s *Session) stepUp() int {
	row := s.view.Cursor.Row
	if next := viewport.TopForUpwardMove(s.view.Top, row); next != s.view.Top {
		s.view.Top = next
		return 0
	}
	s.view.Cursor.Row--
	return s.view.Cursor.Row
}

func (s *Session) size() (int, int, error) {
	w, h, err := s.term.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return w, h, nil
}

func (s *Session) placeCursor() error {
	cur := s.view.Cursor
	if err := s.term.MoveCursor(cur.Col, cur.Row); err != nil {
		return fmt.Errorf("place cursor: %w", err)
	}
	if f, ok := s.term.(term.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

// clampCol keeps col on screen.
func clampCol(col, width int) int {
	if col > width-1 {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}
