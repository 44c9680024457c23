// Package app connects key sources to an editor.Session: the dispatch table
// and the driver loops for each terminal backend.
package app

import (
	"io"
	"log"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/linepad/editor"
	"github.com/iw2rmb/linepad/term"
)

// Dispatcher maps key events to Session operations according to the mode.
type Dispatcher struct {
	s   *editor.Session
	km  editor.KeyMap
	log *log.Logger

	saveErr error
}

func NewDispatcher(s *editor.Session, km editor.KeyMap, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Dispatcher{s: s, km: km, log: logger}
}

func (d *Dispatcher) Session() *editor.Session { return d.s }

// SaveErr returns the error of the most recent save, or nil if it succeeded
// or no save was attempted.
func (d *Dispatcher) SaveErr() error { return d.saveErr }

// Handle applies one key event. quit reports that the user asked to leave.
// A returned error comes from the terminal and ends the session.
func (d *Dispatcher) Handle(ev term.KeyEvent) (quit bool, err error) {
	if ev.Resize {
		return false, d.s.Redraw()
	}

	km := d.km
	switch {
	case key.Matches(ev, km.Quit):
		return true, nil
	case key.Matches(ev, km.Save):
		d.save()
		return false, nil
	case key.Matches(ev, km.Left):
		return false, d.s.MoveCursor(editor.DirLeft)
	case key.Matches(ev, km.Right):
		return false, d.s.MoveCursor(editor.DirRight)
	case key.Matches(ev, km.Up):
		return false, d.s.MoveCursor(editor.DirUp)
	case key.Matches(ev, km.Down):
		return false, d.s.MoveCursor(editor.DirDown)
	case key.Matches(ev, km.Home):
		return false, d.s.MoveCursor(editor.DirHome)
	case key.Matches(ev, km.End):
		return false, d.s.MoveCursor(editor.DirEnd)
	}

	if d.s.Mode() == editor.ModeInsert {
		return false, d.handleInsert(ev)
	}
	return false, d.handleCommand(ev)
}

func (d *Dispatcher) handleInsert(ev term.KeyEvent) error {
	km := d.km
	switch {
	case key.Matches(ev, km.NormalMode):
		d.setMode(editor.ModeNormal)
		return nil
	case key.Matches(ev, km.Backspace):
		return d.s.DeleteChar()
	case key.Matches(ev, km.Enter):
		return d.s.InsertLineBreak()
	case len(ev.Runes) > 0 && !ev.Alt:
		return d.insertRunes(ev.Runes)
	}
	return nil
}

func (d *Dispatcher) handleCommand(ev term.KeyEvent) error {
	km := d.km
	mode := d.s.Mode()
	switch {
	case key.Matches(ev, km.NormalMode):
		d.setMode(editor.ModeNormal)
	case mode == editor.ModeNormal && key.Matches(ev, km.InsertMode):
		d.setMode(editor.ModeInsert)
	case mode == editor.ModeNormal && key.Matches(ev, km.HighlightMode):
		d.setMode(editor.ModeHighlight)
	case key.Matches(ev, km.MoveLeft):
		return d.s.MoveCursor(editor.DirLeft)
	case key.Matches(ev, km.MoveDown):
		return d.s.MoveCursor(editor.DirDown)
	case key.Matches(ev, km.MoveUp):
		return d.s.MoveCursor(editor.DirUp)
	case key.Matches(ev, km.MoveRight):
		return d.s.MoveCursor(editor.DirRight)
	}
	return nil
}

// insertRunes types runes one by one. Line breaks in pasted text ("\n",
// "\r\n" or a lone "\r") split the line; other control characters are
// dropped.
func (d *Dispatcher) insertRunes(runes []rune) error {
	for i, r := range runes {
		switch {
		case r == '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			if err := d.s.InsertLineBreak(); err != nil {
				return err
			}
		case r == '\n':
			if err := d.s.InsertLineBreak(); err != nil {
				return err
			}
		case unicode.IsControl(r):
		default:
			if err := d.s.InsertChar(r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dispatcher) save() {
	d.saveErr = d.s.Save()
	if d.saveErr != nil {
		d.log.Printf("save: %v", d.saveErr)
	}
}

func (d *Dispatcher) setMode(m editor.Mode) {
	if d.s.Mode() == m {
		return
	}
	d.log.Printf("mode %s -> %s", d.s.Mode(), m)
	d.s.SetMode(m)
}
