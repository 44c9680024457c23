package term

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Tcell draws onto a tcell.Screen and reads keys from its event queue.
type Tcell struct {
	screen   tcell.Screen
	style    tcell.Style
	col, row int
}

func NewTcell(s tcell.Screen) *Tcell {
	return &Tcell{screen: s, style: tcell.StyleDefault}
}

// OpenTcell initializes the default tcell screen for the controlling terminal.
func OpenTcell() (*Tcell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	s.Clear()
	return NewTcell(s), nil
}

func (t *Tcell) Close() error {
	t.screen.Fini()
	return nil
}

func (t *Tcell) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

// MoveCursor places the cursor. Like Write it only stages the change; Flush
// shows it.
func (t *Tcell) MoveCursor(col, row int) error {
	t.col, t.row = col, row
	t.screen.ShowCursor(col, row)
	return nil
}

// Flush pushes staged cells and the cursor to the terminal.
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) Write(p []byte) error {
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		p = p[size:]

		t.screen.SetContent(t.col, t.row, r, nil, t.style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		t.col += w
	}
	return nil
}

func (t *Tcell) ReadKey() (KeyEvent, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return KeyEvent{}, ErrClosed
		case *tcell.EventResize:
			t.screen.Sync()
			return ResizeEvent(), nil
		case *tcell.EventKey:
			return keyFromTcell(ev), nil
		}
	}
}

func keyFromTcell(ev *tcell.EventKey) KeyEvent {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	prefix := ""
	if alt {
		prefix = "alt+"
	}

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		return KeyEvent{Name: prefix + string(r), Runes: []rune{r}, Alt: alt}
	case tcell.KeyEnter:
		return KeyEvent{Name: prefix + "enter", Alt: alt}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Name: prefix + "backspace", Alt: alt}
	case tcell.KeyTab:
		return KeyEvent{Name: prefix + "tab", Alt: alt}
	case tcell.KeyEscape:
		return KeyEvent{Name: "esc"}
	case tcell.KeyDelete:
		return KeyEvent{Name: prefix + "delete", Alt: alt}
	case tcell.KeyLeft:
		return KeyEvent{Name: prefix + "left", Alt: alt}
	case tcell.KeyRight:
		return KeyEvent{Name: prefix + "right", Alt: alt}
	case tcell.KeyUp:
		return KeyEvent{Name: prefix + "up", Alt: alt}
	case tcell.KeyDown:
		return KeyEvent{Name: prefix + "down", Alt: alt}
	case tcell.KeyHome:
		return KeyEvent{Name: prefix + "home", Alt: alt}
	case tcell.KeyEnd:
		return KeyEvent{Name: prefix + "end", Alt: alt}
	}

	// Control keys: tcell names them "Ctrl-S".
	name := strings.ToLower(ev.Name())
	name = strings.ReplaceAll(name, "-", "+")
	return KeyEvent{Name: name, Alt: alt}
}
