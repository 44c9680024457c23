package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return NewTcell(s), s
}

func simRow(s tcell.SimulationScreen, row int) string {
	cells, w, _ := s.GetContents()
	out := make([]rune, 0, w)
	for col := 0; col < w; col++ {
		c := cells[row*w+col]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func readKey(t *testing.T, term *Tcell) KeyEvent {
	t.Helper()
	for {
		ev, err := term.ReadKey()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !ev.Resize {
			return ev
		}
	}
}

func TestTcell_WriteAtCursor(t *testing.T) {
	term, s := newSimTerminal(t, 6, 2)

	if err := term.MoveCursor(1, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := term.Write([]byte("abc")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := term.MoveCursor(4, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got, want := simRow(s, 1), " abc  "; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
	x, y, _ := s.GetCursor()
	if x != 4 || y != 1 {
		t.Fatalf("cursor=(%d,%d), want (4,1)", x, y)
	}
}

// countingScreen counts flushes of the wrapped screen.
type countingScreen struct {
	tcell.SimulationScreen
	shows int
}

func (c *countingScreen) Show() {
	c.shows++
	c.SimulationScreen.Show()
}

func TestTcell_ShowsOnlyOnFlush(t *testing.T) {
	_, sim := newSimTerminal(t, 8, 3)
	cs := &countingScreen{SimulationScreen: sim}
	term := NewTcell(cs)

	for row := 0; row < 3; row++ {
		if err := term.MoveCursor(0, row); err != nil {
			t.Fatalf("move: %v", err)
		}
		if err := term.Write([]byte("line")); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if cs.shows != 0 {
		t.Fatalf("shows=%d before flush, want 0", cs.shows)
	}

	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if cs.shows != 1 {
		t.Fatalf("shows=%d after flush, want 1", cs.shows)
	}
	if got, want := simRow(sim, 2), "line    "; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestTcell_Size(t *testing.T) {
	term, _ := newSimTerminal(t, 12, 5)
	w, h, err := term.Size()
	if err != nil || w != 12 || h != 5 {
		t.Fatalf("size=(%d,%d,%v), want (12,5,nil)", w, h, err)
	}
}

func TestTcell_ReadKey(t *testing.T) {
	term, s := newSimTerminal(t, 10, 2)

	cases := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{key: tcell.KeyRune, r: 'a', want: "a"},
		{key: tcell.KeyRune, r: 'x', mod: tcell.ModAlt, want: "alt+x"},
		{key: tcell.KeyEnter, want: "enter"},
		{key: tcell.KeyBackspace2, want: "backspace"},
		{key: tcell.KeyLeft, want: "left"},
		{key: tcell.KeyDown, want: "down"},
		{key: tcell.KeyEscape, want: "esc"},
		{key: tcell.KeyCtrlS, mod: tcell.ModCtrl, want: "ctrl+s"},
	}

	for _, tc := range cases {
		s.InjectKey(tc.key, tc.r, tc.mod)
		ev := readKey(t, term)
		if ev.Name != tc.want {
			t.Fatalf("name=%q, want %q", ev.Name, tc.want)
		}
	}
}

func TestTcell_ReadKey_RuneCarriesRunes(t *testing.T) {
	term, s := newSimTerminal(t, 10, 2)
	s.InjectKey(tcell.KeyRune, 'π', tcell.ModNone)

	ev := readKey(t, term)
	if len(ev.Runes) != 1 || ev.Runes[0] != 'π' {
		t.Fatalf("runes=%q, want [π]", ev.Runes)
	}
}

func TestKeyEvent_String(t *testing.T) {
	if got := RuneKey('q').String(); got != "q" {
		t.Fatalf("String()=%q, want q", got)
	}
	if got := NamedKey("ctrl+s").String(); got != "ctrl+s" {
		t.Fatalf("String()=%q, want ctrl+s", got)
	}
	if !ResizeEvent().Resize {
		t.Fatalf("expected resize flag")
	}
}
