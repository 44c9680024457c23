package app

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	xterm "golang.org/x/term"

	"github.com/iw2rmb/linepad/term"
)

// model adapts a Dispatcher to Bubble Tea. Rendering is done by the Session
// through its Terminal, so the program runs without a renderer and View is
// empty.
type model struct {
	d   *Dispatcher
	err error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var ev term.KeyEvent
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ev = term.ResizeEvent()
	case tea.KeyMsg:
		ev = keyEventFromTea(msg)
	default:
		return m, nil
	}

	quit, err := m.d.Handle(ev)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string { return "" }

func keyEventFromTea(msg tea.KeyMsg) term.KeyEvent {
	ev := term.KeyEvent{Name: msg.String(), Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		ev.Runes = append([]rune(nil), msg.Runes...)
		if len(ev.Runes) == 0 && msg.Type == tea.KeySpace {
			ev.Runes = []rune{' '}
		}
	}
	return ev
}

// RunTea drives d from a Bubble Tea program reading in. The caller owns
// terminal modes; the program itself draws nothing.
//
// Without a renderer Bubble Tea does not watch the terminal size, so when out
// is a terminal RunTea sends the size at startup and after every resize.
func RunTea(d *Dispatcher, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(model{d: d},
		tea.WithoutRenderer(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	if size := terminalSize(out); size != nil {
		sig := make(chan os.Signal, 1)
		notifyResize(sig)
		done := make(chan struct{})
		defer func() {
			signal.Stop(sig)
			close(done)
		}()
		go watchSize(p, size, sig, done)
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("key loop: %w", err)
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

type sizeFunc func() (width, height int, err error)

// terminalSize returns a size query for out, or nil if out is not a terminal.
func terminalSize(out io.Writer) sizeFunc {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return nil
	}
	fd := int(f.Fd())
	if !xterm.IsTerminal(fd) {
		return nil
	}
	return func() (int, int, error) { return xterm.GetSize(fd) }
}

type msgSender interface {
	Send(msg tea.Msg)
}

// watchSize sends the current size, then one WindowSizeMsg per signal on sig
// until done is closed. Failed size queries are skipped.
func watchSize(p msgSender, size sizeFunc, sig <-chan os.Signal, done <-chan struct{}) {
	send := func() {
		w, h, err := size()
		if err != nil {
			return
		}
		p.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}

	send()
	for {
		select {
		case <-done:
			return
		case <-sig:
			send()
		}
	}
}
