package term

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// ANSI drives a VT100-compatible terminal with escape sequences.
type ANSI struct {
	w      *errWriter
	out    *termenv.Output
	sizeFd int

	inFd     int
	oldState *xterm.State
	alt      bool
}

// errWriter keeps the first write error, since termenv's screen helpers do
// not return one.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func (e *errWriter) take() error {
	err := e.err
	e.err = nil
	return err
}

// NewANSI writes escape sequences to w and reads the window size from sizeFd.
// It does not touch terminal modes; see OpenANSI.
func NewANSI(w io.Writer, sizeFd int) *ANSI {
	ew := &errWriter{w: w}
	return &ANSI{
		w:      ew,
		out:    termenv.NewOutput(ew, termenv.WithProfile(termenv.Ascii)),
		sizeFd: sizeFd,
		inFd:   -1,
	}
}

// OpenANSI puts in into raw mode and switches out to the alternate screen.
// Close restores both.
func OpenANSI(in, out *os.File) (*ANSI, error) {
	a := NewANSI(out, int(out.Fd()))

	inFd := int(in.Fd())
	if xterm.IsTerminal(inFd) {
		st, err := xterm.MakeRaw(inFd)
		if err != nil {
			return nil, fmt.Errorf("raw mode: %w", err)
		}
		a.inFd = inFd
		a.oldState = st
	}

	a.out.AltScreen()
	a.out.ClearScreen()
	a.alt = true
	if err := a.w.take(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("enter alternate screen: %w", err)
	}
	return a, nil
}

// Close leaves the alternate screen and restores the saved terminal mode.
func (a *ANSI) Close() error {
	if a.alt {
		a.out.ExitAltScreen()
		a.out.ShowCursor()
		a.alt = false
	}
	werr := a.w.take()

	if a.oldState != nil {
		if err := xterm.Restore(a.inFd, a.oldState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
		a.oldState = nil
	}
	return werr
}

func (a *ANSI) Size() (int, int, error) {
	w, h, err := xterm.GetSize(a.sizeFd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return w, h, nil
}

func (a *ANSI) MoveCursor(col, row int) error {
	a.out.MoveCursor(row+1, col+1)
	return a.w.take()
}

func (a *ANSI) Write(p []byte) error {
	_, _ = a.out.Write(p)
	return a.w.take()
}
