package app

import (
	"errors"
	"testing"

	"github.com/iw2rmb/linepad/term"
)

type keyQueue struct {
	evs []term.KeyEvent
	err error
}

func (q *keyQueue) ReadKey() (term.KeyEvent, error) {
	if len(q.evs) == 0 {
		if q.err != nil {
			return term.KeyEvent{}, q.err
		}
		return term.KeyEvent{}, term.ErrClosed
	}
	ev := q.evs[0]
	q.evs = q.evs[1:]
	return ev, nil
}

func TestRun_StopsOnQuit(t *testing.T) {
	d, _ := newDispatcher(t, "")
	q := &keyQueue{evs: append(typed("ab"), term.NamedKey("ctrl+q"), term.RuneKey('c'))}

	if err := Run(d, q); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := d.Session().Buffer().Line(0); got != "ab" {
		t.Fatalf("line=%q, want %q", got, "ab")
	}
	if len(q.evs) != 1 {
		t.Fatalf("remaining events=%d, want 1", len(q.evs))
	}
}

func TestRun_StopsWhenKeysClose(t *testing.T) {
	d, _ := newDispatcher(t, "")
	if err := Run(d, &keyQueue{evs: typed("x")}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRun_ReturnsReadError(t *testing.T) {
	boom := errors.New("boom")
	d, _ := newDispatcher(t, "")
	if err := Run(d, &keyQueue{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
}

func TestRun_ReturnsTerminalError(t *testing.T) {
	boom := errors.New("boom")
	d, scr := newDispatcher(t, "")
	scr.Err = boom
	if err := Run(d, &keyQueue{evs: typed("x")}); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
}
