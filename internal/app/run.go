package app

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/linepad/term"
)

// Run reads keys until the user quits, the key source closes, or an
// operation fails. Each event is fully applied before the next is read.
func Run(d *Dispatcher, keys term.KeyReader) error {
	for {
		ev, err := keys.ReadKey()
		if err != nil {
			if errors.Is(err, term.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		}
		quit, err := d.Handle(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
