//go:build !windows

package app

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyResize(c chan<- os.Signal) {
	signal.Notify(c, syscall.SIGWINCH)
}
