//go:build windows

package app

import "os"

// Windows consoles have no resize signal; the startup size is still sent.
func notifyResize(chan<- os.Signal) {}
