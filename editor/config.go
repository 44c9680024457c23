package editor

import "log"

// Config configures a Session.
type Config struct {
	// Logger receives load/save diagnostics. Nil discards them.
	Logger *log.Logger

	// Clip truncates painted lines at the right edge of the terminal.
	Clip bool
}
