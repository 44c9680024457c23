package editor

// Mode tags the editing mode for the key dispatch layer.
//
// Session operations behave the same in every mode; only the dispatcher
// decides which keys are legal.
type Mode int

const (
	ModeInsert Mode = iota
	ModeNormal
	ModeHighlight
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeNormal:
		return "normal"
	case ModeHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}
