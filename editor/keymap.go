package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings used by the dispatch layer.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Save, Quit key.Binding

	// Mode switches. Insert and Highlight are entered from Normal mode;
	// Normal is entered from either of them.
	NormalMode, InsertMode, HighlightMode key.Binding

	// Letter movement, active outside Insert mode.
	MoveLeft, MoveDown, MoveUp, MoveRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),

		NormalMode:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		InsertMode:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert mode")),
		HighlightMode: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "highlight mode")),

		MoveLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "left")),
		MoveDown:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),
		MoveUp:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
		MoveRight: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "right")),
	}
}
