package inspector

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines cursor-movement bindings for hosts driving a buffer
// through the inspector. The component itself handles no keys; hosts
// match these bindings and call Seek on the buffer.
type KeyMap struct {
	Left, Right key.Binding
	Up, Down    key.Binding
	Home, End   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back one byte")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "forward one byte")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "back one row")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "forward one row")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "buffer start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "buffer end")),
	}
}
