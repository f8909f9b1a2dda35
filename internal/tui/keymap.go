package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the TUI understands. It implements help.KeyMap.
type keyMap struct {
	Fetch key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Fetch: key.NewBinding(
			key.WithKeys(" ", "enter", "n"),
			key.WithHelp("space", "get a joke"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fetch, k.Quit}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
