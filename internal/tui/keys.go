package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	ToggleView key.Binding
	Search     key.Binding
	Status     key.Binding
	Clear      key.Binding
	Accept     key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab")),
		ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "summary/detailed")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Status:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Accept:     key.NewBinding(key.WithKeys("enter")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.ToggleView, k.Search, k.Status, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
