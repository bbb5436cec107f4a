package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the interactive session.
type KeyMap struct {
	Generate   key.Binding
	SwitchPane key.Binding
	CopyColor  key.Binding
	CopyHeader key.Binding
	CopyBody   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit/browse"),
		),
		CopyColor: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "copy hex"),
		),
		CopyHeader: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "copy header font"),
		),
		CopyBody: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "copy body font"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.SwitchPane, k.CopyColor, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.SwitchPane},
		{k.CopyColor, k.CopyHeader, k.CopyBody},
		{k.Help, k.Quit},
	}
}
