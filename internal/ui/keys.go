package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the countdown view.
type KeyMap struct {
	Stop       key.Binding
	ToggleHelp key.Binding
}

// DefaultKeys returns the default key bindings for the countdown.
func DefaultKeys() KeyMap {
	return KeyMap{
		Stop: key.NewBinding(
			key.WithKeys("s", "q", "esc", "ctrl+c"),
			key.WithHelp("s/esc", "stop and restore"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.ToggleHelp}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Stop}, {k.ToggleHelp}}
}

var _ help.KeyMap = KeyMap{}
