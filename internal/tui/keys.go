package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the document commands. Formatting lives in the menus.
type keyMap struct {
	New, Open, Save, Quit key.Binding
	Menu, Help            key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "exit")),
		Menu: key.NewBinding(key.WithKeys("f10", "esc"), key.WithHelp("f10", "menu")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Save, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.New, k.Open, k.Save, k.Quit}, {k.Menu, k.Help}}
}
