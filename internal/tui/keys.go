package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Page    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Jump    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Follow  key.Binding
	Contact key.Binding
	Work    key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:    key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Top:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next link")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev link")),
		Follow:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open link")),
		Contact: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "get in touch")),
		Work:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "view my work")),
		Menu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Next, k.Follow, k.Menu, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Top, k.Bottom},
		{k.Jump, k.Next, k.Prev, k.Follow},
		{k.Contact, k.Work, k.Menu, k.Quit},
	}
}
