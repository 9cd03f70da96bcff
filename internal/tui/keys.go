package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Grab    key.Binding
	Cancel  key.Binding
	Refresh key.Binding
	Filter  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "lane")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("", "")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "item")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("", "")),
		Grab:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "grab/drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Grab, k.Refresh, k.Filter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Grab, k.Cancel, k.Refresh, k.Filter, k.Quit},
	}
}
