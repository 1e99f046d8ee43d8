package top

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Refresh     key.Binding
	SortCPU     key.Binding
	SortMem     key.Binding
	SortTime    key.Binding
	SortPID     key.Binding
	SortCommand key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		SortCPU: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "sort by cpu"),
		),
		SortMem: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sort by mem"),
		),
		SortTime: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort by time"),
		),
		SortPID: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sort by pid"),
		),
		SortCommand: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort by command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
