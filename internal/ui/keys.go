package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Activate key.Binding
	UseCase  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Preset   key.Binding
	Pick     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Activate: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		UseCase:  key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "use cases")),
		Next:     key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab", "prev")),
		Left:     key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "less")),
		Right:    key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→", "more")),
		Preset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Pick:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "easing list")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Next, k.Left, k.Right, k.Preset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.UseCase},
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Preset, k.Pick, k.Help, k.Quit},
	}
}
