package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Advance key.Binding
	ShowAll key.Binding
	Reset   key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Left:    key.NewBinding(key.WithKeys("left", "h", "up", "k"), key.WithHelp("←/→", "move")),
	Right:   key.NewBinding(key.WithKeys("right", "l", "down", "j", "tab")),
	Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Advance: key.NewBinding(key.WithKeys("enter", "n", " "), key.WithHelp("enter", "next stage")),
	ShowAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "skip to complete process")),
	Reset:   key.NewBinding(key.WithKeys("r", "esc", "backspace"), key.WithHelp("r", "choose different metal")),
}
