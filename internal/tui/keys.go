package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	forceQuit key.Binding
	quit      key.Binding
	buildInfo key.Binding
	delete    key.Binding
	copy      key.Binding
	restart   key.Binding
	retry     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	quit:      key.NewBinding(key.WithKeys("q")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	delete:    key.NewBinding(key.WithKeys("d", "delete")),
	copy:      key.NewBinding(key.WithKeys("c")),
	restart:   key.NewBinding(key.WithKeys("r")),
	retry:     key.NewBinding(key.WithKeys("r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
