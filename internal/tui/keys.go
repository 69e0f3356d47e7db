package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	add      key.Binding
	delete   key.Binding
	edit     key.Binding
	favorite key.Binding
	search   key.Binding
	toggle   key.Binding
	copy     key.Binding
	suggest  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:      key.NewBinding(key.WithKeys("a")),
	delete:   key.NewBinding(key.WithKeys("d")),
	edit:     key.NewBinding(key.WithKeys("e")),
	favorite: key.NewBinding(key.WithKeys("f")),
	search:   key.NewBinding(key.WithKeys("s")),
	toggle:   key.NewBinding(key.WithKeys("t")),
	copy:     key.NewBinding(key.WithKeys("c")),
	suggest:  key.NewBinding(key.WithKeys("g")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
