package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the main view.
type keyMap struct {
	next      key.Binding
	prev      key.Binding
	activate  key.Binding
	nav       []key.Binding
	checklist key.Binding
	scrollUp  key.Binding
	scrollDn  key.Binding
	help      key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.activate, k.nav[0], k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.activate},
		{k.nav[0], k.checklist},
		{k.scrollUp, k.scrollDn},
		{k.help, k.quit, k.forceQuit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next")),
		prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous")),
		activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		nav: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "navigate")),
			key.NewBinding(key.WithKeys("2")),
			key.NewBinding(key.WithKeys("3")),
			key.NewBinding(key.WithKeys("4")),
		},
		checklist: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "checklist")),
		scrollUp:  key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/pgup", "scroll up")),
		scrollDn:  key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/pgdn", "scroll down")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
	}
}
