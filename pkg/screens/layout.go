package screens

import (
	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Screen builds the content subtree for s. Aliases route to the screen they
// stand for and anything unrecognised falls back to discover.
func (b *Builder) Screen(s state.UIState) *dom.Node {
	switch s.Screen {
	case state.ScreenMessages, state.ScreenChat:
		return b.Messages(s.View)
	case state.ScreenCommunity:
		return b.Community()
	case state.ScreenProfile:
		return b.Profile()
	case state.ScreenDiscover, state.ScreenMatching:
		return b.Discover()
	default:
		return b.Discover()
	}
}

// MainLayout returns the signed-in layout: the main element holding one
// screen, followed by the bottom navigation.
func (b *Builder) MainLayout(s state.UIState) []*dom.Node {
	main := dom.New("main")
	if s.Screen.Canonical() == state.ScreenMessages {
		main.AddClass("main-flush")
	}
	main.AppendChild(b.Screen(s))
	return []*dom.Node{main, b.BottomNav(s.Screen)}
}
