// Package screens builds the element tree for every screen of the app. Each
// builder returns a fresh subtree; handlers close over the store so a click
// turns straight into a state patch.
package screens

import (
	"Conexoes/pkg/content"
	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Store is the part of state.Store the builders need.
type Store interface {
	State() state.UIState
	SetState(state.Patch)
}

// IconClass marks a node whose text is a Material Symbols icon name.
const IconClass = "material-symbols-outlined"

// Marker classes placed on the root of each screen subtree.
const (
	ScreenClass     = "screen"
	OnboardingClass = "onboarding-container"
	NavClass        = "bottom-nav"
	ChecklistButton = "checklist-btn"
)

// NavItem is one entry of the bottom navigation.
type NavItem struct {
	Screen state.Screen
	Icon   string
	Label  string
}

// NavItems is the bottom navigation, left to right.
var NavItems = []NavItem{
	{Screen: state.ScreenDiscover, Icon: "favorite", Label: "Discover"},
	{Screen: state.ScreenCommunity, Icon: "groups", Label: "Community"},
	{Screen: state.ScreenMessages, Icon: "chat_bubble", Label: "Messages"},
	{Screen: state.ScreenProfile, Icon: "person", Label: "Profile"},
}

// Builder assembles screens from the catalog.
type Builder struct {
	store Store
	c     content.Catalog
}

// NewBuilder creates a builder bound to store and catalog.
func NewBuilder(store Store, c content.Catalog) *Builder {
	return &Builder{store: store, c: c}
}

func icon(name string) *dom.Node {
	return dom.New("span", IconClass).SetText(name)
}

func chip(text string, classes ...string) *dom.Node {
	return dom.New("span", append([]string{"chip"}, classes...)...).SetText(text)
}

func heading(level, text string) *dom.Node {
	return dom.New(level).SetText(text)
}

func paragraph(text string, classes ...string) *dom.Node {
	return dom.New("p", classes...).SetText(text)
}

// button mirrors the prototype's createButton: optional leading icon, label,
// class defaulting to btn-primary.
func button(label string, onClick func(), class, iconName string) *dom.Node {
	if class == "" {
		class = "btn-primary"
	}
	b := dom.New("button", "btn", class).SetLayout(dom.Row)
	if iconName != "" {
		b.AppendChild(icon(iconName))
	}
	b.Append(label)
	if onClick != nil {
		b.OnClick(onClick)
	}
	return b
}

func screenRoot(s state.Screen, classes ...string) *dom.Node {
	return dom.New("div", append([]string{ScreenClass, "screen-" + s.String()}, classes...)...).
		SetAttr("data-screen", s.String())
}
