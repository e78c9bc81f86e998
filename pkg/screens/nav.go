package screens

import (
	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// BottomNav renders the navigation bar with the item for current marked as
// the active page.
func (b *Builder) BottomNav(current state.Screen) *dom.Node {
	active := current.Canonical()

	nav := dom.New("nav", NavClass).
		SetLayout(dom.Row).
		SetAttr("role", "navigation").
		SetAttr("aria-label", "Navegação principal")

	for _, item := range NavItems {
		target := item.Screen
		btn := dom.New("button", "nav-item").
			SetID("nav-"+target.String()).
			SetAttr("aria-label", item.Label).
			SetAttr("data-screen", target.String())
		if target == active {
			btn.AddClass("active").SetAttr("aria-current", "page")
		} else {
			btn.SetAttr("aria-current", "false")
		}
		btn.OnClick(func() {
			b.store.SetState(state.Navigate(target))
		})
		btn.AppendChild(icon(item.Icon), dom.New("span").SetText(item.Label))
		nav.AppendChild(btn)
	}
	return nav
}
