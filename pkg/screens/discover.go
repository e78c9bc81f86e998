package screens

import (
	"fmt"

	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Discover shows one candidate card. The action buttons have no handlers.
func (b *Builder) Discover() *dom.Node {
	d := b.c.Discover
	container := screenRoot(state.ScreenDiscover)

	chips := dom.New("div", "chips").SetLayout(dom.Row)
	for _, c := range d.Chips {
		chips.AppendChild(chip(c))
	}

	card := dom.New("div", "discover-card").AppendChild(
		dom.New("div", "discover-card-image"),
		dom.New("div", "discover-card-info").AppendChild(
			heading("h2", fmt.Sprintf("%s, %d", d.Name, d.Age)),
			paragraph(d.Headline),
			chips,
		),
	)

	actions := dom.New("div", "discover-actions").SetLayout(dom.Row).AppendChild(
		actionButton("deny", "Dispensar", "close"),
		actionButton("super-like", "Super Like", "star"),
		actionButton("like", "Curtir", "favorite"),
	)

	return container.AppendChild(card, actions)
}

func actionButton(kind, label, iconName string) *dom.Node {
	return dom.New("button", "discover-btn", kind).
		SetAttr("aria-label", label).
		AppendChild(icon(iconName))
}
