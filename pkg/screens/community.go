package screens

import (
	"fmt"
	"strconv"

	"Conexoes/pkg/content"
	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Community lists categories, upcoming events and the guidelines.
func (b *Builder) Community() *dom.Node {
	c := b.c.Community
	container := screenRoot(state.ScreenCommunity)

	container.AppendChild(dom.New("div", "community-header").AppendChild(
		heading("h2", c.Title),
		paragraph(c.Lead),
	))

	grid := dom.New("div", "community-grid").SetLayout(dom.Row)
	for _, cat := range c.Categories {
		grid.AppendChild(dom.New("div", "category-card").AppendChild(
			icon(cat.Icon),
			heading("h4", cat.Name),
			paragraph(fmt.Sprintf("%d eventos", cat.Events)),
		))
	}
	container.AppendChild(grid, heading("h3", "Próximos Eventos"))

	for _, ev := range c.Events {
		container.AppendChild(eventCard(ev))
	}

	rules := dom.New("ul")
	for _, g := range c.Guidelines {
		rules.AppendChild(dom.New("li").SetText(g))
	}
	container.AppendChild(dom.New("div", "card").AppendChild(
		heading("h3", "Diretrizes da Comunidade"),
		rules,
	))
	return container
}

func eventCard(ev content.Event) *dom.Node {
	return dom.New("div", "event-card").AppendChild(
		dom.New("div", "event-card-header").SetLayout(dom.Row).AppendChild(
			heading("h4", ev.Title),
			chip(ev.Category),
		),
		dom.New("div", "event-meta").SetLayout(dom.Row).AppendChild(
			metaItem("calendar_today", ev.Date),
			metaItem("schedule", ev.Time),
			metaItem("location_on", ev.Location),
		),
		paragraph(ev.Description, "muted"),
		dom.New("div", "event-footer").SetLayout(dom.Row).AppendChild(
			dom.New("span", "attendees").SetLayout(dom.Row).
				AppendChild(icon("groups"), dom.TextNode(fmt.Sprintf("%d/%d", ev.Attendees, ev.Capacity))),
			dom.New("progress").
				SetAttr("value", strconv.Itoa(ev.Attendees)).
				SetAttr("max", strconv.Itoa(ev.Capacity)),
			dom.New("a", "btn-details").SetLayout(dom.Row).
				SetAttr("href", "#").
				AppendChild(dom.TextNode("Ver detalhes"), icon("arrow_forward")),
		),
	)
}

func metaItem(iconName, text string) *dom.Node {
	return dom.New("span").SetLayout(dom.Row).AppendChild(icon(iconName), dom.TextNode(text))
}
