package screens

import (
	"fmt"
	"strconv"

	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Profile shows the signed-in user's header, stats and cards.
func (b *Builder) Profile() *dom.Node {
	p := b.c.Profile
	container := screenRoot(state.ScreenProfile)

	tags := dom.New("div", "profile-tags").SetLayout(dom.Row)
	for _, tag := range p.Tags {
		if tag == "Verificado" {
			tags.AppendChild(chip(tag, "chip-accent"))
		} else {
			tags.AppendChild(chip(tag, "chip-primary"))
		}
	}

	header := dom.New("header", "profile-header").AppendChild(
		dom.New("div", "profile-avatar").SetText(p.AvatarInitial).
			AppendChild(dom.New("div", "online-indicator")),
		heading("h2", fmt.Sprintf("%s, %d", p.Name, p.Age)),
		dom.New("p").SetLayout(dom.Row).AppendChild(icon("location_on"), dom.TextNode(p.Location)),
		tags,
	)

	stats := dom.New("div", "profile-stats").SetLayout(dom.Row).AppendChild(
		statItem(p.Stats.Matches, "Matches"),
		statItem(p.Stats.Conversations, "Conversas"),
		statItem(p.Stats.Photos, "Fotos"),
	)

	about := dom.New("div", "card").AppendChild(
		heading("h3", "Sobre mim"),
		paragraph(p.About),
		dom.New("p", "muted").SetLayout(dom.Row).
			AppendChild(icon("calendar_today"), dom.TextNode("Membro desde "+p.MemberSince)),
	)

	interests := dom.New("div", "chips").SetLayout(dom.Row)
	for _, i := range p.Interests {
		interests.AppendChild(chip(i))
	}
	limits := dom.New("div", "chips").SetLayout(dom.Row)
	for _, l := range p.HardLimits {
		limits.AppendChild(chip(l, "chip-danger"))
	}
	interestsCard := dom.New("div", "card").AppendChild(
		dom.New("div", "card-header").AppendChild(heading("h3", "Interesses")),
		interests,
		dom.New("hr"),
		dom.New("div", "card-header", "danger").SetLayout(dom.Row).
			AppendChild(icon("warning"), heading("h3", "Limites Rígidos")),
		limits,
	)

	settings := dom.New("div", "settings-list")
	for _, s := range p.Settings {
		settings.AppendChild(dom.New("div", "setting-item").SetLayout(dom.Row).
			AppendChild(icon(s.Icon), dom.TextNode(s.Label)))
	}
	settingsCard := dom.New("div", "card").AppendChild(heading("h3", "Configurações"), settings)

	return container.AppendChild(header, stats, about, interestsCard, settingsCard)
}

func statItem(count int, label string) *dom.Node {
	return dom.New("div", "stat-item").AppendChild(
		dom.New("div", "count").SetText(strconv.Itoa(count)),
		dom.New("div", "label").SetText(label),
	)
}
