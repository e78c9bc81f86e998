package screens

import (
	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Onboarding is the only view shown before sign-in.
func (b *Builder) Onboarding() *dom.Node {
	o := b.c.Onboarding
	container := dom.New("div", OnboardingClass)
	container.AppendChild(
		heading("h1", o.Title),
		paragraph(o.Lead),
		dom.New("input").
			SetAttr("type", "email").
			SetAttr("placeholder", o.EmailPlaceholder).
			SetAttr("aria-label", o.EmailPlaceholder),
		button(o.Button, func() {
			b.store.SetState(state.SignIn())
		}, "", ""),
	)
	return container
}
