package screens

import (
	"Conexoes/pkg/content"
	"Conexoes/pkg/dom"
	"Conexoes/pkg/state"
)

// Messages shows the chat header, then the conversation or the checklist
// depending on view, then the input area.
func (b *Builder) Messages(view state.View) *dom.Node {
	conv := b.c.Conversation
	container := screenRoot(state.ScreenMessages, "messages-layout")

	container.AppendChild(dom.New("div", "chat-header").SetLayout(dom.Row).AppendChild(
		dom.New("div", "avatar").SetText(conv.Partner.AvatarInitial),
		dom.New("div", "info").AppendChild(
			heading("h3", conv.Partner.Name),
			paragraph(conv.Partner.Status),
		),
		dom.New("div", "actions").AppendChild(icon("more_vert")),
	))

	body := dom.New("div", "chat-body")
	if view == state.ViewChecklist {
		body.AppendChild(b.Checklist())
	} else {
		body.AppendChild(chatThread(conv.Messages))
	}
	container.AppendChild(body)

	checklistBtn := button("Checklist", func() {
		current := b.store.State().View
		b.store.SetState(state.ShowView(current.Toggled()))
	}, "btn-secondary", "checklist").SetID(ChecklistButton)

	input := dom.New("div", "chat-input-area").AppendChild(
		dom.New("div", "chat-input-container").SetLayout(dom.Row).AppendChild(
			dom.New("button", "icon-btn").SetAttr("aria-label", "Emoji").AppendChild(icon("sentiment_satisfied")),
			dom.New("input").SetAttr("type", "text").SetAttr("placeholder", conv.InputPlaceholder),
			dom.New("button", "icon-btn").SetAttr("aria-label", "Sugestões").AppendChild(icon("lightbulb")),
			dom.New("button", "send-btn").SetAttr("aria-label", "Enviar").AppendChild(icon("send")),
		),
		dom.New("div", "chat-actions").SetLayout(dom.Row).AppendChild(
			button("Video-Check", nil, "btn-secondary", "videocam"),
			checklistBtn,
		),
		dom.New("p", "encryption-note").SetLayout(dom.Row).
			AppendChild(icon("lock"), dom.TextNode(conv.EncryptionNote)),
	)
	return container.AppendChild(input)
}

func chatThread(msgs []content.Message) *dom.Node {
	thread := dom.New("div", "chat-messages")
	for _, msg := range msgs {
		side := "received"
		if msg.Sender == content.SenderMe {
			side = "sent"
		}
		thread.AppendChild(dom.New("div", "message-bubble", side).SetText(msg.Text).
			AppendChild(dom.New("div", "timestamp").SetText(msg.Time)))
	}
	return thread
}

// Checklist is the safety checklist sub-view of the messages screen.
func (b *Builder) Checklist() *dom.Node {
	cl := b.c.Checklist
	container := dom.New("div", "checklist-container")

	container.AppendChild(dom.New("div", "checklist-header").AppendChild(heading("h2", cl.Title)))

	progress := dom.New("div", "checklist-progress").SetLayout(dom.Row)
	for i, phase := range cl.Phases {
		step := dom.New("div", "progress-step").SetText(phase)
		if i == cl.ActivePhase {
			step.AddClass("active")
		}
		progress.AppendChild(step)
	}
	container.AppendChild(progress)

	section := dom.New("div", "checklist-section")
	sectionTitle := ""
	if cl.ActivePhase >= 0 && cl.ActivePhase < len(cl.Phases) {
		sectionTitle = cl.Phases[cl.ActivePhase]
	}
	section.AppendChild(dom.New("h3").SetLayout(dom.Row).
		AppendChild(icon("radio_button_unchecked"), dom.TextNode(sectionTitle)))
	for _, item := range cl.Items {
		section.AppendChild(dom.New("div", "checklist-item").SetLayout(dom.Row).
			AppendChild(dom.New("div", "check-circle"), dom.TextNode(item)))
	}
	container.AppendChild(section)

	container.AppendChild(dom.New("div", "alert-box").AppendChild(
		dom.New("p").SetLayout(dom.Row).AppendChild(
			dom.New("strong").SetText(cl.AlertTitle),
			dom.TextNode(cl.Alert),
		),
	))
	return container
}
