package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog represents a confirmation dialog
type ConfirmDialog struct {
	active    bool
	title     string
	message   string
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	help      help.Model
	keys      confirmKeyMap
	styles    Styles
}

type confirmKeyMap struct {
	confirm key.Binding
	cancel  key.Binding
	help    key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.cancel, k.help}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.confirm, k.cancel},
		{k.help},
	}
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		confirm: key.NewBinding(key.WithKeys("enter", "y", "s"), key.WithHelp("enter/s", "confirmar")),
		cancel:  key.NewBinding(key.WithKeys("esc", "n", "q"), key.WithHelp("esc/n", "cancelar")),
		help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ajuda")),
	}
}

// NewConfirmDialog creates a new confirmation dialog. The callbacks may return
// a command for the program (tea.Quit, typically).
func NewConfirmDialog(title, message string, st Styles, onConfirm, onCancel func() tea.Cmd) *ConfirmDialog {
	return &ConfirmDialog{
		title:     title,
		message:   message,
		onConfirm: onConfirm,
		onCancel:  onCancel,
		help:      help.New(),
		keys:      newConfirmKeyMap(),
		styles:    st,
	}
}

// Show shows the confirmation dialog
func (d *ConfirmDialog) Show() {
	d.active = true
}

// Hide hides the confirmation dialog
func (d *ConfirmDialog) Hide() {
	d.active = false
}

// IsActive returns whether the dialog is active
func (d *ConfirmDialog) IsActive() bool {
	return d.active
}

// Update handles dialog updates
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.active {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, d.keys.confirm):
		d.Hide()
		if d.onConfirm != nil {
			return d.onConfirm()
		}
	case key.Matches(keyMsg, d.keys.cancel):
		d.Hide()
		if d.onCancel != nil {
			return d.onCancel()
		}
	case key.Matches(keyMsg, d.keys.help):
		d.help.ShowAll = !d.help.ShowAll
	}
	return nil
}

// View renders the confirmation dialog
func (d *ConfirmDialog) View() string {
	if !d.active {
		return ""
	}

	dialogStyle := d.styles.Card.Copy().
		BorderForeground(d.styles.Title.GetForeground()).
		Padding(1, 2).
		Width(44)

	content := d.styles.Danger.Render(d.title) + "\n\n"
	content += d.styles.Text.Render(d.message) + "\n\n"
	content += d.styles.Help.Render(fmt.Sprintf("%s • %s",
		d.keys.confirm.Help().Key,
		d.keys.cancel.Help().Key))

	if d.help.ShowAll {
		content += "\n\n" + d.help.View(d.keys)
	}

	return dialogStyle.Render(content)
}

// Overlay centers the dialog over a w×h area.
func (d *ConfirmDialog) Overlay(w, h int) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, d.View())
}
