// Package tui hosts the app's element tree in the terminal. The tree is the
// one the renderer rebuilds on every state change; this package only paints
// it and turns key presses into clicks.
package tui

import (
	"fmt"
	"strings"

	"Conexoes/pkg/config"
	"Conexoes/pkg/dom"
	"Conexoes/pkg/render"
	"Conexoes/pkg/screens"
	"Conexoes/pkg/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model is the Bubble Tea model.
type Model struct {
	app     *render.App
	cfg     *config.Config
	log     *zap.SugaredLogger
	styles  Styles
	painter *Painter

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	confirm  *ConfirmDialog
	state    TUIState

	clickables []*dom.Node
	focus      int
	status     string

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates the model around an already rendered app.
func NewModel(app *render.App, cfg *config.Config, log *zap.SugaredLogger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	st := NewStyles(PaletteFor(cfg.UI.Theme))

	m := &Model{
		app:      app,
		cfg:      cfg,
		log:      log,
		styles:   st,
		painter:  NewPainter(st),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     newKeyMap(),
		width:    80,
		height:   24,
	}
	m.confirm = NewConfirmDialog("Sair do Conexões?", "A sessão não é salva: ao voltar você verá a tela inicial.", st,
		func() tea.Cmd {
			m.quitting = true
			return tea.Quit
		},
		func() tea.Cmd {
			m.state = StateMain
			return nil
		},
	)
	m.refresh("")
	return m
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refresh(m.focusedID())
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state == StateConfirmQuit {
			return m, m.confirm.Update(msg)
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.SetState(StateConfirmQuit)
		m.confirm.Show()
		return nil

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		m.RecalculateLayout()
		return nil

	case key.Matches(msg, m.keys.next):
		m.moveFocus(1)
		return nil

	case key.Matches(msg, m.keys.prev):
		m.moveFocus(-1)
		return nil

	case key.Matches(msg, m.keys.activate):
		m.Activate(m.Focused())
		return nil

	case key.Matches(msg, m.keys.checklist):
		m.ClickID(screens.ChecklistButton)
		return nil

	case key.Matches(msg, m.keys.scrollUp), key.Matches(msg, m.keys.scrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	for i, b := range m.keys.nav {
		if key.Matches(msg, b) && i < len(screens.NavItems) {
			m.ClickID("nav-" + screens.NavItems[i].Screen.String())
			return nil
		}
	}
	return nil
}

// Focused returns the node that enter would press, or nil.
func (m *Model) Focused() *dom.Node {
	if m.focus < 0 || m.focus >= len(m.clickables) {
		return nil
	}
	return m.clickables[m.focus]
}

// ClickID presses the node with the given id when it is on screen. It returns
// false when it is not (the checklist button outside messages, the nav before
// sign-in).
func (m *Model) ClickID(id string) bool {
	root := m.app.Root()
	if root == nil {
		return false
	}
	n := root.FindByID(id)
	if n == nil {
		m.log.Debugw("key target not on screen", "id", id)
		return false
	}
	m.Activate(n)
	return true
}

// Activate clicks n. The store re-renders synchronously, so by the time Click
// returns the tree is new and clickables have to be collected again.
func (m *Model) Activate(n *dom.Node) {
	if n == nil {
		return
	}
	before := m.app.Store.State()
	id := n.ID()

	if !n.Click() {
		m.status = "sem ação: " + Describe(n)
		m.log.Debugw("pressed visual-only control", "control", Describe(n))
		m.refresh(id)
		return
	}

	after := m.app.Store.State()
	m.status = ""
	if after.Screen != before.Screen || after.Authenticated != before.Authenticated || after.View != before.View {
		m.viewport.GotoTop()
	}
	m.log.Infow("navigated", "from", before.Screen, "to", after.Screen, "view", after.View, "authenticated", after.Authenticated)
	m.refresh(id)
}

func (m *Model) moveFocus(delta int) {
	if len(m.clickables) == 0 {
		m.focus = 0
		return
	}
	m.focus = (m.focus + delta + len(m.clickables)) % len(m.clickables)
	m.status = ""
	m.paint()
}

func (m *Model) focusedID() string {
	if n := m.Focused(); n != nil {
		return n.ID()
	}
	return ""
}

// refresh collects clickables from the current tree, restores focus to the
// node with keepID when it still exists and repaints the viewport. The
// layout is recomputed first because the nav comes and goes with sign-in.
func (m *Model) refresh(keepID string) {
	m.RecalculateLayout()
	m.clickables = nil
	if root := m.app.Root(); root != nil {
		m.clickables = root.Clickables()
	}

	restored := false
	if keepID != "" {
		for i, n := range m.clickables {
			if n.ID() == keepID {
				m.focus = i
				restored = true
				break
			}
		}
	}
	if !restored && m.focus >= len(m.clickables) {
		m.focus = 0
	}
	m.paint()
}

func (m *Model) paint() {
	m.viewport.SetContent(m.contentView())
}

// contentView paints every root child except the bottom navigation, which
// the frame pins under the viewport.
func (m *Model) contentView() string {
	root := m.app.Root()
	if root == nil {
		return ""
	}
	focus := m.Focused()
	var parts []string
	for _, c := range root.Children() {
		if c.HasClass(screens.NavClass) {
			continue
		}
		parts = append(parts, m.painter.Paint(c, m.contentWidth(), focus))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) nav() *dom.Node {
	root := m.app.Root()
	if root == nil {
		return nil
	}
	if navs := root.QueryClass(screens.NavClass); len(navs) > 0 {
		return navs[0]
	}
	return nil
}

func (m *Model) hasNav() bool {
	return m.nav() != nil
}

// View renders the frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Carregando..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.divider())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())

	if nav := m.nav(); nav != nil {
		b.WriteString("\n")
		b.WriteString(m.divider())
		b.WriteString("\n")
		b.WriteString(m.painter.Paint(nav, m.contentWidth(), m.Focused()))
	}

	if m.cfg.UI.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	}

	if m.state == StateConfirmQuit && m.confirm.IsActive() {
		return m.confirm.Overlay(m.width, m.height)
	}
	return b.String()
}

func (m *Model) headerView() string {
	return m.styles.Header.Render("Conexões") + m.styles.Muted.Render("· comunidade com consentimento")
}

func (m *Model) statusView() string {
	s := m.app.Store.State()
	where := "boas-vindas"
	if s.Authenticated {
		where = s.Screen.Canonical().String()
		if s.Screen.Canonical() == state.ScreenMessages {
			where += " / " + s.View.String()
		}
	}
	pos := 0
	if len(m.clickables) > 0 {
		pos = m.focus + 1
	}
	line := fmt.Sprintf("%s  %d/%d  %s", where, pos, len(m.clickables), Describe(m.Focused()))
	if m.status != "" {
		line += "  · " + m.status
	}
	return m.styles.StatusBar.Width(m.contentWidth()).Render(truncateText(line, m.contentWidth()-2))
}

func (m *Model) divider() string {
	return m.styles.Divider.Render(strings.Repeat("─", m.contentWidth()))
}
