package tui

import (
	"strings"
	"testing"

	"Conexoes/pkg/config"
	"Conexoes/pkg/content"
	"Conexoes/pkg/render"
	"Conexoes/pkg/screens"
	"Conexoes/pkg/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, initial state.UIState) *Model {
	t.Helper()
	app := render.NewApp(initial, content.MustLoad(), nil)
	m := NewModel(app, config.DefaultConfig(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func signedIn(s state.Screen) state.UIState {
	return state.UIState{Authenticated: true, Screen: s, View: state.ViewMain}
}

func TestEnterOnOnboardingSignsIn(t *testing.T) {
	m := newTestModel(t, state.Initial())

	focused := m.Focused()
	require.NotNil(t, focused)
	assert.Equal(t, "Começar Grátis", Describe(focused))
	assert.False(t, m.hasNav(), "no navigation before sign-in")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := m.app.Store.State()
	assert.True(t, got.Authenticated)
	assert.Equal(t, state.ScreenDiscover, got.Screen)
	assert.True(t, m.hasNav())
	assert.Contains(t, m.View(), "Alex, 28")
}

func TestNumberKeysNavigate(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenDiscover))

	tests := []struct {
		key  string
		want state.Screen
	}{
		{"2", state.ScreenCommunity},
		{"3", state.ScreenMessages},
		{"4", state.ScreenProfile},
		{"1", state.ScreenDiscover},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m.Update(runes(tt.key))
			got := m.app.Store.State()
			assert.Equal(t, tt.want, got.Screen)
			assert.Equal(t, state.ViewMain, got.View)

			nav := m.app.Root().FindByID("nav-" + tt.want.String())
			require.NotNil(t, nav)
			current, _ := nav.Attr("aria-current")
			assert.Equal(t, "page", current)
		})
	}
}

func TestNumberKeysIgnoredBeforeSignIn(t *testing.T) {
	m := newTestModel(t, state.Initial())
	m.Update(runes("2"))
	assert.Equal(t, state.Initial(), m.app.Store.State())
}

func TestChecklistKeyTogglesOnMessagesOnly(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenMessages))

	m.Update(runes("c"))
	assert.Equal(t, state.ViewChecklist, m.app.Store.State().View)
	assert.Contains(t, m.contentView(), "Checklist de Segurança")

	m.Update(runes("c"))
	assert.Equal(t, state.ViewMain, m.app.Store.State().View)

	m.Update(runes("1"))
	before := m.app.Store.State()
	m.Update(runes("c"))
	assert.Equal(t, before, m.app.Store.State())
	assert.Nil(t, m.app.Root().FindByID(screens.ChecklistButton))
}

func TestNavResetsChecklistView(t *testing.T) {
	m := newTestModel(t, state.UIState{Authenticated: true, Screen: state.ScreenMessages, View: state.ViewChecklist})
	m.Update(runes("3"))
	assert.Equal(t, signedIn(state.ScreenMessages), m.app.Store.State())
}

func TestFocusCycles(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenDiscover))
	n := len(m.clickables)
	require.Greater(t, n, 1)

	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, n-1, m.focus, "shift+tab wraps to the last control")
}

func TestVisualOnlyControlsSetStatus(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenDiscover))
	before := m.app.Store.State()
	passes := m.app.Renderer.Passes()

	// First clickable on discover is the deny button.
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, before, m.app.Store.State())
	assert.Equal(t, passes, m.app.Renderer.Passes(), "no re-render for controls without handlers")
	assert.Equal(t, "sem ação: Dispensar", m.status)
	assert.Contains(t, m.statusView(), "sem ação")
}

func TestFocusFollowsClickedNavItem(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenDiscover))
	m.Update(runes("2"))

	focused := m.Focused()
	require.NotNil(t, focused)
	assert.Equal(t, "nav-community", focused.ID())
}

func TestQuitAsksForConfirmation(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenProfile))

	_, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, StateConfirmQuit, m.GetState())
	assert.True(t, m.confirm.IsActive())
	assert.Contains(t, m.View(), "Sair do Conexões?")

	_, cmd = m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, StateMain, m.GetState())
	assert.False(t, m.quitting)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestCtrlCQuitsImmediately(t *testing.T) {
	m := newTestModel(t, state.Initial())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestHelpToggleResizesViewport(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenCommunity))
	h := m.viewport.Height
	m.Update(runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.viewport.Height, h)
}

func TestViewFrame(t *testing.T) {
	m := newTestModel(t, signedIn(state.ScreenProfile))
	out := m.View()

	assert.True(t, strings.HasPrefix(out, m.headerView()))
	assert.Contains(t, out, "profile")
	assert.Contains(t, out, "Profile")
	assert.Contains(t, out, "Maria Silva, 26")
}

func TestContentWidthHonoursMaxWidth(t *testing.T) {
	m := newTestModel(t, state.Initial())
	assert.Equal(t, config.DefaultConfig().UI.MaxWidth, m.contentWidth())

	m.cfg.UI.MaxWidth = 0
	assert.Equal(t, 98, m.contentWidth())

	m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Equal(t, 20, m.contentWidth())
}

func TestFrameFitsWindowAcrossSignIn(t *testing.T) {
	m := newTestModel(t, state.Initial())
	lines := func() int { return len(strings.Split(m.View(), "\n")) }

	assert.LessOrEqual(t, lines(), 40)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.hasNav())
	assert.LessOrEqual(t, lines(), 40, "nav added on sign-in must shrink the viewport")
	assert.True(t, strings.HasPrefix(m.View(), m.headerView()), "header stays on screen")

	m.Update(runes("?"))
	assert.LessOrEqual(t, lines(), 40)
}

func TestLoadingUntilFirstWindowSize(t *testing.T) {
	app := render.NewApp(state.Initial(), content.MustLoad(), nil)
	m := NewModel(app, config.DefaultConfig(), nil)
	assert.Equal(t, "Carregando...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.NotEqual(t, "Carregando...", m.View())
}

func TestStatusWithoutClickables(t *testing.T) {
	app := render.NewApp(state.Initial(), content.MustLoad(), nil)
	app.Root().RemoveChildren()
	m := NewModel(app, config.DefaultConfig(), nil)

	assert.Nil(t, m.Focused())
	assert.Contains(t, m.statusView(), "0/0")
}
