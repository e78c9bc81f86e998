package tui

// TUIState represents the current active view or overlay in the TUI.
type TUIState int

const (
	StateMain TUIState = iota
	StateConfirmQuit
)

// SetState switches the overlay state. It is unrelated to the app's UI state,
// which lives in the store.
func (m *Model) SetState(s TUIState) {
	m.state = s
}

// GetState returns the current overlay state.
func (m *Model) GetState() TUIState {
	return m.state
}
