package tui

import tea "github.com/charmbracelet/bubbletea"

// Init sets the terminal title; layout waits for the first WindowSizeMsg.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Conexões")
}
