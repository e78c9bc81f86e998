package tui

// Layout constants for consistent spacing
const (
	HeaderHeight    = 1
	StatusBarHeight = 1
	NavHeight       = 1
	DividerHeight   = 1
	HelpBarHeight   = 1
)

// GetFixedVerticalHeight returns the total height of non-viewport elements.
func (m *Model) GetFixedVerticalHeight() int {
	h := HeaderHeight + StatusBarHeight + DividerHeight
	if m.hasNav() {
		h += NavHeight + DividerHeight
	}
	if m.cfg.UI.ShowHelp {
		h += HelpBarHeight
		if m.help.ShowAll {
			h += len(m.keys.FullHelp()[0]) - 1
		}
	}
	return h
}

// contentWidth is the column the painter lays screens into.
func (m *Model) contentWidth() int {
	w := m.width - 2
	if m.cfg.UI.MaxWidth > 0 && w > m.cfg.UI.MaxWidth {
		w = m.cfg.UI.MaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// RecalculateLayout updates viewport dimensions.
func (m *Model) RecalculateLayout() {
	viewportHeight := m.height - m.GetFixedVerticalHeight()
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	m.viewport.Width = m.contentWidth()
	m.viewport.Height = viewportHeight
	m.viewport.YPosition = HeaderHeight + StatusBarHeight + DividerHeight
	m.help.Width = m.width
}
