package tui

import (
	"context"

	"Conexoes/pkg/config"
	"Conexoes/pkg/render"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, app *render.App, cfg *config.Config, log *zap.SugaredLogger) error {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if cfg != nil && cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewModel(app, cfg, log), opts...)
	_, err := p.Run()
	return err
}

// Snapshot paints the whole tree (navigation included) once, without the
// interactive frame.
func Snapshot(app *render.App, theme string, width int) string {
	st := NewStyles(PaletteFor(theme))
	return NewPainter(st).Paint(app.Root(), width, nil)
}
