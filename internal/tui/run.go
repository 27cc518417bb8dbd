package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
)

// Run starts the interactive board and blocks until the user quits
func Run(ctx context.Context, a *app.App, cfg *config.Config) error {
	m := InitialModel(ctx, a, cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
