package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/wastewise/internal/marketplace"
	"github.com/Veraticus/wastewise/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Config holds the dependencies for an interactive session.
type Config struct {
	Session *session.Session
	Market  *marketplace.Market
}

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Session == nil {
		return fmt.Errorf("session is required")
	}

	// Reset on exit so a classification still running is discarded.
	defer cfg.Session.Reset()

	p := tea.NewProgram(
		NewModel(ctx, cfg.Session, cfg.Market),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run session: %w", err)
	}
	return nil
}
