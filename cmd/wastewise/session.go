package main

import (
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/Veraticus/wastewise/internal/tui"
	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive classification session",
		Long: `Start an interactive session: open a photo, classify it, review the
ranked actions and list sellable items on the marketplace. Reset to start
over with a new item.`,
		RunE: runSession,
	}

	addClassifierFlags(cmd)
	return cmd
}

func runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	market, closeMarket, err := openMarket(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeMarket()

	// The TUI handles its own interrupts
	return tui.Run(ctx, tui.Config{
		Session: session.New(newAdvisor(cfg, cat)),
		Market:  market,
	})
}
