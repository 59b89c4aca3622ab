package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/wastewise/internal/advisor"
	"github.com/Veraticus/wastewise/internal/catalog"
	"github.com/Veraticus/wastewise/internal/common"
	"github.com/Veraticus/wastewise/internal/config"
	"github.com/Veraticus/wastewise/internal/marketplace"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/Veraticus/wastewise/internal/storage"
	"github.com/spf13/cobra"
)

// addClassifierFlags registers the flags shared by commands that classify.
func addClassifierFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "random seed for the selector (0 = seed from clock)")
	cmd.Flags().Duration("latency", 0, "simulated analysis time (default from config, 2s)")
	cmd.Flags().Duration("timeout", 0, "give up on a classification after this long (default from config, 10s)")
	cmd.Flags().Int("retries", 0, "attempts per classification (default from config, 1)")
}

// loadConfig resolves configuration, letting explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("latency") {
		cfg.Latency, _ = flags.GetDuration("latency")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("retries") {
		cfg.RetryAttempts, _ = flags.GetInt("retries")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	common.LogDebug("Loaded catalog", common.Fields{"path": cfg.CatalogPath, "profiles": cat.Len()})
	return cat, nil
}

// newSelector builds the random selector, wrapped in a timeout when configured.
func newSelector(cfg *config.Config, cat *catalog.Catalog) advisor.Selector {
	var selector advisor.Selector = advisor.NewRandomSelector(cat, advisor.NewRand(cfg.Seed), cfg.Latency)
	if cfg.Timeout > 0 {
		selector = advisor.WithTimeout(selector, cfg.Timeout)
	}
	return selector
}

// newAdvisor builds the full classification pipeline from cfg.
func newAdvisor(cfg *config.Config, cat *catalog.Catalog) *advisor.Advisor {
	return advisor.New(newSelector(cfg, cat), advisor.WithRetry(service.RetryOptions{
		MaxAttempts: cfg.RetryAttempts,
	}))
}

// openMarket opens and migrates the marketplace store. The returned function closes it.
func openMarket(ctx context.Context, cfg *config.Config) (*marketplace.Market, func(), error) {
	store, err := storage.NewSQLiteStorage(cfg.MarketplacePath)
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	closeFn := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close marketplace store", "error", err)
		}
	}
	return marketplace.New(store), closeFn, nil
}
