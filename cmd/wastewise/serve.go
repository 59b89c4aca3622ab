package main

import (
	"github.com/Veraticus/wastewise/internal/api"
	"github.com/Veraticus/wastewise/internal/config"
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Long: `Serve classification sessions and the marketplace over JSON HTTP
under /api/v1. Each client creates its own session.`,
		RunE: runServe,
	}

	addClassifierFlags(cmd)
	cmd.Flags().String("addr", "localhost:8080", "listen address")
	_ = viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
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

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := session.NewRegistry(newAdvisor(cfg, cat))
	return api.NewServer(cat, registry, market).ListenAndServe(ctx, cfg.ServerAddr)
}
