package main

import (
	"fmt"

	"github.com/Veraticus/wastewise/internal/advisor"
	"github.com/Veraticus/wastewise/internal/cli"
	"github.com/Veraticus/wastewise/internal/common"
	"github.com/spf13/cobra"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run many classifications and show how often each material comes up",
		Long: `Run many independent classifications in parallel and print a histogram
of the selected materials. Every catalog material should be reached.

Latency defaults to zero here; pass --latency to include it.`,
		RunE: runSimulate,
	}

	addClassifierFlags(cmd)
	cmd.Flags().IntP("runs", "n", 1000, "number of classifications")
	cmd.Flags().IntP("workers", "w", 8, "classifications to run at once")
	return cmd
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("latency") {
		cfg.Latency = 0
	}

	runs, _ := cmd.Flags().GetInt("runs")
	workers, _ := cmd.Flags().GetInt("workers")
	if runs <= 0 || workers <= 0 {
		return fmt.Errorf("runs and workers must be positive")
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	common.LogInfo("Starting simulation", common.Fields{
		"runs":    runs,
		"workers": workers,
		"seed":    cfg.Seed,
	})

	report, err := advisor.Coverage(cmd.Context(), newSelector(cfg, cat), runs, workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Selection Coverage"))
	return cli.WriteCoverage(out, report, cat.Materials())
}
