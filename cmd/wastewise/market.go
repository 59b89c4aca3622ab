package main

import (
	"fmt"

	"github.com/Veraticus/wastewise/internal/cli"
	"github.com/Veraticus/wastewise/internal/config"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/service"
	"github.com/Veraticus/wastewise/internal/storage"
	"github.com/spf13/cobra"
)

func marketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Browse marketplace listings and trades",
		Long: `Browse marketplace listings and trades.

The marketplace database lives in memory unless --database (or
marketplace.database in the config file) points at a file, so each market
command starts from an empty store by default. Listings are created from the
interactive session or the API; share a database file with them to sell here:

  wastewise session --database ~/.config/wastewise/market.db
  wastewise market list --database ~/.config/wastewise/market.db
  wastewise market sell <id> --buyer "Green Recyclers" --database ~/.config/wastewise/market.db`,
	}

	cmd.AddCommand(marketListCmd())
	cmd.AddCommand(marketSellCmd())
	cmd.AddCommand(marketTradesCmd())
	return cmd
}

func marketListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marketplace listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			warnEphemeral(cmd, cfg)
			market, closeMarket, err := openMarket(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeMarket()

			status, _ := cmd.Flags().GetString("status")
			material, _ := cmd.Flags().GetString("material")
			limit, _ := cmd.Flags().GetInt("limit")

			listings, err := market.Listings(cmd.Context(), service.ListingFilter{
				Status:   model.ListingStatus(status),
				Material: material,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			return cli.WriteListings(cmd.OutOrStdout(), listings)
		},
	}

	cmd.Flags().String("status", "", "filter by status (available, sold)")
	cmd.Flags().String("material", "", "filter by material")
	cmd.Flags().Int("limit", 0, "maximum listings to show (0 = all)")
	return cmd
}

func marketSellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell <listing-id>",
		Short: "Mark a listing sold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			warnEphemeral(cmd, cfg)
			market, closeMarket, err := openMarket(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeMarket()

			buyer, _ := cmd.Flags().GetString("buyer")
			trade, err := market.Sell(cmd.Context(), args[0], buyer)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Sold %s to %s for %s%.0f", trade.Material, trade.Counterparty, cli.RupeeIcon, trade.Amount)))
			return nil
		},
	}

	cmd.Flags().String("buyer", "", "who bought the listing")
	_ = cmd.MarkFlagRequired("buyer")
	return cmd
}

func marketTradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trades",
		Short: "Show trade history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			warnEphemeral(cmd, cfg)
			market, closeMarket, err := openMarket(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeMarket()

			trades, err := market.Trades(cmd.Context())
			if err != nil {
				return err
			}
			return cli.WriteTrades(cmd.OutOrStdout(), trades)
		},
	}
}

// warnEphemeral tells the user an in-memory store starts empty and is discarded on exit.
func warnEphemeral(cmd *cobra.Command, cfg *config.Config) {
	if cfg.MarketplacePath != "" && cfg.MarketplacePath != storage.MemoryPath {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("Marketplace database is in memory and starts empty; pass --database <file> to keep listings between runs."))
}
