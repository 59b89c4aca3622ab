package main

import (
	"fmt"

	"github.com/Veraticus/wastewise/internal/catalog"
	"github.com/Veraticus/wastewise/internal/cli"
	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect material catalogs",
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogValidateCmd())
	cmd.AddCommand(catalogExportCmd())
	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the materials the classifier can pick from",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Material Catalog (%d profiles)", cat.Len())))
			return cli.WriteCatalog(out, cat.Profiles())
		},
	}
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError(err.Error()))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s is valid: %d profiles", args[0], cat.Len())))
			return nil
		},
	}
}

func catalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the active catalog as YAML",
		Long:  "Print the active catalog as YAML, a starting point for a custom catalog file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			data, err := cat.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
