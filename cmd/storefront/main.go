package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkaewam/storefront/internal/cli/ui"
	"github.com/nkaewam/storefront/internal/config"
)

// @title Storefront API
// @version 1.0
// @description Product catalog and shopping cart service
// @BasePath /api

// set by -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Product catalog and shopping cart API",
		Long: `Storefront serves a product catalog and a shopping cart over a JSON REST API.

Storage is in memory by default; set storage.driver to postgres to keep data
across restarts. Configuration is read from storefront.yaml and STOREFRONT_*
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to storefront.yaml config file")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newInitCmd(&configPath))
	rootCmd.AddCommand(newMigrateCmd(&configPath))
	rootCmd.AddCommand(newRoutesCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newUI(cmd *cobra.Command) ui.Service {
	return ui.ProvideUIService(cmd.InOrStdin(), cmd.OutOrStdout())
}

func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.ProvideConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
