package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nkaewam/storefront/internal/api"
	"github.com/nkaewam/storefront/internal/config"
)

func newServeCmd(configPath *string) *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if seedFile != "" {
				cfg.Catalog.SeedFile = seedFile
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&seedFile, "seed", "", "YAML catalog to load before serving")

	return cmd
}

func serve(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	out := newUI(cmd)

	srv, cleanup, err := api.InitializeServer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	defer cleanup()

	if err := srv.Bootstrap(ctx); err != nil {
		return err
	}

	out.Success("Storefront listening on %s (storage: %s)", cfg.Server.Address(), cfg.Storage.Driver)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	out.Info("Server stopped")
	return nil
}
