package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkaewam/storefront/internal/api"
	"github.com/nkaewam/storefront/internal/config"
)

func newRoutesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered HTTP routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newUI(cmd)

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			// the route table does not depend on storage
			cfg.Storage.Driver = config.DriverMemory
			cfg.Log.Level = "error"

			srv, cleanup, err := api.InitializeServer(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}
			defer cleanup()

			out.Title("Storefront routes")
			out.RouteTable(srv.Routes())
			return nil
		},
	}
}
