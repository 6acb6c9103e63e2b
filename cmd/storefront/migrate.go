package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkaewam/storefront/internal/config"
	"github.com/nkaewam/storefront/internal/postgres"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newUI(cmd)

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.DriverPostgres {
				out.Warn("storage.driver is %s, nothing to migrate", cfg.Storage.Driver)
				return nil
			}

			stop := out.ShowSpinner("Applying migrations...")
			pool, err := postgres.Connect(cmd.Context(), cfg.Storage.Postgres.DSN, cfg.Storage.Postgres.MaxConns)
			if err != nil {
				stop("Connection failed")
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(cmd.Context(), pool)
			if err != nil {
				stop("Migration failed")
				return err
			}
			stop(fmt.Sprintf("Applied %d migrations", len(applied)))

			for _, name := range applied {
				out.Info("%s", name)
			}
			return nil
		},
	}
}
