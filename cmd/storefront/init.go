package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag"

	"github.com/nkaewam/storefront/internal/config"

	_ "github.com/nkaewam/storefront/docs"
)

func newInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create storefront.yaml and the OpenAPI document",
		Long: `Initialize a storefront project by creating:
- storefront.yaml configuration file with default settings
- the OpenAPI document served by the Swagger UI`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newUI(cmd)

			path := *configPath
			if path == "" {
				path = config.DefaultConfigFile
			}

			write := true
			if _, err := os.Stat(path); err == nil && !force {
				write, err = out.Confirm(fmt.Sprintf("Config file %s already exists. Overwrite?", path))
				if err != nil {
					return err
				}
			}

			cfg := config.Default()
			if write {
				if err := cfg.Save(path); err != nil {
					return err
				}
				out.Success("Created %s", path)
			} else {
				out.Info("Using existing %s", path)
				loaded, err := loadConfig(path)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if err := writeOpenAPI(cfg.Server.Swagger.FilePath); err != nil {
				return err
			}
			out.Success("Wrote OpenAPI document to %s", cfg.Server.Swagger.FilePath)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func writeOpenAPI(path string) error {
	if path == "" {
		return errors.New("server.swagger.file_path is empty")
	}

	doc, err := swag.ReadDoc()
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
