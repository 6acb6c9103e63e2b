package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the storefront version",
		Run: func(cmd *cobra.Command, args []string) {
			newUI(cmd).Info("storefront %s (%s)", version, runtime.Version())
		},
	}
}
