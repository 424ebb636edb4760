package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Inspect and convert rocket stove video catalogs",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())
	return rootCmd
}
