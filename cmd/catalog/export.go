package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rocket-stove/internal/catalog"
)

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write a catalog (csv or xlsx) as title,url rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return catalog.Write(cmd.OutOrStdout(), c)
			}
			return writeFile(output, c)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func writeFile(path string, c *catalog.Catalog) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file \"%s\"", path)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "failed to close file \"%s\"", path)
		}
	}()
	return catalog.Write(file, c)
}
