package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rocket-stove/internal/catalog"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Load a catalog and report its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.OutOrStdout(), args[0])
		},
	}
}

func check(out io.Writer, path string) error {
	c, err := catalog.LoadFile(path)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", color.RedString("FAIL"), path)
		return err
	}
	sum, err := catalog.Checksum(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", color.GreenString("OK"), path)
	fmt.Fprintf(out, "  rows:     %d\n", c.Len())
	fmt.Fprintf(out, "  titles:   %d\n", len(c.URLs))
	fmt.Fprintf(out, "  sha256:   %x\n", sum)

	dups := duplicates(c)
	if len(dups) == 0 {
		return nil
	}
	fmt.Fprintf(out, "  %s\n", color.YellowString("duplicate titles:"))
	for _, title := range dups {
		fmt.Fprintf(out, "    %s (%d urls)\n", title, len(c.URLs[title]))
	}
	return nil
}

func duplicates(c *catalog.Catalog) []string {
	var dups []string
	for title, urls := range c.URLs {
		if len(urls) > 1 {
			dups = append(dups, title)
		}
	}
	sort.Strings(dups)
	return dups
}
