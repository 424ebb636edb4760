package catalog

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

var header = []string{"title", "url"}

// Write serializes c as comma separated text: a title,url header followed by
// one row per url. Each distinct title is written once, in the order it first
// appears in c.Titles, so Parse(Write(c)) yields the same index.
func Write(w io.Writer, c *Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	seen := make(map[string]bool, len(c.URLs))
	for _, title := range c.Titles {
		if seen[title] {
			continue
		}
		seen[title] = true
		for _, url := range c.URLs[title] {
			if err := cw.Write([]string{title, url}); err != nil {
				return errors.Wrapf(err, "failed to write row for \"%s\"", title)
			}
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush catalog")
}
