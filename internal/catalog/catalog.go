// Package catalog loads the video catalog: an ordered list of titles and an
// index from each title to the urls listed for it.
package catalog

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

const (
	colTitle = 0
	colURL   = 1

	minFields = 2
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Catalog is the pair handed to the page template. Titles keeps row order and
// may repeat; URLs has one key per distinct title.
type Catalog struct {
	Titles []string
	URLs   map[string][]string
}

func newCatalog() *Catalog {
	return &Catalog{
		Titles: []string{},
		URLs:   map[string][]string{},
	}
}

func (c *Catalog) add(title, url string) {
	c.Titles = append(c.Titles, title)
	c.URLs[title] = append(c.URLs[title], url)
}

// Len returns the number of data rows the catalog was built from.
func (c *Catalog) Len() int {
	return len(c.Titles)
}

// Clone returns a deep copy that shares no backing arrays with c.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Titles: append([]string{}, c.Titles...),
		URLs:   make(map[string][]string, len(c.URLs)),
	}
	for title, urls := range c.URLs {
		out.URLs[title] = append([]string{}, urls...)
	}
	return out
}

// Parse reads comma separated rows from r. The first row is a header and is
// always skipped; every following row must carry a title and a url, extra
// columns are ignored.
func Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(ErrResourceUnavailable, err.Error())
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, &RecordError{Row: 1, Reason: "missing header row"}
		}
		return nil, parseError(err)
	}

	c := newCatalog()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}
		if len(record) < minFields {
			line, _ := cr.FieldPos(0)
			return nil, &RecordError{Row: line, Fields: len(record)}
		}
		c.add(record[colTitle], record[colURL])
	}
	return c, nil
}

func parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RecordError{Row: pe.Line, Reason: pe.Err.Error()}
	}
	return errors.Wrap(ErrResourceUnavailable, err.Error())
}
