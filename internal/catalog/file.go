package catalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const excelExt = ".xlsx"

// FileSource loads the catalog from a file on every call.
type FileSource struct {
	Path string
}

// Load reads the catalog at s.Path.
func (s FileSource) Load() (*Catalog, error) {
	return LoadFile(s.Path)
}

// LoadFile opens path and parses it. Files ending in .xlsx are read from the
// first worksheet, anything else as comma separated text.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "failed to open file \"%s\": %v", path, err)
	}
	defer file.Close()

	var c *Catalog
	if strings.EqualFold(filepath.Ext(path), excelExt) {
		c, err = ParseExcel(file)
	} else {
		c, err = Parse(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog \"%s\"", path)
	}
	return c, nil
}

// ParseExcel reads the first worksheet of an .xlsx workbook using the same
// rules as Parse. Rows with no cells are skipped.
func ParseExcel(r io.Reader) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &RecordError{Row: 1, Reason: "workbook has no sheets"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "failed to read sheet \"%s\": %v", sheets[0], err)
	}

	c := newCatalog()
	header := false
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if !header {
			header = true
			continue
		}
		if len(row) < minFields {
			return nil, &RecordError{Row: i + 1, Fields: len(row)}
		}
		c.add(row[colTitle], row[colURL])
	}
	if !header {
		return nil, &RecordError{Row: 1, Reason: "missing header row"}
	}
	return c, nil
}
