package catalog

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrResourceUnavailable is returned when the catalog source cannot be opened or read.
	ErrResourceUnavailable = errors.New("catalog source unavailable")
	// ErrMalformedRecord is returned when the source has no header row or a
	// data row does not carry both a title and a url.
	ErrMalformedRecord = errors.New("malformed catalog record")
)

// RecordError describes the row that failed to parse. Row is the 1-based
// line (or spreadsheet row) number in the source, the header being row 1.
type RecordError struct {
	Row    int
	Fields int
	Reason string
}

func (e *RecordError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: expected at least %d fields, got %d", e.Row, minFields, e.Fields)
}

// Is lets errors.Is(err, ErrMalformedRecord) match any RecordError.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
