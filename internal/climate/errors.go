package climate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a source has no data for a requested
	// country. The merger treats it as skippable.
	ErrNotFound = errors.New("no data for country")

	// ErrEmptyDataset is returned when not a single country could be
	// loaded. This is fatal to the pipeline.
	ErrEmptyDataset = errors.New("no country data could be loaded")

	// ErrUnknownMetric is returned for aggregation requests against a
	// metric key that is not registered.
	ErrUnknownMetric = errors.New("unknown metric")
)

// SchemaError aborts preprocessing: either required columns are absent from
// the merged table, or a row carries a value that cannot form a record
// (unparseable number, impossible calendar date). There is no row-level
// skipping; the whole step fails.
type SchemaError struct {
	Missing []string // required columns absent from the table
	Reason  string   // row-level detail when Missing is empty
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
	}
	return "schema error: " + e.Reason
}
