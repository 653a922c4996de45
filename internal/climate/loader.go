package climate

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/solarchallenge/climate-explorer/internal/common"
)

// Source abstracts where a country's raw table comes from: a directory of
// CSV files, a remote endpoint, anything that can hand back row data for a
// normalized country id. Open must return an error wrapping ErrNotFound
// when it has no data for the country.
type Source interface {
	Open(ctx context.Context, countryID string) (io.ReadCloser, error)
}

// Load reads all rows for one country from src and tags each row with the
// country's display name. Column presence is not validated here; that is
// Preprocess's job.
func Load(ctx context.Context, countryID string, src Source) (RawTable, error) {
	id := common.NormalizeID(countryID)

	rc, err := src.Open(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty source: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read header for %s: %w", id, err)
	}

	country := common.DisplayName(id)

	var table RawTable
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows for %s: %w", id, err)
		}

		row := make(RawRow, len(header)+1)
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		row[ColCountry] = country
		table = append(table, row)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", id, ErrNotFound)
	}
	return table, nil
}
