package climate

import (
	"context"
	"fmt"
)

// LoadWarning records a country that was skipped during a multi-country
// load. The merge itself proceeds; the caller decides how to surface it.
type LoadWarning struct {
	Country string
	Err     error
}

func (w LoadWarning) String() string {
	return fmt.Sprintf("could not load data for %s: %v", w.Country, w.Err)
}

// LoadAll loads every country in countryIDs through Load and concatenates
// the results in the order given, preserving row order within each country.
// A country that fails to load — missing or otherwise broken — is skipped
// and reported as a warning. Only when nothing at all loads does the merge
// fail, with ErrEmptyDataset.
func LoadAll(ctx context.Context, countryIDs []string, src Source) (RawTable, []LoadWarning, error) {
	var (
		merged   RawTable
		warnings []LoadWarning
		loaded   int
	)

	for _, id := range countryIDs {
		table, err := Load(ctx, id, src)
		if err != nil {
			warnings = append(warnings, LoadWarning{Country: id, Err: err})
			continue
		}
		merged = append(merged, table...)
		loaded++
	}

	if loaded == 0 {
		return nil, warnings, ErrEmptyDataset
	}
	return merged, warnings, nil
}
