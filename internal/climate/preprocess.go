package climate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Preprocess turns a merged raw table into a queryable dataset:
// required columns are validated, a calendar date is derived per row,
// rows are stably sorted by date, and missing metric values are filled.
//
// Filling runs forward then backward over the globally sorted sequence,
// across countries combined. That means a gap in one country's series can
// be filled from a neighboring country's value when dates interleave; it
// matches the behavior of the merged-table fill this replaces and is kept
// deliberately (see DESIGN.md).
func Preprocess(raw RawTable) (Dataset, error) {
	metricKeys := MetricKeys()

	if err := checkColumns(raw, metricKeys); err != nil {
		return nil, err
	}

	ds := make(Dataset, 0, len(raw))
	for _, row := range raw {
		rec, err := parseRow(row, metricKeys)
		if err != nil {
			return nil, err
		}
		ds = append(ds, rec)
	}

	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Date.Before(ds[j].Date)
	})

	for _, key := range metricKeys {
		fill(ds, key)
	}

	return ds, nil
}

// checkColumns verifies that every required column appears in the table.
// Any absence fails the whole step; there is no partial processing.
func checkColumns(raw RawTable, metricKeys []string) error {
	present := make(map[string]bool)
	for _, row := range raw {
		for col := range row {
			present[col] = true
		}
	}

	required := append([]string{ColYear, ColMonth, ColDay}, metricKeys...)
	required = append(required, ColCountry)

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

func parseRow(row RawRow, metricKeys []string) (Record, error) {
	year, err := parseIntField(row, ColYear)
	if err != nil {
		return Record{}, err
	}
	month, err := parseIntField(row, ColMonth)
	if err != nil {
		return Record{}, err
	}
	day, err := parseIntField(row, ColDay)
	if err != nil {
		return Record{}, err
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (Feb 29 on a common
	// year becomes Mar 1), so round-trip the parts to catch bad dates.
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return Record{}, &SchemaError{
			Reason: fmt.Sprintf("invalid calendar date %04d-%02d-%02d", year, month, day),
		}
	}

	values := make(map[string]*float64, len(metricKeys))
	for _, key := range metricKeys {
		v, err := parseMetricField(row, key)
		if err != nil {
			return Record{}, err
		}
		values[key] = v
	}

	return Record{
		Date:    date,
		Country: row[ColCountry],
		Year:    year,
		Month:   month,
		Day:     day,
		Values:  values,
	}, nil
}

func parseIntField(row RawRow, col string) (int, error) {
	s := strings.TrimSpace(row[col])
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SchemaError{Reason: fmt.Sprintf("column %s: cannot parse %q as integer", col, s)}
	}
	return n, nil
}

// parseMetricField reads a metric cell. Empty cells and NaN markers are
// missing values; anything else must parse as a float.
func parseMetricField(row RawRow, col string) (*float64, error) {
	s := strings.TrimSpace(row[col])
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &SchemaError{Reason: fmt.Sprintf("column %s: cannot parse %q as number", col, s)}
	}
	return &v, nil
}

// fill imputes missing values for one metric in sequence order: each nil
// takes the nearest preceding non-nil value, and leading nils take the
// nearest following one. A metric with zero observed values stays nil.
func fill(ds Dataset, key string) {
	var last *float64
	for i := range ds {
		if v := ds[i].Values[key]; v != nil {
			last = v
		} else if last != nil {
			cp := *last
			ds[i].Values[key] = &cp
		}
	}

	last = nil
	for i := len(ds) - 1; i >= 0; i-- {
		if v := ds[i].Values[key]; v != nil {
			last = v
		} else if last != nil {
			cp := *last
			ds[i].Values[key] = &cp
		}
	}
}
