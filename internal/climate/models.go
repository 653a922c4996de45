package climate

import (
	"sort"
	"time"
)

// Column names as they appear in the raw country tables.
const (
	ColYear    = "YEAR"
	ColMonth   = "MO"
	ColDay     = "DY"
	ColCountry = "Country"
)

// RawRow is one unparsed observation keyed by column name.
type RawRow map[string]string

// RawTable is the loader output: untyped rows, schema not yet validated.
type RawTable []RawRow

// Record is one country-day observation. Values maps metric key to the
// observed value; a nil entry means the value is missing.
type Record struct {
	Date    time.Time           `json:"date"`
	Country string              `json:"country"`
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Day     int                 `json:"day"`
	Values  map[string]*float64 `json:"values"`
}

// Dataset is an ordered sequence of records. After Preprocess it is sorted
// non-decreasing by date; records sharing a date keep their merge order.
// A Dataset is never mutated in place: Filter and the aggregations return
// derived values and leave the receiver untouched.
type Dataset []Record

// SummaryRow holds per-country descriptive statistics for one metric.
// StdDev is the sample standard deviation (N-1 denominator). All values
// are rounded to 2 decimal places. Count is the number of non-missing
// observations that entered the statistics.
type SummaryRow struct {
	Country string  `json:"country"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"stdDev"`
	Count   int     `json:"count"`
}

// TopRecord is a record projected down to what the extremes view needs.
type TopRecord struct {
	Date    time.Time `json:"date"`
	Country string    `json:"country"`
	Value   float64   `json:"value"`
}

// Countries returns the distinct country names in the dataset, sorted.
func (ds Dataset) Countries() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range ds {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		out = append(out, r.Country)
	}
	sort.Strings(out)
	return out
}

// Bounds returns the first and last dates in the dataset. ok is false for
// an empty dataset.
func (ds Dataset) Bounds() (from, to time.Time, ok bool) {
	if len(ds) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return ds[0].Date, ds[len(ds)-1].Date, true
}
