package climate

import (
	"math"
	"sort"
)

// Summarize computes per-country descriptive statistics for one metric.
// Rows come back in lexicographic country order so output is deterministic.
// Missing values are skipped; after preprocessing none should remain, but
// a metric that was never observed must not poison the statistics.
func Summarize(ds Dataset, metric string) []SummaryRow {
	groups := make(map[string][]float64)
	for _, r := range ds {
		if _, ok := groups[r.Country]; !ok {
			groups[r.Country] = nil
		}
		if v := r.Values[metric]; v != nil {
			groups[r.Country] = append(groups[r.Country], *v)
		}
	}

	countries := make([]string, 0, len(groups))
	for c := range groups {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	rows := make([]SummaryRow, 0, len(countries))
	for _, c := range countries {
		vals := groups[c]
		row := SummaryRow{Country: c, Count: len(vals)}
		if len(vals) > 0 {
			row.Mean = round2(mean(vals))
			row.Median = round2(median(vals))
			row.Min = round2(minOf(vals))
			row.Max = round2(maxOf(vals))
			row.StdDev = round2(sampleStdDev(vals))
		}
		rows = append(rows, row)
	}
	return rows
}

// TopN returns the n records with the largest (ascending=false) or
// smallest (ascending=true) value of the metric, projected to TopRecord.
// Ties keep their relative dataset order. Records missing the metric are
// not candidates. n larger than the dataset returns everything; n <= 0
// returns nothing.
func TopN(ds Dataset, metric string, n int, ascending bool) []TopRecord {
	if n <= 0 {
		return []TopRecord{}
	}

	candidates := make([]TopRecord, 0, len(ds))
	for _, r := range ds {
		if v := r.Values[metric]; v != nil {
			candidates = append(candidates, TopRecord{Date: r.Date, Country: r.Country, Value: *v})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if ascending {
			return candidates[i].Value < candidates[j].Value
		}
		return candidates[i].Value > candidates[j].Value
	})

	if n < len(candidates) {
		candidates = candidates[:n]
	}
	return candidates
}

// Overview holds headline figures for a filtered view of one metric.
type Overview struct {
	Records      int     `json:"records"`
	Countries    int     `json:"countries"`
	Mean         float64 `json:"mean"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Completeness float64 `json:"completenessPct"`
}

// OverviewOf computes dataset-wide figures for the metric: record and
// country counts, mean and extremes, and the share of records carrying a
// value (percent, one decimal).
func OverviewOf(ds Dataset, metric string) Overview {
	var vals []float64
	for _, r := range ds {
		if v := r.Values[metric]; v != nil {
			vals = append(vals, *v)
		}
	}

	ov := Overview{
		Records:   len(ds),
		Countries: len(ds.Countries()),
	}
	if len(vals) > 0 {
		ov.Mean = round2(mean(vals))
		ov.Min = round2(minOf(vals))
		ov.Max = round2(maxOf(vals))
	}
	if len(ds) > 0 {
		ov.Completeness = math.Round(float64(len(vals))/float64(len(ds))*1000) / 10
	}
	return ov
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// sampleStdDev uses the N-1 denominator. A single observation has no
// spread to estimate; report 0 rather than NaN.
func sampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
