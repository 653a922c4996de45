package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/solarchallenge/climate-explorer/internal/climate"
)

// CSV serializes a dataset to flat tabular text: date, country, the raw
// calendar parts, then one column per metric in registry order. Missing
// metric values become empty cells.
func CSV(w io.Writer, ds climate.Dataset, metrics []climate.MetricDescriptor) error {
	cw := csv.NewWriter(w)

	header := []string{"date", "country", "year", "month", "day"}
	for _, m := range metrics {
		header = append(header, m.Key)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, 0, len(header))
	for i, r := range ds {
		row = row[:0]
		row = append(row,
			r.Date.Format("2006-01-02"),
			r.Country,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Day),
		)
		for _, m := range metrics {
			if v := r.Values[m.Key]; v != nil {
				row = append(row, strconv.FormatFloat(*v, 'f', 2, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
