package climate

import "time"

// Filter returns the records whose country is in countries and whose date
// falls inside [from, to], both ends inclusive. Input order is preserved
// and the receiver dataset is left untouched. An empty result is a valid
// dataset, not an error; the caller decides whether to report it.
func Filter(ds Dataset, countries []string, from, to time.Time) Dataset {
	wanted := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		wanted[c] = struct{}{}
	}

	out := make(Dataset, 0)
	for _, r := range ds {
		if _, ok := wanted[r.Country]; !ok {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}
