package climate

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DatasetCache is the contract the TTL cache (and any future store) must
// satisfy. Get reports false when nothing valid is cached.
type DatasetCache interface {
	Get() (Dataset, bool)
	Set(Dataset)
}

// Service owns the session dataset: it runs the load-merge-preprocess
// pipeline once, caches the result, and answers filter and aggregation
// queries against it. The dataset itself is immutable, so queries are safe
// to run concurrently.
type Service struct {
	src       Source
	countries []string
	cache     DatasetCache
}

// NewService creates a new Service over the given source and country set.
func NewService(src Source, countryIDs []string, cache DatasetCache) *Service {
	return &Service{
		src:       src,
		countries: countryIDs,
		cache:     cache,
	}
}

// Dataset returns the session dataset, building it if the cache has no
// valid entry.
func (s *Service) Dataset(ctx context.Context) (Dataset, error) {
	if ds, ok := s.cache.Get(); ok {
		return ds, nil
	}
	return s.build(ctx)
}

// Reload rebuilds the dataset from the sources, replacing the cached copy.
func (s *Service) Reload(ctx context.Context) error {
	_, err := s.build(ctx)
	return err
}

func (s *Service) build(ctx context.Context) (Dataset, error) {
	raw, warnings, err := LoadAll(ctx, s.countries, s.src)
	for _, w := range warnings {
		log.Printf("WARN: %s", w)
	}
	if err != nil {
		return nil, err
	}

	ds, err := Preprocess(raw)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	s.cache.Set(ds)
	log.Printf("INFO: loaded %d records from %d countries", len(ds), len(ds.Countries()))
	return ds, nil
}

// Query narrows a request to a country subset and date range. Zero values
// mean "everything": an empty country list selects all loaded countries,
// zero times extend to the dataset bounds.
type Query struct {
	Countries []string
	From      time.Time
	To        time.Time
}

func (s *Service) view(ctx context.Context, q Query) (Dataset, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	countries := q.Countries
	if len(countries) == 0 {
		countries = ds.Countries()
	}

	from, to := q.From, q.To
	if first, last, ok := ds.Bounds(); ok {
		if from.IsZero() {
			from = first
		}
		if to.IsZero() {
			to = last
		}
	}

	return Filter(ds, countries, from, to), nil
}

// Records returns the filtered records for the query.
func (s *Service) Records(ctx context.Context, q Query) (Dataset, error) {
	return s.view(ctx, q)
}

// Summary returns per-country statistics plus headline figures for the
// metric over the filtered view.
func (s *Service) Summary(ctx context.Context, metric string, q Query) ([]SummaryRow, Overview, error) {
	if _, ok := LookupMetric(metric); !ok {
		return nil, Overview{}, fmt.Errorf("%q: %w", metric, ErrUnknownMetric)
	}
	view, err := s.view(ctx, q)
	if err != nil {
		return nil, Overview{}, err
	}
	return Summarize(view, metric), OverviewOf(view, metric), nil
}

// Extremes returns the top-n records by metric value over the filtered
// view, smallest first when ascending is set.
func (s *Service) Extremes(ctx context.Context, metric string, n int, ascending bool, q Query) ([]TopRecord, error) {
	if _, ok := LookupMetric(metric); !ok {
		return nil, fmt.Errorf("%q: %w", metric, ErrUnknownMetric)
	}
	view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	return TopN(view, metric, n, ascending), nil
}

// Countries returns the countries present in the session dataset, sorted.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Countries(), nil
}
