package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

func record(d int, country string, t2m float64) Record {
	v := t2m
	return Record{
		Date: day(d), Country: country,
		Year: 2021, Month: 1, Day: d,
		Values: map[string]*float64{"T2M": &v},
	}
}

func testDataset() Dataset {
	return Dataset{
		record(1, "Benin", 25),
		record(1, "Togo", 27),
		record(2, "Benin", 26),
		record(3, "Togo", 28),
		record(4, "Benin", 24),
	}
}

func TestFilterByCountryAndRange(t *testing.T) {
	ds := testDataset()

	got := Filter(ds, []string{"Benin"}, day(1), day(2))

	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "Benin", r.Country)
		assert.False(t, r.Date.Before(day(1)))
		assert.False(t, r.Date.After(day(2)))
	}
}

func TestFilterRangeIsInclusive(t *testing.T) {
	ds := testDataset()

	got := Filter(ds, []string{"Benin", "Togo"}, day(1), day(4))
	assert.Len(t, got, len(ds))
}

func TestFilterIsIdempotent(t *testing.T) {
	ds := testDataset()

	once := Filter(ds, []string{"Togo"}, day(1), day(3))
	twice := Filter(once, []string{"Togo"}, day(1), day(3))
	wider := Filter(once, []string{"Togo", "Benin"}, day(1), day(4))

	assert.Equal(t, once, twice)
	assert.Equal(t, once, wider)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	ds := testDataset()

	got := Filter(ds, []string{"Sierra Leone"}, day(1), day(4))

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	ds := testDataset()

	got := Filter(ds, []string{"Benin", "Togo"}, day(1), day(2))

	require.Len(t, got, 3)
	assert.Equal(t, "Benin", got[0].Country)
	assert.Equal(t, "Togo", got[1].Country)
	assert.Equal(t, "Benin", got[2].Country)
	assert.Len(t, ds, 5, "input dataset must be untouched")
}
