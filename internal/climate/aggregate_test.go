package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSingleCountry(t *testing.T) {
	ds := Dataset{
		record(1, "Benin", 1),
		record(2, "Benin", 2),
		record(3, "Benin", 3),
		record(4, "Benin", 4),
		record(5, "Benin", 5),
	}

	rows := Summarize(ds, "T2M")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Benin", row.Country)
	assert.Equal(t, 3.00, row.Mean)
	assert.Equal(t, 3.00, row.Median)
	assert.Equal(t, 1.00, row.Min)
	assert.Equal(t, 5.00, row.Max)
	assert.Equal(t, 1.58, row.StdDev, "sample standard deviation, N-1 denominator")
	assert.Equal(t, 5, row.Count)
}

func TestSummarizeLexicographicCountryOrder(t *testing.T) {
	ds := Dataset{
		record(1, "Togo", 1),
		record(1, "Benin", 2),
		record(1, "Sierra Leone", 3),
	}

	rows := Summarize(ds, "T2M")
	require.Len(t, rows, 3)
	assert.Equal(t, "Benin", rows[0].Country)
	assert.Equal(t, "Sierra Leone", rows[1].Country)
	assert.Equal(t, "Togo", rows[2].Country)
}

func TestSummarizeIgnoresMissingValues(t *testing.T) {
	missing := record(1, "Benin", 0)
	missing.Values["T2M"] = nil

	ds := Dataset{missing, record(2, "Benin", 4), record(3, "Benin", 6)}

	rows := Summarize(ds, "T2M")
	require.Len(t, rows, 1)
	assert.Equal(t, 5.00, rows[0].Mean)
	assert.Equal(t, 2, rows[0].Count)
}

func TestSummarizeEvenCountMedian(t *testing.T) {
	ds := Dataset{
		record(1, "Benin", 1),
		record(2, "Benin", 2),
		record(3, "Benin", 3),
		record(4, "Benin", 4),
	}

	rows := Summarize(ds, "T2M")
	require.Len(t, rows, 1)
	assert.Equal(t, 2.50, rows[0].Median)
}

func TestTopNDescending(t *testing.T) {
	ds := testDataset() // values: 25, 27, 26, 28, 24

	got := TopN(ds, "T2M", 2, false)
	require.Len(t, got, 2)
	assert.Equal(t, 28.0, got[0].Value)
	assert.Equal(t, "Togo", got[0].Country)
	assert.Equal(t, 27.0, got[1].Value)
}

func TestTopNAscending(t *testing.T) {
	ds := testDataset()

	got := TopN(ds, "T2M", 2, true)
	require.Len(t, got, 2)
	assert.Equal(t, 24.0, got[0].Value)
	assert.Equal(t, 25.0, got[1].Value)
}

func TestTopNCoversDatasetWhenNIsLarge(t *testing.T) {
	ds := testDataset()

	highest := TopN(ds, "T2M", len(ds)+10, false)
	lowest := TopN(ds, "T2M", len(ds)+10, true)

	require.Len(t, highest, len(ds))
	require.Len(t, lowest, len(ds))

	// Same members, opposite orders.
	for i := range highest {
		assert.Equal(t, highest[i], lowest[len(lowest)-1-i])
	}
}

func TestTopNTiesKeepDatasetOrder(t *testing.T) {
	ds := Dataset{
		record(1, "Benin", 20),
		record(2, "Togo", 20),
		record(3, "Benin", 20),
	}

	got := TopN(ds, "T2M", 3, false)
	require.Len(t, got, 3)
	assert.Equal(t, day(1), got[0].Date)
	assert.Equal(t, day(2), got[1].Date)
	assert.Equal(t, day(3), got[2].Date)
}

func TestTopNNonPositiveN(t *testing.T) {
	ds := testDataset()

	assert.Empty(t, TopN(ds, "T2M", 0, false))
	assert.Empty(t, TopN(ds, "T2M", -3, true))
}

func TestOverviewOf(t *testing.T) {
	missing := record(4, "Togo", 0)
	missing.Values["T2M"] = nil

	ds := Dataset{
		record(1, "Benin", 20),
		record(2, "Benin", 30),
		record(3, "Togo", 25),
		missing,
	}

	ov := OverviewOf(ds, "T2M")
	assert.Equal(t, 4, ov.Records)
	assert.Equal(t, 2, ov.Countries)
	assert.Equal(t, 25.00, ov.Mean)
	assert.Equal(t, 20.00, ov.Min)
	assert.Equal(t, 30.00, ov.Max)
	assert.Equal(t, 75.0, ov.Completeness)
}
