package climate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllSkipsMissingCountries(t *testing.T) {
	src := fakeSource{files: map[string]string{
		"benin":        beninCSV,
		"sierra_leone": sierraLeoneCSV,
		// togo is absent
	}}

	table, warnings, err := LoadAll(context.Background(), []string{"benin", "sierra_leone", "togo"}, src)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "togo", warnings[0].Country)
	assert.ErrorIs(t, warnings[0].Err, ErrNotFound)

	// Two countries merged, country order and row order preserved.
	require.Len(t, table, 3)
	assert.Equal(t, "Benin", table[0][ColCountry])
	assert.Equal(t, "2", table[0][ColDay])
	assert.Equal(t, "Benin", table[1][ColCountry])
	assert.Equal(t, "Sierra Leone", table[2][ColCountry])
}

func TestLoadAllAllMissingIsFatal(t *testing.T) {
	src := fakeSource{files: map[string]string{}}

	_, warnings, err := LoadAll(context.Background(), []string{"benin", "sierra_leone", "togo"}, src)
	require.ErrorIs(t, err, ErrEmptyDataset)
	assert.Len(t, warnings, 3)
}
