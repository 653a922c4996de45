package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarchallenge/climate-explorer/internal/climate"
)

func exportRecord(d int, country string, t2m, ws *float64) climate.Record {
	return climate.Record{
		Date:    time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC),
		Country: country,
		Year:    2021, Month: 1, Day: d,
		Values: map[string]*float64{"T2M": t2m, "WS10M_MIN": ws},
	}
}

func f(v float64) *float64 { return &v }

func TestCSVExport(t *testing.T) {
	ds := climate.Dataset{
		exportRecord(1, "Benin", f(25.456), f(1.2)),
		exportRecord(2, "Sierra Leone", f(26), nil),
	}

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, ds, climate.Metrics()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "date,country,year,month,day,T2M,WS10M_MIN", lines[0])
	assert.Equal(t, "2021-01-01,Benin,2021,1,1,25.46,1.20", lines[1])
	assert.Equal(t, "2021-01-02,Sierra Leone,2021,1,2,26.00,", lines[2])
}

func TestCSVExportEmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, nil, climate.Metrics()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "header only")
}
