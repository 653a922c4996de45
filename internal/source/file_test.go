package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarchallenge/climate-explorer/internal/climate"
)

func TestDirOpen(t *testing.T) {
	dir := t.TempDir()
	content := "YEAR,MO,DY,T2M,WS10M_MIN\n2021,1,1,25.0,1.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "benin_clean.csv"), []byte(content), 0o644))

	src := NewDir(dir)

	rc, err := src.Open(context.Background(), "benin")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestDirOpenMissingFile(t *testing.T) {
	src := NewDir(t.TempDir())

	_, err := src.Open(context.Background(), "togo")
	assert.ErrorIs(t, err, climate.ErrNotFound)
}
