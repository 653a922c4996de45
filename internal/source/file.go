package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/solarchallenge/climate-explorer/internal/climate"
)

// defaultPattern matches the naming convention of the cleaned data files.
const defaultPattern = "%s_clean.csv"

// Dir serves country tables from CSV files in a local directory, one file
// per country named "<id>_clean.csv".
type Dir struct {
	path    string
	pattern string
}

// NewDir creates a directory-backed source rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path, pattern: defaultPattern}
}

// Open returns the CSV file for the country. A missing file maps to
// climate.ErrNotFound so the merger can skip the country.
func (d *Dir) Open(_ context.Context, countryID string) (io.ReadCloser, error) {
	name := fmt.Sprintf(d.pattern, countryID)
	f, err := os.Open(filepath.Join(d.path, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("data file %s: %w", name, climate.ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}
