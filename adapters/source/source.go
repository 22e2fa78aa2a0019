// Package source picks the pedigree adapter for an input path.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"goherit/adapters/csv"
	"goherit/adapters/excel"
	"goherit/adapters/sqlite"
	"goherit/domain/core"
	"goherit/ports"
)

// Options carry adapter-specific selection knobs.
type Options struct {
	Sheet  string // xlsx worksheet name, blank for the default sheet
	Family string // sqlite family key, blank for the sole family
}

// ForPath returns the pedigree source for a file path, dispatching on the
// extension.
func ForPath(path string, opts Options) (ports.PedigreeSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csv.NewSource(path), nil
	case ".xlsx", ".xlsm":
		return excel.NewSource(path, opts.Sheet), nil
	case ".db", ".sqlite", ".sqlite3":
		return sqlite.NewSource(path, opts.Family), nil
	default:
		return nil, fmt.Errorf("%w: %s (want .csv, .xlsx, .xlsm, .db, .sqlite, or .sqlite3)",
			core.ErrUnsupportedFormat, path)
	}
}
