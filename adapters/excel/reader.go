// Package excel loads pedigrees from xlsx workbooks.
package excel

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"goherit/domain/pedigree"
)

// DefaultSheet is the worksheet read when none is configured.
const DefaultSheet = "Sheet1"

// Source reads a pedigree from one worksheet of an xlsx workbook. The sheet
// carries the same name,mother,father,trait layout as CSV input.
type Source struct {
	path  string
	sheet string
}

// NewSource creates a source for the given workbook path. An empty sheet
// name selects DefaultSheet.
func NewSource(path, sheet string) *Source {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Source{path: path, sheet: sheet}
}

// Describe returns a short label for logs and error messages.
func (s *Source) Describe() string {
	return fmt.Sprintf("xlsx:%s!%s", s.path, s.sheet)
}

// Load opens the workbook, reads the configured sheet, and builds a
// validated registry from its rows.
func (s *Source) Load(ctx context.Context) (*pedigree.Registry, error) {
	start := time.Now()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	log.Printf("[ExcelSource] Workbook opened in %.2fms", float64(time.Since(start).Nanoseconds())/1e6)

	readStart := time.Now()
	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", s.sheet, err)
	}
	log.Printf("[ExcelSource] Sheet %s read in %.2fms (%d rows)",
		s.sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	people, err := pedigree.DecodeTable(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Describe(), err)
	}
	reg, err := pedigree.NewRegistry(people)
	if err != nil {
		return nil, err
	}

	log.Printf("[ExcelSource] Loaded %d people (%d founders, %d observed) from %s in %.2fms",
		reg.Size(), reg.Founders(), reg.Observations(), s.path,
		float64(time.Since(start).Nanoseconds())/1e6)

	return reg, nil
}
