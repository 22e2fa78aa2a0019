package excel

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"goherit/domain/core"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &cells))
	}

	path := filepath.Join(t.TempDir(), "family.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func trioRows() [][]string {
	return [][]string{
		{"name", "mother", "father", "trait"},
		{"Harry", "Lily", "James", ""},
		{"James", "", "", "1"},
		{"Lily", "", "", "0"},
	}
}

func TestSourceLoadsTrioWorkbook(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, trioRows())

	reg, err := NewSource(path, "").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Harry", "James", "Lily"}, reg.Names())
	assert.Equal(t, 2, reg.Founders())
	assert.Equal(t, 2, reg.Observations())

	james, err := reg.ByName("James")
	require.NoError(t, err)
	assert.True(t, james.Trait.Present())
}

func TestSourceReadsConfiguredSheet(t *testing.T) {
	path := writeWorkbook(t, "Pedigree", trioRows())

	reg, err := NewSource(path, "Pedigree").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Size())

	// The default sheet of that workbook holds nothing.
	_, err = NewSource(path, "").Load(context.Background())
	assert.ErrorIs(t, err, core.ErrEmptyPedigree)
}

func TestSourceMissingSheet(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, trioRows())

	_, err := NewSource(path, "Ancestors").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ancestors")
}

func TestSourceMissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "absent.xlsx"), "").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}

func TestSourceRejectsMalformedTrait(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, [][]string{
		{"name", "mother", "father", "trait"},
		{"Harry", "", "", "maybe"},
	})

	_, err := NewSource(path, "").Load(context.Background())
	assert.ErrorIs(t, err, core.ErrMalformedTrait)
}

func TestSourceDescribe(t *testing.T) {
	assert.Equal(t, "xlsx:book.xlsx!Sheet1", NewSource("book.xlsx", "").Describe())
	assert.Equal(t, "xlsx:book.xlsx!Family", NewSource("book.xlsx", "Family").Describe())
}
