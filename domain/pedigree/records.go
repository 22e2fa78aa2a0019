package pedigree

import (
	"fmt"
	"strings"

	"goherit/domain/core"
)

// Header is the required column order for tabular pedigree input.
var Header = [4]string{"name", "mother", "father", "trait"}

// DecodeTable converts raw tabular rows into person records. The first row
// must be the header (case-insensitive, cells trimmed); the remaining rows
// carry one person each. Short rows are padded with blanks, fully blank rows
// are skipped, and any content beyond the fourth column is rejected.
func DecodeTable(rows [][]string) ([]Person, error) {
	if len(rows) == 0 {
		return nil, core.ErrEmptyPedigree
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	people := make([]Person, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cells, blank, err := normalizeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if blank {
			continue
		}
		trait, err := ParseTrait(cells[0], cells[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		people = append(people, Person{
			Name:   cells[0],
			Mother: cells[1],
			Father: cells[2],
			Trait:  trait,
		})
	}
	return people, nil
}

func checkHeader(row []string) error {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		cells = append(cells, strings.ToLower(strings.TrimSpace(cell)))
	}
	for len(cells) > len(Header) && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if len(cells) != len(Header) {
		return fmt.Errorf("%w: want %d columns (%s), got %d",
			core.ErrMalformedHeader, len(Header), strings.Join(Header[:], ","), len(row))
	}
	for i, want := range Header {
		if cells[i] != want {
			return fmt.Errorf("%w: column %d is %q, want %q", core.ErrMalformedHeader, i+1, cells[i], want)
		}
	}
	return nil
}

// normalizeRow trims a data row to exactly one cell per header column.
func normalizeRow(row []string) ([4]string, bool, error) {
	var cells [4]string
	blank := true
	for i, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			continue
		}
		if i >= len(Header) {
			return cells, false, fmt.Errorf("%w: unexpected value %q past column %d",
				core.ErrInvalidPedigree, trimmed, len(Header))
		}
		cells[i] = trimmed
		blank = false
	}
	return cells, blank, nil
}
