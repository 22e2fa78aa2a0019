// Package sqlite loads pedigrees from embedded SQLite databases.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"

	"goherit/domain/pedigree"
)

// Source reads one family's pedigree from a SQLite database. Records live in
// a people(family, name, mother, father, trait) table; trait is NULL when
// unobserved, else 0 or 1. Parent columns are NULL or blank for founders.
type Source struct {
	path   string
	family string
}

// NewSource creates a source for the given database path. An empty family is
// allowed only when the database holds exactly one family.
func NewSource(path, family string) *Source {
	return &Source{path: path, family: family}
}

// Describe returns a short label for logs and error messages.
func (s *Source) Describe() string {
	if s.family == "" {
		return "sqlite:" + s.path
	}
	return fmt.Sprintf("sqlite:%s!%s", s.path, s.family)
}

// personRow conforms to the people table and parses directly with sqlx.
type personRow struct {
	Name   string         `db:"name"`
	Mother sql.NullString `db:"mother"`
	Father sql.NullString `db:"father"`
	Trait  sql.NullInt64  `db:"trait"`
}

func (r personRow) traitCell() string {
	if !r.Trait.Valid {
		return ""
	}
	return strconv.FormatInt(r.Trait.Int64, 10)
}

// Load opens the database, selects the family's records, and builds a
// validated registry.
func (s *Source) Load(ctx context.Context) (*pedigree.Registry, error) {
	start := time.Now()

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	path := s.path
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pedigree database: %w", err)
	}
	defer db.Close()

	family := s.family
	if family == "" {
		family, err = s.soleFamily(ctx, db)
		if err != nil {
			return nil, err
		}
	}

	var rows []personRow
	err = db.SelectContext(ctx, &rows,
		"SELECT name, mother, father, trait FROM people WHERE family = ? ORDER BY name", family)
	if err != nil {
		return nil, fmt.Errorf("failed to query family %q: %w", family, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("family %q has no people in %s", family, s.path)
	}

	people := make([]pedigree.Person, 0, len(rows))
	for _, row := range rows {
		trait, err := pedigree.ParseTrait(row.Name, row.traitCell())
		if err != nil {
			return nil, fmt.Errorf("family %q: %w", family, err)
		}
		people = append(people, pedigree.Person{
			Name:   strings.TrimSpace(row.Name),
			Mother: strings.TrimSpace(row.Mother.String),
			Father: strings.TrimSpace(row.Father.String),
			Trait:  trait,
		})
	}

	reg, err := pedigree.NewRegistry(people)
	if err != nil {
		return nil, err
	}

	log.Printf("[SQLiteSource] Loaded %d people (%d founders, %d observed) for family %q from %s in %.2fms",
		reg.Size(), reg.Founders(), reg.Observations(), family, s.path,
		float64(time.Since(start).Nanoseconds())/1e6)

	return reg, nil
}

// soleFamily resolves the implicit family selection: legal only when the
// database holds exactly one.
func (s *Source) soleFamily(ctx context.Context, db *sqlx.DB) (string, error) {
	var families []string
	if err := db.SelectContext(ctx, &families,
		"SELECT DISTINCT family FROM people ORDER BY family"); err != nil {
		return "", fmt.Errorf("failed to list families: %w", err)
	}
	switch len(families) {
	case 0:
		return "", fmt.Errorf("no pedigree records in %s", s.path)
	case 1:
		return families[0], nil
	default:
		return "", fmt.Errorf("%s holds %d families (%s); pick one with --family",
			s.path, len(families), strings.Join(families, ", "))
	}
}
