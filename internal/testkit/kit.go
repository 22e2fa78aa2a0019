package testkit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"

	"goherit/domain/pedigree"
)

// TestKit provides pedigree fixtures and in-memory adapters for tests.
type TestKit struct{}

// NewTestKit creates a new test kit instance
func NewTestKit() *TestKit {
	return &TestKit{}
}

// Trio is the canonical three-person family: Harry is the child of James and
// Lily, James is observed with the trait, Lily without.
func (t *TestKit) Trio() []pedigree.Person {
	return []pedigree.Person{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: pedigree.TraitPresent},
		{Name: "Lily", Trait: pedigree.TraitAbsent},
	}
}

// SilentTrio is the trio with every observation removed.
func (t *TestKit) SilentTrio() []pedigree.Person {
	people := t.Trio()
	for i := range people {
		people[i].Trait = pedigree.TraitUnknown
	}
	return people
}

// SoloFounder is a single person with no parents and no observations.
func (t *TestKit) SoloFounder() []pedigree.Person {
	return []pedigree.Person{{Name: "Mira"}}
}

// TwoGeneration is a five-person family spanning three generations: Diana is
// the child of Elena and Marcus, Simon the child of Diana and Victor. Marcus
// is observed with the trait, Simon without.
func (t *TestKit) TwoGeneration() []pedigree.Person {
	return []pedigree.Person{
		{Name: "Diana", Mother: "Elena", Father: "Marcus"},
		{Name: "Elena"},
		{Name: "Marcus", Trait: pedigree.TraitPresent},
		{Name: "Simon", Mother: "Diana", Father: "Victor", Trait: pedigree.TraitAbsent},
		{Name: "Victor"},
	}
}

// MustRegistry builds a registry from records that are known to be valid.
// Panics otherwise; only for fixtures.
func (t *TestKit) MustRegistry(people []pedigree.Person) *pedigree.Registry {
	reg, err := pedigree.NewRegistry(people)
	if err != nil {
		panic(fmt.Sprintf("testkit: fixture registry invalid: %v", err))
	}
	return reg
}

// WriteCSVFile writes people to path in the standard record layout
// (name,mother,father,trait with trait "1"/"0"/blank).
func (t *TestKit) WriteCSVFile(path string, people []pedigree.Person) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "mother", "father", "trait"}); err != nil {
		return err
	}
	for _, p := range people {
		if err := w.Write([]string{p.Name, p.Mother, p.Father, p.Trait.Encode()}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSQLiteFile appends people to the people table at path under the given
// family key, creating the database and table on first use. Calling it again
// with another family builds a multi-family database.
func (t *TestKit) WriteSQLiteFile(path, family string, people []pedigree.Person) error {
	db, err := sqlx.Connect("sqlite", "file:"+path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS people (
		family TEXT NOT NULL,
		name   TEXT NOT NULL,
		mother TEXT,
		father TEXT,
		trait  INTEGER
	)`); err != nil {
		return err
	}

	for _, p := range people {
		var trait interface{}
		switch p.Trait {
		case pedigree.TraitPresent:
			trait = 1
		case pedigree.TraitAbsent:
			trait = 0
		}
		if _, err := db.Exec(
			"INSERT INTO people (family, name, mother, father, trait) VALUES (?, ?, ?, ?, ?)",
			family, p.Name, p.Mother, p.Father, trait,
		); err != nil {
			return err
		}
	}
	return nil
}

// InMemorySource implements ports.PedigreeSource over a fixed record slice.
type InMemorySource struct {
	people []pedigree.Person
	name   string
	err    error
}

// NewInMemorySource creates a source that serves the given records.
func NewInMemorySource(people []pedigree.Person) *InMemorySource {
	return &InMemorySource{people: people, name: "memory"}
}

// NewFailingSource creates a source whose Load always fails with err.
func NewFailingSource(err error) *InMemorySource {
	return &InMemorySource{name: "memory", err: err}
}

func (s *InMemorySource) Load(ctx context.Context) (*pedigree.Registry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return pedigree.NewRegistry(s.people)
}

func (s *InMemorySource) Describe() string {
	return s.name
}
