package ports

import (
	"context"

	"goherit/domain/pedigree"
)

// PedigreeSource loads a pedigree from some backing store (CSV file, workbook,
// database, fixture). Implementations return a validated registry or a
// pedigree domain error.
type PedigreeSource interface {
	// Load reads and validates the pedigree
	Load(ctx context.Context) (*pedigree.Registry, error)
	// Describe names the source for logs and manifests
	Describe() string
}
