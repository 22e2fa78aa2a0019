package ports

import (
	"context"

	"goherit/domain/genetics"
	"goherit/domain/pedigree"
	"goherit/domain/posterior"
)

// InferencePort computes exact posteriors for every person in a pedigree
type InferencePort interface {
	// Infer enumerates all consistent assignments and returns normalized
	// posteriors plus enumeration statistics
	Infer(ctx context.Context, reg *pedigree.Registry) (*InferenceResult, error)
	// Model returns the probability model the posteriors are computed under
	Model() genetics.Model
}

// InferenceResult is the full output of one inference pass
type InferenceResult struct {
	Posteriors *posterior.Result `json:"posteriors"`
	Stats      EngineStats       `json:"stats"`
}

// EngineStats counts what the engine actually enumerated
type EngineStats struct {
	People       int   `json:"people"`
	Founders     int   `json:"founders"`
	TraitSubsets int64 `json:"trait_subsets"` // admissible after evidence filtering
	Assignments  int64 `json:"assignments"`   // gene assignments evaluated
	Workers      int   `json:"workers"`
}
