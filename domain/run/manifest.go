package run

import (
	"goherit/domain/core"
)

// Manifest is the complete audit record of one inference run: what was
// inferred, under which model, how much was enumerated, and how. It carries
// everything needed to recognize a replay of the same computation.
type Manifest struct {
	RunID        core.RunID        `json:"run_id"`
	PedigreeHash core.PedigreeHash `json:"pedigree_hash"`
	ModelHash    core.ModelHash    `json:"model_hash"`
	People       int               `json:"people"`
	Founders     int               `json:"founders"`
	TraitSubsets int64             `json:"trait_subsets"`
	Assignments  int64             `json:"assignments"`
	Workers      int               `json:"workers"`
	RuntimeMs    int64             `json:"runtime_ms"`
	CodeVersion  string            `json:"code_version"`
	Fingerprint  RunFingerprint    `json:"fingerprint"` // Determinism fingerprint
	CreatedAt    core.Timestamp    `json:"created_at"`
}

// NewManifest creates a run manifest from a finished run
func NewManifest(
	runID core.RunID,
	pedigreeHash core.PedigreeHash,
	modelHash core.ModelHash,
	people int,
	founders int,
	traitSubsets int64,
	assignments int64,
	workers int,
	runtimeMs int64,
	codeVersion string,
) *Manifest {
	fingerprint := NewRunFingerprint(pedigreeHash, modelHash, codeVersion)

	return &Manifest{
		RunID:        runID,
		PedigreeHash: pedigreeHash,
		ModelHash:    modelHash,
		People:       people,
		Founders:     founders,
		TraitSubsets: traitSubsets,
		Assignments:  assignments,
		Workers:      workers,
		RuntimeMs:    runtimeMs,
		CodeVersion:  codeVersion,
		Fingerprint:  fingerprint,
		CreatedAt:    core.Now(),
	}
}

// Validate checks if the manifest is complete
func (m *Manifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewValidationError("run_manifest", "run_id cannot be empty")
	}
	if m.PedigreeHash == "" {
		return core.NewValidationError("run_manifest", "pedigree_hash cannot be empty")
	}
	if m.ModelHash == "" {
		return core.NewValidationError("run_manifest", "model_hash cannot be empty")
	}
	if m.CodeVersion == "" {
		return core.NewValidationError("run_manifest", "code_version cannot be empty")
	}
	if m.People <= 0 {
		return core.NewValidationError("run_manifest", "people must be positive")
	}
	if m.Workers <= 0 {
		return core.NewValidationError("run_manifest", "workers must be positive")
	}
	return nil
}
