package run

import (
	"crypto/sha256"
	"fmt"

	"goherit/domain/core"
)

// RunFingerprint identifies a run's deterministic inputs. Two runs over the
// same pedigree, model, and code version share a fingerprint no matter how
// many workers executed them or how long they took.
type RunFingerprint struct {
	PedigreeHash core.PedigreeHash `json:"pedigree_hash"`
	ModelHash    core.ModelHash    `json:"model_hash"`
	CodeVersion  string            `json:"code_version"`
	Fingerprint  core.Hash         `json:"fingerprint"` // Hash of all above
}

// NewRunFingerprint creates a fingerprint from determinism parameters
func NewRunFingerprint(pedigreeHash core.PedigreeHash, modelHash core.ModelHash, codeVersion string) RunFingerprint {
	fingerprint := computeRunFingerprint(pedigreeHash, modelHash, codeVersion)

	return RunFingerprint{
		PedigreeHash: pedigreeHash,
		ModelHash:    modelHash,
		CodeVersion:  codeVersion,
		Fingerprint:  fingerprint,
	}
}

// computeRunFingerprint generates deterministic hash from all determinism parameters
func computeRunFingerprint(pedigreeHash core.PedigreeHash, modelHash core.ModelHash, codeVersion string) core.Hash {
	// Create deterministic string representation
	data := fmt.Sprintf("pedigree:%s|model:%s|code:%s", pedigreeHash, modelHash, codeVersion)

	// Use SHA256 for deterministic hashing
	hash := sha256.Sum256([]byte(data))
	return core.Hash(fmt.Sprintf("%x", hash))
}
