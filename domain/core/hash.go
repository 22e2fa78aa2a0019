package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	PedigreeHash Hash
	ModelHash    Hash
	CodeVersion  Hash
)

// Constructors
func NewPedigreeHash(data []byte) PedigreeHash { return PedigreeHash(NewHash(data)) }
func NewModelHash(data []byte) ModelHash       { return ModelHash(NewHash(data)) }
func NewCodeVersion(data []byte) CodeVersion   { return CodeVersion(NewHash(data)) }

// String conversions
func (h PedigreeHash) String() string { return Hash(h).String() }
func (h ModelHash) String() string    { return Hash(h).String() }
func (h CodeVersion) String() string  { return Hash(h).String() }

// ComputePedigreeHash hashes person records keyed by name. Rows are a canonical
// encoding of each record; names are sorted so insertion order never changes
// the hash.
func ComputePedigreeHash(rows map[string]string) PedigreeHash {
	names := make([]string, 0, len(rows))
	for name := range rows {
		names = append(names, name)
	}
	sort.Strings(names)

	var data strings.Builder
	for _, name := range names {
		data.WriteString(name)
		data.WriteString(rows[name])
	}

	return NewPedigreeHash([]byte(data.String()))
}

// ComputeModelHash hashes model parameters keyed by parameter name.
func ComputeModelHash(params map[string]float64) ModelHash {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var data strings.Builder
	for _, key := range keys {
		data.WriteString(key)
		data.WriteString(fmt.Sprintf("%v", params[key]))
	}

	return NewModelHash([]byte(data.String()))
}
