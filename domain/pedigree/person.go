package pedigree

import (
	"encoding/json"
	"strings"

	"goherit/domain/core"
)

// TraitObservation is tri-state evidence about whether a person exhibits the
// trait. Unknown means the person contributes no trait evidence.
type TraitObservation int

const (
	TraitUnknown TraitObservation = iota
	TraitAbsent
	TraitPresent
)

// ParseTrait parses the record form of an observation: "1" observed present,
// "0" observed absent, empty unknown. Anything else is malformed input.
func ParseTrait(person, raw string) (TraitObservation, error) {
	switch strings.TrimSpace(raw) {
	case "":
		return TraitUnknown, nil
	case "1":
		return TraitPresent, nil
	case "0":
		return TraitAbsent, nil
	default:
		return TraitUnknown, core.NewMalformedTraitError(person, raw)
	}
}

// Observed reports whether the observation carries evidence.
func (o TraitObservation) Observed() bool {
	return o != TraitUnknown
}

// Present reports whether the observation is observed-present.
func (o TraitObservation) Present() bool {
	return o == TraitPresent
}

// Encode returns the record form: "1", "0", or "".
func (o TraitObservation) Encode() string {
	switch o {
	case TraitPresent:
		return "1"
	case TraitAbsent:
		return "0"
	default:
		return ""
	}
}

func (o TraitObservation) String() string {
	switch o {
	case TraitPresent:
		return "true"
	case TraitAbsent:
		return "false"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the tri-state as true, false, or null.
func (o TraitObservation) MarshalJSON() ([]byte, error) {
	switch o {
	case TraitPresent:
		return json.Marshal(true)
	case TraitAbsent:
		return json.Marshal(false)
	default:
		return json.Marshal(nil)
	}
}

func (o *TraitObservation) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v == nil:
		*o = TraitUnknown
	case *v:
		*o = TraitPresent
	default:
		*o = TraitAbsent
	}
	return nil
}

// Person is one pedigree record. Mother and Father are either both named or
// both empty; a person with no parents in the pedigree is a founder.
type Person struct {
	Name   string           `json:"name"`
	Mother string           `json:"mother,omitempty"`
	Father string           `json:"father,omitempty"`
	Trait  TraitObservation `json:"trait"`
}

// IsFounder reports whether the person has no parents in the pedigree.
func (p Person) IsFounder() bool {
	return p.Mother == "" && p.Father == ""
}

// row is the canonical encoding used for pedigree hashing.
func (p Person) row() string {
	return p.Mother + "|" + p.Father + "|" + p.Trait.Encode()
}
