package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Pedigree structure errors
	ErrInvalidPedigree = errors.New("invalid pedigree")
	ErrEmptyPedigree   = fmt.Errorf("%w: no people", ErrInvalidPedigree)
	ErrDuplicatePerson = fmt.Errorf("%w: duplicate person", ErrInvalidPedigree)
	ErrUnknownParent   = fmt.Errorf("%w: unknown parent", ErrInvalidPedigree)
	ErrSingleParent    = fmt.Errorf("%w: exactly one parent named", ErrInvalidPedigree)
	ErrSelfParent      = fmt.Errorf("%w: person is their own parent", ErrInvalidPedigree)
	ErrSameParents     = fmt.Errorf("%w: mother and father are the same person", ErrInvalidPedigree)
	ErrPedigreeCycle   = fmt.Errorf("%w: ancestry cycle", ErrInvalidPedigree)
	ErrPersonNotFound  = errors.New("person not found")

	// Observation errors
	ErrMalformedTrait = errors.New("malformed trait observation")

	// Model errors
	ErrInvalidModel = errors.New("invalid probability model")

	// Inference errors
	ErrPedigreeTooLarge   = errors.New("pedigree too large for exact enumeration")
	ErrDegenerateEvidence = errors.New("evidence admits no probability mass")

	// Input errors
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMalformedHeader   = errors.New("malformed header row")
)

// Error constructors with context
func NewPedigreeError(cause error, person string) error {
	return fmt.Errorf("%w: %s", cause, person)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewUnknownParentError(person, parent string) error {
	return fmt.Errorf("%w: %s names parent %s", ErrUnknownParent, person, parent)
}

func NewMalformedTraitError(person, raw string) error {
	return fmt.Errorf("%w: person %s has trait %q (want \"1\", \"0\", or empty)", ErrMalformedTrait, person, raw)
}

func NewDegenerateEvidenceError(person string) error {
	return fmt.Errorf("%w: person %s", ErrDegenerateEvidence, person)
}

func NewModelError(field string, value float64) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidModel, field, value)
}

// Error checking helpers
func IsPedigreeError(err error) bool {
	return errors.Is(err, ErrInvalidPedigree)
}

func IsObservationError(err error) bool {
	return errors.Is(err, ErrMalformedTrait)
}

func IsInferenceError(err error) bool {
	return errors.Is(err, ErrPedigreeTooLarge) ||
		errors.Is(err, ErrDegenerateEvidence)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMalformedHeader) ||
		errors.Is(err, ErrMalformedTrait) ||
		errors.Is(err, ErrInvalidPedigree)
}
