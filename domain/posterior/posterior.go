package posterior

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"goherit/domain/core"
	"goherit/domain/genetics"
)

// GeneDistribution is a posterior over how many gene copies a person carries.
type GeneDistribution struct {
	Two  float64 `json:"2"`
	One  float64 `json:"1"`
	Zero float64 `json:"0"`
}

// P returns the probability of carrying c copies.
func (d GeneDistribution) P(c genetics.GeneCount) float64 {
	switch c {
	case genetics.GeneTwo:
		return d.Two
	case genetics.GeneOne:
		return d.One
	default:
		return d.Zero
	}
}

// Carrier returns the probability of carrying at least one copy.
func (d GeneDistribution) Carrier() float64 {
	return d.One + d.Two
}

// TraitDistribution is a posterior over whether a person exhibits the trait.
type TraitDistribution struct {
	Present float64 `json:"true"`
	Absent  float64 `json:"false"`
}

// P returns the probability of the given trait value.
func (d TraitDistribution) P(has bool) float64 {
	if has {
		return d.Present
	}
	return d.Absent
}

// PersonPosterior holds both posteriors for one person.
type PersonPosterior struct {
	Gene  GeneDistribution  `json:"gene"`
	Trait TraitDistribution `json:"trait"`
}

// Validate checks that both distributions are proper: entries in [0,1] and
// summing to 1.
func (p PersonPosterior) Validate() error {
	entries := []float64{
		p.Gene.Zero, p.Gene.One, p.Gene.Two,
		p.Trait.Absent, p.Trait.Present,
	}
	for _, v := range entries {
		if math.IsNaN(v) || v < 0 || v > 1+1e-9 {
			return core.ErrDegenerateEvidence
		}
	}
	const eps = 1e-9
	geneSum := p.Gene.Zero + p.Gene.One + p.Gene.Two
	traitSum := p.Trait.Absent + p.Trait.Present
	if math.Abs(geneSum-1) > eps || math.Abs(traitSum-1) > eps {
		return core.ErrDegenerateEvidence
	}
	return nil
}

// Tally collects unnormalized probability mass per bucket while the engine
// sweeps assignments. Gene is indexed by gene count; Trait index 0 is absent,
// 1 is present.
type Tally struct {
	Gene  [3]float64
	Trait [2]float64
}

// Merge adds another tally's mass into this one.
func (t *Tally) Merge(other Tally) {
	for i := range t.Gene {
		t.Gene[i] += other.Gene[i]
	}
	for i := range t.Trait {
		t.Trait[i] += other.Trait[i]
	}
}

// Normalize scales a tally into proper distributions, preserving the relative
// proportions between buckets. A bucket set with no mass at all means the
// evidence was inconsistent with every assignment; that is an error, not a
// distribution.
func Normalize(t Tally) (PersonPosterior, error) {
	geneSum := floats.Sum(t.Gene[:])
	traitSum := floats.Sum(t.Trait[:])
	if geneSum <= 0 || traitSum <= 0 || math.IsNaN(geneSum) || math.IsNaN(traitSum) {
		return PersonPosterior{}, core.ErrDegenerateEvidence
	}

	gene := t.Gene
	trait := t.Trait
	floats.Scale(1/geneSum, gene[:])
	floats.Scale(1/traitSum, trait[:])

	return PersonPosterior{
		Gene:  GeneDistribution{Zero: gene[0], One: gene[1], Two: gene[2]},
		Trait: TraitDistribution{Absent: trait[0], Present: trait[1]},
	}, nil
}

// PersonResult pairs a person with their posteriors.
type PersonResult struct {
	Name string `json:"name"`
	PersonPosterior
}

// Result is the full inference output, ordered by registry order.
type Result struct {
	People []PersonResult `json:"people"`
}

// Find returns the result for a name.
func (r *Result) Find(name string) (PersonResult, bool) {
	for _, p := range r.People {
		if p.Name == name {
			return p, true
		}
	}
	return PersonResult{}, false
}

// Validate checks every person's distributions.
func (r *Result) Validate() error {
	for _, p := range r.People {
		if err := p.PersonPosterior.Validate(); err != nil {
			return core.NewDegenerateEvidenceError(p.Name)
		}
	}
	return nil
}
