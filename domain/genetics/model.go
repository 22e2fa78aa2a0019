package genetics

import (
	"goherit/domain/core"
)

// GeneCount is the number of copies of the gene a person carries.
type GeneCount int

const (
	GeneZero GeneCount = 0
	GeneOne  GeneCount = 1
	GeneTwo  GeneCount = 2
)

// Valid reports whether the count is one of 0, 1, 2.
func (c GeneCount) Valid() bool {
	return c >= GeneZero && c <= GeneTwo
}

// Model holds the probability constants the inference engine works from:
// founder priors over gene count, trait emission probabilities conditioned on
// gene count, and the per-allele mutation rate used during transmission.
// Callers pass the model explicitly; nothing in the engine reaches for a
// global.
type Model struct {
	// GenePrior[c] is the prior probability that a founder carries c copies.
	GenePrior [3]float64 `json:"gene_prior"`
	// TraitGivenGene[c] is the probability of exhibiting the trait with c copies.
	TraitGivenGene [3]float64 `json:"trait_given_gene"`
	// Mutation is the probability a transmitted allele flips state.
	Mutation float64 `json:"mutation"`
}

// DefaultModel returns the standard single-gene model.
func DefaultModel() Model {
	return Model{
		GenePrior:      [3]float64{0.96, 0.03, 0.01},
		TraitGivenGene: [3]float64{0.01, 0.56, 0.65},
		Mutation:       0.01,
	}
}

// Prior returns the founder prior for a gene count.
func (m Model) Prior(c GeneCount) float64 {
	return m.GenePrior[c]
}

// TraitProb returns P(trait observation | gene count).
func (m Model) TraitProb(c GeneCount, hasTrait bool) float64 {
	if hasTrait {
		return m.TraitGivenGene[c]
	}
	return 1 - m.TraitGivenGene[c]
}

// TransmitProb returns the probability that a parent with the given count
// passes one copy to a child. A parent with two copies transmits unless the
// allele mutates; a parent with none transmits only via mutation; a carrier
// passes either allele with equal chance.
func (m Model) TransmitProb(c GeneCount) float64 {
	switch c {
	case GeneTwo:
		return 1 - m.Mutation
	case GeneOne:
		return 0.5
	default:
		return m.Mutation
	}
}

// ChildGeneProb returns P(child carries `child` copies | parent counts).
// Each parent transmits independently.
func (m Model) ChildGeneProb(child, father, mother GeneCount) float64 {
	f := m.TransmitProb(father)
	g := m.TransmitProb(mother)
	switch child {
	case GeneTwo:
		return f * g
	case GeneOne:
		return f*(1-g) + g*(1-f)
	default:
		return (1 - f) * (1 - g)
	}
}

// Validate checks that the model describes a coherent distribution set.
func (m Model) Validate() error {
	var priorSum float64
	for c, p := range m.GenePrior {
		if p < 0 || p > 1 {
			return core.NewModelError("gene_prior", m.GenePrior[c])
		}
		priorSum += p
	}
	const eps = 1e-9
	if priorSum < 1-eps || priorSum > 1+eps {
		return core.NewModelError("gene_prior sum", priorSum)
	}
	for _, p := range m.TraitGivenGene {
		if p < 0 || p > 1 {
			return core.NewModelError("trait_given_gene", p)
		}
	}
	if m.Mutation < 0 || m.Mutation > 1 {
		return core.NewModelError("mutation", m.Mutation)
	}
	return nil
}

// Params flattens the model into named parameters for hashing and display.
func (m Model) Params() map[string]float64 {
	return map[string]float64{
		"gene_prior_0":       m.GenePrior[0],
		"gene_prior_1":       m.GenePrior[1],
		"gene_prior_2":       m.GenePrior[2],
		"trait_given_gene_0": m.TraitGivenGene[0],
		"trait_given_gene_1": m.TraitGivenGene[1],
		"trait_given_gene_2": m.TraitGivenGene[2],
		"mutation":           m.Mutation,
	}
}

// Hash returns the canonical fingerprint of the model constants.
func (m Model) Hash() core.ModelHash {
	return core.ComputeModelHash(m.Params())
}
