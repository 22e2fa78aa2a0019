package inference

import (
	"goherit/domain/genetics"
	"goherit/domain/pedigree"
)

// geneCountOf returns person i's gene count under an assignment. oneGene and
// twoGenes partition explicitly; everyone in neither carries zero copies.
// Callers construct the two subsets disjoint.
func geneCountOf(i int, oneGene, twoGenes Subset) genetics.GeneCount {
	switch {
	case oneGene.Contains(i):
		return genetics.GeneOne
	case twoGenes.Contains(i):
		return genetics.GeneTwo
	default:
		return genetics.GeneZero
	}
}

// Joint computes the probability that every person in oneGene carries exactly
// one copy, every person in twoGenes exactly two, everyone else none, and
// exactly the people in haveTrait exhibit the trait.
//
// The product runs over every person: founders contribute the model prior for
// their count, children the transmission probability given both parents'
// counts under the same assignment, and everyone an emission term for their
// trait value. The result is a pure function of the arguments.
func Joint(reg *pedigree.Registry, model genetics.Model, oneGene, twoGenes, haveTrait Subset) float64 {
	p := 1.0
	for i := 0; i < reg.Size(); i++ {
		count := geneCountOf(i, oneGene, twoGenes)

		var geneProb float64
		if reg.IsFounder(i) {
			geneProb = model.Prior(count)
		} else {
			father := geneCountOf(reg.FatherIndex(i), oneGene, twoGenes)
			mother := geneCountOf(reg.MotherIndex(i), oneGene, twoGenes)
			geneProb = model.ChildGeneProb(count, father, mother)
		}

		p *= geneProb * model.TraitProb(count, haveTrait.Contains(i))
	}
	return p
}
