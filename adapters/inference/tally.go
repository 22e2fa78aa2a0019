package inference

import (
	"goherit/domain/posterior"
)

// addJoint spreads one assignment's probability mass into every person's
// buckets: the gene bucket for their count under the assignment and the
// trait bucket for their trait value.
func addJoint(tallies []posterior.Tally, p float64, oneGene, twoGenes, haveTrait Subset) {
	for i := range tallies {
		tallies[i].Gene[geneCountOf(i, oneGene, twoGenes)] += p
		if haveTrait.Contains(i) {
			tallies[i].Trait[1] += p
		} else {
			tallies[i].Trait[0] += p
		}
	}
}

// mergeTallies folds src into dst element-wise. The parallel reduction merges
// worker partials in worker order so repeated runs agree bit for bit.
func mergeTallies(dst, src []posterior.Tally) {
	for i := range dst {
		dst[i].Merge(src[i])
	}
}
