package inference

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Powerset enumerates every subset of the given member indices, empty set
// included. Order is deterministic: ascending subset size, lexicographic
// within a size. The empty member list yields exactly the empty set.
//
// The engine calls this three ways per inference: over everyone for trait
// subsets, over everyone for one-copy subsets, and over the complement of
// each one-copy subset for two-copy subsets.
func Powerset(members []int) []Subset {
	n := len(members)
	subsets := make([]Subset, 0, 1<<uint(n))
	for k := 0; k <= n; k++ {
		for _, combo := range combin.Combinations(n, k) {
			var s Subset
			for _, idx := range combo {
				s = s.With(members[idx])
			}
			subsets = append(subsets, s)
		}
	}
	return subsets
}

// populationMembers returns the index list 0..n-1.
func populationMembers(n int) []int {
	members := make([]int, n)
	for i := range members {
		members[i] = i
	}
	return members
}
