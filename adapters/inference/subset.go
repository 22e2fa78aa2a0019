package inference

import (
	"math/bits"
)

// Subset is a set of people encoded as a bitmask over registry indices.
// The zero value is the empty set.
type Subset uint64

// MaxPeople is the widest pedigree the bitmask representation can hold.
// Exact enumeration is long intractable before this bound matters.
const MaxPeople = 63

// Contains reports whether person i is in the subset.
func (s Subset) Contains(i int) bool {
	return s&(1<<uint(i)) != 0
}

// With returns the subset with person i added.
func (s Subset) With(i int) Subset {
	return s | 1<<uint(i)
}

// Without returns the subset with person i removed.
func (s Subset) Without(i int) Subset {
	return s &^ (1 << uint(i))
}

// Count returns the number of people in the subset.
func (s Subset) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Complement returns everyone in a population of n who is not in s.
func (s Subset) Complement(n int) Subset {
	return ^s & (1<<uint(n) - 1)
}

// Members lists the indices in the subset in ascending order. n bounds the
// population.
func (s Subset) Members(n int) []int {
	members := make([]int, 0, s.Count())
	for i := 0; i < n; i++ {
		if s.Contains(i) {
			members = append(members, i)
		}
	}
	return members
}
