package pedigree

import (
	"sort"
	"strings"

	"goherit/domain/core"
)

// Registry is a validated pedigree: a set of people with resolvable parent
// references and no ancestry cycles, held in a stable order (sorted by name).
// Indices handed out by a registry are positions in that order and stay valid
// for the registry's lifetime.
type Registry struct {
	people    []Person
	index     map[string]int
	motherIdx []int
	fatherIdx []int
	founders  int
	observed  int
}

// NewRegistry validates the given records and builds a registry. Validation
// failures are pedigree domain errors: empty input, blank or duplicate names,
// a single named parent, self-parenting, mother and father being the same
// person, unresolvable parent references, and ancestry cycles.
func NewRegistry(people []Person) (*Registry, error) {
	if len(people) == 0 {
		return nil, core.ErrEmptyPedigree
	}

	index := make(map[string]int, len(people))
	for _, p := range people {
		if strings.TrimSpace(p.Name) == "" {
			return nil, core.NewPedigreeError(core.ErrInvalidPedigree, "person with empty name")
		}
		if _, dup := index[p.Name]; dup {
			return nil, core.NewPedigreeError(core.ErrDuplicatePerson, p.Name)
		}
		index[p.Name] = -1
	}

	for _, p := range people {
		if (p.Mother == "") != (p.Father == "") {
			return nil, core.NewPedigreeError(core.ErrSingleParent, p.Name)
		}
		if p.Mother == p.Name || p.Father == p.Name {
			return nil, core.NewPedigreeError(core.ErrSelfParent, p.Name)
		}
		if p.Mother != "" && p.Mother == p.Father {
			return nil, core.NewPedigreeError(core.ErrSameParents, p.Name)
		}
		for _, parent := range []string{p.Mother, p.Father} {
			if parent == "" {
				continue
			}
			if _, ok := index[parent]; !ok {
				return nil, core.NewUnknownParentError(p.Name, parent)
			}
		}
	}

	ordered := make([]Person, len(people))
	copy(ordered, people)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })
	for i, p := range ordered {
		index[p.Name] = i
	}

	r := &Registry{
		people:    ordered,
		index:     index,
		motherIdx: make([]int, len(ordered)),
		fatherIdx: make([]int, len(ordered)),
	}
	for i, p := range ordered {
		r.motherIdx[i] = -1
		r.fatherIdx[i] = -1
		if p.Mother != "" {
			r.motherIdx[i] = index[p.Mother]
			r.fatherIdx[i] = index[p.Father]
		} else {
			r.founders++
		}
		if p.Trait.Observed() {
			r.observed++
		}
	}

	if name, cyclic := r.findCycle(); cyclic {
		return nil, core.NewPedigreeError(core.ErrPedigreeCycle, name)
	}
	return r, nil
}

// findCycle walks child-to-parent edges looking for a person who is their own
// ancestor. Returns the first such person in registry order.
func (r *Registry) findCycle() (string, bool) {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make([]int, len(r.people))

	var visit func(i int) bool
	visit = func(i int) bool {
		if state[i] == inStack {
			return true
		}
		if state[i] == done {
			return false
		}
		state[i] = inStack
		for _, parent := range []int{r.motherIdx[i], r.fatherIdx[i]} {
			if parent >= 0 && visit(parent) {
				return true
			}
		}
		state[i] = done
		return false
	}

	for i := range r.people {
		if state[i] == unvisited && visit(i) {
			return r.people[i].Name, true
		}
	}
	return "", false
}

// Size returns the number of people.
func (r *Registry) Size() int {
	return len(r.people)
}

// Founders returns the number of people without parents in the pedigree.
func (r *Registry) Founders() int {
	return r.founders
}

// Observations returns the number of people with observed traits.
func (r *Registry) Observations() int {
	return r.observed
}

// Names returns all person names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.people))
	for i, p := range r.people {
		names[i] = p.Name
	}
	return names
}

// People returns a copy of all person records in registry order.
func (r *Registry) People() []Person {
	people := make([]Person, len(r.people))
	copy(people, r.people)
	return people
}

// Person returns the record at index i.
func (r *Registry) Person(i int) Person {
	return r.people[i]
}

// Index returns the registry index for a name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// ByName returns the record for a name.
func (r *Registry) ByName(name string) (Person, error) {
	i, ok := r.index[name]
	if !ok {
		return Person{}, core.NewPedigreeError(core.ErrPersonNotFound, name)
	}
	return r.people[i], nil
}

// MotherIndex returns the registry index of person i's mother, or -1 for a
// founder.
func (r *Registry) MotherIndex(i int) int {
	return r.motherIdx[i]
}

// FatherIndex returns the registry index of person i's father, or -1 for a
// founder.
func (r *Registry) FatherIndex(i int) int {
	return r.fatherIdx[i]
}

// IsFounder reports whether person i has no parents in the pedigree.
func (r *Registry) IsFounder(i int) bool {
	return r.motherIdx[i] < 0
}

// Hash returns the canonical fingerprint of the pedigree records.
func (r *Registry) Hash() core.PedigreeHash {
	rows := make(map[string]string, len(r.people))
	for _, p := range r.people {
		rows[p.Name] = p.row()
	}
	return core.ComputePedigreeHash(rows)
}
