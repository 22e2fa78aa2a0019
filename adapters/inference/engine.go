package inference

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"goherit/domain/core"
	"goherit/domain/genetics"
	"goherit/domain/pedigree"
	"goherit/domain/posterior"
	"goherit/ports"
)

// Engine performs brute-force exact inference: every subset of people who
// could exhibit the trait is crossed with every gene-count assignment, the
// joint probability of each combination is accumulated per person, and the
// buckets are normalized into posteriors. Cost is O(2^n * 3^n) in the number
// of people; the engine is meant for small pedigrees.
type Engine struct {
	model   genetics.Model
	workers int
}

// Options configure engine execution.
type Options struct {
	// Workers is the number of parallel enumeration workers. Zero or one runs
	// sequentially; negative means one worker per CPU.
	Workers int
}

// NewEngine validates the model and builds an engine. The model is injected
// here and passed through to every joint computation.
func NewEngine(model genetics.Model, opts Options) (*Engine, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers < 0 {
		workers = runtime.NumCPU()
	}
	if workers == 0 {
		workers = 1
	}
	return &Engine{model: model, workers: workers}, nil
}

// Model returns the probability model the engine infers under.
func (e *Engine) Model() genetics.Model {
	return e.model
}

// Infer enumerates all consistent assignments for the pedigree and returns
// normalized posteriors for every person.
func (e *Engine) Infer(ctx context.Context, reg *pedigree.Registry) (*ports.InferenceResult, error) {
	n := reg.Size()
	if n > MaxPeople {
		return nil, fmt.Errorf("%w: %d people (limit %d)", core.ErrPedigreeTooLarge, n, MaxPeople)
	}

	// One powerset serves both the trait sweep and the one-copy sweep.
	all := Powerset(populationMembers(n))
	admissible := admissibleTraitSubsets(reg, all)

	workers := e.workers
	if workers > len(admissible) {
		workers = len(admissible)
	}

	partials := make([][]posterior.Tally, workers)
	evaluated := make([]int64, workers)
	chunk := (len(admissible) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(admissible))
		partials[w] = make([]posterior.Tally, n)
		if start >= end {
			continue
		}
		tallies := partials[w]
		subsets := admissible[start:end]
		g.Go(func() error {
			var count int64
			for _, haveTrait := range subsets {
				swept, err := e.sweepGenes(gctx, reg, all, tallies, haveTrait)
				if err != nil {
					return err
				}
				count += swept
			}
			evaluated[w] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tallies := make([]posterior.Tally, n)
	var assignments int64
	for w := 0; w < workers; w++ {
		mergeTallies(tallies, partials[w])
		assignments += evaluated[w]
	}

	result := &posterior.Result{People: make([]posterior.PersonResult, n)}
	for i := 0; i < n; i++ {
		pp, err := posterior.Normalize(tallies[i])
		if err != nil {
			return nil, core.NewDegenerateEvidenceError(reg.Person(i).Name)
		}
		result.People[i] = posterior.PersonResult{Name: reg.Person(i).Name, PersonPosterior: pp}
	}

	return &ports.InferenceResult{
		Posteriors: result,
		Stats: ports.EngineStats{
			People:       n,
			Founders:     reg.Founders(),
			TraitSubsets: int64(len(admissible)),
			Assignments:  assignments,
			Workers:      workers,
		},
	}, nil
}

// sweepGenes enumerates every gene-count assignment under one trait subset:
// each subset of people with one copy, crossed with each subset of the
// remainder with two copies. Returns the number of assignments evaluated.
func (e *Engine) sweepGenes(ctx context.Context, reg *pedigree.Registry, all []Subset, tallies []posterior.Tally, haveTrait Subset) (int64, error) {
	n := reg.Size()
	var evaluated int64
	for _, oneGene := range all {
		if err := ctx.Err(); err != nil {
			return evaluated, err
		}
		rest := oneGene.Complement(n).Members(n)
		for _, twoGenes := range Powerset(rest) {
			p := Joint(reg, e.model, oneGene, twoGenes, haveTrait)
			addJoint(tallies, p, oneGene, twoGenes, haveTrait)
			evaluated++
		}
	}
	return evaluated, nil
}

// admissibleTraitSubsets filters the trait powerset against the evidence: a
// subset must contain everyone observed with the trait and nobody observed
// without it. The check is two mask operations per subset.
func admissibleTraitSubsets(reg *pedigree.Registry, all []Subset) []Subset {
	var mustHave, mustNot Subset
	for i := 0; i < reg.Size(); i++ {
		switch reg.Person(i).Trait {
		case pedigree.TraitPresent:
			mustHave = mustHave.With(i)
		case pedigree.TraitAbsent:
			mustNot = mustNot.With(i)
		}
	}

	admissible := make([]Subset, 0, len(all))
	for _, s := range all {
		if s&mustHave == mustHave && s&mustNot == 0 {
			admissible = append(admissible, s)
		}
	}
	return admissible
}
