package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goherit/app"
	"goherit/domain/core"
	"goherit/domain/posterior"
	"goherit/domain/run"
	"goherit/ports"
)

func trioRunResult() *app.RunResult {
	posteriors := &posterior.Result{People: []posterior.PersonResult{
		{Name: "Harry", PersonPosterior: posterior.PersonPosterior{
			Gene:  posterior.GeneDistribution{Two: 0.0092, One: 0.4557, Zero: 0.5351},
			Trait: posterior.TraitDistribution{Present: 0.2665, Absent: 0.7335},
		}},
		{Name: "James", PersonPosterior: posterior.PersonPosterior{
			Gene:  posterior.GeneDistribution{Two: 0.1976, One: 0.5106, Zero: 0.2918},
			Trait: posterior.TraitDistribution{Present: 1.0, Absent: 0.0},
		}},
		{Name: "Lily", PersonPosterior: posterior.PersonPosterior{
			Gene:  posterior.GeneDistribution{Two: 0.0036, One: 0.0136, Zero: 0.9827},
			Trait: posterior.TraitDistribution{Present: 0.0, Absent: 1.0},
		}},
	}}

	manifest := run.NewManifest(
		core.NewRunID(),
		core.PedigreeHash("pedigree"),
		core.ModelHash("model"),
		3, 2, 2, 54, 1, 7, "1.0.0",
	)

	return &app.RunResult{
		Manifest:   manifest,
		Posteriors: posteriors,
		Stats:      ports.EngineStats{People: 3, Founders: 2, TraitSubsets: 2, Assignments: 54, Workers: 1},
		Source:     "memory",
	}
}

func TestTextWriterLayout(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewTextWriter(false).Write(&b, trioRunResult()))

	want := "Harry:\n" +
		"  Gene:\n" +
		"    2: 0.0092\n" +
		"    1: 0.4557\n" +
		"    0: 0.5351\n" +
		"  Trait:\n" +
		"    True: 0.2665\n" +
		"    False: 0.7335\n" +
		"James:\n" +
		"  Gene:\n" +
		"    2: 0.1976\n" +
		"    1: 0.5106\n" +
		"    0: 0.2918\n" +
		"  Trait:\n" +
		"    True: 1.0000\n" +
		"    False: 0.0000\n" +
		"Lily:\n" +
		"  Gene:\n" +
		"    2: 0.0036\n" +
		"    1: 0.0136\n" +
		"    0: 0.9827\n" +
		"  Trait:\n" +
		"    True: 0.0000\n" +
		"    False: 1.0000\n"

	assert.Equal(t, want, b.String())
}

func TestTextWriterAppendsSummary(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewTextWriter(true).Write(&b, trioRunResult()))

	out := b.String()
	assert.Contains(t, out, "Cohort:\n")
	assert.Contains(t, out, "  People: 3\n")
	assert.Contains(t, out, "  Carrier:\n")
	assert.Contains(t, out, "  Trait:\n    Mean: 0.4222\n")

	// Summary comes after the last person block.
	assert.Less(t, strings.Index(out, "Lily:"), strings.Index(out, "Cohort:"))
}

func TestSummarizeDescriptives(t *testing.T) {
	res := &posterior.Result{People: []posterior.PersonResult{
		{Name: "a", PersonPosterior: posterior.PersonPosterior{
			Gene:  posterior.GeneDistribution{Two: 0.05, One: 0.20, Zero: 0.75},
			Trait: posterior.TraitDistribution{Present: 0.10, Absent: 0.90},
		}},
		{Name: "b", PersonPosterior: posterior.PersonPosterior{
			Gene:  posterior.GeneDistribution{Two: 0.10, One: 0.40, Zero: 0.50},
			Trait: posterior.TraitDistribution{Present: 0.50, Absent: 0.50},
		}},
		{Name: "c", PersonPosterior: posterior.PersonPosterior{
			Gene:  posterior.GeneDistribution{Two: 0.25, One: 0.50, Zero: 0.25},
			Trait: posterior.TraitDistribution{Present: 0.90, Absent: 0.10},
		}},
	}}

	s, err := Summarize(res)
	require.NoError(t, err)

	// Carrier probabilities are 0.25, 0.50, 0.75.
	assert.Equal(t, 3, s.People)
	assert.InDelta(t, 0.50, s.Carrier.Mean, 1e-9)
	assert.InDelta(t, 0.50, s.Carrier.Median, 1e-9)
	assert.InDelta(t, 0.25, s.Carrier.Min, 1e-9)
	assert.InDelta(t, 0.75, s.Carrier.Max, 1e-9)
	assert.InDelta(t, 0.2041241452, s.Carrier.StdDev, 1e-9)

	assert.InDelta(t, 0.50, s.Trait.Mean, 1e-9)
	assert.InDelta(t, 0.10, s.Trait.Min, 1e-9)
	assert.InDelta(t, 0.90, s.Trait.Max, 1e-9)
}

func TestSummarizeEmptyResult(t *testing.T) {
	_, err := Summarize(&posterior.Result{})
	require.Error(t, err)
}
