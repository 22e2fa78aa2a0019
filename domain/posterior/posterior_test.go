package posterior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goherit/domain/core"
	"goherit/domain/genetics"
)

func TestNormalizePreservesProportions(t *testing.T) {
	tally := Tally{
		Gene:  [3]float64{0.1, 0.3, 0.1},
		Trait: [2]float64{0.2, 0.6},
	}

	p, err := Normalize(tally)
	require.NoError(t, err)

	assert.InDelta(t, 0.2, p.Gene.Zero, 1e-12)
	assert.InDelta(t, 0.6, p.Gene.One, 1e-12)
	assert.InDelta(t, 0.2, p.Gene.Two, 1e-12)
	assert.InDelta(t, 0.25, p.Trait.Absent, 1e-12)
	assert.InDelta(t, 0.75, p.Trait.Present, 1e-12)

	// Proportions survive scaling: One carried three times Zero's mass.
	assert.InDelta(t, 3.0, p.Gene.One/p.Gene.Zero, 1e-9)
	require.NoError(t, p.Validate())
}

func TestNormalizeSumsToOne(t *testing.T) {
	tally := Tally{
		Gene:  [3]float64{0.0123, 0.00456, 0.000789},
		Trait: [2]float64{0.011, 0.0066},
	}

	p, err := Normalize(tally)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, p.Gene.Zero+p.Gene.One+p.Gene.Two, 1e-12)
	assert.InDelta(t, 1.0, p.Trait.Absent+p.Trait.Present, 1e-12)
}

func TestNormalizeZeroMass(t *testing.T) {
	_, err := Normalize(Tally{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDegenerateEvidence)

	// Gene mass alone is not enough; trait buckets must also carry mass.
	_, err = Normalize(Tally{Gene: [3]float64{0.5, 0.3, 0.2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDegenerateEvidence)
}

func TestTallyMerge(t *testing.T) {
	a := Tally{Gene: [3]float64{0.1, 0.2, 0.3}, Trait: [2]float64{0.4, 0.5}}
	b := Tally{Gene: [3]float64{0.01, 0.02, 0.03}, Trait: [2]float64{0.04, 0.05}}

	a.Merge(b)
	assert.InDelta(t, 0.11, a.Gene[0], 1e-12)
	assert.InDelta(t, 0.22, a.Gene[1], 1e-12)
	assert.InDelta(t, 0.33, a.Gene[2], 1e-12)
	assert.InDelta(t, 0.44, a.Trait[0], 1e-12)
	assert.InDelta(t, 0.55, a.Trait[1], 1e-12)
}

func TestGeneDistributionAccessors(t *testing.T) {
	d := GeneDistribution{Zero: 0.5, One: 0.3, Two: 0.2}
	assert.Equal(t, 0.5, d.P(genetics.GeneZero))
	assert.Equal(t, 0.3, d.P(genetics.GeneOne))
	assert.Equal(t, 0.2, d.P(genetics.GeneTwo))
	assert.InDelta(t, 0.5, d.Carrier(), 1e-12)

	td := TraitDistribution{Present: 0.7, Absent: 0.3}
	assert.Equal(t, 0.7, td.P(true))
	assert.Equal(t, 0.3, td.P(false))
}

func TestResultFind(t *testing.T) {
	res := Result{People: []PersonResult{
		{Name: "Harry"},
		{Name: "Lily"},
	}}

	_, ok := res.Find("Lily")
	assert.True(t, ok)
	_, ok = res.Find("Sirius")
	assert.False(t, ok)
}

func TestPersonPosteriorValidate(t *testing.T) {
	good := PersonPosterior{
		Gene:  GeneDistribution{Zero: 0.5, One: 0.3, Two: 0.2},
		Trait: TraitDistribution{Present: 0.6, Absent: 0.4},
	}
	assert.NoError(t, good.Validate())

	bad := PersonPosterior{
		Gene:  GeneDistribution{Zero: 0.5, One: 0.3, Two: 0.3},
		Trait: TraitDistribution{Present: 0.6, Absent: 0.4},
	}
	assert.Error(t, bad.Validate())
}
