package report

import (
	"github.com/montanaflynn/stats"

	"goherit/domain/posterior"
)

// Descriptive holds summary statistics for one probability across the cohort.
type Descriptive struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// CohortSummary aggregates posteriors across all people: how likely a member
// is to carry at least one copy, and how likely to exhibit the trait.
type CohortSummary struct {
	People  int         `json:"people"`
	Carrier Descriptive `json:"carrier_probability"`
	Trait   Descriptive `json:"trait_probability"`
}

// Summarize computes cohort statistics from a finished result.
func Summarize(res *posterior.Result) (*CohortSummary, error) {
	carrier := make([]float64, 0, len(res.People))
	trait := make([]float64, 0, len(res.People))
	for _, p := range res.People {
		carrier = append(carrier, p.Gene.Carrier())
		trait = append(trait, p.Trait.Present)
	}

	carrierStats, err := describe(carrier)
	if err != nil {
		return nil, err
	}
	traitStats, err := describe(trait)
	if err != nil {
		return nil, err
	}

	return &CohortSummary{
		People:  len(res.People),
		Carrier: carrierStats,
		Trait:   traitStats,
	}, nil
}

func describe(data []float64) (Descriptive, error) {
	d := Descriptive{}

	mean, err := stats.Mean(data)
	if err != nil {
		return d, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return d, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return d, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return d, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return d, err
	}

	d.Mean = mean
	d.Median = median
	d.Min = min
	d.Max = max
	d.StdDev = stdDev
	return d, nil
}
