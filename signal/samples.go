package signal

import (
	"math"
	"time"
)

// Fallbacks for wastewater samples missing their metadata: a nominal
// sewershed population and a middling normalized viral load.
const (
	defaultPopulation = 1000
	defaultViralLoad  = 0.5
)

// WastewaterWeight returns the conventional Sample weight for wastewater
// data: the sewershed population scaled by the sample's normalized viral
// load. NaN metadata falls back to a population of 1000 and a load of 0.5,
// so partially annotated datasets still aggregate.
func WastewaterWeight(population, normedLoad float64) float64 {
	if math.IsNaN(population) {
		population = defaultPopulation
	}
	if math.IsNaN(normedLoad) {
		normedLoad = defaultViralLoad
	}

	return population * normedLoad
}

// PopulationWeight weights a wastewater sample by sewershed population
// alone, for datasets without viral-load readings. NaN falls back to the
// same nominal population as WastewaterWeight.
func PopulationWeight(population float64) float64 {
	if math.IsNaN(population) {
		return defaultPopulation
	}

	return population
}

// FirstDates returns the earliest sample date per category — the emergence
// dates of the observed lineages. Categories never sampled are absent.
func FirstDates(samples []Sample) map[string]time.Time {
	out := make(map[string]time.Time)
	for _, s := range samples {
		if cur, ok := out[s.Category]; !ok || s.Date.Before(cur) {
			out[s.Category] = s.Date
		}
	}

	return out
}
