// Package river types: baseline options, HSV triples and sentinel errors.
package river

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// Sentinel errors for river-plot preparation.
var (
	// ErrEmptyPartition indicates a partition with no members.
	ErrEmptyPartition = errors.New("river: partition has no members")

	// ErrUnknownLineage indicates a selected name missing from the index.
	ErrUnknownLineage = errors.New("river: lineage not in index")

	// ErrShapeMismatch indicates parallel inputs of different lengths.
	ErrShapeMismatch = errors.New("river: input lengths do not match")
)

// coverageFloor is the minimum summed bucket mass a row needs before it is
// trusted; rows below it are marked entirely missing.
const coverageFloor = 0.5

// BaselineOptions configures the stochastic baseline search.
//
// Seed follows the deterministic policy used across lintide: 0 selects a
// fixed default seed, any other value is used verbatim. The search is
// never time-seeded.
type BaselineOptions struct {
	// Iterations is the number of proposal rounds.
	Iterations int

	// Seed drives the Gaussian proposal stream.
	Seed int64
}

// DefaultBaselineOptions returns the conventional 128-round search with
// the default deterministic seed.
func DefaultBaselineOptions() BaselineOptions {
	return BaselineOptions{Iterations: 128}
}

// HSV is one display color as hue/saturation/value, each in [0, 1]
// (hue occupies [0, 0.75] so the palette never wraps back to red).
type HSV struct {
	H, S, V float64
}

// Color converts the triple to a colorful.Color for rendering layers that
// want RGB.
func (c HSV) Color() colorful.Color {
	return colorful.Hsv(c.H*360, c.S, c.V)
}
