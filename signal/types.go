// Package signal types: samples, bins, options and the aggregated table.
package signal

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors for signal aggregation.
var (
	// ErrNoSamples indicates an empty input table.
	ErrNoSamples = errors.New("signal: no samples")

	// ErrBadRange indicates End precedes Start.
	ErrBadRange = errors.New("signal: end date precedes start date")

	// ErrBadFreq indicates a negative bin width.
	ErrBadFreq = errors.New("signal: bin width must be non-negative")
)

// Sample is one long-format observation: a dated, categorized value with
// an aggregation weight.
type Sample struct {
	Date     time.Time
	Category string
	Value    float64
	Weight   float64
}

// NewSample returns a Sample with the default uniform weight of 1,
// appropriate for unweighted (e.g. clinical) data.
func NewSample(date time.Time, category string, value float64) Sample {
	return Sample{Date: date, Category: category, Value: value, Weight: 1}
}

// Options configures Aggregate.
//
// Zero-valued Start/End derive the range from the data; either way the
// range is padded by one day on each side before binning. Freq == 0 means
// a single bin spanning the whole range.
type Options struct {
	// Freq is the bin width. 0 aggregates everything into one bin.
	Freq time.Duration

	// Start and End bound the binned range (inclusive of the data they
	// cover; the actual bin edges are padded by a day on each side).
	Start, End time.Time

	// Normalize divides each cell by its bin's total value·weight mass so
	// categories within a bin sum to 1. When false, cells are weighted
	// means of the raw values.
	Normalize bool
}

// DefaultOptions returns the conventional aggregation settings: weekly
// bins, data-derived range, normalized shares.
func DefaultOptions() Options {
	return Options{Freq: 7 * 24 * time.Hour, Normalize: true}
}

// Bin is one half-open date interval [Start, End).
type Bin struct {
	Start, End time.Time
}

// Contains reports whether t falls inside the bin.
func (b Bin) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Table is a date-bin × category matrix of aggregated values. Missing
// cells are NaN. An optional auxiliary series (e.g. viral load) may ride
// along, one entry per bin, and is never aggregated — downstream layers
// carry it through unchanged.
type Table struct {
	Bins       []Bin
	Categories []string
	Values     [][]float64 // row per bin, column per category
	Aux        []float64   // optional; len == len(Bins) when set
}

// At returns the cell for bin row i and category column j.
func (t *Table) At(i, j int) float64 { return t.Values[i][j] }

// Row returns bin i's non-missing cells as a category→value map — the
// sparse prevalence-vector shape the clustering layer consumes.
func (t *Table) Row(i int) map[string]float64 {
	row := make(map[string]float64, len(t.Categories))
	for j, c := range t.Categories {
		if v := t.Values[i][j]; !math.IsNaN(v) {
			row[c] = v
		}
	}

	return row
}

// SetAux attaches an auxiliary per-bin series. It must have exactly one
// entry per bin; use NaN for bins without a reading.
func (t *Table) SetAux(aux []float64) error {
	if len(aux) != len(t.Bins) {
		return errors.New("signal: aux length does not match bin count")
	}
	t.Aux = aux

	return nil
}
