package signal

import (
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
)

// likeSuffix marks category labels that aggregate into their base name
// ("XBB-like" folds into "XBB").
const likeSuffix = "-like"

// Aggregate reduces long-format samples into a date-bin × category matrix
// of weighted aggregates. See the package documentation for the full
// contract; in short:
//
//	cell(bin, cat) = Σ value·weight over the pair's samples,
//	                 ÷ bin total value·weight   (Options.Normalize)
//	                 ÷ pair total weight        (otherwise)
//
// then "-like" columns merge into their base category. Bins without any
// usable sample come back as all-NaN rows rather than errors.
func Aggregate(samples []Sample, opts Options) (*Table, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if opts.Freq < 0 {
		return nil, ErrBadFreq
	}

	start, end := opts.Start, opts.End
	if start.IsZero() || end.IsZero() {
		lo, hi := dateRange(samples)
		if start.IsZero() {
			start = lo
		}
		if end.IsZero() {
			end = hi
		}
	}
	if end.Before(start) {
		return nil, ErrBadRange
	}
	start = start.AddDate(0, 0, -1)
	end = end.AddDate(0, 0, 1)

	bins := makeBins(start, end, opts.Freq)

	// First pass: raw sums per (bin, full category).
	type cellSum struct {
		mass   float64 // Σ value·weight
		weight float64 // Σ weight
		seen   bool
	}
	rawCats := make(map[string]int)
	var catNames []string
	cells := make([]map[int]*cellSum, len(bins))
	for i := range cells {
		cells[i] = make(map[int]*cellSum)
	}
	for _, s := range samples {
		if math.IsNaN(s.Value) || math.IsNaN(s.Weight) {
			continue
		}
		bi := binFor(bins, start, opts.Freq, s.Date)
		if bi < 0 {
			continue
		}
		ci, ok := rawCats[s.Category]
		if !ok {
			ci = len(catNames)
			rawCats[s.Category] = ci
			catNames = append(catNames, s.Category)
		}
		cs := cells[bi][ci]
		if cs == nil {
			cs = &cellSum{}
			cells[bi][ci] = cs
		}
		cs.mass += s.Value * s.Weight
		cs.weight += s.Weight
		cs.seen = true
	}

	// Second pass: per-cell ratios against the chosen denominator.
	nan := math.NaN()
	ratios := make([][]float64, len(bins))
	for i := range bins {
		ratios[i] = make([]float64, len(catNames))
		masses := make([]float64, 0, len(cells[i]))
		for _, cs := range cells[i] {
			masses = append(masses, cs.mass)
		}
		binMass := floats.Sum(masses)
		for j := range catNames {
			cs := cells[i][j]
			switch {
			case cs == nil || !cs.seen:
				ratios[i][j] = nan
			case opts.Normalize:
				ratios[i][j] = cs.mass / binMass // 0/0 ⇒ NaN, by design of the contract
			default:
				ratios[i][j] = cs.mass / cs.weight
			}
		}
	}

	// Merge "-like" labels into their base category, summing aggregated
	// cells NaN-skipping (all-NaN ⇒ NaN, no-data bins stay missing).
	baseFor := make([]string, len(catNames))
	baseSet := make(map[string]bool)
	for j, c := range catNames {
		base := c
		if k := strings.Index(c, likeSuffix); k >= 0 {
			base = c[:k]
		}
		baseFor[j] = base
		baseSet[base] = true
	}
	outCats := make([]string, 0, len(baseSet))
	for c := range baseSet {
		outCats = append(outCats, c)
	}
	sort.Strings(outCats)
	outCol := make(map[string]int, len(outCats))
	for j, c := range outCats {
		outCol[c] = j
	}

	values := make([][]float64, len(bins))
	for i := range bins {
		row := make([]float64, len(outCats))
		counted := make([]int, len(outCats))
		seen := make([]int, len(outCats))
		for j, base := range baseFor {
			cs := cells[i][j]
			if cs != nil && cs.seen {
				seen[outCol[base]]++
			}
			if v := ratios[i][j]; !math.IsNaN(v) {
				row[outCol[base]] += v
				counted[outCol[base]]++
			}
		}
		rowHasData := len(cells[i]) > 0
		for j := range row {
			switch {
			case !rowHasData:
				row[j] = nan // empty bin: the whole row is missing
			case counted[j] == 0 && seen[j] > 0:
				row[j] = nan // sampled but undefined (e.g. zero-weight pair)
			}
		}
		values[i] = row
	}

	return &Table{Bins: bins, Categories: outCats, Values: values}, nil
}

// dateRange returns the earliest and latest sample dates.
func dateRange(samples []Sample) (lo, hi time.Time) {
	lo, hi = samples[0].Date, samples[0].Date
	for _, s := range samples[1:] {
		if s.Date.Before(lo) {
			lo = s.Date
		}
		if s.Date.After(hi) {
			hi = s.Date
		}
	}

	return lo, hi
}

// makeBins partitions [start, end) into half-open bins of width freq,
// keeping only bins that fit entirely inside the range. freq == 0 yields
// the single bin [start, end).
func makeBins(start, end time.Time, freq time.Duration) []Bin {
	if freq == 0 {
		return []Bin{{Start: start, End: end}}
	}
	var bins []Bin
	for lo := start; !lo.Add(freq).After(end); lo = lo.Add(freq) {
		bins = append(bins, Bin{Start: lo, End: lo.Add(freq)})
	}

	return bins
}

// binFor locates the bin containing t, or -1 when t falls outside every
// bin. O(1) for fixed-width bins.
func binFor(bins []Bin, start time.Time, freq time.Duration, t time.Time) int {
	if len(bins) == 0 || t.Before(start) {
		return -1
	}
	if freq == 0 {
		if bins[0].Contains(t) {
			return 0
		}

		return -1
	}
	i := int(t.Sub(start) / freq)
	if i < len(bins) && bins[i].Contains(t) {
		return i
	}

	return -1
}
