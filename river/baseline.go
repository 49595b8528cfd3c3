package river

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// stepDamping slows the Gaussian proposal steps as the search progresses:
// round n draws noise scaled by 2/(n+stepDamping).
const stepDamping = 48

// Baseline finds per-row vertical offsets for a stacked rendering of
// matrix scaled by loads, minimizing the visual shear of the stack.
//
// Rows with a missing load, a missing matrix cell, or no cells at all are
// excluded from scoring. The offsets start at -load/2 and improve by
// stochastic hill-climbing: each round proposes a Gaussian perturbation
// with shrinking step size, keeps it only on a strict score improvement,
// and re-centers the offsets to zero mean (the baseline is defined only up
// to a global additive constant).
//
// Baseline never fails: with no scorable rows it returns all-NaN; worst
// case the initial offsets come back unchanged. The returned series spans
// every input row, linearly interpolated across excluded rows and extended
// with the nearest value at the edges.
//
// The search is local and best-effort — no global optimality is implied.
// Determinism per seed comes from the injected RNG policy in rng.go.
//
// Complexity: O(Iterations · rows · cols).
func Baseline(matrix [][]float64, loads []float64, opts BaselineOptions) []float64 {
	rows := len(matrix)
	out := make([]float64, rows)
	for i := range out {
		out[i] = math.NaN()
	}
	if rows == 0 || len(loads) != rows {
		return out
	}

	valid := scorableRows(matrix, loads)
	if len(valid) == 0 {
		return out
	}

	// Scaled stack (value·load) and the shear weights, compacted to the
	// scorable rows so consecutive entries diff against each other.
	c := make([][]float64, len(valid))
	d := make([][]float64, len(valid))
	offs := make([]float64, len(valid))
	for t, i := range valid {
		c[t] = make([]float64, len(matrix[i]))
		for j, v := range matrix[i] {
			c[t][j] = v * loads[i]
		}
		floats.CumSum(c[t], c[t])
		d[t] = matrix[i]
		offs[t] = -loads[i] / 2
	}

	rng := rngFromSeed(opts.Seed)
	proposal := make([]float64, len(valid))
	score := shear(c, d, offs)
	for n := 0; n < opts.Iterations; n++ {
		scale := 2 / float64(n+stepDamping)
		for t := range proposal {
			proposal[t] = offs[t] + rng.NormFloat64()*scale
		}
		if next := shear(c, d, proposal); next < score {
			copy(offs, proposal)
			floats.AddConst(-stat.Mean(offs, nil), offs)
			score = shear(c, d, offs)
		}
	}

	for t, i := range valid {
		out[i] = offs[t]
	}
	interpolateGaps(out)

	return out
}

// ShearScore computes the shear of offsetting the stacked, load-scaled
// matrix by the given per-row offsets: the sum over columns of squared
// consecutive differences of the cumulative row sums, weighted by the raw
// matrix values. Rows excluded from scoring (missing load or cells, NaN
// offset) are skipped. Exposed so callers can verify that Baseline only
// ever improves on the initial -load/2 offsets.
func ShearScore(matrix [][]float64, loads, offsets []float64) float64 {
	valid := scorableRows(matrix, loads)
	c := make([][]float64, 0, len(valid))
	d := make([][]float64, 0, len(valid))
	offs := make([]float64, 0, len(valid))
	for _, i := range valid {
		if i >= len(offsets) || math.IsNaN(offsets[i]) {
			continue
		}
		row := make([]float64, len(matrix[i]))
		copy(row, matrix[i])
		floats.CumSum(row, row)
		for j := range row {
			row[j] *= loads[i] // cumsum of v·load == load·cumsum(v)
		}
		c = append(c, row)
		d = append(d, matrix[i])
		offs = append(offs, offsets[i])
	}

	return shear(c, d, offs)
}

// shear is the inner score: Σ_j Σ_t ((c[t][j]+O[t]) − (c[t−1][j]+O[t−1]))²
// · d[t][j]², over consecutive scorable rows.
func shear(c, d [][]float64, offs []float64) float64 {
	total := 0.0
	for t := 1; t < len(c); t++ {
		for j := range c[t] {
			diff := (c[t][j] + offs[t]) - (c[t-1][j] + offs[t-1])
			diff *= d[t][j]
			total += diff * diff
		}
	}

	return total
}

// scorableRows lists row indices with a present load and a fully observed
// matrix row.
func scorableRows(matrix [][]float64, loads []float64) []int {
	var valid []int
	for i, row := range matrix {
		if i >= len(loads) || math.IsNaN(loads[i]) || len(row) == 0 {
			continue
		}
		ok := true
		for _, v := range row {
			if math.IsNaN(v) {
				ok = false

				break
			}
		}
		if ok {
			valid = append(valid, i)
		}
	}

	return valid
}

// interpolateGaps fills NaN runs in place: linear interpolation between
// surrounding values, nearest-value extension at the edges. An all-NaN
// series is left untouched.
func interpolateGaps(s []float64) {
	first, last := -1, -1
	for i, v := range s {
		if !math.IsNaN(v) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return
	}
	for i := 0; i < first; i++ {
		s[i] = s[first]
	}
	for i := last + 1; i < len(s); i++ {
		s[i] = s[last]
	}
	prev := first
	for i := first + 1; i <= last; i++ {
		if math.IsNaN(s[i]) {
			continue
		}
		if i > prev+1 {
			step := (s[i] - s[prev]) / float64(i-prev)
			for k := prev + 1; k < i; k++ {
				s[k] = s[prev] + step*float64(k-prev)
			}
		}
		prev = i
	}
}
