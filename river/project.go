package river

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/veratlas/lintide/cluster"
	"github.com/veratlas/lintide/lintree"
	"github.com/veratlas/lintide/signal"
)

// Project maps a date-bin × lineage signal table onto a cluster partition.
//
// For every row, each member's bucket is evaluated with cluster.Aggregate
// against that row's values, excluding all selected members (so exclusive
// buckets never double-count selected descendants). Columns are ordered by
// ascending alias. Inclusive members are labeled "<alias>*", exclusive
// ones "other <alias>*", both with " (<name>)" appended when the alias
// differs from the name.
//
// Rows whose summed bucket mass falls below 0.5 are marked entirely
// missing — they were built from too little underlying signal to trust.
// For the rest, the residual 1−sum is folded into the tree root's
// catch-all bucket and clipped to [0, 1], so valid rows sum to exactly 1.
// An auxiliary series on the input table is carried through untouched.
//
// Returns the projected table, the member names in column order, and a
// parallel inclusive flag per column.
func Project(tbl *signal.Table, p cluster.Partition, idx *lintree.Index) (*signal.Table, []string, []bool, error) {
	if p.Size() == 0 {
		return nil, nil, nil, ErrEmptyPartition
	}

	members, inclusive := p.Members()
	exclude := p.Selected()

	labels := make([]string, len(members))
	names := make([]string, len(members))
	rootCol := -1
	for j, m := range members {
		if got, ok := idx.Get(m.Name); !ok || got != m {
			return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownLineage, m.Name)
		}
		label := m.Alias + "*"
		if !inclusive[j] {
			label = "other " + label
		}
		if m.Name != m.Alias {
			label += " (" + m.Name + ")"
		}
		labels[j] = label
		names[j] = m.Name
		if m.IsRoot() {
			rootCol = j
		}
	}

	nan := math.NaN()
	values := make([][]float64, len(tbl.Bins))
	for i := range tbl.Bins {
		prev := cluster.Prevalence(tbl.Row(i))
		row := make([]float64, len(members))
		for j, m := range members {
			row[j] = cluster.Aggregate(m, prev, exclude)
		}
		sum := floats.Sum(row)
		if sum < coverageFloor {
			for j := range row {
				row[j] = nan
			}
			values[i] = row

			continue
		}
		if rootCol >= 0 {
			row[rootCol] += 1 - sum
			row[rootCol] = math.Min(1, math.Max(0, row[rootCol]))
		}
		values[i] = row
	}

	out := &signal.Table{Bins: tbl.Bins, Categories: labels, Values: values, Aux: tbl.Aux}

	return out, names, inclusive, nil
}
