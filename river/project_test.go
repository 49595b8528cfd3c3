package river_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veratlas/lintide/cluster"
	"github.com/veratlas/lintide/lintree"
	"github.com/veratlas/lintide/river"
	"github.com/veratlas/lintide/signal"
)

const tol = 1e-9

// riverTree builds the shared fixture:
//
//	*
//	└── A
//	    ├── B ─ D
//	    └── C
func riverTree(t *testing.T) (*lintree.Tree, *lintree.Index) {
	t.Helper()
	tree, idx, err := lintree.Build([]lintree.Record{
		{Name: "A", Alias: "A", Children: []string{"B", "C"}},
		{Name: "B", Alias: "B", Parent: "A", Children: []string{"D"}},
		{Name: "C", Alias: "C", Parent: "A"},
		{Name: "D", Alias: "D", Parent: "B"},
	})
	require.NoError(t, err)

	return tree, idx
}

// riverPartition selects {*, A, B} exclusive and {D} inclusive, the
// steady-state split of the fixture at four members.
func riverPartition(t *testing.T, idx *lintree.Index) cluster.Partition {
	t.Helper()
	root, _ := idx.Get("*")
	a, _ := idx.Get("A")
	b, _ := idx.Get("B")
	d, _ := idx.Get("D")

	return cluster.Partition{U: []*lintree.Node{d}, V: []*lintree.Node{root, a, b}}
}

func oneBinTable(rows ...map[string]float64) *signal.Table {
	cats := []string{"B", "C", "D"}
	tbl := &signal.Table{Categories: cats}
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, row := range rows {
		lo := day.AddDate(0, 0, i)
		tbl.Bins = append(tbl.Bins, signal.Bin{Start: lo, End: lo.AddDate(0, 0, 1)})
		vals := make([]float64, len(cats))
		for j, c := range cats {
			if v, ok := row[c]; ok {
				vals[j] = v
			} else {
				vals[j] = math.NaN()
			}
		}
		tbl.Values = append(tbl.Values, vals)
	}

	return tbl
}

// TestProject_Buckets checks column order, labels, flags, and the exact
// bucket values for a fully covered row.
func TestProject_Buckets(t *testing.T) {
	_, idx := riverTree(t)
	p := riverPartition(t, idx)
	tbl := oneBinTable(map[string]float64{"B": 0.2, "C": 0.3, "D": 0.5})

	out, names, inclusive, err := river.Project(tbl, p, idx)
	require.NoError(t, err)

	assert.Equal(t, []string{"*", "A", "B", "D"}, names)
	assert.Equal(t, []bool{false, false, false, true}, inclusive)
	assert.Equal(t, []string{"other **", "other A*", "other B*", "D*"}, out.Categories)

	row := out.Values[0]
	assert.InDelta(t, 0.0, row[0], tol, "root bucket: everything is claimed below")
	assert.InDelta(t, 0.3, row[1], tol, "other A* holds C")
	assert.InDelta(t, 0.2, row[2], tol, "other B* excludes D")
	assert.InDelta(t, 0.5, row[3], tol)
}

// TestProject_ResidualIntoRoot: unclaimed mass folds into the root column
// so a trusted row sums to exactly 1.
func TestProject_ResidualIntoRoot(t *testing.T) {
	_, idx := riverTree(t)
	p := riverPartition(t, idx)
	tbl := oneBinTable(map[string]float64{"B": 0.2, "D": 0.5})

	out, _, _, err := river.Project(tbl, p, idx)
	require.NoError(t, err)

	row := out.Values[0]
	assert.InDelta(t, 0.3, row[0], tol, "1 − 0.7 lands in the root catch-all")
	sum := 0.0
	for _, v := range row {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, tol)
}

// TestProject_LowCoverageRow: a row whose buckets sum below 0.5 comes back
// entirely missing instead of being rescaled into false confidence.
func TestProject_LowCoverageRow(t *testing.T) {
	_, idx := riverTree(t)
	p := riverPartition(t, idx)
	tbl := oneBinTable(
		map[string]float64{"B": 0.1},
		map[string]float64{"B": 0.2, "C": 0.3, "D": 0.5},
	)

	out, _, _, err := river.Project(tbl, p, idx)
	require.NoError(t, err)

	for j := range out.Values[0] {
		assert.True(t, math.IsNaN(out.Values[0][j]), "column %d", j)
	}
	assert.InDelta(t, 0.5, out.Values[1][3], tol, "the trusted row still projects")
}

// TestProject_AliasLabels: an alias differing from the name is annotated
// with the name in parentheses.
func TestProject_AliasLabels(t *testing.T) {
	_, idx, err := lintree.Build([]lintree.Record{
		{Name: "B.1.1.529", Alias: "BA", Children: nil},
	})
	require.NoError(t, err)
	n, _ := idx.Get("B.1.1.529")
	p := cluster.Partition{U: []*lintree.Node{n}}

	tbl := &signal.Table{
		Bins:       []signal.Bin{{}},
		Categories: []string{"B.1.1.529"},
		Values:     [][]float64{{1}},
	}
	out, _, _, err := river.Project(tbl, p, idx)
	require.NoError(t, err)
	assert.Equal(t, []string{"BA* (B.1.1.529)"}, out.Categories)
}

// TestProject_AuxPassthrough: the auxiliary series rides along unchanged.
func TestProject_AuxPassthrough(t *testing.T) {
	_, idx := riverTree(t)
	p := riverPartition(t, idx)
	tbl := oneBinTable(map[string]float64{"B": 0.2, "C": 0.3, "D": 0.5})
	require.NoError(t, tbl.SetAux([]float64{3.5}))

	out, _, _, err := river.Project(tbl, p, idx)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5}, out.Aux)
}

// TestProject_Errors covers the empty partition and foreign-node cases.
func TestProject_Errors(t *testing.T) {
	_, idx := riverTree(t)
	tbl := oneBinTable(map[string]float64{"B": 1})

	_, _, _, err := river.Project(tbl, cluster.Partition{}, idx)
	assert.ErrorIs(t, err, river.ErrEmptyPartition)

	// A node with a known name but from a different tree is rejected:
	// membership is by identity, not by name.
	_, otherIdx := riverTree(t)
	stray, _ := otherIdx.Get("B")
	p := cluster.Partition{U: []*lintree.Node{stray}}
	_, _, _, err = river.Project(tbl, p, idx)
	assert.ErrorIs(t, err, river.ErrUnknownLineage)
}
