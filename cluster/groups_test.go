package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veratlas/lintide/cluster"
	"github.com/veratlas/lintide/lintree"
)

// TestGatherGroups_Scenario walks the A/B/C/D partition by hand.
//
// With four members {*, A, B} in V and {D} in U, the anchor scores are
// driven by selected-descendant counts: A (two descendants left) wins the
// first round and absorbs B and D; the root anchors its own group last.
func TestGatherGroups_Scenario(t *testing.T) {
	tree, _ := scenarioTree(t)
	prev := scenarioPrevalence()

	p, err := cluster.Split(tree, prev, 4, 0)
	require.NoError(t, err)

	groups := cluster.GatherGroups(p, prev, []float64{0, 1, 2})
	require.Len(t, groups, 2)

	// Sorted by anchor alias, descending: "A" before "*".
	assert.Equal(t, "A", groups[0].Anchor.Name)
	assert.Equal(t, []string{"A", "B", "D"}, names(groups[0].Members), "members sorted by alias")
	assert.Equal(t, lintree.RootName, groups[1].Anchor.Name)
	assert.Equal(t, []string{lintree.RootName}, names(groups[1].Members))
}

// TestGatherGroups_PartitionsSelection: every selected member lands in
// exactly one group, and each group stays inside its anchor's subtree.
func TestGatherGroups_PartitionsSelection(t *testing.T) {
	tree, prev := widerTree(t)

	p, err := cluster.Split(tree, prev, 7, 0.2)
	require.NoError(t, err)

	groups := cluster.GatherGroups(p, prev, []float64{0, 1, 2, 2, 1})

	seen := map[string]int{}
	for _, g := range groups {
		require.NotEmpty(t, g.Members)
		for _, m := range g.Members {
			seen[m.Name]++
			assert.True(t, m == g.Anchor || isDescendant(m, g.Anchor),
				"%s must sit under anchor %s", m.Name, g.Anchor.Name)
		}
	}
	for _, n := range append(append([]*lintree.Node{}, p.U...), p.V...) {
		assert.Equal(t, 1, seen[n.Name], "%s grouped exactly once", n.Name)
	}
}

// TestGatherGroups_LeftoverSingletons: a U member outside every anchor's
// subtree ends up as its own singleton group.
func TestGatherGroups_LeftoverSingletons(t *testing.T) {
	_, idx, err := lintree.Build([]lintree.Record{
		{Name: "A", Alias: "A", Children: []string{"B"}},
		{Name: "B", Alias: "B", Parent: "A"},
		{Name: "X", Alias: "X"},
	})
	require.NoError(t, err)

	a, _ := idx.Get("A")
	b, _ := idx.Get("B")
	x, _ := idx.Get("X")
	p := cluster.Partition{U: []*lintree.Node{b, x}, V: []*lintree.Node{a}}
	prev := cluster.Prevalence{"B": 0.5, "X": 0.5}

	groups := cluster.GatherGroups(p, prev, []float64{0, 1})
	require.Len(t, groups, 2)

	// Anchor aliases descending: X before A.
	assert.Equal(t, "X", groups[0].Anchor.Name)
	assert.Equal(t, []string{"X"}, names(groups[0].Members))
	assert.Equal(t, "A", groups[1].Anchor.Name)
	assert.Equal(t, []string{"A", "B"}, names(groups[1].Members))
}

func names(nodes []*lintree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

func isDescendant(n, ancestor *lintree.Node) bool {
	for cur := n; !cur.IsRoot(); cur = cur.Parent() {
		if cur.Parent() == ancestor {
			return true
		}
	}

	return false
}
