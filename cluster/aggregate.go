package cluster

import "github.com/veratlas/lintide/lintree"

// Aggregate returns the total prevalence of node's subtree under the given
// exclusion set: the node's own entry (0 if absent) plus the recursive sum
// over children not in exclude. A child found in exclude hides its entire
// subtree, not just its own value. Negative results are clipped to 0 so
// incremental updates elsewhere cannot underflow below zero.
//
// Aggregate is pure and referentially transparent given (node, prev,
// exclude); a nil exclude set means "exclude nothing".
//
// Complexity: O(size of the non-excluded subtree).
func Aggregate(node *lintree.Node, prev Prevalence, exclude NodeSet) float64 {
	total := prev[node.Name]
	for _, c := range node.Children {
		if exclude.Has(c.Name) {
			continue
		}
		total += Aggregate(c, prev, exclude)
	}
	if total < 0 {
		return 0
	}

	return total
}

// Aggregates runs one cold post-order pass over the whole tree, returning
// a flat array indexed by Lindex where entry i is the full subtree
// aggregate of the node with Lindex i (no exclusions). Each caller owns
// its returned array; Split mutates its copy incrementally.
//
// Complexity: O(N) time, O(Span) space.
func Aggregates(t *lintree.Tree, prev Prevalence) []float64 {
	aggs := make([]float64, t.Span())
	t.Walk(func(n *lintree.Node) {
		total := prev[n.Name]
		for _, c := range n.Children {
			total += aggs[c.Lindex]
		}
		if total < 0 {
			total = 0
		}
		aggs[n.Lindex] = total
	})

	return aggs
}

// propagate applies a signed delta to every strict ancestor of n within
// the exclusion frontier: the walk stops after updating the first ancestor
// that is itself selected (nodes above it never counted n's branch).
// Results are clipped at 0, mirroring Aggregate's underflow guard.
//
// An incremental propagate after adding or removing one selected node
// leaves the aggregate array identical (within floating tolerance) to a
// full recomputation against the new exclusion set.
func propagate(n *lintree.Node, delta float64, selected NodeSet, aggs []float64) {
	for a := n.Parent(); ; a = a.Parent() {
		aggs[a.Lindex] += delta
		if aggs[a.Lindex] < 0 {
			aggs[a.Lindex] = 0
		}
		if selected.Has(a.Name) || a.IsRoot() {
			return
		}
	}
}
