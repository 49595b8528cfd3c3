// Package cluster partitions a lineage tree into a bounded set of
// representative prevalence buckets, and assembles those buckets into
// legend-friendly meta-groups.
//
// 🚀 What is cluster?
//
//	Three tightly coupled pieces over a lintree.Tree:
//	  • Aggregate — the recursive subtree-prevalence reducer. Given a node,
//	    a sparse prevalence vector and an exclusion set, it returns the
//	    node's own mass plus everything below it that is not cut off by an
//	    excluded branch (an excluded child hides its whole subtree).
//	  • Split — a greedy refinement loop. Starting from {root}, it
//	    repeatedly splits the member whose best unselected child still
//	    holds significant mass, reclassifying members into U ("inclusive":
//	    bucket = full subtree) and V ("exclusive": bucket = subtree minus
//	    selected descendants), with a minimum-size prune that merges
//	    negligible V members back into their ancestors.
//	  • GatherGroups — a greedy roll-up of V anchors and their selected
//	    descendants into ordered display groups.
//
// ✨ Guarantees:
//   - A successful Split returns exactly n members whose bucket values sum
//     to the total tree prevalence (within floating tolerance): nothing is
//     double-counted, nothing is dropped.
//   - All selection and tie-breaking iterates members in insertion order,
//     so results are deterministic for a given tree and prevalence vector.
//   - Aggregate is pure; Split owns its per-call aggregate array, so any
//     number of Split calls may run concurrently over one shared tree.
//
// ⚙️ Usage:
//
//	part, err := cluster.Split(tree, prev, 8, 0.15)
//	groups := cluster.GatherGroups(part, prev, []float64{0, 1, 2, 2})
//
// Complexity: Split is O(n · (k + depth)) after an O(N) cold aggregation
// pass, where k is the member count and depth the taxonomy depth.
package cluster
