package cluster

import (
	"fmt"

	"github.com/veratlas/lintide/lintree"
)

// splitBonus is the weight of a member's own aggregate when scoring split
// targets. The bonus breaks ties toward heavy members without letting a
// member with no worthwhile child block progress.
const splitBonus = 0.1

// Split greedily partitions the tree into exactly n representative members
// (U ∪ V) for one prevalence snapshot.
//
// Starting from U = {root}, V = {}, each iteration:
//  1. Picks the split target: the member maximizing
//     agg(member)·0.1 + max(agg(child) over unselected children).
//  2. Adds the target's heaviest unselected child to the selection.
//  3. Subtracts the child's aggregate from its ancestors up to the
//     exclusion frontier, converting their buckets to exclusive ones.
//  4. Reclassifies: the target moves to V; the child joins V if its own
//     subtree already contains selected members, else U.
//  5. Prunes at most once: while U and V\{root} each hold at least two
//     members, a V member whose aggregate falls below alpha times the mean
//     U aggregate is merged back into its ancestors. A member merges back
//     at most once per Split call; a pruned member that gets re-added
//     stays, so the refinement always reaches n.
//
// alpha must be in [0, 1); larger values prune more aggressively. Returns
// ErrUnreachableTargetSize when n exceeds the tree's node count,
// ErrBadTargetSize when n < 1, ErrBadAlpha on an out-of-range alpha.
//
// Selection ties resolve to the first-encountered member in insertion
// order, so the result is deterministic given (tree, prev, n, alpha).
//
// Complexity: O(N) cold pass, then O(n·(members + depth)) refinement.
func Split(tree *lintree.Tree, prev Prevalence, n int, alpha float64) (Partition, error) {
	if tree == nil {
		return Partition{}, ErrNilTree
	}
	if n < 1 {
		return Partition{}, fmt.Errorf("%w: got %d", ErrBadTargetSize, n)
	}
	if n > tree.Size() {
		return Partition{}, fmt.Errorf("%w: want %d members from %d nodes", ErrUnreachableTargetSize, n, tree.Size())
	}
	if alpha < 0 || alpha >= 1 {
		return Partition{}, fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}

	aggs := Aggregates(tree, prev)
	root := tree.Root()
	members := []*lintree.Node{root} // insertion order drives tie-breaks
	selected := NewNodeSet(root)
	inV := make(map[string]bool, n)
	pruned := make(map[string]bool)

	for len(members) < n {
		target, child := pickSplit(members, selected, aggs)
		if child == nil {
			return Partition{}, fmt.Errorf("%w: no splittable member left at %d of %d", ErrUnreachableTargetSize, len(members), n)
		}

		// Ancestors no longer see the child's branch.
		propagate(child, -aggs[child.Lindex], selected, aggs)

		inV[target.Name] = true
		if subtreeHasSelected(child, selected) {
			inV[child.Name] = true
		}
		members = append(members, child)
		selected.Add(child)

		// At most one merge-back per iteration, by contract, and each name
		// at most once per call: a bounded prune count is what guarantees
		// the loop terminates at exactly n members. The member added above
		// is also exempt, since removing it would revert the iteration.
		members = pruneOnce(members, child, selected, inV, pruned, aggs, alpha)
	}

	var p Partition
	for _, m := range members {
		if inV[m.Name] {
			p.V = append(p.V, m)
		} else {
			p.U = append(p.U, m)
		}
	}

	return p, nil
}

// pickSplit returns the best split target and its heaviest unselected
// child. Members without unselected children are not candidates. Returns
// (nil, nil) when no member can be split further.
func pickSplit(members []*lintree.Node, selected NodeSet, aggs []float64) (target, child *lintree.Node) {
	bestScore := 0.0
	for _, m := range members {
		var (
			bestChild *lintree.Node
			childAgg  float64
		)
		for _, c := range m.Children {
			if selected.Has(c.Name) {
				continue
			}
			if bestChild == nil || aggs[c.Lindex] > childAgg {
				bestChild = c
				childAgg = aggs[c.Lindex]
			}
		}
		if bestChild == nil {
			continue
		}
		score := aggs[m.Lindex]*splitBonus + childAgg
		if target == nil || score > bestScore {
			target, child, bestScore = m, bestChild, score
		}
	}

	return target, child
}

// pruneOnce merges back the lightest V member when its aggregate falls
// below alpha times the mean U aggregate. It runs at most one merge-back
// per call, and only while both U and V\{root} keep two members. The root,
// the just-added member, and members already merged back once (recorded in
// pruned) are never candidates.
func pruneOnce(members []*lintree.Node, added *lintree.Node, selected NodeSet, inV, pruned map[string]bool, aggs []float64, alpha float64) []*lintree.Node {
	var (
		meanU  float64
		countU int
		countV int
		vmin   *lintree.Node
	)
	for _, m := range members {
		if !inV[m.Name] {
			meanU += aggs[m.Lindex]
			countU++

			continue
		}
		if m.IsRoot() {
			continue
		}
		countV++
		if m == added || pruned[m.Name] {
			continue
		}
		if vmin == nil || aggs[m.Lindex] < aggs[vmin.Lindex] {
			vmin = m
		}
	}
	if countU < 2 || countV < 2 || vmin == nil {
		return members
	}
	meanU /= float64(countU)
	if aggs[vmin.Lindex] >= alpha*meanU {
		return members
	}

	// Merge back: the removed member's exclusive mass returns to its
	// ancestors (inverse of the subtraction done when it was added).
	delete(selected, vmin.Name)
	delete(inV, vmin.Name)
	pruned[vmin.Name] = true
	propagate(vmin, aggs[vmin.Lindex], selected, aggs)
	for i, m := range members {
		if m == vmin {
			members = append(members[:i], members[i+1:]...)

			break
		}
	}

	// An ancestor that just lost its only selected descendant is inclusive
	// again.
	for _, m := range members {
		if inV[m.Name] && !m.IsRoot() && !subtreeHasSelected(m, selected) {
			delete(inV, m.Name)
		}
	}

	return members
}

// subtreeHasSelected reports whether any strict descendant of n is in the
// selected set.
func subtreeHasSelected(n *lintree.Node, selected NodeSet) bool {
	for _, c := range n.Children {
		if selected.Has(c.Name) || subtreeHasSelected(c, selected) {
			return true
		}
	}

	return false
}
