package cluster

import (
	"sort"

	"github.com/veratlas/lintide/lintree"
)

// GatherGroups assembles the partition's members into ordered display
// groups for legend nesting.
//
// Each round scores every remaining V member by
//
//	countScores[k] · Aggregate(member)        k = selected descendants left
//
// (scores beyond the table's length count as 0) and anchors a new group at
// the maximizer. The anchor and its remaining selected descendants form
// the group, sorted by alias, and leave further consideration. Once V is
// exhausted, leftover U members become singleton groups. Groups are
// returned sorted by anchor alias, descending.
//
// Aggregates here are full subtree sums: grouping reflects the total mass
// a branch represents, not its exclusive remainder.
func GatherGroups(p Partition, prev Prevalence, countScores []float64) []Group {
	remaining := p.Selected()
	pendingV := append([]*lintree.Node(nil), p.V...)

	var groups []Group
	for len(pendingV) > 0 {
		best := -1
		bestScore := 0.0
		for i, v := range pendingV {
			k := len(selectedDescendants(v, remaining))
			score := 0.0
			if k < len(countScores) {
				score = countScores[k] * Aggregate(v, prev, nil)
			}
			if best < 0 || score > bestScore {
				best, bestScore = i, score
			}
		}

		anchor := pendingV[best]
		members := append(selectedDescendants(anchor, remaining), anchor)
		sort.Slice(members, func(a, b int) bool { return members[a].Alias < members[b].Alias })
		groups = append(groups, Group{Anchor: anchor, Members: members})

		for _, m := range members {
			delete(remaining, m.Name)
		}
		kept := pendingV[:0]
		for _, v := range pendingV {
			if remaining.Has(v.Name) {
				kept = append(kept, v)
			}
		}
		pendingV = kept
	}

	// Whatever U members no anchor absorbed stand alone.
	for _, u := range p.U {
		if remaining.Has(u.Name) {
			groups = append(groups, Group{Anchor: u, Members: []*lintree.Node{u}})
		}
	}

	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Anchor.Alias > groups[b].Anchor.Alias })

	return groups
}

// selectedDescendants collects the strict descendants of n that are still
// in the given set, in post-order.
func selectedDescendants(n *lintree.Node, set NodeSet) []*lintree.Node {
	var out []*lintree.Node
	var rec func(*lintree.Node)
	rec = func(m *lintree.Node) {
		for _, c := range m.Children {
			rec(c)
			if set.Has(c.Name) {
				out = append(out, c)
			}
		}
	}
	rec(n)

	return out
}
