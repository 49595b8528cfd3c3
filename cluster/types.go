// Package cluster types: prevalence vectors, node sets, partitions and the
// sentinel errors returned by Split.
package cluster

import (
	"errors"
	"sort"

	"github.com/veratlas/lintide/lintree"
)

// Sentinel errors for partition construction.
var (
	// ErrUnreachableTargetSize indicates the requested member count exceeds
	// the number of nodes in the tree (or the greedy loop could not reach it).
	ErrUnreachableTargetSize = errors.New("cluster: target size unreachable")

	// ErrBadTargetSize indicates a non-positive target size.
	ErrBadTargetSize = errors.New("cluster: target size must be at least 1")

	// ErrBadAlpha indicates a pruning factor outside [0, 1).
	ErrBadAlpha = errors.New("cluster: alpha must be in [0, 1)")

	// ErrNilTree indicates a nil tree was supplied.
	ErrNilTree = errors.New("cluster: tree is nil")
)

// Prevalence is a sparse mapping from lineage name to a non-negative
// observed share or count; absent keys are implicitly zero.
type Prevalence map[string]float64

// NodeSet is an identity-based membership set over tree nodes, keyed by
// the unique lineage name (nodes are immutable value objects; structural
// equality is never needed).
type NodeSet map[string]*lintree.Node

// NewNodeSet builds a NodeSet from the given nodes.
func NewNodeSet(nodes ...*lintree.Node) NodeSet {
	s := make(NodeSet, len(nodes))
	for _, n := range nodes {
		s[n.Name] = n
	}

	return s
}

// Has reports whether the named node is a member.
func (s NodeSet) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Add inserts a node into the set.
func (s NodeSet) Add(n *lintree.Node) { s[n.Name] = n }

// Partition is the result of Split: two disjoint member lists selected
// from one tree.
//
// U members ("inclusive") have no selected descendant; their bucket is the
// full subtree sum. V members ("exclusive") carry selected descendants;
// their bucket is the subtree sum minus the subtrees of those descendants.
// Together the buckets cover the entire tree prevalence.
type Partition struct {
	U []*lintree.Node
	V []*lintree.Node
}

// Size returns the total member count |U ∪ V|.
func (p Partition) Size() int { return len(p.U) + len(p.V) }

// Selected returns U ∪ V as a NodeSet. The set doubles as the exclusion
// frontier when evaluating member buckets with Aggregate.
func (p Partition) Selected() NodeSet {
	s := make(NodeSet, p.Size())
	for _, n := range p.U {
		s.Add(n)
	}
	for _, n := range p.V {
		s.Add(n)
	}

	return s
}

// Members returns U ∪ V ordered by ascending alias, together with a
// parallel slice flagging inclusive (U) membership. This is the column
// order used for projection and display.
func (p Partition) Members() ([]*lintree.Node, []bool) {
	nodes := make([]*lintree.Node, 0, p.Size())
	inclusive := make([]bool, 0, p.Size())
	nodes = append(nodes, p.U...)
	nodes = append(nodes, p.V...)
	for range p.U {
		inclusive = append(inclusive, true)
	}
	for range p.V {
		inclusive = append(inclusive, false)
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return nodes[order[a]].Alias < nodes[order[b]].Alias
	})

	sortedNodes := make([]*lintree.Node, len(nodes))
	sortedFlags := make([]bool, len(nodes))
	for i, j := range order {
		sortedNodes[i] = nodes[j]
		sortedFlags[i] = inclusive[j]
	}

	return sortedNodes, sortedFlags
}

// Group is one display meta-group: an anchor (a V member, or a leftover U
// singleton) plus the selected members gathered under it, sorted by alias.
type Group struct {
	Anchor  *lintree.Node
	Members []*lintree.Node
}
