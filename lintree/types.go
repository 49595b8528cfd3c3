// Package lintree declares the Record, Node, Tree and Index types and the
// sentinel errors shared by the builder, parser and snapshot codec.
package lintree

import "errors"

// RootName is the name of the synthetic root node that adopts every
// parentless lineage. It is reserved: no taxonomy record may use it.
const RootName = "*"

// Sentinel errors for taxonomy construction and persistence.
var (
	// ErrMalformedTaxonomy indicates the record list cannot form a single
	// rooted tree: a duplicate or reserved name, a missing parent reference,
	// or a parent/child cycle. No partial tree is ever returned.
	ErrMalformedTaxonomy = errors.New("lintree: malformed taxonomy")

	// ErrBadSnapshot indicates a snapshot stream could not be decoded back
	// into a tree.
	ErrBadSnapshot = errors.New("lintree: bad snapshot")
)

// Record is one flat taxonomy entry, the shape produced by decoding an
// outbreak-style lineages document. A Record with an empty Parent is a root
// lineage and will be adopted by the synthetic RootName node.
type Record struct {
	// Name uniquely identifies the lineage.
	Name string `yaml:"name" json:"name"`

	// Parent names the lineage's single parent; empty for root lineages.
	Parent string `yaml:"parent,omitempty" json:"parent,omitempty"`

	// Alias is a short display name, often identical to Name.
	Alias string `yaml:"alias" json:"alias"`

	// Children lists the names of this lineage's children. Entries that do
	// not resolve to a known record, or whose own Parent disagrees, are
	// ignored during Build (the Parent field is authoritative).
	Children []string `yaml:"children,omitempty" json:"children,omitempty"`
}

// Node is one taxonomic unit in a built tree. Nodes are immutable after
// Build: any "mutation" rebuilds the whole tree.
type Node struct {
	// Name is the unique string key of this lineage.
	Name string

	// Alias is the short display name (may equal Name).
	Alias string

	// Lindex is a dense integer in [0, Tree.Span()), assigned once at build
	// time by lexicographic name rank. Use it to index flat aggregate arrays.
	Lindex int

	// Children are owned by the tree; callers must not mutate the slice.
	Children []*Node

	parent *Node
}

// Parent returns this node's parent. The root is its own parent.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n is the synthetic root.
func (n *Node) IsRoot() bool { return n.parent == n }

// Tree is an immutable rooted lineage tree.
type Tree struct {
	root *Node
	size int // nodes reachable from root, including the root
	span int // 1 + highest Lindex; length for aggregate arrays
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of nodes in the tree, including the root.
func (t *Tree) Size() int { return t.size }

// Span returns the length required for a flat per-Lindex array. Span may
// exceed Size when some named records were never attached to the tree
// (their Lindex ranks are still reserved).
func (t *Tree) Span() int { return t.span }

// Walk visits every node of the tree in post-order (children before their
// parent), calling fn once per node. Complexity: O(Size).
func (t *Tree) Walk(fn func(*Node)) {
	var rec func(*Node)
	rec = func(n *Node) {
		for _, c := range n.Children {
			rec(c)
		}
		fn(n)
	}
	rec(t.root)
}
