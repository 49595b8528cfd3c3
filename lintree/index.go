package lintree

import "sort"

// Index is a read-only, name-ordered view over a built tree: the
// name→node mapping plus the sorted alias list used for rank-based color
// assignment. Build it once per tree (Build and ReadSnapshot already do)
// and share it freely.
type Index struct {
	byName  map[string]*Node
	names   []string // sorted node names, including RootName
	aliases []string // sorted node aliases, including the root's
}

// NewIndex builds an Index by one full post-order traversal of the tree.
// Complexity: O(N log N).
func NewIndex(t *Tree) *Index {
	idx := &Index{byName: make(map[string]*Node, t.Size())}
	t.Walk(func(n *Node) {
		idx.byName[n.Name] = n
		idx.names = append(idx.names, n.Name)
		idx.aliases = append(idx.aliases, n.Alias)
	})
	sort.Strings(idx.names)
	sort.Strings(idx.aliases)

	return idx
}

// Get returns the node with the given name, or false if no such lineage
// is attached to the tree.
func (idx *Index) Get(name string) (*Node, bool) {
	n, ok := idx.byName[name]

	return n, ok
}

// Len returns the number of indexed nodes.
func (idx *Index) Len() int { return len(idx.byName) }

// Names returns the sorted node names. The slice is owned by the Index;
// callers must not mutate it.
func (idx *Index) Names() []string { return idx.names }

// Aliases returns the sorted node aliases. The slice is owned by the
// Index; callers must not mutate it.
func (idx *Index) Aliases() []string { return idx.aliases }

// AliasRank returns the insertion position of alias within the sorted
// alias list (sort.SearchStrings semantics). Used to spread display hues
// by taxonomic ordering.
func (idx *Index) AliasRank(alias string) int {
	return sort.SearchStrings(idx.aliases, alias)
}
