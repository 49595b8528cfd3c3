package lintree

import (
	"fmt"
	"sort"
)

// Build constructs an immutable rooted tree and its Index from a flat,
// unordered record list.
//
// Algorithm:
//  1. Collect all record names plus RootName, sort lexicographically, and
//     assign each its rank as Lindex.
//  2. Recursively attach children: a child listed in rec.Children is
//     attached iff a record of that name exists and names rec as its
//     Parent (the Parent field is authoritative).
//  3. Records without a Parent become children of the synthetic root.
//     Records without an Alias alias themselves.
//
// Build fails with ErrMalformedTaxonomy (wrapped with detail) when a name
// repeats or equals RootName, when a Parent references an unknown record,
// or when the parent/child references form a cycle. No partial tree is
// returned on error.
//
// Complexity: O(N log N) time for the sort, O(N) construction.
func Build(records []Record) (*Tree, *Index, error) {
	byName := make(map[string]Record, len(records))
	names := make([]string, 0, len(records)+1)
	names = append(names, RootName)
	for _, rec := range records {
		if rec.Name == RootName {
			return nil, nil, fmt.Errorf("%w: name %q is reserved", ErrMalformedTaxonomy, RootName)
		}
		if _, dup := byName[rec.Name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate name %q", ErrMalformedTaxonomy, rec.Name)
		}
		byName[rec.Name] = rec
		names = append(names, rec.Name)
	}
	for _, rec := range records {
		if rec.Parent != "" {
			if _, ok := byName[rec.Parent]; !ok {
				return nil, nil, fmt.Errorf("%w: parent %q of %q not found", ErrMalformedTaxonomy, rec.Parent, rec.Name)
			}
		}
	}
	if err := checkParentChains(records, byName); err != nil {
		return nil, nil, err
	}
	sort.Strings(names)
	lindex := make(map[string]int, len(names))
	for i, name := range names {
		lindex[name] = i
	}

	root := &Node{Name: RootName, Alias: RootName, Lindex: lindex[RootName]}
	root.parent = root

	size := 1
	var attach func(parent *Node, rec Record) *Node
	attach = func(parent *Node, rec Record) *Node {
		alias := rec.Alias
		if alias == "" {
			alias = rec.Name
		}
		n := &Node{Name: rec.Name, Alias: alias, Lindex: lindex[rec.Name], parent: parent}
		size++
		for _, childName := range rec.Children {
			child, ok := byName[childName]
			if !ok || child.Parent != rec.Name {
				continue
			}
			n.Children = append(n.Children, attach(n, child))
		}

		return n
	}

	for _, rec := range records {
		if rec.Parent != "" {
			continue
		}
		root.Children = append(root.Children, attach(root, rec))
	}

	tree := &Tree{root: root, size: size, span: len(names)}

	return tree, NewIndex(tree), nil
}

// checkParentChains verifies that every Parent chain terminates at a root
// record; a chain that revisits itself is a cycle. Amortized O(N): chains
// proven good are memoized.
func checkParentChains(records []Record, byName map[string]Record) error {
	good := make(map[string]bool, len(records))
	for _, rec := range records {
		onPath := make(map[string]bool)
		var path []string
		for cur := rec; ; {
			if cur.Parent == "" || good[cur.Name] {
				break
			}
			if onPath[cur.Name] {
				return fmt.Errorf("%w: cycle through %q", ErrMalformedTaxonomy, cur.Name)
			}
			onPath[cur.Name] = true
			path = append(path, cur.Name)
			cur = byName[cur.Parent]
		}
		for _, name := range path {
			good[name] = true
		}
	}

	return nil
}
