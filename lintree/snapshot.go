package lintree

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
)

// snapshotNode is the persisted form of one tree node. The snapshot nests
// children and stores the parent by name, so the stream stays acyclic.
type snapshotNode struct {
	Name     string          `json:"name"`
	Lindex   int             `json:"lindex"`
	Alias    string          `json:"alias"`
	Parent   string          `json:"parent"`
	Children []*snapshotNode `json:"children"`
	Span     int             `json:"span,omitempty"` // recorded on the root only
}

// WriteSnapshot serializes a built tree as gzip-compressed JSON so later
// runs can skip re-parsing the taxonomy document. The byte layout is an
// implementation detail, not a cross-version compatibility contract.
func WriteSnapshot(w io.Writer, t *Tree) error {
	var freeze func(n *Node) *snapshotNode
	freeze = func(n *Node) *snapshotNode {
		s := &snapshotNode{Name: n.Name, Lindex: n.Lindex, Alias: n.Alias, Parent: n.parent.Name}
		for _, c := range n.Children {
			s.Children = append(s.Children, freeze(c))
		}

		return s
	}
	frozen := freeze(t.root)
	frozen.Span = t.span

	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(frozen); err != nil {
		gz.Close()

		return fmt.Errorf("lintree: encode snapshot: %w", err)
	}

	return gz.Close()
}

// ReadSnapshot restores a tree and its Index from a stream produced by
// WriteSnapshot. Fails with ErrBadSnapshot if the stream does not decode
// into a rooted tree.
func ReadSnapshot(r io.Reader) (*Tree, *Index, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	defer gz.Close()

	var frozen snapshotNode
	if err = json.NewDecoder(gz).Decode(&frozen); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if frozen.Name != RootName {
		return nil, nil, fmt.Errorf("%w: root is %q, want %q", ErrBadSnapshot, frozen.Name, RootName)
	}

	size := 0
	span := frozen.Span
	var thaw func(s *snapshotNode, parent *Node) *Node
	thaw = func(s *snapshotNode, parent *Node) *Node {
		n := &Node{Name: s.Name, Alias: s.Alias, Lindex: s.Lindex}
		if parent == nil {
			n.parent = n // root is its own parent
		} else {
			n.parent = parent
		}
		size++
		if s.Lindex >= span {
			span = s.Lindex + 1
		}
		for _, c := range s.Children {
			n.Children = append(n.Children, thaw(c, n))
		}

		return n
	}
	root := thaw(&frozen, nil)

	tree := &Tree{root: root, size: size, span: span}

	return tree, NewIndex(tree), nil
}
