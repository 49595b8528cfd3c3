package lintree_test

import (
	"fmt"
	"strings"

	"github.com/veratlas/lintide/lintree"
)

// ExampleBuild parses a tiny taxonomy document and walks the built tree.
//
// Scenario:
//
//	A root lineage "B.1" with two children; the synthetic "*" adopts the
//	root. Lindex values follow lexicographic name rank.
func ExampleBuild() {
	doc := `
- name: B.1
  alias: B.1
  children: [B.1.1, B.1.2]
- name: B.1.1
  alias: BA
  parent: B.1
- name: B.1.2
  alias: BB
  parent: B.1
`
	recs, err := lintree.ParseRecords(strings.NewReader(doc))
	if err != nil {
		fmt.Println("parse:", err)

		return
	}
	tree, idx, err := lintree.Build(recs)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	fmt.Println("size:", tree.Size())
	for _, name := range idx.Names() {
		n, _ := idx.Get(name)
		fmt.Printf("%s lindex=%d parent=%s\n", n.Name, n.Lindex, n.Parent().Name)
	}
	// Output:
	// size: 4
	// * lindex=0 parent=*
	// B.1 lindex=1 parent=*
	// B.1.1 lindex=2 parent=B.1
	// B.1.2 lindex=3 parent=B.1
}
