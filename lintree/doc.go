// Package lintree builds immutable phylogenetic lineage trees from flat
// taxonomy records, and provides the ordered lineage index and optional
// compressed snapshots used by the downstream clustering layers.
//
// 🚀 What is lintree?
//
//	The taxonomy entry point of lintide:
//	  • Parse a flat record list (name, parent, alias, children) — e.g. a
//	    decoded lineages.yml document — into a single rooted tree.
//	  • Every node receives a dense integer Lindex in [0, Span), assigned by
//	    lexicographic name rank, so aggregate state can live in flat arrays.
//	  • A synthetic root "*" adopts every parentless lineage.
//	  • Build an Index: the name→node mapping plus sorted alias ranks.
//	  • Persist/restore the built tree as an opaque gzip-compressed snapshot
//	    to skip re-parsing the taxonomy on every run.
//
// ✨ Guarantees:
//   - Single rooted tree, no cycles; construction fails atomically with
//     ErrMalformedTaxonomy on a missing parent reference or a cycle.
//   - Nodes are immutable after Build; trees and indices are safe to share
//     read-only across any number of concurrent clustering calls.
//   - Lindex values are unique and stable for the lifetime of one tree.
//
// ⚙️ Usage:
//
//	recs, err := lintree.ParseRecords(f)        // YAML taxonomy document
//	tree, idx, err := lintree.Build(recs)
//	node, ok := idx.Get("BA.2")
//
// Complexity: Build is O(N log N) for the name sort plus O(N) construction.
//
// See example_test.go for a complete round trip.
package lintree
