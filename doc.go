// Package lintide turns raw lineage-prevalence time series into a small,
// visually coherent set of aggregated groups ready for a stacked "river"
// chart — from taxonomy tree building to baseline smoothing.
//
// 🚀 What is lintide?
//
//	A synchronous, pure-computation library that brings together:
//		• Taxonomy trees: parse flat lineage records into an immutable rooted tree
//		• Recursive aggregation: subtree prevalence with exclusion frontiers
//		• Greedy clustering: bounded partitions into inclusive/exclusive buckets
//		• Signal binning: weighted date-bin × category aggregation
//		• River-plot prep: cluster projection, shear-minimizing baselines, hues
//
// ✨ Why choose lintide?
//
//   - Deterministic – injected RNG seeds, stable tie-breaks, no hidden state
//   - NaN-tolerant – bad bins propagate as missing values, never as errors
//   - Share-friendly – trees and indices are immutable and safe to share
//   - Pure Go – no cgo, no network, no disk beyond optional tree snapshots
//
// Under the hood, everything is organized under four subpackages:
//
//	lintree/ — taxonomy records, tree builder, lineage index, snapshots
//	cluster/ — recursive aggregator, greedy splitter, meta-group assembler
//	signal/  — long-format samples → date-bin × category matrices
//	river/   — cluster projection, baseline optimizer, color assignment
//
// Quick ASCII example:
//
//	        *
//	       ╱ ╲
//	      A   …
//	     ╱ ╲
//	    B   C        cluster → {D}, {C}, {other B}
//	    │
//	    D
//
// Dive into the package docs for full examples and the property
// guarantees each component upholds.
//
//	go get github.com/veratlas/lintide
package lintide
