// Package river prepares clustered prevalence signals for a stacked
// "river" chart: it projects a signal table onto a cluster partition,
// finds a shear-minimizing vertical baseline, and assigns display hues.
//
// 🚀 What is river?
//
//	The last computational stop before rendering:
//	  • Project — maps a date-bin × lineage table onto a Partition's
//	    buckets, ordered by alias, labeled plainly for inclusive members
//	    and "other …" for exclusive ones, with low-coverage rows marked
//	    missing and the residual folded into the catch-all bucket so every
//	    valid row sums to exactly 1.
//	  • Baseline — a stochastic hill-climb over per-row vertical offsets,
//	    minimizing the squared consecutive differences ("shear") of the stacked
//	    cumulative sums. Accepts only strict improvements; worst case it
//	    returns the initial offset unchanged.
//	  • Colors — deterministic HSV hues spread by squared alias rank, with
//	    a value-channel bonus to set inclusive groups apart.
//
// ✨ Guarantees:
//   - Project: every non-missing output row sums to 1 within 1e-6.
//   - Baseline: the shear score of the returned offsets never exceeds the
//     score of the initial -load/2 offsets. Determinism comes from the
//     injected seed; the search itself is local and best-effort.
//   - Colors: identical inputs yield identical hues.
//
// ⚙️ Usage:
//
//	out, names, inclusive, err := river.Project(tbl, part, idx)
//	offsets := river.Baseline(out.Values, loads, river.DefaultBaselineOptions())
//	hues, err := river.Colors(names, inclusive, idx)
//
// Complexity: Project O(rows · tree), Baseline O(iterations · rows · cols).
package river
