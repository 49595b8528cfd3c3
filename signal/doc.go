// Package signal reduces long-format sample tables (date, category, value,
// weight) into date-bin × category matrices of weighted aggregates — the
// prevalence signal consumed by the projection and river-plot layers.
//
// 🚀 What is signal?
//
//	One operation, Aggregate, plus its Table result:
//	  • Partition [start, end] into half-open bins of a fixed width (or a
//	    single bin when no width is set); the range is padded by one day on
//	    each side and rows outside every bin are dropped.
//	  • Per (bin, category): sum(value·weight). Normalizing divides by the
//	    bin's total value·weight mass (a weighted share per bin); otherwise
//	    by the pair's weight sum (a weighted mean per cell).
//	  • Category labels carrying a "-like" suffix merge into their base
//	    name after aggregation, summing the aggregated cells.
//
// ✨ Numerical contract:
//   - A bin with no usable samples (or zero total mass) yields NaN for
//     every category — never a division error. Callers aggregating many
//     bins are not halted by one bad bin.
//   - NaN values or weights in the input are treated as missing rows.
//
// ⚙️ Usage:
//
//	opts := signal.DefaultOptions()       // 7-day bins, normalized
//	tbl, err := signal.Aggregate(samples, opts)
//	row := tbl.Row(3)                     // map[category]value for bin 3
//
// Complexity: O(S + B·C) for S samples, B bins, C categories.
package signal
