package cluster_test

import (
	"fmt"
	"testing"

	"github.com/veratlas/lintide/cluster"
	"github.com/veratlas/lintide/lintree"
)

// benchTaxonomy builds a balanced taxonomy with the given fanout and
// depth, and a prevalence vector concentrated on the leaves.
func benchTaxonomy(b *testing.B, fanout, depth int) (*lintree.Tree, cluster.Prevalence) {
	b.Helper()
	var recs []lintree.Record
	prev := cluster.Prevalence{}
	var grow func(name string, level int)
	grow = func(name string, level int) {
		rec := lintree.Record{Name: name, Alias: name}
		if level > 0 {
			rec.Parent = parentName(name)
		}
		if level < depth {
			for i := 0; i < fanout; i++ {
				child := fmt.Sprintf("%s.%d", name, i)
				rec.Children = append(rec.Children, child)
			}
		} else {
			prev[name] = 1
		}
		recs = append(recs, rec)
		for _, c := range rec.Children {
			grow(c, level+1)
		}
	}
	grow("L", 0)

	tree, _, err := lintree.Build(recs)
	if err != nil {
		b.Fatalf("build taxonomy: %v", err)
	}

	return tree, prev
}

func parentName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}

	return ""
}

// BenchmarkSplit_Fanout4Depth4 clusters a 341-node taxonomy into 12 buckets.
func BenchmarkSplit_Fanout4Depth4(b *testing.B) {
	tree, prev := benchTaxonomy(b, 4, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cluster.Split(tree, prev, 12, 0.1); err != nil {
			b.Fatalf("split: %v", err)
		}
	}
}

// BenchmarkAggregates_Fanout4Depth5 runs the cold full pass on a
// 1365-node taxonomy.
func BenchmarkAggregates_Fanout4Depth5(b *testing.B) {
	tree, prev := benchTaxonomy(b, 4, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cluster.Aggregates(tree, prev)
	}
}
