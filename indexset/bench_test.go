package indexset_test

import (
	"testing"

	"github.com/katalvlaran/sparsead/indexset"
)

// benchShapes builds two interleaved shapes of size n.
func benchShapes(n int) (indexset.Shape, indexset.Shape) {
	a := make([]int, n)
	b := make([]int, n)
	for i := 0; i < n; i++ {
		a[i] = 2 * i
		b[i] = 3 * i
	}

	return indexset.MustNew(a...), indexset.MustNew(b...)
}

// BenchmarkUnion_64 measures the merge-walk union on 64-entry shapes.
func BenchmarkUnion_64(b *testing.B) {
	x, y := benchShapes(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = indexset.Union(x, y, nil)
	}
}

// BenchmarkContains_1024 measures binary-search lookups.
func BenchmarkContains_1024(b *testing.B) {
	x, _ := benchShapes(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Contains(i % 2048)
	}
}
