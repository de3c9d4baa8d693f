package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsead/sparse"
)

func benchArray(n, stride int) sparse.Array[sparse.Real] {
	idx := make([]int, n)
	vals := make([]float64, n)
	for i := range idx {
		idx[i] = i * stride
		vals[i] = float64(i) + 0.5
	}

	return sparse.MustFromPairs(idx, sparse.Reals(vals...))
}

// BenchmarkAdd_128 measures union-shaped addition.
func BenchmarkAdd_128(b *testing.B) {
	x, y := benchArray(128, 2), benchArray(128, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sparse.Add(x, y)
	}
}

// BenchmarkMul_128 measures intersection-shaped multiplication.
func BenchmarkMul_128(b *testing.B) {
	x, y := benchArray(128, 2), benchArray(128, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sparse.Mul(x, y)
	}
}
