package sparse

import (
	"strings"

	"github.com/katalvlaran/sparsead/indexset"
)

// Matrix is a sparse vector of sparse rows: row i lives at index i of the
// outer set, and each row is an Array over column indices.
type Matrix[T Value[T]] struct {
	rows indexset.Set[Array[T]]
}

// NewMatrix adopts rows keyed by their row index.
func NewMatrix[T Value[T]](rows indexset.Set[Array[T]]) Matrix[T] {
	return Matrix[T]{rows: rows}
}

// Identity returns the matrix with one on the diagonal of shape.
func Identity[T Value[T]](shape indexset.Shape, one T, opts ...Option) Matrix[T] {
	mode := gatherOptions(opts...).mode

	return Matrix[T]{rows: indexset.WithPayload(shape, func(i int) Array[T] {
		row, _ := UnitVector(i, one, WithAccessMode(mode)) // i comes from a valid shape
		return row
	})}
}

// Outer returns the outer product a⊗b: row i is a_i·b for every i in a.
func Outer[T Value[T]](a, b Array[T]) Matrix[T] {
	return Matrix[T]{rows: indexset.Map(a.entries, func(_ int, ai T) Array[T] {
		return Map(b, func(_ int, bj T) T { return ai.Mul(bj) }).WithMode(a.mode)
	})}
}

// Rows returns the row shape.
func (m Matrix[T]) Rows() indexset.Shape { return m.rows.Shape() }

// Row returns row i, or the empty array when the row is absent.
func (m Matrix[T]) Row(i int) Array[T] {
	r, _ := m.rows.Lookup(i)
	return r
}

// At returns the entry (i, j), zero when absent.
func (m Matrix[T]) At(i, j int) T { return m.Row(i).Query(j) }

// Transpose swaps rows and columns.
func (m Matrix[T]) Transpose() Matrix[T] {
	var idx []int
	var cols []Array[T]
	m.rows.ForEach(func(i int, row Array[T]) {
		row.ForEach(func(j int, v T) {
			cell, _ := FromPairs([]int{i}, []T{v}, WithAccessMode(row.mode))
			idx = append(idx, j)
			cols = append(cols, cell)
		})
	})
	rows, _ := indexset.FromPairs(idx, cols, func(old, next Array[T]) Array[T] { return Add(old, next) })

	return Matrix[T]{rows: rows}
}

// MulVec returns m·v.
func (m Matrix[T]) MulVec(v Array[T]) Array[T] {
	return Array[T]{
		entries: indexset.Map(m.rows, func(_ int, row Array[T]) T { return Dot(row, v) }),
		mode:    v.mode,
	}
}

// String renders rows as "{(i,{(j,v), ...}), ...}".
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	k := 0
	m.rows.ForEach(func(i int, row Array[T]) {
		if k > 0 {
			b.WriteString(", ")
		}
		k++
		writeEntry(&b, i, row.String())
	})
	b.WriteByte('}')

	return b.String()
}
