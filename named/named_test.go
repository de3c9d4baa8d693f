package named_test

import (
	"testing"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/named"
	"github.com/katalvlaran/sparsead/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizes(pairs ...int) indexset.Set[int] {
	var axes, ext []int
	for i := 0; i+1 < len(pairs); i += 2 {
		axes = append(axes, pairs[i])
		ext = append(ext, pairs[i+1])
	}

	return indexset.MustFromPairs(axes, ext)
}

// layout21 is a 2×3 block with physical order (axis 2, axis 0).
func layout21(t *testing.T) named.Array[sparse.Real] {
	t.Helper()
	a, err := named.NewLayout([]int{2, 0}, []int{2, 3}, sparse.Reals(1, 2, 3, 4, 5, 6))
	require.NoError(t, err)

	return a
}

// TestNewLayout_Validation covers the constructor errors.
func TestNewLayout_Validation(t *testing.T) {
	_, err := named.NewLayout([]int{0, 0}, []int{1, 1}, sparse.Reals(1))
	assert.ErrorIs(t, err, named.ErrDuplicateAxis)

	_, err = named.NewLayout([]int{0}, []int{0}, sparse.Reals())
	assert.ErrorIs(t, err, named.ErrBadExtent)

	_, err = named.NewLayout([]int{0}, []int{3}, sparse.Reals(1, 2))
	assert.ErrorIs(t, err, named.ErrLengthMismatch)

	_, err = named.NewLayout([]int{0, 1}, []int{3}, sparse.Reals(1, 2, 3))
	assert.ErrorIs(t, err, named.ErrLengthMismatch)

	_, err = named.NewLayout([]int{-1}, []int{1}, sparse.Reals(1))
	assert.ErrorIs(t, err, indexset.ErrNegativeIndex)

	s := named.Scalar(sparse.Real(7))
	assert.Equal(t, 0, s.Rank())
	v, err := s.At(nil)
	require.NoError(t, err)
	assert.Equal(t, sparse.Real(7), v)
}

// TestAt reads by axis id regardless of physical order.
func TestAt(t *testing.T) {
	a := layout21(t)
	assert.Equal(t, []int{2, 0}, a.Axes())
	assert.Equal(t, []int{2, 3}, a.Extents())

	v, err := a.At(map[int]int{2: 1, 0: 2})
	require.NoError(t, err)
	assert.Equal(t, sparse.Real(6), v)

	v, err = a.At(map[int]int{2: 0, 0: 1, 9: 4})
	require.NoError(t, err)
	assert.Equal(t, sparse.Real(2), v, "coordinates of foreign axes are ignored")

	_, err = a.At(map[int]int{2: 0})
	assert.ErrorIs(t, err, named.ErrAxisNotFound)

	_, err = a.At(map[int]int{2: 2, 0: 0})
	assert.ErrorIs(t, err, named.ErrOutOfRange)

	assert.Equal(t, "{(2,2), (0,3)}[1 2 3 4 5 6]", a.String())
}

// TestPermutationArray maps source positions into the target order.
func TestPermutationArray(t *testing.T) {
	perm, err := named.PermutationArray(indexset.MustNew(0, 2), indexset.MustNew(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, perm)

	tags, err := indexset.Sort([]indexset.Entry[struct{}]{{Index: 2}, {Index: 0}}, indexset.IdentityOrder, nil)
	require.NoError(t, err)
	perm, err = named.PermutationArray(tags, indexset.MustNew(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, perm)

	_, err = named.PermutationArray(indexset.MustNew(5), indexset.MustNew(0, 1))
	assert.ErrorIs(t, err, named.ErrAxisNotFound)
}

// TestReshape re-lays data in target order and inserts unit axes.
func TestReshape(t *testing.T) {
	a := layout21(t)

	r, err := named.Reshape(a, sizes(0, 3, 1, 1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r.Axes())
	assert.Equal(t, sparse.Reals(1, 4, 2, 5, 3, 6), r.Data())

	for _, c := range []map[int]int{{0: 0, 2: 1}, {0: 2, 2: 0}, {0: 1, 2: 1}} {
		want, err := a.At(c)
		require.NoError(t, err)
		got, err := r.At(c)
		require.NoError(t, err)
		assert.Equal(t, want, got, "element %v survives reshape", c)
	}

	_, err = named.Reshape(a, sizes(2, 2))
	assert.ErrorIs(t, err, named.ErrAxisNotFound)

	_, err = named.Reshape(a, sizes(0, 3, 2, 5))
	assert.ErrorIs(t, err, named.ErrExtentMismatch)

	_, err = named.Reshape(a, sizes(0, 3, 1, 2, 2, 2))
	assert.ErrorIs(t, err, named.ErrNotBroadcastable)
}

// TestTranspose reorders the physical layout only.
func TestTranspose(t *testing.T) {
	a := layout21(t)

	tr, err := named.Transpose(a, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(1, 4, 2, 5, 3, 6), tr.Data())
	assert.Equal(t, a.Sizes().Keys(), tr.Sizes().Keys())

	back, err := named.Transpose(tr, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, a.Data(), back.Data())

	_, err = named.Transpose(a, []int{0, 0})
	assert.ErrorIs(t, err, named.ErrDuplicateAxis)
	_, err = named.Transpose(a, []int{0})
	assert.ErrorIs(t, err, named.ErrAxisNotFound)
	_, err = named.Transpose(a, []int{0, 5})
	assert.ErrorIs(t, err, named.ErrAxisNotFound)
}

// TestBroadcasting covers disjoint axes, unit axes and mismatches.
func TestBroadcasting(t *testing.T) {
	col, err := named.New(sizes(0, 3), sparse.Reals(1, 2, 3))
	require.NoError(t, err)
	row, err := named.New(sizes(1, 2), sparse.Reals(10, 20))
	require.NoError(t, err)

	sum, err := named.Add(col, row)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, sum.Axes())
	assert.Equal(t, sparse.Reals(11, 21, 12, 22, 13, 23), sum.Data())

	unit, err := named.New(sizes(0, 1, 1, 2), sparse.Reals(100, 200))
	require.NoError(t, err)
	b, err := named.Add(col, unit)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, b.Extents())
	assert.Equal(t, sparse.Reals(101, 201, 102, 202, 103, 203), b.Data())

	prod, err := named.Mul(col, row)
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(10, 20, 20, 40, 30, 60), prod.Data())

	diff, err := named.Sub(row, named.Scalar(sparse.Real(1)))
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(9, 19), diff.Data())

	q, err := named.Div(row, row)
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(1, 1), q.Data())

	short, err := named.New(sizes(0, 2), sparse.Reals(1, 2))
	require.NoError(t, err)
	_, err = named.Add(col, short)
	assert.ErrorIs(t, err, named.ErrExtentMismatch)
}

// TestBroadcasting_MixedLayouts adds arrays stored in different orders.
func TestBroadcasting_MixedLayouts(t *testing.T) {
	a := layout21(t)
	tr, err := named.Transpose(a, []int{0, 2})
	require.NoError(t, err)

	twice, err := named.Add(a, tr)
	require.NoError(t, err)
	want := named.Map(tr, func(v sparse.Real) sparse.Real { return 2 * v })
	assert.Equal(t, want.Data(), twice.Data())
}

// TestFill builds constant arrays.
func TestFill(t *testing.T) {
	f, err := named.Fill(sizes(3, 2, 4, 2), sparse.Real(1.5))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, sparse.Reals(1.5, 1.5, 1.5, 1.5), f.Data())

	_, err = named.Fill(sizes(0, 0), sparse.Real(1))
	assert.ErrorIs(t, err, named.ErrBadExtent)
}

// TestZeroValue behaves as the scalar zero.
func TestZeroValue(t *testing.T) {
	var z named.Array[sparse.Real]
	assert.Equal(t, 0, z.Rank())
	assert.Equal(t, 1, z.Len())
	assert.Equal(t, sparse.Reals(0), z.Data())
	assert.Equal(t, "{}[0]", z.String())

	v, err := z.At(nil)
	require.NoError(t, err)
	assert.Equal(t, sparse.Real(0), v)

	sum, err := named.Add(layout21(t), z)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, sum.Axes())
	assert.Equal(t, sparse.Reals(1, 4, 2, 5, 3, 6), sum.Data())

	prod, err := named.Mul(z, named.Scalar(sparse.Real(2)))
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(0), prod.Data())

	shifted := named.Map(z, func(x sparse.Real) sparse.Real { return x + 1 })
	assert.Equal(t, sparse.Reals(1), shifted.Data())
}
