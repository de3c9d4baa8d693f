package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reals(idx []int, vals ...float64) sparse.Array[sparse.Real] {
	return sparse.MustFromPairs(idx, sparse.Reals(vals...))
}

// TestNew_LengthMismatch rejects misaligned shape and data.
func TestNew_LengthMismatch(t *testing.T) {
	_, err := sparse.New(indexset.MustNew(0, 1), sparse.Reals(1))
	assert.ErrorIs(t, err, sparse.ErrLengthMismatch)

	a, err := sparse.New(indexset.MustNew(4, 1), sparse.Reals(10, 40))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, a.Indices())
	assert.Equal(t, sparse.Reals(10, 40), a.Values(), "data follows shape order")
}

// TestFromPairs_SumsDuplicates merges repeated indices additively.
func TestFromPairs_SumsDuplicates(t *testing.T) {
	a := reals([]int{3, 1, 3}, 1, 2, 4)
	assert.Equal(t, []int{1, 3}, a.Indices())
	assert.Equal(t, sparse.Reals(2, 5), a.Values())

	_, err := sparse.FromPairs([]int{-1}, sparse.Reals(1))
	assert.ErrorIs(t, err, indexset.ErrNegativeIndex)
}

// TestFromScalar only accepts zero.
func TestFromScalar(t *testing.T) {
	shape := indexset.MustNew(0, 5)
	z, err := sparse.FromScalar(shape, sparse.Real(0))
	require.NoError(t, err)
	assert.Equal(t, 2, z.Len())
	assert.Equal(t, sparse.Real(0), z.Query(5))

	_, err = sparse.FromScalar(shape, sparse.Real(2))
	assert.ErrorIs(t, err, sparse.ErrDomain)
}

// TestAccessors covers Query, At and both MustAt modes.
func TestAccessors(t *testing.T) {
	a := reals([]int{1, 4}, 10, 40)

	assert.Equal(t, sparse.Real(40), a.Query(4))
	assert.Equal(t, sparse.Real(0), a.Query(2), "absent index reads as zero")

	v, err := a.At(1)
	require.NoError(t, err)
	assert.Equal(t, sparse.Real(10), v)

	_, err = a.At(2)
	assert.ErrorIs(t, err, sparse.ErrIndexNotFound)

	assert.Equal(t, sparse.Checked, a.Mode())
	assert.Equal(t, sparse.Real(40), a.MustAt(4))
	assert.Panics(t, func() { a.MustAt(2) }, "checked mode panics on absent index")

	trusted := a.WithMode(sparse.Trusted)
	assert.Equal(t, sparse.Real(40), trusted.MustAt(4))
	assert.Equal(t, sparse.Real(40), trusted.MustAt(2), "trusted mode silently reads the neighbouring slot")
	assert.Panics(t, func() { trusted.MustAt(9) }, "trusted mode past the end is out of range")
}

// TestAccessMode_Inherited shows results keep the left operand's mode
// unless the left operand is empty.
func TestAccessMode_Inherited(t *testing.T) {
	a := sparse.MustFromPairs([]int{0}, sparse.Reals(1), sparse.WithAccessMode(sparse.Trusted))
	b := reals([]int{1}, 2)

	assert.Equal(t, sparse.Trusted, sparse.Add(a, b).Mode())
	assert.Equal(t, sparse.Checked, sparse.Add(b, a).Mode())
	assert.Equal(t, sparse.Trusted, sparse.Scale(a, 3).Mode())

	var empty sparse.Array[sparse.Real]
	assert.Equal(t, sparse.Trusted, sparse.Add(empty, a).Mode(), "an empty left operand defers")
	assert.Equal(t, sparse.Trusted, sparse.Sub(empty, a).Mode())
	assert.Equal(t, sparse.Trusted, sparse.Mul(empty, a).Mode())
	assert.Equal(t, sparse.Trusted, sparse.Max(empty, a).Mode())
	assert.Equal(t, sparse.Checked, sparse.Add(empty, empty).Mode())

	assert.Panics(t, func() { sparse.WithAccessMode(sparse.AccessMode(9)) })

	m, err := sparse.ParseAccessMode("trusted")
	require.NoError(t, err)
	assert.Equal(t, sparse.Trusted, m)
	assert.Equal(t, "trusted", m.String())
	_, err = sparse.ParseAccessMode("loose")
	assert.ErrorIs(t, err, sparse.ErrSyntax)
}

// TestSliceAndConvert covers lossy and checked re-shaping.
func TestSliceAndConvert(t *testing.T) {
	a := reals([]int{0, 2}, 1, 3)

	s := sparse.Slice(a, indexset.MustNew(2, 5))
	assert.Equal(t, []int{2, 5}, s.Indices())
	assert.Equal(t, sparse.Reals(3, 0), s.Values())

	_, err := sparse.Convert(a, indexset.MustNew(2, 5))
	assert.ErrorIs(t, err, sparse.ErrNotSubset)

	c, err := sparse.Convert(a, indexset.MustNew(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(1, 0, 3), c.Values())
}

// TestVectors covers UnitVector, FullVector and Zero.
func TestVectors(t *testing.T) {
	u, err := sparse.UnitVector(3, sparse.Real(1))
	require.NoError(t, err)
	assert.Equal(t, "{(3,1)}", u.String())

	f := sparse.FullVector(3, sparse.Real(2))
	assert.Equal(t, "{(0,2), (1,2), (2,2)}", f.String())

	z := sparse.Zero[sparse.Real](indexset.MustNew(7))
	assert.Equal(t, "{(7,0)}", z.String())
	assert.True(t, sparse.Trim(z).IsEmpty())
}
