package ad_test

import (
	"testing"

	"github.com/katalvlaran/sparsead/ad"
	"github.com/katalvlaran/sparsead/named"
	"github.com/katalvlaran/sparsead/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// field returns the 2×2 array over axes (0, 1):
//
//	[ x·y  x   ]
//	[ y    x+y ]
//
// with x = 3 (tag 0) and y = 4 (tag 1).
func field(t *testing.T) named.Array[ad.Dual] {
	t.Helper()
	x, y := ad.MustSeed(3, 0), ad.MustSeed(4, 1)
	a, err := named.NewLayout([]int{0, 1}, []int{2, 2}, []ad.Dual{ad.Mul(x, y), x, y, ad.Add(x, y)})
	require.NoError(t, err)

	return a
}

// TestDerivativeAndValues map elementwise.
func TestDerivativeAndValues(t *testing.T) {
	a := field(t)
	assert.Equal(t, sparse.Reals(3, 0, 1, 1), ad.Derivative(a, 1).Data())
	assert.Equal(t, sparse.Reals(12, 3, 4, 7), ad.Values(a).Data())
}

// TestGradient appends an axis over the tags.
func TestGradient(t *testing.T) {
	a := field(t)
	g, err := ad.Gradient(a, []int{0, 1}, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 7}, g.Axes())
	assert.Equal(t, []int{2, 2, 2}, g.Extents())
	assert.Equal(t, sparse.Reals(4, 3, 1, 0, 0, 1, 1, 1), g.Data())

	_, err = ad.Gradient(a, []int{0}, 1)
	assert.ErrorIs(t, err, named.ErrDuplicateAxis)
}

// TestDivergence contracts an axis against the tags, whatever its position.
func TestDivergence(t *testing.T) {
	a := field(t)

	div0, err := ad.Divergence(a, 0, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, div0.Axes())
	assert.Equal(t, sparse.Reals(5, 2), div0.Data())

	div1, err := ad.Divergence(a, 1, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, div1.Axes())
	assert.Equal(t, sparse.Reals(4, 1), div1.Data())

	_, err = ad.Divergence(a, 4, []int{0, 1})
	assert.ErrorIs(t, err, named.ErrAxisNotFound)
	_, err = ad.Divergence(a, 0, []int{0, 1, 2})
	assert.ErrorIs(t, err, named.ErrExtentMismatch)
}

// TestNamedArrayOfDuals broadcasts dual arithmetic.
func TestNamedArrayOfDuals(t *testing.T) {
	a := field(t)
	two := named.Scalar(ad.Constant(2))
	scaled, err := named.Mul(a, two)
	require.NoError(t, err)
	assert.Equal(t, sparse.Reals(8, 2, 0, 2), ad.Derivative(scaled, 0).Data())
}
