package sparse_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd_UnionShape is the worked example {(0,1),(2,3)} + {(1,2),(2,5)}.
func TestAdd_UnionShape(t *testing.T) {
	a := reals([]int{0, 2}, 1, 3)
	b := reals([]int{1, 2}, 2, 5)

	got := sparse.Add(a, b)
	assert.Equal(t, "{(0,1), (1,2), (2,8)}", got.String())
	assert.Equal(t, sparse.Add(b, a).String(), got.String(), "addition commutes")
}

// TestMul_IntersectionShape is the worked example {(0,2),(1,3)} * {(1,4),(2,5)}.
func TestMul_IntersectionShape(t *testing.T) {
	a := reals([]int{0, 1}, 2, 3)
	b := reals([]int{1, 2}, 4, 5)
	assert.Equal(t, "{(1,12)}", sparse.Mul(a, b).String())
}

// TestSub_ZeroExtension negates entries only present on the right.
func TestSub_ZeroExtension(t *testing.T) {
	a := reals([]int{0, 2}, 1, 3)
	b := reals([]int{1, 2}, 2, 5)
	assert.Equal(t, "{(0,1), (1,-2), (2,-2)}", sparse.Sub(a, b).String())
	assert.True(t, sparse.Trim(sparse.Sub(a, a)).IsEmpty())
}

// TestDiv_NumeratorShape checks the implicit-zero rule.
func TestDiv_NumeratorShape(t *testing.T) {
	num := reals([]int{1}, 6)
	den := reals([]int{1, 3}, 3, 7)

	q, err := sparse.Div(num, den)
	require.NoError(t, err)
	assert.Equal(t, "{(1,2)}", q.String())

	_, err = sparse.Div(den, num)
	assert.ErrorIs(t, err, sparse.ErrImplicitZero)

	var empty sparse.Array[sparse.Real]
	q, err = sparse.Div(empty, num)
	require.NoError(t, err)
	assert.True(t, q.IsEmpty())
}

// TestScalarOps covers Scale, ScaleBy, DivScalar, Neg and LinearCombination.
func TestScalarOps(t *testing.T) {
	a := reals([]int{0, 3}, 2, -4)

	assert.Equal(t, "{(0,6), (3,-12)}", sparse.Scale(a, 3).String())
	assert.Equal(t, "{(0,1), (3,-2)}", sparse.DivScalar(a, 2).String())
	assert.Equal(t, "{(0,-2), (3,4)}", sparse.Neg(a).String())
	assert.Equal(t, "{(0,1), (3,-2)}", sparse.ScaleBy(a, 0.5).String())

	b := reals([]int{3, 5}, 1, 1)
	lc := sparse.LinearCombination(2, a, -1, b)
	assert.Equal(t, "{(0,4), (3,-9), (5,-1)}", lc.String())
}

// TestReductions covers Sum and Dot.
func TestReductions(t *testing.T) {
	a := reals([]int{0, 1, 2}, 1, 2, 3)
	b := reals([]int{1, 2, 9}, 10, 100, 1000)

	assert.Equal(t, sparse.Real(6), sparse.Sum(a))
	assert.Equal(t, sparse.Real(320), sparse.Dot(a, b))

	var empty sparse.Array[sparse.Real]
	assert.Equal(t, sparse.Real(0), sparse.Sum(empty))
}

// TestMaxMin treats absent slots as zero.
func TestMaxMin(t *testing.T) {
	a := reals([]int{0, 1}, -1, 5)
	b := reals([]int{1, 2}, 3, -2)

	assert.Equal(t, "{(0,0), (1,5), (2,0)}", sparse.Max(a, b).String())
	assert.Equal(t, "{(0,-1), (1,3), (2,-2)}", sparse.Min(a, b).String())
}

// TestComparisons builds masks over the union of shapes.
func TestComparisons(t *testing.T) {
	a := reals([]int{0, 1}, 1, 5)
	b := reals([]int{1, 2}, 7, 2)

	less := sparse.Less(a, b)
	want := map[int]bool{0: false, 1: true, 2: true}
	got := map[int]bool{}
	less.ForEach(func(i int, v bool) { got[i] = v })
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Less mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []bool{true, false, false}, sparse.Greater(a, b).Payloads())
	assert.Equal(t, []bool{true, true, true}, sparse.NotEqual(a, b).Payloads())
	assert.Equal(t, []bool{false, true, false}, sparse.And(a, b).Payloads())
	assert.Equal(t, []bool{true, true, true}, sparse.Or(a, b).Payloads())
	assert.False(t, sparse.Any(sparse.NotEqual(a, a)))

	picked := sparse.IfElse(less, b, a)
	assert.Equal(t, "{(0,1), (1,7), (2,2)}", picked.String())
}

// TestFunctions covers zero-preserving functions and their guards.
func TestFunctions(t *testing.T) {
	a := reals([]int{1, 4}, 4, 9)

	assert.Equal(t, "{(1,2), (4,3)}", sparse.Sqrt(a).String())
	assert.Equal(t, "{(1,4), (4,9)}", sparse.Abs(sparse.Neg(a)).String())
	assert.Equal(t, "{(1,1), (4,2)}", sparse.Floor(sparse.Scale(a, 0.25)).String())
	assert.Equal(t, "{(1,1), (4,3)}", sparse.Ceil(sparse.Scale(a, 0.25)).String())

	s := sparse.Sin(a)
	assert.InDelta(t, math.Sin(4), s.Query(1).Float(), 1e-15)
	assert.InDelta(t, math.Tanh(9), sparse.Tanh(a).Query(4).Float(), 1e-15)
	assert.InDelta(t, math.Atan(9), sparse.Atan(a).Query(4).Float(), 1e-15)
	assert.InDelta(t, math.Sinh(4), sparse.Sinh(a).Query(1).Float(), 1e-9)
	assert.InDelta(t, math.Tan(4), sparse.Tan(a).Query(1).Float(), 1e-12)
	assert.InDelta(t, math.Asin(0.5), sparse.Asin(reals([]int{0}, 0.5)).Query(0).Float(), 1e-15)

	p, err := sparse.Pow(a, 2)
	require.NoError(t, err)
	assert.Equal(t, "{(1,16), (4,81)}", p.String())
	_, err = sparse.Pow(a, 0)
	assert.ErrorIs(t, err, sparse.ErrDomain)

	_, err = sparse.Apply(a, func(v sparse.Real) sparse.Real { return v + 1 })
	assert.ErrorIs(t, err, sparse.ErrDomain)
	sq, err := sparse.Apply(a, func(v sparse.Real) sparse.Real { return v * v })
	require.NoError(t, err)
	assert.Equal(t, "{(1,16), (4,81)}", sq.String())
}

// TestMatrix covers Identity, Outer, Transpose and MulVec.
func TestMatrix(t *testing.T) {
	id := sparse.Identity(indexset.MustNew(0, 2), sparse.Real(1))
	assert.Equal(t, "{(0,{(0,1)}), (2,{(2,1)})}", id.String())

	v := reals([]int{0, 1, 2}, 5, 6, 7)
	assert.Equal(t, "{(0,5), (2,7)}", id.MulVec(v).String())

	a := reals([]int{0, 1}, 1, 2)
	b := reals([]int{3}, 10)
	o := sparse.Outer(a, b)
	assert.Equal(t, "{(0,{(3,10)}), (1,{(3,20)})}", o.String())
	assert.Equal(t, sparse.Real(20), o.At(1, 3))

	tr := o.Transpose()
	assert.Equal(t, "{(3,{(0,10), (1,20)})}", tr.String())
	assert.Equal(t, []int{3}, tr.Rows().Keys())
	assert.True(t, tr.Row(0).IsEmpty())
}

// TestApproxEqual compares within tolerance across different shapes.
func TestApproxEqual(t *testing.T) {
	a := reals([]int{0, 1}, 1, 0)
	b := reals([]int{0}, 1+1e-12)
	assert.True(t, sparse.ApproxEqual(a, b, 1e-9))
	assert.False(t, sparse.ApproxEqual(a, reals([]int{2}, 1), 1e-9))
}
