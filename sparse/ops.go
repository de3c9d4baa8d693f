// SPDX-License-Identifier: MIT
// Package sparse: elementwise algebra.
//
// Shape rules (absent slots behave as zero):
//   - Add, Sub, LinearCombination, Max, Min → union of the operand shapes.
//   - Mul                                 → intersection (0·x = 0 everywhere else).
//   - Div                                 → numerator shape; every numerator index
//     must be present in the denominator, otherwise ErrImplicitZero.
//
// Results take their AccessMode from the left operand unless it stores no
// entries, in which case the right operand's mode is used (see modeOf).

package sparse

import (
	"github.com/katalvlaran/sparsead/indexset"
)

// Add returns a+b over the union of shapes.
func Add[T Value[T]](a, b Array[T]) Array[T] {
	return Array[T]{
		entries: indexset.Union(a.entries, b.entries, func(x, y T) T { return x.Add(y) }),
		mode:    modeOf(a, b),
	}
}

// Sub returns a-b over the union of shapes. Indices only in b yield -b.
func Sub[T Value[T]](a, b Array[T]) Array[T] {
	return Add(a, Neg(b))
}

// modeOf is the access mode of a binary result. An empty left operand, such
// as the derivative of a constant, carries no mode of its own and defers to b.
func modeOf[T Value[T]](a, b Array[T]) AccessMode {
	if a.IsEmpty() && !b.IsEmpty() {
		return b.mode
	}

	return a.mode
}

// Neg negates every stored value.
func Neg[T Value[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Neg() })
}

// Mul returns a*b over the intersection of shapes.
func Mul[T Value[T]](a, b Array[T]) Array[T] {
	return Array[T]{
		entries: indexset.Intersection(a.entries, b.entries, func(x, y T) T { return x.Mul(y) }),
		mode:    modeOf(a, b),
	}
}

// Div returns a/b over a's shape.
// Errors: ErrImplicitZero when a holds an index b lacks.
func Div[T Value[T]](a, b Array[T]) (Array[T], error) {
	if !indexset.IsSubset(a.entries, b.entries) {
		return Array[T]{}, sparseErrorf("Div", ErrImplicitZero)
	}

	return Map(a, func(i int, v T) T { return v.Div(b.Query(i)) }), nil
}

// Scale multiplies every stored value by the plain factor c.
func Scale[T Value[T]](a Array[T], c float64) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Scale(c) })
}

// ScaleBy multiplies every stored value by s.
func ScaleBy[T Value[T]](a Array[T], s T) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Mul(s) })
}

// DivScalar divides every stored value by s. Division by a zero s follows
// the payload's own arithmetic (±Inf or NaN for Real).
func DivScalar[T Value[T]](a Array[T], s T) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Div(s) })
}

// LinearCombination returns ca·a + cb·b over the union of shapes. It is the
// workhorse of the chain rule: d f(x,y) = fx·dx + fy·dy.
func LinearCombination[T Value[T]](ca float64, a Array[T], cb float64, b Array[T]) Array[T] {
	return Add(Scale(a, ca), Scale(b, cb))
}

// Max returns the elementwise maximum over the union of shapes, treating
// absent slots as zero.
func Max[T Value[T]](a, b Array[T]) Array[T] {
	return pickUnion(a, b, func(x, y T) bool { return x.Float() >= y.Float() })
}

// Min returns the elementwise minimum over the union of shapes, treating
// absent slots as zero.
func Min[T Value[T]](a, b Array[T]) Array[T] {
	return pickUnion(a, b, func(x, y T) bool { return x.Float() <= y.Float() })
}

// pickUnion keeps x where takeLeft(x, y) holds, y otherwise.
func pickUnion[T Value[T]](a, b Array[T], takeLeft func(x, y T) bool) Array[T] {
	shape := indexset.Union(a.Shape(), b.Shape(), nil)

	return Array[T]{
		entries: indexset.WithPayload(shape, func(i int) T {
			x, y := a.Query(i), b.Query(i)
			if takeLeft(x, y) {
				return x
			}
			return y
		}),
		mode: modeOf(a, b),
	}
}

// Trim drops stored zeros, shrinking the shape.
func Trim[T Value[T]](a Array[T]) Array[T] {
	idx := make([]int, 0, a.Len())
	vals := make([]T, 0, a.Len())
	a.ForEach(func(i int, v T) {
		if !v.IsZero() {
			idx = append(idx, i)
			vals = append(vals, v)
		}
	})
	entries, _ := indexset.FromPairs(idx, vals, nil) // indices come from a valid set

	return Array[T]{entries: entries, mode: a.mode}
}

// Sum adds all stored values; the empty array sums to zero.
func Sum[T Value[T]](a Array[T]) T {
	var acc T
	a.ForEach(func(_ int, v T) { acc = acc.Add(v) })

	return acc
}

// Dot returns Σ a_i·b_i over the shared indices.
func Dot[T Value[T]](a, b Array[T]) T {
	return Sum(Mul(a, b))
}

// ApproxEqual reports whether a and b agree within tol at every index of
// either shape, comparing Float projections. Absent slots count as zero.
func ApproxEqual[T Value[T]](a, b Array[T], tol float64) bool {
	shape := indexset.Union(a.Shape(), b.Shape(), nil)
	for k := 0; k < shape.Len(); k++ {
		i := shape.At(k)
		d := a.Query(i).Float() - b.Query(i).Float()
		if d > tol || d < -tol {
			return false
		}
	}

	return true
}
