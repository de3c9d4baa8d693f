package sparse

import "github.com/katalvlaran/sparsead/indexset"

// Comparisons are restricted to the operators for which 0 op 0 is false, so
// the result stays sparse: every index outside both shapes compares false.
// Each returns a boolean mask over the union of the operand shapes.

// Less reports a_i < b_i.
func Less[T Value[T]](a, b Array[T]) indexset.Set[bool] {
	return compare(a, b, func(x, y float64) bool { return x < y })
}

// Greater reports a_i > b_i.
func Greater[T Value[T]](a, b Array[T]) indexset.Set[bool] {
	return compare(a, b, func(x, y float64) bool { return x > y })
}

// NotEqual reports a_i != b_i.
func NotEqual[T Value[T]](a, b Array[T]) indexset.Set[bool] {
	return compare(a, b, func(x, y float64) bool { return x != y })
}

// And reports a_i != 0 && b_i != 0.
func And[T Value[T]](a, b Array[T]) indexset.Set[bool] {
	return compare(a, b, func(x, y float64) bool { return x != 0 && y != 0 })
}

// Or reports a_i != 0 || b_i != 0.
func Or[T Value[T]](a, b Array[T]) indexset.Set[bool] {
	return compare(a, b, func(x, y float64) bool { return x != 0 || y != 0 })
}

func compare[T Value[T]](a, b Array[T], op func(x, y float64) bool) indexset.Set[bool] {
	shape := indexset.Union(a.Shape(), b.Shape(), nil)

	return indexset.WithPayload(shape, func(i int) bool {
		return op(a.Query(i).Float(), b.Query(i).Float())
	})
}

// IfElse picks t_i where cond holds at i and f_i elsewhere, over the union of
// the shapes of t and f. Indices absent from cond count as false.
func IfElse[T Value[T]](cond indexset.Set[bool], t, f Array[T]) Array[T] {
	shape := indexset.Union(t.Shape(), f.Shape(), nil)

	return Array[T]{
		entries: indexset.WithPayload(shape, func(i int) T {
			if c, _ := cond.Lookup(i); c {
				return t.Query(i)
			}
			return f.Query(i)
		}),
		mode: modeOf(t, f),
	}
}

// Any reports whether any entry of the mask is true.
func Any(mask indexset.Set[bool]) bool {
	for k := 0; k < mask.Len(); k++ {
		if mask.PayloadAt(k) {
			return true
		}
	}

	return false
}
