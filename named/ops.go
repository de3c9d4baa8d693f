package named

import (
	"strconv"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
)

// Add returns a+b over the union of the size descriptors, broadcasting
// extent-1 axes.
// Errors: ErrExtentMismatch.
func Add[T sparse.Value[T]](a, b Array[T]) (Array[T], error) {
	return binary("Add", a, b, func(x, y T) T { return x.Add(y) })
}

// Sub returns a-b with the same broadcasting rules as Add.
func Sub[T sparse.Value[T]](a, b Array[T]) (Array[T], error) {
	return binary("Sub", a, b, func(x, y T) T { return x.Sub(y) })
}

// Mul returns the elementwise product with the same broadcasting rules as Add.
func Mul[T sparse.Value[T]](a, b Array[T]) (Array[T], error) {
	return binary("Mul", a, b, func(x, y T) T { return x.Mul(y) })
}

// Div returns the elementwise quotient with the same broadcasting rules as Add.
func Div[T sparse.Value[T]](a, b Array[T]) (Array[T], error) {
	return binary("Div", a, b, func(x, y T) T { return x.Div(y) })
}

// broadcastExtent merges two compatible extents: 1 yields to the other.
func broadcastExtent(x, y int) int {
	if x == 1 {
		return y
	}

	return x
}

// BroadcastSizes returns the size descriptor of a binary result.
// Errors: ErrExtentMismatch when a shared axis has extents n != m, both > 1.
func BroadcastSizes(a, b indexset.Set[int]) (indexset.Set[int], error) {
	shared := indexset.Intersection(a, b, nil)
	for k := 0; k < shared.Len(); k++ {
		ax := shared.At(k)
		x, _ := a.Lookup(ax)
		y, _ := b.Lookup(ax)
		if x != y && x != 1 && y != 1 {
			return indexset.Set[int]{}, namedErrorf("BroadcastSizes(axis "+strconv.Itoa(ax)+")", ErrExtentMismatch)
		}
	}

	return indexset.Union(a, b, broadcastExtent), nil
}

func binary[T sparse.Value[T]](tag string, a, b Array[T], op func(x, y T) T) (Array[T], error) {
	sizes, err := BroadcastSizes(a.sizes, b.sizes)
	if err != nil {
		return Array[T]{}, namedErrorf(tag, err)
	}
	axes, ext := sizes.Keys(), sizes.Payloads()
	x, y := gather(a, axes, ext), gather(b, axes, ext)
	for i := range x {
		x[i] = op(x[i], y[i])
	}

	return Array[T]{sizes: sizes, axes: axes, data: x}, nil
}
