// SPDX-License-Identifier: MIT
// Package named: the Array type.
//
// Layout:
//   - sizes is the size descriptor: an indexset.Set[int] mapping axis id to
//     extent, ascending by axis id (the logical order).
//   - axes is the physical order. Data is row-major over axes: the last
//     physical axis varies fastest.
//   - An array with no axes is a scalar holding exactly one element.
//
// Complexity: At is O(rank); relayouts are O(len(data)·rank).

package named

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
)

// Array is a dense block of T addressed by named axes.
// The zero value is the scalar holding the zero T, like Scalar.
type Array[T sparse.Value[T]] struct {
	sizes indexset.Set[int]
	axes  []int
	data  []T
}

// New lays data out over sizes in logical order (ascending axis id).
// Errors: ErrBadExtent, ErrLengthMismatch.
func New[T sparse.Value[T]](sizes indexset.Set[int], data []T) (Array[T], error) {
	return NewLayout(sizes.Keys(), sizes.Payloads(), data)
}

// NewLayout lays data out over axes in the given physical order.
// Errors: ErrDuplicateAxis, indexset.ErrNegativeIndex, ErrBadExtent,
// ErrLengthMismatch.
func NewLayout[T sparse.Value[T]](axes, extents []int, data []T) (Array[T], error) {
	if len(axes) != len(extents) {
		return Array[T]{}, namedErrorf("NewLayout", ErrLengthMismatch)
	}
	n := 1
	for _, e := range extents {
		if e < 1 {
			return Array[T]{}, namedErrorf("NewLayout", ErrBadExtent)
		}
		n *= e
	}
	if n != len(data) {
		return Array[T]{}, namedErrorf("NewLayout", ErrLengthMismatch)
	}
	sizes, err := indexset.FromPairs(axes, extents, nil)
	if err != nil {
		return Array[T]{}, namedErrorf("NewLayout", err)
	}
	if sizes.Len() != len(axes) {
		return Array[T]{}, namedErrorf("NewLayout", ErrDuplicateAxis)
	}

	return Array[T]{sizes: sizes, axes: slices.Clone(axes), data: slices.Clone(data)}, nil
}

// Fill returns an array over sizes holding v everywhere.
// Errors: ErrBadExtent.
func Fill[T sparse.Value[T]](sizes indexset.Set[int], v T) (Array[T], error) {
	n := 1
	for _, e := range sizes.Payloads() {
		if e < 1 {
			return Array[T]{}, namedErrorf("Fill", ErrBadExtent)
		}
		n *= e
	}
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}

	return Array[T]{sizes: sizes, axes: sizes.Keys(), data: data}, nil
}

// Scalar returns the rank-0 array holding v.
func Scalar[T sparse.Value[T]](v T) Array[T] {
	return Array[T]{data: []T{v}}
}

// Sizes returns the size descriptor (axis id → extent).
func (a Array[T]) Sizes() indexset.Set[int] { return a.sizes }

// Axes returns the physical axis order.
func (a Array[T]) Axes() []int { return slices.Clone(a.axes) }

// Extents returns the extents aligned with Axes.
func (a Array[T]) Extents() []int {
	out := make([]int, len(a.axes))
	for k, ax := range a.axes {
		out[k], _ = a.sizes.Lookup(ax)
	}

	return out
}

// Extent returns the extent of axis, or false when absent.
func (a Array[T]) Extent(axis int) (int, bool) { return a.sizes.Lookup(axis) }

// Rank returns the number of axes.
func (a Array[T]) Rank() int { return len(a.axes) }

// Len returns the number of elements.
func (a Array[T]) Len() int { return len(a.elems()) }

// Data returns a copy of the elements in physical order.
func (a Array[T]) Data() []T { return slices.Clone(a.elems()) }

// elems returns the element buffer, materialising the zero value's single
// zero element.
func (a Array[T]) elems() []T {
	if a.data == nil && len(a.axes) == 0 {
		return make([]T, 1)
	}

	return a.data
}

// strides returns the row-major strides aligned with a.axes.
func (a Array[T]) strides() []int {
	ext := a.Extents()
	st := make([]int, len(ext))
	s := 1
	for k := len(ext) - 1; k >= 0; k-- {
		st[k] = s
		s *= ext[k]
	}

	return st
}

// At reads the element at coords (axis id → coordinate). Coordinates for axes
// the array lacks are ignored; a missing coordinate is allowed only for an
// axis of extent 1.
// Errors: ErrAxisNotFound, ErrOutOfRange.
func (a Array[T]) At(coords map[int]int) (T, error) {
	var zero T
	ext, st := a.Extents(), a.strides()
	off := 0
	for k, ax := range a.axes {
		c, ok := coords[ax]
		if !ok {
			if ext[k] == 1 {
				continue
			}
			return zero, namedErrorf("At(axis "+strconv.Itoa(ax)+")", ErrAxisNotFound)
		}
		if c < 0 || c >= ext[k] {
			return zero, namedErrorf("At(axis "+strconv.Itoa(ax)+")", ErrOutOfRange)
		}
		off += c * st[k]
	}

	return a.elems()[off], nil
}

// Map transforms every element, keeping the layout.
func Map[T sparse.Value[T], U sparse.Value[U]](a Array[T], fn func(T) U) Array[U] {
	data := a.elems()
	out := make([]U, len(data))
	for i, v := range data {
		out[i] = fn(v)
	}

	return Array[U]{sizes: a.sizes, axes: a.axes, data: out}
}

// String renders the physical layout followed by the data, e.g.
// "{(2,2), (0,3)}[1 2 3 4 5 6]".
func (a Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for k, e := range a.Extents() {
		if k > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d,%d)", a.axes[k], e)
	}
	b.WriteByte('}')
	fmt.Fprint(&b, a.elems())

	return b.String()
}
