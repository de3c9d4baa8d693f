// SPDX-License-Identifier: MIT
// Package sparse: the Array type, constructors and accessors.
//
// An Array is a fixed tuple of T stored only at the indices of its shape.
// Every index outside the shape reads as the zero T. The shape is an
// indexset.Shape shared read-only between arrays.

package sparse

import (
	"strconv"

	"github.com/katalvlaran/sparsead/indexset"
)

// Array is a sparse tuple of T over an index shape.
// The zero value is the empty array in Checked mode.
type Array[T Value[T]] struct {
	entries indexset.Set[T]
	mode    AccessMode
}

// New pairs shape with data, data[k] belonging to shape.At(k).
// Errors: ErrLengthMismatch.
func New[T Value[T]](shape indexset.Shape, data []T, opts ...Option) (Array[T], error) {
	if shape.Len() != len(data) {
		return Array[T]{}, sparseErrorf("New", ErrLengthMismatch)
	}
	o := gatherOptions(opts...)
	k := 0
	entries := indexset.WithPayload(shape, func(int) T {
		v := data[k]
		k++
		return v
	})

	return Array[T]{entries: entries, mode: o.mode}, nil
}

// MustNew is New that panics on error.
func MustNew[T Value[T]](shape indexset.Shape, data []T, opts ...Option) Array[T] {
	a, err := New(shape, data, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// FromPairs builds an array from unsorted (index, value) pairs. Repeated
// indices are summed.
// Errors: ErrLengthMismatch, indexset.ErrNegativeIndex.
func FromPairs[T Value[T]](indices []int, data []T, opts ...Option) (Array[T], error) {
	entries, err := indexset.FromPairs(indices, data, func(old, next T) T { return old.Add(next) })
	if err != nil {
		return Array[T]{}, sparseErrorf("FromPairs", err)
	}

	return Array[T]{entries: entries, mode: gatherOptions(opts...).mode}, nil
}

// MustFromPairs is FromPairs that panics on error.
func MustFromPairs[T Value[T]](indices []int, data []T, opts ...Option) Array[T] {
	a, err := FromPairs(indices, data, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// FromMap builds an array from a map of index to value.
func FromMap[T Value[T]](m map[int]T, opts ...Option) (Array[T], error) {
	entries, err := indexset.FromMap(m)
	if err != nil {
		return Array[T]{}, sparseErrorf("FromMap", err)
	}

	return Array[T]{entries: entries, mode: gatherOptions(opts...).mode}, nil
}

// FromSet adopts an existing payload set.
func FromSet[T Value[T]](entries indexset.Set[T], opts ...Option) Array[T] {
	return Array[T]{entries: entries, mode: gatherOptions(opts...).mode}
}

// Zero returns an array holding the zero T at every index of shape.
func Zero[T Value[T]](shape indexset.Shape, opts ...Option) Array[T] {
	var zero T

	return Array[T]{
		entries: indexset.WithPayload(shape, func(int) T { return zero }),
		mode:    gatherOptions(opts...).mode,
	}
}

// FromScalar spreads a scalar over shape. Only zero is representable: a
// non-zero value would also have to live at every index outside the shape.
// Errors: ErrDomain for non-zero v.
func FromScalar[T Value[T]](shape indexset.Shape, v T, opts ...Option) (Array[T], error) {
	if !v.IsZero() {
		return Array[T]{}, sparseErrorf("FromScalar", ErrDomain)
	}

	return Zero[T](shape, opts...), nil
}

// UnitVector returns the array holding one at index i and nothing else.
// Errors: indexset.ErrNegativeIndex.
func UnitVector[T Value[T]](i int, one T, opts ...Option) (Array[T], error) {
	return FromPairs([]int{i}, []T{one}, opts...)
}

// FullVector returns the array holding v at every index 0..n-1.
func FullVector[T Value[T]](n int, v T, opts ...Option) Array[T] {
	return Array[T]{
		entries: indexset.WithPayload(indexset.Range(n), func(int) T { return v }),
		mode:    gatherOptions(opts...).mode,
	}
}

// Len returns the number of stored entries.
func (a Array[T]) Len() int { return a.entries.Len() }

// IsEmpty reports whether no entry is stored.
func (a Array[T]) IsEmpty() bool { return a.entries.IsEmpty() }

// Shape returns the index shape of a.
func (a Array[T]) Shape() indexset.Shape { return a.entries.Shape() }

// Indices returns a copy of the stored indices in ascending order.
func (a Array[T]) Indices() []int { return a.entries.Keys() }

// Values returns a copy of the stored values, aligned with Indices.
func (a Array[T]) Values() []T { return a.entries.Payloads() }

// Entries exposes the underlying payload set.
func (a Array[T]) Entries() indexset.Set[T] { return a.entries }

// Mode returns the MustAt policy of a.
func (a Array[T]) Mode() AccessMode { return a.mode }

// WithMode returns a copy of a using the given access mode.
func (a Array[T]) WithMode(m AccessMode) Array[T] {
	a.mode = m
	return a
}

// Contains reports whether index i is stored.
func (a Array[T]) Contains(i int) bool { return a.entries.Contains(i) }

// Query returns the value at index i, or the zero T when i is absent.
func (a Array[T]) Query(i int) T {
	v, _ := a.entries.Lookup(i)
	return v
}

// At is the strict accessor: an absent index yields ErrIndexNotFound.
func (a Array[T]) At(i int) (T, error) {
	v, ok := a.entries.Lookup(i)
	if !ok {
		return v, sparseErrorf("At("+strconv.Itoa(i)+")", ErrIndexNotFound)
	}

	return v, nil
}

// MustAt reads index i according to the array's AccessMode.
//
//   - Checked: absent i panics with an error wrapping ErrIndexNotFound.
//   - Trusted: no presence check; absent i returns the value stored at the
//     position i would be inserted at, or panics when that is past the end.
func (a Array[T]) MustAt(i int) T {
	if a.mode == Trusted {
		return a.entries.PayloadAt(a.entries.LowerBound(i))
	}
	v, err := a.At(i)
	if err != nil {
		panic(err)
	}

	return v
}

// ForEach calls fn for every stored entry in index order.
func (a Array[T]) ForEach(fn func(i int, v T)) { a.entries.ForEach(fn) }

// Map transforms every stored value, keeping the shape. The result may hold
// a different payload type.
func Map[T Value[T], U Value[U]](a Array[T], fn func(i int, v T) U) Array[U] {
	return Array[U]{entries: indexset.Map(a.entries, fn), mode: a.mode}
}

// Slice re-expresses src over target: indices of target absent from src read
// as zero, indices of src absent from target are dropped. Lossy by design of
// the operation; see Convert for the checked form.
func Slice[T Value[T]](src Array[T], target indexset.Shape) Array[T] {
	return Array[T]{
		entries: indexset.WithPayload(target, src.Query),
		mode:    src.mode,
	}
}

// Convert is Slice that refuses to drop data.
// Errors: ErrNotSubset when src holds an index outside target.
func Convert[T Value[T]](src Array[T], target indexset.Shape) (Array[T], error) {
	if !indexset.IsSubset(src.entries, target) {
		return Array[T]{}, sparseErrorf("Convert", ErrNotSubset)
	}

	return Slice(src, target), nil
}
