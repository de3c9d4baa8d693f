// SPDX-License-Identifier: MIT
// Package named: permutation, reshape and transpose.
//
// Every relayout funnels through gather, which walks the output layout with
// an odometer and reads the source through per-axis strides. An output axis
// the source lacks, or holds with extent 1, gets stride 0, which is exactly
// size-1 broadcasting.

package named

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
)

// PermutationArray returns, for every index of src in src's order, its
// position within dst. It is the map used to re-lay one array's buffer in
// another's axis order.
// Errors: ErrAxisNotFound when an index of src is missing from dst.
func PermutationArray[P, Q any](src indexset.Set[P], dst indexset.Set[Q]) ([]int, error) {
	out := make([]int, src.Len())
	for k := 0; k < src.Len(); k++ {
		pos, ok := dst.IndexOf(src.At(k))
		if !ok {
			return nil, namedErrorf("PermutationArray(index "+strconv.Itoa(src.At(k))+")", ErrAxisNotFound)
		}
		out[k] = pos
	}

	return out, nil
}

// Reshape re-lays a over the target size descriptor, in target's logical
// order. Every source axis must appear in target with the same extent; any
// target axis the source lacks must have extent 1.
// Errors: ErrAxisNotFound, ErrExtentMismatch, ErrNotBroadcastable.
func Reshape[T sparse.Value[T]](a Array[T], target indexset.Set[int]) (Array[T], error) {
	perm, err := PermutationArray(a.sizes, target)
	if err != nil {
		return Array[T]{}, namedErrorf("Reshape", err)
	}
	for k, pos := range perm {
		if a.sizes.PayloadAt(k) != target.PayloadAt(pos) {
			return Array[T]{}, namedErrorf("Reshape(axis "+strconv.Itoa(a.sizes.At(k))+")", ErrExtentMismatch)
		}
	}
	added := indexset.Difference(target, a.sizes)
	for k := 0; k < added.Len(); k++ {
		if added.PayloadAt(k) != 1 {
			return Array[T]{}, namedErrorf("Reshape(axis "+strconv.Itoa(added.At(k))+")", ErrNotBroadcastable)
		}
	}

	axes := target.Keys()

	return Array[T]{sizes: target, axes: axes, data: gather(a, axes, target.Payloads())}, nil
}

// Transpose re-lays a so that its physical order becomes axes, which must be
// a permutation of a's axes.
// Errors: ErrAxisNotFound, ErrDuplicateAxis.
func Transpose[T sparse.Value[T]](a Array[T], axes []int) (Array[T], error) {
	if len(axes) != len(a.axes) {
		return Array[T]{}, namedErrorf("Transpose", ErrAxisNotFound)
	}
	ext := make([]int, len(axes))
	for k, ax := range axes {
		e, ok := a.sizes.Lookup(ax)
		if !ok {
			return Array[T]{}, namedErrorf("Transpose(axis "+strconv.Itoa(ax)+")", ErrAxisNotFound)
		}
		if slices.Contains(axes[:k], ax) {
			return Array[T]{}, namedErrorf("Transpose(axis "+strconv.Itoa(ax)+")", ErrDuplicateAxis)
		}
		ext[k] = e
	}

	return Array[T]{sizes: a.sizes, axes: slices.Clone(axes), data: gather(a, axes, ext)}, nil
}

// gather reads a into the row-major layout (outAxes, outExt). Extents must
// already be checked compatible.
func gather[T sparse.Value[T]](a Array[T], outAxes, outExt []int) []T {
	n := 1
	for _, e := range outExt {
		n *= e
	}
	srcExt, srcStride := a.Extents(), a.strides()
	st := make([]int, len(outAxes))
	for j, ax := range outAxes {
		if k := slices.Index(a.axes, ax); k >= 0 && srcExt[k] == outExt[j] {
			st[j] = srcStride[k]
		}
	}

	data := a.elems()
	out := make([]T, n)
	idx := make([]int, len(outAxes))
	off := 0
	for p := 0; p < n; p++ {
		out[p] = data[off]
		for j := len(idx) - 1; j >= 0; j-- {
			idx[j]++
			off += st[j]
			if idx[j] < outExt[j] {
				break
			}
			off -= st[j] * idx[j]
			idx[j] = 0
		}
	}

	return out
}
