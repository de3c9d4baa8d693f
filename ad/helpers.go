// SPDX-License-Identifier: MIT
// Package ad: structural derivative helpers.
//
// These map arrays of duals onto arrays of their derivative coefficients,
// element by element:
//   - Derivative: same layout, ∂/∂x_tag of each element.
//   - Gradient:   one axis more; the new axis runs over the given tags.
//   - Divergence: one axis less; Σ_k ∂a[..., k, ...]/∂x_tags[k].

package ad

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/sparsead/named"
	"github.com/katalvlaran/sparsead/sparse"
)

// Derivative returns ∂a/∂x_tag elementwise.
func Derivative(a named.Array[Dual], tag int) named.Array[sparse.Real] {
	return named.Map(a, func(d Dual) sparse.Real { return sparse.Real(d.Derivative(tag)) })
}

// Values strips derivatives, keeping only the primal values.
func Values(a named.Array[Dual]) named.Array[sparse.Real] {
	return named.Map(a, func(d Dual) sparse.Real { return sparse.Real(d.value) })
}

// SparseDerivative returns ∂a/∂x_tag over a's shape.
func SparseDerivative(a sparse.Array[Dual], tag int) sparse.Array[sparse.Real] {
	return sparse.Map(a, func(_ int, d Dual) sparse.Real { return sparse.Real(d.Derivative(tag)) })
}

// Gradient appends axis (as the last physical axis, extent len(tags)) and
// stores ∂a/∂x_tags[k] at coordinate k.
// Errors: named.ErrDuplicateAxis when a already has axis.
func Gradient(a named.Array[Dual], tags []int, axis int) (named.Array[sparse.Real], error) {
	if _, ok := a.Extent(axis); ok {
		return named.Array[sparse.Real]{}, adErrorf("Gradient(axis "+strconv.Itoa(axis)+")", named.ErrDuplicateAxis)
	}
	src := a.Data()
	out := make([]sparse.Real, 0, len(src)*len(tags))
	for _, d := range src {
		for _, tag := range tags {
			out = append(out, sparse.Real(d.Derivative(tag)))
		}
	}
	g, err := named.NewLayout(append(a.Axes(), axis), append(a.Extents(), len(tags)), out)
	if err != nil {
		return named.Array[sparse.Real]{}, adErrorf("Gradient", err)
	}

	return g, nil
}

// Divergence contracts axis against tags: the result drops axis and holds
// Σ_k ∂a[..., k, ...]/∂x_tags[k].
// Errors: named.ErrAxisNotFound, named.ErrExtentMismatch when the extent of
// axis differs from len(tags).
func Divergence(a named.Array[Dual], axis int, tags []int) (named.Array[sparse.Real], error) {
	ext, ok := a.Extent(axis)
	if !ok {
		return named.Array[sparse.Real]{}, adErrorf("Divergence(axis "+strconv.Itoa(axis)+")", named.ErrAxisNotFound)
	}
	if ext != len(tags) {
		return named.Array[sparse.Real]{}, adErrorf("Divergence(axis "+strconv.Itoa(axis)+")", named.ErrExtentMismatch)
	}

	axes, extents := a.Axes(), a.Extents()
	k := slices.Index(axes, axis)
	rest := slices.Delete(slices.Clone(axes), k, k+1)
	restExt := slices.Delete(slices.Clone(extents), k, k+1)

	last, err := named.Transpose(a, append(slices.Clone(rest), axis))
	if err != nil {
		return named.Array[sparse.Real]{}, adErrorf("Divergence", err)
	}
	data := last.Data()
	out := make([]sparse.Real, len(data)/ext)
	for p := range out {
		var acc float64
		for j, tag := range tags {
			acc += data[p*ext+j].Derivative(tag)
		}
		out[p] = sparse.Real(acc)
	}
	div, err := named.NewLayout(rest, restExt, out)
	if err != nil {
		return named.Array[sparse.Real]{}, adErrorf("Divergence", err)
	}

	return div, nil
}
