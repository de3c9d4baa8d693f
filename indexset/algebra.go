// SPDX-License-Identifier: MIT
// Package indexset: set algebra.
//
// Purpose:
//   - Derive new sets from existing ones: Sort, Insert, Union, Intersection,
//     Difference, Restrict and the UnionAll/IntersectAll folds.
//
// Design:
//   - Inputs are never mutated; results own fresh slices unless an operand can
//     be returned unchanged (identity laws), in which case storage is shared.
//   - ValueOrder operands are merged in a single linear pass (two cursors).
//   - When either operand uses IdentityOrder the result uses IdentityOrder and
//     keeps the left operand's sequence, appending unseen right-hand indices.
//
// Empty-set laws (checked in tests):
//   Union(∅,S)=S, Intersection(∅,S)=∅, Difference(∅,S)=∅, Difference(S,∅)=S.

package indexset

import (
	"slices"
)

// Sort builds a canonical Set from arbitrary entries.
// Implementation:
//   - Stage 1: reject negative indices.
//   - Stage 2 (ValueOrder): stable sort by index, then fold runs of equal
//     indices left to right with combine.
//   - Stage 2 (IdentityOrder): keep first-occurrence order, folding later
//     duplicates into the first one with combine.
//
// Complexity: O(n log n) for ValueOrder, O(n) expected for IdentityOrder.
func Sort[P any](entries []Entry[P], order Order, combine Combine[P]) (Set[P], error) {
	for _, e := range entries {
		if e.Index < 0 {
			return Set[P]{}, ErrNegativeIndex
		}
	}
	combine = orKeepFirst(combine)

	keys := make([]int, 0, len(entries))
	payloads := make([]P, 0, len(entries))

	if order == IdentityOrder {
		seen := make(map[int]int, len(entries))
		for _, e := range entries {
			if pos, ok := seen[e.Index]; ok {
				payloads[pos] = combine(payloads[pos], e.Payload)
				continue
			}
			seen[e.Index] = len(keys)
			keys = append(keys, e.Index)
			payloads = append(payloads, e.Payload)
		}

		return Set[P]{keys: keys, payloads: payloads, order: IdentityOrder}, nil
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(x, y Entry[P]) int { return x.Index - y.Index })
	for _, e := range sorted {
		if n := len(keys); n > 0 && keys[n-1] == e.Index {
			payloads[n-1] = combine(payloads[n-1], e.Payload)
			continue
		}
		keys = append(keys, e.Index)
		payloads = append(payloads, e.Payload)
	}

	return Set[P]{keys: keys, payloads: payloads, order: ValueOrder}, nil
}

// Reorder converts s to the requested order. Converting to ValueOrder sorts
// the keys; converting to IdentityOrder keeps the current sequence.
func Reorder[P any](s Set[P], order Order) Set[P] {
	if s.order == order {
		return s
	}
	if order == IdentityOrder {
		return Set[P]{keys: s.keys, payloads: s.payloads, order: IdentityOrder}
	}
	entries := make([]Entry[P], len(s.keys))
	for i, k := range s.keys {
		entries[i] = Entry[P]{Index: k, Payload: s.payloads[i]}
	}
	out, _ := Sort(entries, ValueOrder, nil) // keys are already non-negative and distinct

	return out
}

// Insert returns a new Set with index i added.
// If i already exists, its payload becomes combine(old, p); otherwise i is
// placed at the sort-preserving position (appended under IdentityOrder).
// Errors: ErrNegativeIndex.
// Complexity: O(n) (copy) with an O(log n) search under ValueOrder.
func Insert[P any](s Set[P], i int, p P, combine Combine[P]) (Set[P], error) {
	if i < 0 {
		return s, setErrorf("Insert", ErrNegativeIndex)
	}
	combine = orKeepFirst(combine)

	if pos := s.Position(i); pos != NotFound {
		payloads := slices.Clone(s.payloads)
		payloads[pos] = combine(payloads[pos], p)

		return Set[P]{keys: s.keys, payloads: payloads, order: s.order}, nil
	}

	pos := len(s.keys)
	if s.order == ValueOrder {
		pos, _ = slices.BinarySearch(s.keys, i)
	}
	keys := make([]int, 0, len(s.keys)+1)
	keys = append(keys, s.keys[:pos]...)
	keys = append(keys, i)
	keys = append(keys, s.keys[pos:]...)
	payloads := make([]P, 0, len(s.payloads)+1)
	payloads = append(payloads, s.payloads[:pos]...)
	payloads = append(payloads, p)
	payloads = append(payloads, s.payloads[pos:]...)

	return Set[P]{keys: keys, payloads: payloads, order: s.order}, nil
}

// InsertIndex is Insert for shapes.
func InsertIndex(s Shape, i int) (Shape, error) {
	return Insert(s, i, struct{}{}, nil)
}

// Union returns every index present in a or b. Indices present in both carry
// combine(payloadA, payloadB); a nil combine keeps a's payload.
// Complexity: O(|a|+|b|) for ValueOrder operands.
func Union[P any](a, b Set[P], combine Combine[P]) Set[P] {
	if a.order == IdentityOrder || b.order == IdentityOrder {
		return unionIdentity(a, b, orKeepFirst(combine))
	}
	if len(b.keys) == 0 {
		return a
	}
	if len(a.keys) == 0 {
		return b
	}
	combine = orKeepFirst(combine)

	keys := make([]int, 0, len(a.keys)+len(b.keys))
	payloads := make([]P, 0, len(a.keys)+len(b.keys))
	i, j := 0, 0
	for i < len(a.keys) && j < len(b.keys) {
		ka, kb := a.keys[i], b.keys[j]
		switch {
		case ka < kb:
			keys = append(keys, ka)
			payloads = append(payloads, a.payloads[i])
			i++
		case kb < ka:
			keys = append(keys, kb)
			payloads = append(payloads, b.payloads[j])
			j++
		default:
			keys = append(keys, ka)
			payloads = append(payloads, combine(a.payloads[i], b.payloads[j]))
			i++
			j++
		}
	}
	keys = append(keys, a.keys[i:]...)
	payloads = append(payloads, a.payloads[i:]...)
	keys = append(keys, b.keys[j:]...)
	payloads = append(payloads, b.payloads[j:]...)

	return Set[P]{keys: keys, payloads: payloads, order: ValueOrder}
}

func unionIdentity[P any](a, b Set[P], combine Combine[P]) Set[P] {
	keys := slices.Clone(a.keys)
	payloads := slices.Clone(a.payloads)
	for j, k := range b.keys {
		if pos := slices.Index(keys, k); pos >= 0 {
			payloads[pos] = combine(payloads[pos], b.payloads[j])
			continue
		}
		keys = append(keys, k)
		payloads = append(payloads, b.payloads[j])
	}

	return Set[P]{keys: keys, payloads: payloads, order: IdentityOrder}
}

// Intersection returns the indices present in both a and b, with payloads
// combine(payloadA, payloadB). A nil combine keeps a's payload.
func Intersection[P any](a, b Set[P], combine Combine[P]) Set[P] {
	combine = orKeepFirst(combine)
	if len(a.keys) == 0 || len(b.keys) == 0 {
		return Set[P]{order: a.order}
	}

	var keys []int
	var payloads []P
	if a.order == IdentityOrder || b.order == IdentityOrder {
		for i, k := range a.keys {
			if pos := b.Position(k); pos != NotFound {
				keys = append(keys, k)
				payloads = append(payloads, combine(a.payloads[i], b.payloads[pos]))
			}
		}

		return Set[P]{keys: keys, payloads: payloads, order: IdentityOrder}
	}

	i, j := 0, 0
	for i < len(a.keys) && j < len(b.keys) {
		ka, kb := a.keys[i], b.keys[j]
		switch {
		case ka < kb:
			i++
		case kb < ka:
			j++
		default:
			keys = append(keys, ka)
			payloads = append(payloads, combine(a.payloads[i], b.payloads[j]))
			i++
			j++
		}
	}

	return Set[P]{keys: keys, payloads: payloads, order: ValueOrder}
}

// Restrict keeps the entries of a whose index also appears in b. Unlike
// Intersection the operands may carry different payload types.
func Restrict[P, Q any](a Set[P], b Set[Q]) Set[P] {
	return filter(a, func(k int) bool { return b.Contains(k) })
}

// Difference returns the entries of a whose index is absent from b (a \ b).
// It is asymmetric: Difference(a,b) != Difference(b,a) in general.
func Difference[P, Q any](a Set[P], b Set[Q]) Set[P] {
	if len(a.keys) == 0 || len(b.keys) == 0 {
		return a
	}

	return filter(a, func(k int) bool { return !b.Contains(k) })
}

// filter keeps entries whose index satisfies keep, preserving order.
func filter[P any](a Set[P], keep func(int) bool) Set[P] {
	keys := make([]int, 0, len(a.keys))
	payloads := make([]P, 0, len(a.keys))
	for i, k := range a.keys {
		if keep(k) {
			keys = append(keys, k)
			payloads = append(payloads, a.payloads[i])
		}
	}

	return Set[P]{keys: keys, payloads: payloads, order: a.order}
}

// IsSubset reports whether every index of a is present in b.
func IsSubset[P, Q any](a Set[P], b Set[Q]) bool {
	for _, k := range a.keys {
		if !b.Contains(k) {
			return false
		}
	}

	return true
}

// First returns a unchanged. It is the shape rule of sparse division, where
// the result keeps the numerator's indices whatever the denominator holds.
func First[P, Q any](a Set[P], _ Set[Q]) Set[P] { return a }

// UnionAll folds Union over sets from the right: s0 ∪ (s1 ∪ (... ∪ sn)).
// No sets yields the empty Set.
func UnionAll[P any](combine Combine[P], sets ...Set[P]) Set[P] {
	var out Set[P]
	for i := len(sets) - 1; i >= 0; i-- {
		out = Union(sets[i], out, combine)
	}

	return out
}

// IntersectAll folds Intersection over sets. A single set is returned as is;
// no sets yields the empty Set.
func IntersectAll[P any](combine Combine[P], sets ...Set[P]) Set[P] {
	if len(sets) == 0 {
		return Set[P]{}
	}
	out := sets[len(sets)-1]
	for i := len(sets) - 2; i >= 0; i-- {
		out = Intersection(sets[i], out, combine)
	}

	return out
}
