package indexset

import (
	"slices"
	"strconv"
	"strings"
)

// New builds a Shape from indices given in any order. Duplicates collapse.
// Returns ErrNegativeIndex for any index < 0.
// Complexity: O(n log n).
func New(indices ...int) (Shape, error) {
	entries := make([]Entry[struct{}], len(indices))
	for i, idx := range indices {
		entries[i] = Entry[struct{}]{Index: idx}
	}
	s, err := Sort(entries, ValueOrder, nil)
	if err != nil {
		return Shape{}, setErrorf("New", err)
	}

	return s, nil
}

// MustNew is New that panics on error. Intended for literals and tests.
func MustNew(indices ...int) Shape {
	s, err := New(indices...)
	if err != nil {
		panic(err)
	}

	return s
}

// Range returns the Shape {0, 1, ..., n-1}. n <= 0 yields the empty Shape.
func Range(n int) Shape {
	if n <= 0 {
		return Shape{}
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	return Shape{keys: keys, payloads: make([]struct{}, n)}
}

// FromPairs builds a map-mode Set from parallel index/payload slices given in
// any order. Colliding indices are merged left to right with combine.
// Complexity: O(n log n).
func FromPairs[P any](indices []int, payloads []P, combine Combine[P]) (Set[P], error) {
	if len(indices) != len(payloads) {
		return Set[P]{}, setErrorf("FromPairs", ErrLengthMismatch)
	}
	entries := make([]Entry[P], len(indices))
	for i := range indices {
		entries[i] = Entry[P]{Index: indices[i], Payload: payloads[i]}
	}
	s, err := Sort(entries, ValueOrder, combine)
	if err != nil {
		return Set[P]{}, setErrorf("FromPairs", err)
	}

	return s, nil
}

// MustFromPairs is FromPairs with KeepFirst that panics on error.
func MustFromPairs[P any](indices []int, payloads []P) Set[P] {
	s, err := FromPairs(indices, payloads, nil)
	if err != nil {
		panic(err)
	}

	return s
}

// FromMap builds a Set from a Go map. Map iteration order does not matter.
func FromMap[P any](m map[int]P) (Set[P], error) {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	payloads := make([]P, len(keys))
	for i, k := range keys {
		payloads[i] = m[k]
	}

	return FromSorted(keys, payloads)
}

// FromSorted adopts already strictly ascending keys. The slices are copied so
// the caller may keep reusing its buffers.
// Errors: ErrLengthMismatch, ErrNegativeIndex, ErrDuplicateIndex, ErrUnsorted.
func FromSorted[P any](keys []int, payloads []P) (Set[P], error) {
	if len(keys) != len(payloads) {
		return Set[P]{}, setErrorf("FromSorted", ErrLengthMismatch)
	}
	if err := validateKeys(keys, ValueOrder); err != nil {
		return Set[P]{}, setErrorf("FromSorted", err)
	}

	return Set[P]{keys: slices.Clone(keys), payloads: slices.Clone(payloads)}, nil
}

// validateKeys checks non-negativity plus the ordering invariant of order.
func validateKeys(keys []int, order Order) error {
	for i, k := range keys {
		if k < 0 {
			return ErrNegativeIndex
		}
		if i == 0 {
			continue
		}
		switch order {
		case ValueOrder:
			if keys[i-1] == k {
				return ErrDuplicateIndex
			}
			if keys[i-1] > k {
				return ErrUnsorted
			}
		case IdentityOrder:
			if slices.Contains(keys[:i], k) {
				return ErrDuplicateIndex
			}
		}
	}

	return nil
}

// Validate re-checks the Set invariants. A Set built through this package
// always validates; the method exists for diagnostics and tests.
func (s Set[P]) Validate() error {
	if len(s.keys) != len(s.payloads) {
		return ErrLengthMismatch
	}

	return validateKeys(s.keys, s.order)
}

// Len returns the number of entries.
func (s Set[P]) Len() int { return len(s.keys) }

// IsEmpty reports whether the Set has no entries.
func (s Set[P]) IsEmpty() bool { return len(s.keys) == 0 }

// Order returns the key ordering of the Set.
func (s Set[P]) Order() Order { return s.order }

// At returns the index stored at position pos. Panics when pos is out of range.
func (s Set[P]) At(pos int) int { return s.keys[pos] }

// PayloadAt returns the payload stored at position pos.
func (s Set[P]) PayloadAt(pos int) P { return s.payloads[pos] }

// Keys returns a copy of the indices in Set order.
func (s Set[P]) Keys() []int { return slices.Clone(s.keys) }

// Payloads returns a copy of the payloads in Set order.
func (s Set[P]) Payloads() []P { return slices.Clone(s.payloads) }

// Position returns the position of index i, or NotFound.
// ValueOrder: O(log n) binary search. IdentityOrder: O(n) scan.
func (s Set[P]) Position(i int) int {
	if s.order == IdentityOrder {
		return slices.Index(s.keys, i)
	}
	pos, ok := slices.BinarySearch(s.keys, i)
	if !ok {
		return NotFound
	}

	return pos
}

// IndexOf returns the position of index i and whether it is present.
func (s Set[P]) IndexOf(i int) (int, bool) {
	pos := s.Position(i)

	return pos, pos != NotFound
}

// Contains reports whether index i is present.
func (s Set[P]) Contains(i int) bool { return s.Position(i) != NotFound }

// LowerBound returns the first position whose key is >= i under ValueOrder,
// or len for IdentityOrder misses. Used by unchecked accessors.
func (s Set[P]) LowerBound(i int) int {
	if s.order == IdentityOrder {
		if pos := slices.Index(s.keys, i); pos >= 0 {
			return pos
		}

		return len(s.keys)
	}
	pos, _ := slices.BinarySearch(s.keys, i)

	return pos
}

// Lookup returns the payload at index i and whether i is present.
func (s Set[P]) Lookup(i int) (P, bool) {
	pos := s.Position(i)
	if pos == NotFound {
		var zero P
		return zero, false
	}

	return s.payloads[pos], true
}

// Get is the strict form of Lookup: absent indices yield ErrIndexNotFound.
func (s Set[P]) Get(i int) (P, error) {
	p, ok := s.Lookup(i)
	if !ok {
		return p, setErrorf("Get("+strconv.Itoa(i)+")", ErrIndexNotFound)
	}

	return p, nil
}

// Shape drops payloads, keeping the indices and order.
func (s Set[P]) Shape() Shape {
	return Shape{keys: s.keys, payloads: make([]struct{}, len(s.keys)), order: s.order}
}

// SameIndices reports whether a and b hold the same indices in the same
// order, whatever their payload types.
func SameIndices[P, Q any](a Set[P], b Set[Q]) bool {
	return slices.Equal(a.keys, b.keys)
}

// ForEach calls fn for every entry in Set order.
func (s Set[P]) ForEach(fn func(index int, payload P)) {
	for i, k := range s.keys {
		fn(k, s.payloads[i])
	}
}

// String renders indices as "{0, 2, 5}" for shapes; map-mode payloads are
// not printed (see sparse.Format for the (index,value) form).
func (s Set[P]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(k))
	}
	b.WriteByte('}')

	return b.String()
}

// Equal reports whether two sets hold the same indices, in the same order,
// with payloads equal under eq.
func Equal[P any](a, b Set[P], eq func(x, y P) bool) bool {
	if !slices.Equal(a.keys, b.keys) {
		return false
	}
	for i := range a.payloads {
		if !eq(a.payloads[i], b.payloads[i]) {
			return false
		}
	}

	return true
}

// Map transforms every payload, keeping the indices. It is the runtime
// replacement for rebinding a container to a new payload type.
func Map[P, Q any](s Set[P], fn func(index int, payload P) Q) Set[Q] {
	out := make([]Q, len(s.keys))
	for i, k := range s.keys {
		out[i] = fn(k, s.payloads[i])
	}

	return Set[Q]{keys: s.keys, payloads: out, order: s.order}
}

// WithPayload attaches a payload to every index of a shape-like set.
func WithPayload[P, Q any](s Set[P], fn func(index int) Q) Set[Q] {
	return Map(s, func(index int, _ P) Q { return fn(index) })
}
