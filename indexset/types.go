package indexset

// Order selects how keys of a Set are compared and arranged.
//
//   - ValueOrder: keys are ordered numerically; the Set is strictly
//     ascending and lookups use binary search.
//   - IdentityOrder: keys are only compared for equality (tags rather than
//     numbers); the Set keeps first-occurrence order and lookups scan linearly.
type Order uint8

const (
	// ValueOrder orders keys by numeric value (the default).
	ValueOrder Order = iota

	// IdentityOrder compares keys by distinctness only.
	IdentityOrder
)

// String returns a short name for the order.
func (o Order) String() string {
	switch o {
	case ValueOrder:
		return "value"
	case IdentityOrder:
		return "identity"
	default:
		return "unknown"
	}
}

// NotFound is the position reported by Position for an absent index.
const NotFound = -1

// Combine merges the payload already stored at an index (old) with an
// incoming payload (next) for the same index. A nil Combine keeps old.
//
// Union is commutative with respect to payload only when Combine is symmetric.
type Combine[P any] func(old, next P) P

// Entry is one (index, payload) pair, used to build sets from unsorted input.
type Entry[P any] struct {
	Index   int
	Payload P
}

// Set is an immutable, duplicate-free collection of non-negative indices,
// each carrying a payload of type P.
//
// The zero value is a valid empty set under ValueOrder.
type Set[P any] struct {
	keys     []int // strictly ascending under ValueOrder; distinct under IdentityOrder
	payloads []P   // aligned with keys; len(payloads) == len(keys)
	order    Order
}

// Shape is a Set without payloads: the pure index-set form shared by sparse
// arrays and dual numbers.
type Shape = Set[struct{}]
