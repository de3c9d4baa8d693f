package indexset

import "cmp"

// Number is the constraint for payloads that can be summed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// KeepFirst keeps the payload already in the set.
func KeepFirst[P any](old, _ P) P { return old }

// KeepLast replaces the stored payload with the incoming one.
func KeepLast[P any](_, next P) P { return next }

// Sum adds the two payloads.
func Sum[P Number](old, next P) P { return old + next }

// Max keeps the larger payload.
func Max[P cmp.Ordered](old, next P) P { return max(old, next) }

// Min keeps the smaller payload.
func Min[P cmp.Ordered](old, next P) P { return min(old, next) }

func orKeepFirst[P any](c Combine[P]) Combine[P] {
	if c == nil {
		return KeepFirst[P]
	}

	return c
}

// Kind classifies the numeric width of a payload for promotion purposes.
// Kinds are totally ordered: Bool < Int < Float < Dual.
type Kind uint8

const (
	// KindBool holds truth values.
	KindBool Kind = iota
	// KindInt holds integral values.
	KindInt
	// KindFloat holds real values.
	KindFloat
	// KindDual holds values with derivative information.
	KindDual
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDual:
		return "dual"
	default:
		return "unknown"
	}
}

// Wider returns the wider of two kinds.
func Wider(a, b Kind) Kind { return max(a, b) }

// PromoteKind is the prefer-wider-numeric-type combine rule: merging an int
// slot with a float slot yields float, anything with dual yields dual.
func PromoteKind(old, next Kind) Kind { return Wider(old, next) }

// Supertype returns the widest kind held by s, or false for an empty set.
func Supertype(s Set[Kind]) (Kind, bool) {
	if s.IsEmpty() {
		return KindBool, false
	}
	k := s.payloads[0]
	for _, p := range s.payloads[1:] {
		k = Wider(k, p)
	}

	return k, true
}
