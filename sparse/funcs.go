package sparse

import "strconv"

// Apply maps f over the stored values. f must send zero to zero, otherwise
// the indices outside the shape would stop reading as zero.
// Errors: ErrDomain when f(0) != 0.
func Apply[T Value[T]](a Array[T], f func(T) T) (Array[T], error) {
	var zero T
	if !f(zero).IsZero() {
		return Array[T]{}, sparseErrorf("Apply", ErrDomain)
	}

	return Map(a, func(_ int, v T) T { return f(v) }), nil
}

// Sin applies sin elementwise. Like the rest below it maps 0 to 0, so
// the shape is kept.
func Sin[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Sin() })
}

// Tan applies tan elementwise.
func Tan[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Tan() })
}

// Asin applies arcsin elementwise.
func Asin[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Asin() })
}

// Atan applies arctan elementwise.
func Atan[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Atan() })
}

// Sinh applies sinh elementwise.
func Sinh[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Sinh() })
}

// Tanh applies tanh elementwise.
func Tanh[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Tanh() })
}

// Sqrt applies the square root elementwise.
func Sqrt[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Sqrt() })
}

// Abs applies |v| elementwise.
func Abs[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Abs() })
}

// Ceil rounds every stored value up.
func Ceil[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Ceil() })
}

// Floor rounds every stored value down.
func Floor[T Elementary[T]](a Array[T]) Array[T] {
	return Map(a, func(_ int, v T) T { return v.Floor() })
}

// Pow raises every stored value to the constant power p.
// Errors: ErrDomain unless p > 0 (0^p must stay 0).
func Pow[T Elementary[T]](a Array[T], p float64) (Array[T], error) {
	if !(p > 0) {
		return Array[T]{}, sparseErrorf("Pow("+strconv.FormatFloat(p, 'g', -1, 64)+")", ErrDomain)
	}

	return Map(a, func(_ int, v T) T { return v.Pow(p) }), nil
}
