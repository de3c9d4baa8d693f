// SPDX-License-Identifier: MIT
// Package ad: arithmetic and the chain-rule kernels.
//
// Every operation reduces to one of two kernels:
//   - Unary(x, f, df):       value f,  derivative df·dx            (shape of x)
//   - Binary(a, b, f, fa, fb): value f, derivative fa·da + fb·db  (union of shapes)
//
// Derivative arrays are never mutated; results own fresh coefficient slices
// and may share shapes with their operands.

package ad

import "github.com/katalvlaran/sparsead/sparse"

// Unary applies the chain rule for a one-argument function whose value at x
// is f and whose derivative at x is df.
func Unary(x Dual, f, df float64) Dual {
	return Dual{value: f, deriv: sparse.Scale(x.deriv, df)}
}

// Binary applies the chain rule for a two-argument function with value f and
// partial derivatives fa, fb at (a, b).
func Binary(a, b Dual, f, fa, fb float64) Dual {
	return Dual{value: f, deriv: sparse.LinearCombination(fa, a.deriv, fb, b.deriv)}
}

// Add returns a+b.
func Add(a, b Dual) Dual {
	return Dual{value: a.value + b.value, deriv: sparse.Add(a.deriv, b.deriv)}
}

// Sub returns a-b.
func Sub(a, b Dual) Dual {
	return Dual{value: a.value - b.value, deriv: sparse.Sub(a.deriv, b.deriv)}
}

// Neg returns -x.
func Neg(x Dual) Dual {
	return Dual{value: -x.value, deriv: sparse.Neg(x.deriv)}
}

// Mul returns a·b; d(ab) = b·da + a·db.
func Mul(a, b Dual) Dual {
	return Binary(a, b, a.value*b.value, b.value, a.value)
}

// Div returns a/b; d(a/b) = da/b − a·db/b².
func Div(a, b Dual) Dual {
	inv := 1 / b.value
	q := a.value * inv

	return Binary(a, b, q, inv, -q*inv)
}

// Inv returns 1/x.
func Inv(x Dual) Dual {
	inv := 1 / x.value

	return Unary(x, inv, -inv*inv)
}

// AddScalar returns x+c.
func AddScalar(x Dual, c float64) Dual {
	return Dual{value: x.value + c, deriv: x.deriv}
}

// SubScalar returns x−c.
func SubScalar(x Dual, c float64) Dual {
	return Dual{value: x.value - c, deriv: x.deriv}
}

// ScalarSub returns c−x.
func ScalarSub(c float64, x Dual) Dual {
	return Dual{value: c - x.value, deriv: sparse.Neg(x.deriv)}
}

// MulScalar returns c·x.
func MulScalar(x Dual, c float64) Dual {
	return Unary(x, c*x.value, c)
}

// DivScalar returns x/c.
func DivScalar(x Dual, c float64) Dual {
	return Unary(x, x.value/c, 1/c)
}

// ScalarDiv returns c/x.
func ScalarDiv(c float64, x Dual) Dual {
	inv := 1 / x.value

	return Unary(x, c*inv, -c*inv*inv)
}

// Sum adds all terms; no terms sum to the constant 0.
func Sum(terms ...Dual) Dual {
	var acc Dual
	for _, t := range terms {
		acc = Add(acc, t)
	}

	return acc
}

// Less reports a < b on values. Together with Greater and NotEqual these are
// the value comparisons; derivatives never take part.
func Less(a, b Dual) bool { return a.value < b.value }

// Greater reports a > b on values.
func Greater(a, b Dual) bool { return a.value > b.value }

// NotEqual reports a != b on values.
func NotEqual(a, b Dual) bool { return a.value != b.value }

// IfElse returns t when cond holds, f otherwise.
func IfElse(cond bool, t, f Dual) Dual {
	if cond {
		return t
	}

	return f
}
