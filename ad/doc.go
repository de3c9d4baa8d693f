// Package ad implements sparse forward-mode automatic differentiation.
//
// 🚀 What is a sparse dual number?
//
//	A Dual carries a value and its derivative with respect to every
//	independent variable it depends on. Variables are identified by integer
//	tags; the derivative stores coefficients only for the tags actually
//	reached, so the cost of an operation follows the number of active
//	variables rather than the total number of unknowns.
//
// ✨ Key features:
//   - Seed / Constant / New constructors; Value, Derivative (total),
//     StrictDerivative (error) and MustDerivative (access-mode governed)
//   - arithmetic whose derivative shapes combine by union
//   - Sqrt, Exp, Log, Log10, Sin, Cos, Tan, Asin, Acos, Atan, Sinh, Cosh,
//     Tanh, Abs, Ceil, Floor, Inv, PowInt, PowReal, Pow, Atan2, Hypot, Mod,
//     Max, Min, all through the Unary / Binary chain-rule kernels
//   - Dual satisfies sparse.Value and sparse.Elementary, so sparse and named
//     arrays of duals differentiate elementwise
//   - Derivative / Gradient / Divergence helpers over named arrays
//   - CheckGradient: central-difference verification
//   - "(v,{(i,d), ...})" text codec
//
// ⚙️ Usage:
//
//	x := ad.MustSeed(3, 0)
//	y := ad.MustSeed(4, 1)
//	f := ad.Mul(x, y)
//	f.Value()        // 12
//	f.Derivative(0)  // 4
//	f.Derivative(1)  // 3
//	f.Derivative(7)  // 0
//
// Duals are immutable values and may be shared between goroutines.
package ad
