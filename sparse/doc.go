// Package sparse provides fixed-shape sparse tuples of numbers: an Array
// stores values only at the indices of its shape and reads as zero anywhere
// else.
//
// 🚀 What is a sparse array?
//
//	Think of a vector indexed by variable or species number where most
//	entries are structurally zero. Only the non-zero "slots" are stored,
//	together with the indexset.Shape naming them. Shapes combine by set
//	algebra whenever two arrays meet:
//	  • a + b, a − b   → union of shapes
//	  • a · b          → intersection of shapes
//	  • a / b          → numerator shape (denominator must cover it)
//
// ✨ Key features:
//   - generic payload: Real, or any type satisfying Value (e.g. ad.Dual)
//   - total Query (absent → 0), strict At (ErrIndexNotFound), and MustAt
//     governed by an explicit per-array AccessMode (Checked / Trusted)
//   - lossy Slice and subset-checked Convert between shapes
//   - comparisons restricted to operators with 0 op 0 == false
//   - zero-preserving elementary functions (Sin, Sqrt, Abs, ...) and Apply
//   - Sum, Dot, Outer, Identity and Transpose helpers
//   - "{(i,v), ...}" text codec with exact float round-trip
//
// ⚙️ Usage:
//
//	a := sparse.MustFromPairs([]int{0, 2}, sparse.Reals(1, 3))
//	b := sparse.MustFromPairs([]int{1, 2}, sparse.Reals(2, 5))
//	fmt.Println(sparse.Add(a, b)) // {(0,1), (1,2), (2,8)}
//	fmt.Println(sparse.Mul(a, b)) // {(2,15)}
//
//	_, err := sparse.Div(a, b)    // ErrImplicitZero: index 0 missing from b
//
// Arrays are values: every operation returns a new Array, and shapes are
// shared read-only, so arrays may be passed between goroutines freely.
package sparse
