// Package indexset implements ordered, duplicate-free collections of
// non-negative variable indices and the set algebra used whenever two sparse
// structures meet.
//
// 🚀 What is an index set?
//
//	A Set records which "slots" of a sparse quantity exist: which variables a
//	derivative depends on, which species a tuple carries, which axes a named
//	array has. Each entry may carry a payload (map mode) or nothing at all
//	(Shape, set mode).
//
// ✨ Key features:
//   - strictly ascending keys under ValueOrder, binary-search lookups
//   - IdentityOrder for tag-like keys compared only by distinctness
//   - Insert / Union / Intersection / Difference returning new sets
//   - caller-supplied Combine rules (KeepFirst, Sum, Max, PromoteKind, ...)
//     resolve payload collisions
//   - UnionAll / IntersectAll folds over many sets
//
// Immutability:
//
//	A Set is never modified after construction. Every operation returns a
//	fresh Set, and copies of a Set share storage read-only, so a single Shape
//	may be shared by any number of values and goroutines.
//
// ⚙️ Usage:
//
//	a := indexset.MustNew(0, 2)
//	b := indexset.MustNew(1, 2)
//	u := indexset.Union(a, b, nil)          // {0, 1, 2}
//	d := indexset.Difference(u, b)          // {0}
//
//	w := indexset.MustFromPairs([]int{0, 1}, []int{3, 4})
//	m := indexset.Union(w, w, indexset.Sum[int]) // {(0,6), (1,8)}
package indexset
