// Package named provides dense arrays whose axes are identified by id rather
// than by position, with permutation, reshape and broadcasting arithmetic.
//
// 🚀 Why named axes?
//
//	Two arrays built by different code may store the same axes in different
//	physical orders, or one may lack an axis the other has. Addressing axes
//	by id lets elementwise operations line them up automatically:
//	  • PermutationArray maps one axis order onto another
//	  • Reshape re-lays data in a target order, inserting extent-1 axes
//	  • Add/Sub/Mul/Div broadcast over the union of axes
//
// ⚙️ Usage:
//
//	sizes := indexset.MustFromPairs([]int{0, 1}, []int{3, 2}) // axis → extent
//	a, _ := named.New(sizes, sparse.Reals(1, 2, 3, 4, 5, 6))
//	v, _ := a.At(map[int]int{0: 2, 1: 1})                      // 6
//
// Element types are any sparse.Value, so arrays of ad.Dual carry derivatives
// through every operation.
package named
