// Package sparsead is a sparse forward-mode automatic differentiation
// engine: dual numbers whose derivative part stores coefficients only for
// the variables actually reached, on top of a general index-set algebra.
//
// 🚀 What is sparsead?
//
//	A pure-Go toolkit that brings together:
//		• Index sets: ordered, duplicate-free indices with payload promotion
//		• Sparse arrays: (index, value) tuples with union/intersection algebra
//		• Dual numbers: value + sparse derivative, full chain-rule library
//		• Named arrays: axis-tagged dense blocks with permute & broadcast
//		• Batch evaluation: bounded concurrent gradients with metrics
//
// ✨ Why sparse?
//
//   - Cost follows the number of active variables, not the total count
//   - Shapes compose by set algebra: + and − take the union, × the
//     intersection, ÷ the numerator's shape
//   - Checked or trusted element access, chosen per array
//   - Every derivative can be verified against central differences
//
// Everything is organized under these subpackages:
//
//	indexset/      Set[P]: ordered indices, Union / Intersection / Difference / Insert / Sort
//	sparse/        Array[T]: sparse tuples, elementwise ops, "{(i,v), ...}" codec
//	ad/            Dual: seeds, arithmetic, elementary functions, CheckGradient
//	named/         Array[T]: named axes, PermutationArray, Reshape, broadcasting
//	batch/         Evaluator: errgroup worker pool over many points
//	config/        YAML configuration for the command
//	cmd/sparsead/  cobra CLI over all of the above
//
// Quick example:
//
//	x := ad.MustSeed(3, 0)
//	y := ad.MustSeed(4, 1)
//	f := ad.Mul(x, y)  // (12,{(0,4), (1,3)})
//
//	go get github.com/katalvlaran/sparsead
package sparsead
