package named_test

import (
	"fmt"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/named"
	"github.com/katalvlaran/sparsead/sparse"
)

// ExampleTranspose swaps the physical order of a 2×3 block.
func ExampleTranspose() {
	a, _ := named.NewLayout([]int{2, 0}, []int{2, 3}, sparse.Reals(1, 2, 3, 4, 5, 6))
	t, _ := named.Transpose(a, []int{0, 2})
	fmt.Println(a)
	fmt.Println(t)
	// Output:
	// {(2,2), (0,3)}[1 2 3 4 5 6]
	// {(0,3), (2,2)}[1 4 2 5 3 6]
}

// ExamplePermutationArray locates every source axis in a wider descriptor.
func ExamplePermutationArray() {
	src := indexset.MustFromPairs([]int{0, 2}, []int{3, 2})
	dst := indexset.MustFromPairs([]int{0, 1, 2}, []int{3, 1, 2})
	perm, err := named.PermutationArray(src, dst)
	fmt.Println(perm, err)
	// Output:
	// [0 2] <nil>
}
