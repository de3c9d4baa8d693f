// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Every message is prefixed with "sparse: ". Operations wrap the sentinel
// with their name via sparseErrorf; callers match with errors.Is.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsead/indexset"
)

var (
	// ErrDomain is returned when an operation is asked for something its
	// algebra cannot represent: a non-zero scalar spread over a sparse shape,
	// a function with f(0) != 0, a non-positive power.
	ErrDomain = errors.New("sparse: value outside the operation's domain")

	// ErrImplicitZero indicates a division whose numerator holds an index the
	// denominator lacks, i.e. a division by an implicit zero.
	ErrImplicitZero = errors.New("sparse: division by implicit zero")

	// ErrNotSubset indicates a lossless conversion to a shape that does not
	// contain every source index.
	ErrNotSubset = errors.New("sparse: source indices not a subset of target")

	// ErrSyntax indicates malformed "{(i,v), ...}" text.
	ErrSyntax = errors.New("sparse: malformed sparse literal")

	// ErrIndexNotFound is the strict-accessor error, shared with indexset.
	ErrIndexNotFound = indexset.ErrIndexNotFound

	// ErrLengthMismatch is returned when a shape and its data differ in length.
	ErrLengthMismatch = indexset.ErrLengthMismatch
)

// sparseErrorf wraps err with the operation tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
