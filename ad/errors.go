// SPDX-License-Identifier: MIT
// Package ad: sentinel error set.
//
// Lookup and domain failures reuse the sparse/indexset sentinels so a single
// errors.Is check works whichever layer reported them.

package ad

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/sparse"
)

var (
	// ErrIndexNotFound is returned by StrictDerivative for a tag outside the
	// derivative shape.
	ErrIndexNotFound = indexset.ErrIndexNotFound

	// ErrNegativeTag indicates a seed with a tag below zero.
	ErrNegativeTag = indexset.ErrNegativeIndex

	// ErrDomain indicates an argument outside a function's domain.
	ErrDomain = sparse.ErrDomain

	// ErrSyntax indicates malformed "(v,{...})" text.
	ErrSyntax = sparse.ErrSyntax

	// ErrCheckFailed indicates a forward-mode derivative disagreeing with its
	// finite-difference estimate beyond tolerance.
	ErrCheckFailed = errors.New("ad: derivative check failed")

	// ErrArity indicates a point whose length differs from the expected
	// number of variables.
	ErrArity = errors.New("ad: wrong number of variables")
)

func adErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
