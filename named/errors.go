// SPDX-License-Identifier: MIT
// Package named: sentinel error set.

package named

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsead/indexset"
)

var (
	// ErrAxisNotFound indicates an axis id required by the operation is
	// missing from the array or the target layout.
	ErrAxisNotFound = errors.New("named: axis not found")

	// ErrDuplicateAxis indicates the same axis id listed twice in a layout.
	ErrDuplicateAxis = errors.New("named: duplicate axis")

	// ErrExtentMismatch indicates the same axis carries two incompatible
	// extents (neither equal nor broadcastable).
	ErrExtentMismatch = errors.New("named: axis extent mismatch")

	// ErrNotBroadcastable indicates a reshape that would introduce an axis of
	// extent other than 1.
	ErrNotBroadcastable = errors.New("named: new axis must have extent 1")

	// ErrBadExtent indicates an axis extent below 1.
	ErrBadExtent = errors.New("named: axis extent must be positive")

	// ErrOutOfRange indicates a coordinate outside its axis extent.
	ErrOutOfRange = errors.New("named: coordinate out of range")

	// ErrLengthMismatch indicates data whose length is not the product of
	// the extents.
	ErrLengthMismatch = indexset.ErrLengthMismatch
)

func namedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
