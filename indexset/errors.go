// SPDX-License-Identifier: MIT
// Package indexset: sentinel error set.
//
// All exported constructors return these sentinels (optionally wrapped with
// the operation name); tests match them via errors.Is.

package indexset

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIndex is returned when an index below zero is supplied.
	ErrNegativeIndex = errors.New("indexset: negative index")

	// ErrUnsorted indicates keys handed to FromSorted are not strictly ascending.
	ErrUnsorted = errors.New("indexset: keys not strictly ascending")

	// ErrDuplicateIndex indicates the same key appears twice where the
	// caller promised uniqueness.
	ErrDuplicateIndex = errors.New("indexset: duplicate index")

	// ErrIndexNotFound is returned by strict lookups for an absent index.
	// The sparse and ad packages reuse this sentinel for their strict accessors.
	ErrIndexNotFound = errors.New("indexset: index not found")

	// ErrLengthMismatch indicates keys and payloads of different lengths.
	ErrLengthMismatch = errors.New("indexset: keys/payloads length mismatch")
)

// setErrorf wraps err with the operation tag.
func setErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
