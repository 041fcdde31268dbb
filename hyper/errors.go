// SPDX-License-Identifier: MIT

// Package hyper: sentinel error set.
// Every partial operation returns one of these sentinels, possibly wrapped with
// a call-site tag. Callers and tests match them via errors.Is. Errors raised by
// an inner level travel unchanged through every enclosing level.
package hyper

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when an algebra has no defined identity for the
	// requested operation (e.g. Sin or Sqrt on split-complex numbers).
	// It is raised immediately; no approximation is attempted.
	ErrUnsupported = errors.New("hyper: operation not supported for this algebra")

	// ErrNotInvertible is returned when dividing by, or inverting, a value whose
	// IsInvertible predicate is false.
	ErrNotInvertible = errors.New("hyper: value is not invertible")

	// ErrNonFinite is returned when a base scalar would be built from NaN or ±Inf.
	ErrNonFinite = errors.New("hyper: NaN or Inf encountered")

	// ErrUnknownOperation marks an out-of-range UnaryOp or BinaryOp passed to Call.
	ErrUnknownOperation = errors.New("hyper: unknown operation")
)

// hyperErrorf tags err with the operation that observed it.
// The sentinel stays reachable through errors.Is.
func hyperErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
