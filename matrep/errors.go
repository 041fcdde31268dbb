// SPDX-License-Identifier: MIT

// Package matrep: sentinel error set.
// Every message is prefixed with "matrep: ..." and all functions return these
// sentinels, possibly wrapped with an operation tag; tests match them with errors.Is.
package matrep

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrep: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrep: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols != b.Rows, or a component vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrep: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrep: matrix is not square")

	// ErrUnsupportedComponent indicates a number type whose leaves are not
	// float64-backed, so it has no real representation.
	ErrUnsupportedComponent = errors.New("matrep: unsupported component type")
)

// Operation tags used by matrepErrorf.
const (
	opAt      = "At"
	opSet     = "Set"
	opMul     = "Mul"
	opMulVec  = "MulVec"
	opDet     = "Det"
	opFlatten = "Flatten"
	opBuild   = "Unflatten"
	opLeftMul = "LeftMul"
)

// matrepErrorf tags err with the operation that observed it.
func matrepErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
