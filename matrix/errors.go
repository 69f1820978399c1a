// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag
// (matrixErrorf / denseErrorf / complexErrorf); callers match them via errors.Is.
// No kernel panics on user-triggered error conditions.
//
// Two failure channels exist and must not be mixed:
//   - structural errors (shape, index, nil, NaN policy) are returned as error;
//   - value-level "no answer" results of the Complex matrix (singular inverse,
//     non-square cofactor, unsolvable system) are reported as ok == false.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a body/buffer length does not match rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by the float kernels when the determinant is zero
	// within the configured epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNegativeExponent is returned by Pow for n < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
