// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the float and the symbolic matrices.
// This file contains ONLY the public interfaces; storage lives in
// impl_dense.go (float64) and complex.go (im.Number).
package matrix

// Shaped is anything with a row and column count. Validators accept Shaped so
// that Dense and Complex share one set of shape checks.
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Shaped

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf when the
	// numeric policy rejects v.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
