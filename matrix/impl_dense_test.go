// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/xmath/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFrom covers buffer length, NaN policy and copy semantics.
func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN())) // policy travels with the matrix

	src := []float64{1, 2}
	m, err = matrix.NewDenseFrom(1, 2, src)
	require.NoError(t, err)
	src[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // buffer was copied
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, 0, math.Inf(-1))           // default policy rejects Inf
	require.ErrorIs(t, err, matrix.ErrNaNInf) // expect ErrNaNInf
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original remains unchanged

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestIdentity checks the diagonal layout.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
