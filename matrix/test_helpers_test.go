// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the Dense and Complex kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/xmath/im"
	"github.com/katalvlaran/xmath/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions, which
// forces the element-by-element materialization path.
type hide struct{ matrix.Matrix }

// NewFilledDense allocates an r×c *Dense from a row-major buffer or fails the test.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// randomDense fills an n×n matrix from a fixed seed.
func randomDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, n, n, vals)
}

// requireAllClose asserts element-wise |a-b| ≤ tol.
func requireAllClose(t *testing.T, want []float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows()*got.Cols())
	var k int
	for i := 0; i < got.Rows(); i++ {
		for j := 0; j < got.Cols(); j++ {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.LessOrEqualf(t, math.Abs(v-want[k]), tol, "at (%d,%d): got %v, want %v", i, j, v, want[k])
			k++
		}
	}
}

// mustComplex builds a Complex from row-major elements or fails the test.
func mustComplex(t testing.TB, r, c int, body ...im.Number) *matrix.Complex {
	t.Helper()
	m, err := matrix.NewComplex(r, c, body)
	require.NoError(t, err)

	return m
}

// fixtureM1 is [[-1-3i, 4+2i], [1+i, -2+i]].
func fixtureM1(t testing.TB) *matrix.Complex {
	return mustComplex(t, 2, 2,
		im.Complex(-1, -3), im.Complex(4, 2),
		im.Complex(1, 1), im.Complex(-2, 1),
	)
}

// fixtureM2 is [[-5-3i, 4+2i], [4+3i, -8+i]].
func fixtureM2(t testing.TB) *matrix.Complex {
	return mustComplex(t, 2, 2,
		im.Complex(-5, -3), im.Complex(4, 2),
		im.Complex(4, 3), im.Complex(-8, 1),
	)
}
