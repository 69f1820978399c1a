// SPDX-License-Identifier: MIT

package matrix

import "math"

// Solve solves m·x = rhs by Cramer's rule: x_k = det(m with column k := rhs) / det(m).
// Implementation:
//   - Stage 1: validate square m and len(rhs) == n.
//   - Stage 2: det(m); ErrSingular when |det| ≤ eps (WithEpsilon).
//   - Stage 3: one determinant per unknown on a column-substituted copy.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - n+1 Laplace determinants; suitable for small systems only.
func Solve(m Matrix, rhs []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(len(rhs), m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := d.r
	det := laplace(realRing, d.data, n)
	if math.Abs(det) <= o.eps {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	x := make([]float64, n)
	for k := 0; k < n; k++ {
		x[k] = laplace(realRing, withColumn(d.data, n, k, rhs), n) / det
	}

	return x, nil
}
