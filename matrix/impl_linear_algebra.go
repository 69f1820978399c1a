// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, multiplication, transpose, scalar
// scaling, determinant, cofactor/adjugate, inverse, integer power and
// Cramer's-rule solving. All functions perform strict fail-fast validation
// and return wrapped sentinels on contract violations.
//
// Purpose:
//   - Mirror the symbolic Complex kernels on plain float64 data.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel materializes its operands into row-major buffers first
//     (denseOf); *Dense operands are read in place without copying.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opDet       = "Determinant"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opPow       = "Pow"
	opSolve     = "Solve"
)

// realRing is float64 arithmetic for the shared cofactor kernels.
var realRing = ring[float64]{
	zero:   0,
	one:    1,
	add:    func(a, b float64) float64 { return a + b },
	sub:    func(a, b float64) float64 { return a - b },
	mul:    func(a, b float64) float64 { return a * b },
	isZero: func(v float64) bool { return v == 0 },
}

// denseOf returns m as *Dense. A *Dense is returned as is (callers must not
// mutate it); any other Matrix is copied element by element in i→j order.
func denseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// fromBuffer wraps a freshly computed buffer without copying it again.
func fromBuffer(rows, cols int, data []float64) *Dense {
	return &Dense{r: rows, c: cols, data: data, validateNaNInf: DefaultValidateNaNInf}
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); materialize both operands.
//   - Stage 2: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := make([]float64, len(da.data))
	for idx := range out { // deterministic 0..n-1
		out[idx] = da.data[idx] + sign*db.data[idx]
	}

	return fromBuffer(da.r, da.c, out), nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return fromBuffer(da.r, db.c, mulBuffers(da.data, db.data, da.r, da.c, db.c)), nil
}

// mulBuffers multiplies an r×n buffer by an n×c buffer.
func mulBuffers(a, b []float64, r, n, c int) []float64 {
	out := make([]float64, r*c)
	var i, j, k, rowA, rowB, rowR int
	var av float64
	for i = 0; i < r; i++ {
		rowA = i * n
		rowR = i * c
		for k = 0; k < n; k++ {
			av = a[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * c
			for j = 0; j < c; j++ {
				out[rowR+j] += av * b[rowB+j]
			}
		}
	}

	return out
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return fromBuffer(d.c, d.r, transposed(d.data, d.r, d.c)), nil
}

// Scale returns alpha·m as a new Dense.
// Errors: ErrNilMatrix, ErrNaNInf (alpha is not finite).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	out := make([]float64, len(d.data))
	for idx, v := range d.data {
		out[idx] = alpha * v
	}

	return fromBuffer(d.r, d.c, out), nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(len(x), d.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return mulBuffers(d.data, x, d.r, d.c, 1), nil
}

// Determinant returns det(m) by Laplace expansion along column 0.
// MAIN DESCRIPTION:
//   - Same expansion as the symbolic Complex determinant, on float64.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!) worst case; zero entries in column 0 prune whole subtrees.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return laplace(realRing, d.data, d.r), nil
}

// Cofactor returns the matrix of signed minors C[i,j] = (−1)^(i+j)·det(M_ij).
// Errors: ErrNilMatrix, ErrNonSquare.
func Cofactor(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return fromBuffer(d.r, d.c, cofactors(realRing, d.data, d.r)), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := d.r

	return fromBuffer(n, n, transposed(cofactors(realRing, d.data, n), n, n)), nil
}

// Inverse returns m⁻¹ using Gauss–Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Augments m with the identity and reduces the left block to I; the right
//     block is then the inverse.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); copy m into an n×2n work buffer.
//   - Stage 2: for each column pick the row with the largest |pivot|; fail with
//     ErrSingular when that pivot is ≤ eps (WithEpsilon).
//   - Stage 3: normalize the pivot row and eliminate the column in all other rows.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Ties between equal |pivot| candidates keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	w := 2 * n
	aug := make([]float64, n*w)
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], d.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	var pivotRow int
	var pivot, factor float64
	for k = 0; k < n; k++ {
		// Stage 2: partial pivoting.
		pivotRow = k
		for i = k + 1; i < n; i++ {
			if math.Abs(aug[i*w+k]) > math.Abs(aug[pivotRow*w+k]) {
				pivotRow = i
			}
		}
		if math.Abs(aug[pivotRow*w+k]) <= o.eps {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivotRow != k {
			for j = 0; j < w; j++ {
				aug[k*w+j], aug[pivotRow*w+j] = aug[pivotRow*w+j], aug[k*w+j]
			}
		}

		// Stage 3: normalize and eliminate.
		pivot = aug[k*w+k]
		for j = 0; j < w; j++ {
			aug[k*w+j] /= pivot
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			factor = aug[i*w+k]
			if factor == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				aug[i*w+j] -= factor * aug[k*w+j]
			}
		}
	}

	out := make([]float64, n*n)
	for i = 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return fromBuffer(n, n, out), nil
}

// Pow returns m^n for a square m.
//   - n == 0 yields the zero matrix of the same shape (not the identity).
//   - n == 1 yields a copy.
//   - n > 1 uses binary exponentiation.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
func Pow(m Matrix, n int) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	size := d.r
	if n == 0 {
		return fromBuffer(size, size, make([]float64, size*size)), nil
	}

	base := make([]float64, len(d.data))
	copy(base, d.data)
	var acc []float64
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			if acc == nil {
				acc = base
			} else {
				acc = mulBuffers(acc, base, size, size, size)
			}
		}
		if n > 1 {
			base = mulBuffers(base, base, size, size, size)
		}
	}

	return fromBuffer(size, size, acc), nil
}
