// SPDX-License-Identifier: MIT

// Package matrix - cofactor expansion shared by the float and symbolic kernels.
//
// Purpose:
//   - Express determinant, minor and cofactor once, generic over the element type.
//   - Dense instantiates it with float64 arithmetic, Complex with im.Number arithmetic.
//
// Determinism:
//   - Expansion always runs down column 0, rows in ascending order.
//
// Complexity:
//   - Laplace expansion is O(n!) in time; intended for the small systems the
//     symbolic engine handles. Dense.Inverse uses elimination instead.

package matrix

// ring bundles the arithmetic needed by the cofactor kernels.
type ring[T any] struct {
	zero   T
	one    T
	add    func(a, b T) T
	sub    func(a, b T) T
	mul    func(a, b T) T
	isZero func(T) bool
}

// minor returns the row-major (n-1)×(n-1) buffer of data with row and col removed.
func minor[T any](data []T, n, row, col int) []T {
	out := make([]T, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			out = append(out, data[i*n+j])
		}
	}

	return out
}

// laplace computes the determinant of the n×n row-major buffer.
// Implementation:
//   - Stage 1: 1×1 returns the element; 2×2 uses a·d − b·c.
//   - Stage 2: otherwise expand along column 0, skipping zero pivots,
//     alternating add/sub by row parity.
func laplace[T any](r ring[T], data []T, n int) T {
	switch n {
	case 0:
		return r.zero
	case 1:
		return data[0]
	case 2:
		return r.sub(r.mul(data[0], data[3]), r.mul(data[1], data[2]))
	}

	det := r.zero
	var term T
	for i := 0; i < n; i++ {
		a := data[i*n]
		if r.isZero(a) {
			continue
		}
		term = r.mul(a, laplace(r, minor(data, n, i, 0), n-1))
		if i%2 == 0 {
			det = r.add(det, term)
		} else {
			det = r.sub(det, term)
		}
	}

	return det
}

// cofactors returns the n×n buffer of signed minors: C[i,j] = (−1)^(i+j)·det(M_ij).
// The cofactor matrix of a 1×1 input is [1].
func cofactors[T any](r ring[T], data []T, n int) []T {
	out := make([]T, n*n)
	if n == 1 {
		out[0] = r.one
		return out
	}

	var i, j int
	var d T
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = laplace(r, minor(data, n, i, j), n-1)
			if (i+j)%2 == 1 {
				d = r.sub(r.zero, d)
			}
			out[i*n+j] = d
		}
	}

	return out
}

// transposed returns the c×r row-major transpose of an r×c buffer.
func transposed[T any](data []T, rows, cols int) []T {
	out := make([]T, len(data))
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[j*rows+i] = data[i*cols+j]
		}
	}

	return out
}

// withColumn returns a copy of the n×n buffer whose column col is replaced by v.
func withColumn[T any](data []T, n, col int, v []T) []T {
	out := make([]T, len(data))
	copy(out, data)
	for i := 0; i < n; i++ {
		out[i*n+col] = v[i]
	}

	return out
}
