// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/xmath/im"

// imRing is symbolic arithmetic for the shared cofactor kernels.
var imRing = ring[im.Number]{
	zero:   im.Zero{},
	one:    im.One(),
	add:    im.Add,
	sub:    im.Sub,
	mul:    im.Mul,
	isZero: im.IsZero,
}

// Determinant returns det(m): the element for 1×1, a·d − b·c for 2×2 and
// Laplace expansion along column 0 otherwise. A non-square matrix has
// determinant im.Zero.
func (m *Complex) Determinant() im.Number {
	if m.r != m.c {
		return im.Zero{}
	}

	return laplace(imRing, m.body, m.r)
}

// Mul returns m·o.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols != o.Rows).
func (m *Complex) Mul(o *Complex) (*Complex, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, complexErrorf(opMul, err)
	}

	return m.mul(o), nil
}

// mul multiplies compatible matrices; accumulation runs k = 0..n-1.
func (m *Complex) mul(o *Complex) *Complex {
	out := newComplexBuffer(m.r, o.c)
	var i, j, k int
	var acc im.Number
	for i = 0; i < m.r; i++ {
		for j = 0; j < o.c; j++ {
			acc = im.Zero{}
			for k = 0; k < m.c; k++ {
				acc = im.Add(acc, im.Mul(m.body[i*m.c+k], o.body[k*o.c+j]))
			}
			out.body[i*o.c+j] = acc
		}
	}

	return out
}

// Add returns m + o element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Complex) Add(o *Complex) (*Complex, error) {
	return m.zip(o, opAdd, im.Add)
}

// Sub returns m − o element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Complex) Sub(o *Complex) (*Complex, error) {
	return m.zip(o, opSub, im.Sub)
}

func (m *Complex) zip(o *Complex, op string, f func(a, b im.Number) im.Number) (*Complex, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, complexErrorf(op, err)
	}
	out := newComplexBuffer(m.r, m.c)
	for k := range m.body {
		out.body[k] = f(m.body[k], o.body[k])
	}

	return out, nil
}

// Scale returns s·m.
func (m *Complex) Scale(s im.Number) *Complex {
	out := newComplexBuffer(m.r, m.c)
	for k, v := range m.body {
		out.body[k] = im.Mul(s, v)
	}

	return out
}

// Transpose returns mᵀ.
func (m *Complex) Transpose() *Complex {
	return &Complex{r: m.c, c: m.r, body: transposed(m.body, m.r, m.c)}
}

// Cofactor returns the matrix of signed minors. ok is false for a non-square matrix.
func (m *Complex) Cofactor() (*Complex, bool) {
	if m.r != m.c {
		return nil, false
	}

	return &Complex{r: m.r, c: m.c, body: cofactors(imRing, m.body, m.r)}, true
}

// Inverse returns Cofactor()ᵀ scaled by 1/det.
// MAIN DESCRIPTION:
//   - Exact symbolic inverse; entries stay in canonical im form, so the
//     reciprocal of a complex determinant appears as a power with exponent −1.
//
// Returns ok == false when m is non-square or det is Zero (or Undefined).
func (m *Complex) Inverse() (*Complex, bool) {
	cof, ok := m.Cofactor()
	if !ok {
		return nil, false
	}
	det := m.Determinant()
	if im.IsZero(det) || im.IsUndefined(det) {
		return nil, false
	}

	return cof.Transpose().Scale(im.Div(im.One(), det)), true
}

// Pow returns m^n.
//   - n == 0 yields the zero matrix of the same shape.
//   - n == 1 yields a copy.
//   - n > 1 uses binary exponentiation.
//
// Errors: ErrNonSquare, ErrNegativeExponent.
func (m *Complex) Pow(n int) (*Complex, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, complexErrorf(opPow, err)
	}
	if n < 0 {
		return nil, complexErrorf(opPow, ErrNegativeExponent)
	}
	if n == 0 {
		return newComplexBuffer(m.r, m.c), nil
	}

	base := &Complex{r: m.r, c: m.c, body: m.Body()}
	var acc *Complex
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			if acc == nil {
				acc = base
			} else {
				acc = acc.mul(base)
			}
		}
		if n > 1 {
			base = base.mul(base)
		}
	}

	return acc, nil
}

// Solve solves m·x = rhs by Cramer's rule.
// ok is false when m is non-square or singular.
// Errors: ErrDimensionMismatch when len(rhs) != Rows.
func (m *Complex) Solve(rhs []im.Number) ([]im.Number, bool, error) {
	if m.r != m.c {
		return nil, false, nil
	}
	if err := ValidateVecLen(len(rhs), m.r); err != nil {
		return nil, false, complexErrorf(opSolve, err)
	}
	det := m.Determinant()
	if im.IsZero(det) || im.IsUndefined(det) {
		return nil, false, nil
	}

	col := make([]im.Number, len(rhs))
	for k, v := range rhs {
		if v == nil {
			v = im.Zero{}
		}
		col[k] = v
	}
	x := make([]im.Number, m.r)
	for k := range x {
		x[k] = im.Div(laplace(imRing, withColumn(m.body, m.r, k, col), m.r), det)
	}

	return x, true, nil
}
