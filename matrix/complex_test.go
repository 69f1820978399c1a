// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/xmath/im"
	"github.com/katalvlaran/xmath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComplex(t *testing.T) {
	_, err := matrix.NewComplex(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewComplex(2, 2, []im.Number{im.One()})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m := mustComplex(t, 1, 2, im.Complex(3, -1), nil)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, im.IsZero(v)) // nil is stored as Zero
	assert.Equal(t, "[(3-i), 0]\n", m.String())

	_, err = m.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	body := m.Body()
	body[0] = im.One()
	v, _ = m.At(0, 0)
	assert.True(t, im.Equal(im.Complex(3, -1), v)) // Body returns a copy
}

func TestComplexDeterminant(t *testing.T) {
	m1 := fixtureM1(t)
	det := m1.Determinant()
	assert.Equal(t, "(3-i)", det.String())
	assert.True(t, im.Equal(im.Complex(3, -1), det))

	real3 := mustComplex(t, 3, 3,
		im.Real(1), im.Real(4), im.Real(2),
		im.Real(2), im.Real(-6), im.Real(-2),
		im.Real(1), im.Real(5), im.Real(2),
	)
	assert.True(t, im.Equal(im.Real(6), real3.Determinant()))

	one := mustComplex(t, 1, 1, im.Imag(2))
	assert.True(t, im.Equal(im.Imag(2), one.Determinant()))

	rect := mustComplex(t, 2, 3, im.One(), im.One(), im.One(), im.One(), im.One(), im.One())
	assert.True(t, im.IsZero(rect.Determinant()))
}

func TestComplexMul(t *testing.T) {
	got, err := fixtureM1(t).Mul(fixtureM2(t))
	require.NoError(t, err)

	want := mustComplex(t, 2, 2,
		im.Complex(6, 38), im.Complex(-32, -26),
		im.Complex(-13, -10), im.Complex(17, -4),
	)
	assert.Truef(t, want.Equal(got), "got\n%s", got)

	rect := mustComplex(t, 1, 2, im.One(), im.One())
	_, err = fixtureM1(t).Mul(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	row, err := rect.Mul(fixtureM1(t))
	require.NoError(t, err)
	assert.True(t, mustComplex(t, 1, 2, im.Complex(0, -2), im.Complex(2, 3)).Equal(row))
}

func TestComplexAddSubScaleTranspose(t *testing.T) {
	m1, m2 := fixtureM1(t), fixtureM2(t)

	sum, err := m1.Add(m2)
	require.NoError(t, err)
	assert.True(t, mustComplex(t, 2, 2,
		im.Complex(-6, -6), im.Complex(8, 4),
		im.Complex(5, 4), im.Complex(-10, 2),
	).Equal(sum))

	zero, err := m1.Sub(m1)
	require.NoError(t, err)
	for _, v := range zero.Body() {
		assert.True(t, im.IsZero(v))
	}

	_, err = m1.Add(mustComplex(t, 1, 1, im.One()))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	scaled := m1.Scale(im.I())
	assert.True(t, mustComplex(t, 2, 2,
		im.Complex(3, -1), im.Complex(-2, 4),
		im.Complex(-1, 1), im.Complex(-1, -2),
	).Equal(scaled))

	tr := m1.Transpose()
	assert.True(t, mustComplex(t, 2, 2,
		im.Complex(-1, -3), im.Complex(1, 1),
		im.Complex(4, 2), im.Complex(-2, 1),
	).Equal(tr))
}

func TestComplexCofactor(t *testing.T) {
	cof, ok := fixtureM1(t).Cofactor()
	require.True(t, ok)
	assert.True(t, mustComplex(t, 2, 2,
		im.Complex(-2, 1), im.Complex(-1, -1),
		im.Complex(-4, -2), im.Complex(-1, -3),
	).Equal(cof))

	one, ok := mustComplex(t, 1, 1, im.Imag(5)).Cofactor()
	require.True(t, ok)
	assert.True(t, im.Equal(im.One(), one.Body()[0]))

	_, ok = mustComplex(t, 1, 2, im.One(), im.One()).Cofactor()
	assert.False(t, ok)
}

func TestComplexInverse(t *testing.T) {
	m1 := fixtureM1(t)
	inv, ok := m1.Inverse()
	require.True(t, ok)

	prod, err := m1.Mul(inv)
	require.NoError(t, err)
	id, err := matrix.IdentityComplex(2)
	require.NoError(t, err)
	assert.Truef(t, id.Equal(prod), "m1·m1⁻¹ =\n%s", prod)

	real2 := mustComplex(t, 2, 2, im.Real(4), im.Real(7), im.Real(2), im.Real(6))
	inv, ok = real2.Inverse()
	require.True(t, ok)
	assert.True(t, mustComplex(t, 2, 2,
		im.Real(0.6), im.Real(-0.7),
		im.Real(-0.2), im.Real(0.4),
	).Equal(inv))

	singular := mustComplex(t, 2, 2, im.One(), im.I(), im.I(), im.Real(-1))
	assert.True(t, im.IsZero(singular.Determinant()))
	_, ok = singular.Inverse()
	assert.False(t, ok)

	_, ok = mustComplex(t, 1, 2, im.One(), im.One()).Inverse()
	assert.False(t, ok)
}

func TestComplexPow(t *testing.T) {
	m1 := fixtureM1(t)

	p0, err := m1.Pow(0)
	require.NoError(t, err)
	zero, err := matrix.ZeroComplex(2, 2)
	require.NoError(t, err)
	assert.True(t, zero.Equal(p0))

	p1, err := m1.Pow(1)
	require.NoError(t, err)
	assert.True(t, m1.Equal(p1))

	sq, err := m1.Mul(m1)
	require.NoError(t, err)
	p2, err := m1.Pow(2)
	require.NoError(t, err)
	assert.True(t, sq.Equal(p2))

	cube, err := sq.Mul(m1)
	require.NoError(t, err)
	p3, err := m1.Pow(3)
	require.NoError(t, err)
	assert.True(t, cube.Equal(p3))

	_, err = m1.Pow(-1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
	_, err = mustComplex(t, 1, 2, im.One(), im.One()).Pow(2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestComplexSolve(t *testing.T) {
	m := mustComplex(t, 3, 3,
		im.Real(1), im.Real(4), im.Real(2),
		im.Real(2), im.Real(-6), im.Real(-2),
		im.Real(1), im.Real(5), im.Real(2),
	)
	x, ok, err := m.Solve([]im.Number{im.Real(1), im.Real(3), im.Real(2)})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, x, 3)
	assert.True(t, im.Equal(im.Real(2), x[0]))
	assert.True(t, im.Equal(im.Real(1), x[1]))
	assert.True(t, im.Equal(im.Real(-2.5), x[2]))

	_, _, err = m.Solve([]im.Number{im.One()})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, ok, err = mustComplex(t, 1, 2, im.One(), im.One()).Solve([]im.Number{im.One()})
	require.NoError(t, err)
	assert.False(t, ok)

	singular := mustComplex(t, 2, 2, im.One(), im.I(), im.I(), im.Real(-1))
	_, ok, err = singular.Solve([]im.Number{im.One(), im.One()})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComplexUndefinedPropagates(t *testing.T) {
	bad := im.Div(im.One(), im.Zero{})
	require.True(t, im.IsUndefined(bad))

	m := mustComplex(t, 2, 2, bad, im.One(), im.One(), im.One())
	assert.True(t, im.IsUndefined(m.Determinant()))

	_, ok := m.Inverse()
	assert.False(t, ok)

	sq, err := m.Mul(m)
	require.NoError(t, err)
	assert.True(t, im.IsUndefined(sq.Body()[0]))
}
