// SPDX-License-Identifier: MIT

package im

import "math"

// Pow returns base^exp.
//
// x^0 = 1, x^1 = x, 0^y = 0 and 1^y = 1 are resolved first. A Simple base
// under a real exponent is evaluated numerically; under any other exponent
// it stays symbolic. A Sum base under a small integer exponent is expanded by
// repeated multiplication (negative exponents give the reciprocal of the
// expansion). Power and Product bases multiply their exponent by exp.
func Pow(base, exp Number) Number { return pow(base, exp, false) }

// PowI is Pow except that a Simple base under a real exponent only has its
// imaginary power raised; the magnitude is raised only when the base is real.
//
//	PowI(2i, 3) = -2i
//	Pow(2i, 3)  = -8i
func PowI(base, exp Number) Number { return pow(base, exp, true) }

func pow(a, e Number, imagOnly bool) Number {
	switch {
	case IsUndefined(a) || IsUndefined(e):
		return Undefined{}
	case IsZero(e):
		return One()
	case isRealOne(e):
		return a
	case IsZero(a):
		return Zero{}
	case isRealOne(a):
		return a
	}

	switch v := a.(type) {
	case Simple:
		if r, ok := RealPart(e); ok {
			return powSimple(v, r, imagOnly)
		}
		return Power{base: []Number{v}, exp: e}
	case Sum:
		if k, ok := integerOf(e); ok {
			return powInt(v, k)
		}
		return Power{base: v.terms, exp: e}
	case Power:
		return node{terms: v.base, exp: Mul(v.exp, e)}.fix()
	case Product:
		return Mul(pow(v.mul, e, imagOnly), node{terms: v.base, exp: Mul(v.exp, e)}.fix())
	}

	return Undefined{}
}

// powSimple raises mag·i^p to a real exponent. Under PowI an imaginary base
// keeps its magnitude, sign included. Otherwise a negative magnitude under a
// non-integer exponent is rotated first: -m = m·i^2.
func powSimple(s Simple, e float64, imagOnly bool) Number {
	if imagOnly && s.pow != 0 {
		return simple(s.mag, s.pow*e)
	}
	mag, p := s.mag, s.pow
	if mag < 0 && e != math.Trunc(e) {
		mag, p = -mag, p+2
	}

	return simple(math.Pow(mag, e), p*e)
}

// powInt expands s^k by binary exponentiation.
func powInt(s Sum, k int) Number {
	if k < 0 {
		return Reciprocal(powInt(s, -k))
	}

	acc := One()
	var sq Number = s
	for k > 0 {
		if k&1 == 1 {
			acc = Mul(acc, sq)
		}
		k >>= 1
		if k > 0 {
			sq = Mul(sq, sq)
		}
	}

	return acc
}

// Sqrt returns the principal square root of n.
func Sqrt(n Number) Number { return Pow(n, Real(0.5)) }
