// SPDX-License-Identifier: MIT

package im

import "math"

// Sign is the outcome of EqualByAbs.
type Sign int8

const (
	SignMinus Sign = -1 // a == -b
	SignNone  Sign = 0  // unrelated
	SignPlus  Sign = 1  // a == b
)

// maxExponent is the largest integer exponent converted to int for binary
// exponentiation; it keeps the conversion exact on every platform.
const maxExponent = math.MaxInt32

// IsZero reports whether n is the additive identity.
func IsZero(n Number) bool {
	_, ok := n.(Zero)

	return ok
}

// IsUndefined reports whether n is the division-by-zero sentinel.
func IsUndefined(n Number) bool {
	_, ok := n.(Undefined)

	return ok
}

// IsSimple reports whether n is a single mag·i^p term.
func IsSimple(n Number) bool {
	_, ok := n.(Simple)

	return ok
}

// IsSimpleReal reports whether n is a Simple with imaginary power 0.
func IsSimpleReal(n Number) bool {
	s, ok := n.(Simple)

	return ok && s.pow == 0
}

// IsSimpleImaginary reports whether n is a Simple with a non-zero imaginary power.
func IsSimpleImaginary(n Number) bool {
	s, ok := n.(Simple)

	return ok && s.pow != 0
}

// IsSumOnly reports whether n is a plain Sum.
func IsSumOnly(n Number) bool {
	_, ok := n.(Sum)

	return ok
}

// IsPowerOnly reports whether n is a Power without multiplier.
func IsPowerOnly(n Number) bool {
	_, ok := n.(Power)

	return ok
}

// IsProduct reports whether n carries a multiplier.
func IsProduct(n Number) bool {
	_, ok := n.(Product)

	return ok
}

// EqualByAbs reports SignPlus when a == b, SignMinus when a == -b and
// SignNone otherwise.
func EqualByAbs(a, b Number) Sign {
	switch {
	case Equal(a, b):
		return SignPlus
	case Equal(a, Neg(b)):
		return SignMinus
	}

	return SignNone
}

// RealPart returns the value of a real Simple (or Zero) and whether n is one.
func RealPart(n Number) (float64, bool) {
	switch v := n.(type) {
	case Zero:
		return 0, true
	case Simple:
		if v.pow == 0 {
			return v.mag, true
		}
	}

	return 0, false
}

// isRealOne reports whether n is the real 1 within Epsilon.
func isRealOne(n Number) bool {
	r, ok := RealPart(n)

	return ok && nearlyEqual(r, 1)
}

// integerOf returns n as an integer when it is a real Simple with an
// integral magnitude no larger than maxExponent.
func integerOf(n Number) (int, bool) {
	s, ok := n.(Simple)
	if !ok || s.pow != 0 || s.mag != math.Trunc(s.mag) || math.Abs(s.mag) > maxExponent {
		return 0, false
	}

	return int(s.mag), true
}

// isExponential reports whether n is a Power or a Product.
func isExponential(n Number) bool {
	switch n.(type) {
	case Power, Product:
		return true
	}

	return false
}
