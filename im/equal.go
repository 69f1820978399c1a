// SPDX-License-Identifier: MIT

package im

import "math"

// Epsilon is the absolute tolerance for comparing magnitudes and imaginary
// powers.
const Epsilon = 1e-4

// cancelTolerance is the relative size below which the sum of two magnitudes
// counts as an exact cancellation.
const cancelTolerance = 1e-12

// nearlyEqual is the single comparison used for every float in this package.
func nearlyEqual(a, b float64) bool {
	return a == b || math.Abs(a-b) <= Epsilon
}

// cancels reports whether sum = a + b is numerically zero relative to its
// operands.
func cancels(sum, a, b float64) bool {
	return sum == 0 || math.Abs(sum) <= cancelTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// folded rewrites mag·i^p with p < 0 as -mag·i^(p+2) so that two spellings of
// the same value share one key.
func (s Simple) folded() (mag, pow float64) {
	if s.pow < 0 {
		return -s.mag, s.pow + 2
	}

	return s.mag, s.pow
}

// Equal reports whether a and b denote the same canonical value within
// Epsilon. Sum terms and multi-term bases are compared as multisets.
func Equal(a, b Number) bool {
	switch x := a.(type) {
	case Zero:
		return IsZero(b)
	case Undefined:
		return IsUndefined(b)
	case Simple:
		y, ok := b.(Simple)
		if !ok {
			return false
		}
		xm, xp := x.folded()
		ym, yp := y.folded()

		return nearlyEqual(xm, ym) && nearlyEqual(xp, yp)
	case Sum:
		y, ok := b.(Sum)

		return ok && equalTerms(x.terms, y.terms)
	case Power:
		y, ok := b.(Power)

		return ok && equalTerms(x.base, y.base) && Equal(x.exp, y.exp)
	case Product:
		y, ok := b.(Product)

		return ok && equalTerms(x.base, y.base) && Equal(x.exp, y.exp) && Equal(x.mul, y.mul)
	}

	return false
}

// equalTerms matches a and b as multisets.
func equalTerms(a, b []Number) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
next:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && Equal(x, y) {
				used[j] = true
				continue next
			}
		}

		return false
	}

	return true
}
