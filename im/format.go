// SPDX-License-Identifier: MIT

package im

import (
	"math"
	"strconv"
	"strings"
)

// Rendering rules:
//
//	Zero          0
//	Undefined     undefined
//	real          shortest decimal: 3, -0.25
//	imaginary     coefficient omitted for ±1: i, -i, 2i, i^0.5
//	negative i^p  reciprocal bar: 1/i, -1/8i
//	Sum           parenthesized, signs folded: (3-i)
//	Power         2^i, (2i)^i, (1-i)^3i, 1/(3-i), 1/(3-i)^2
//	Product       0.75i(1-i)^3i, -2^i, 2*2^i, (1+i)/(3-i)
const (
	literalZero      = "0"
	literalUndefined = "undefined"
	unitSymbol       = "i"
	powSymbol        = "^"
	barSymbol        = "/"
	mulSymbol        = "*"
)

// String implements Number.
func (Zero) String() string { return literalZero }

// String implements Number.
func (Undefined) String() string { return literalUndefined }

// String implements Number.
func (s Simple) String() string {
	switch {
	case s.pow == 0:
		return formatFloat(s.mag)
	case s.pow < 0:
		sign := ""
		if s.mag < 0 {
			sign = "-"
		}
		return sign + "1" + barSymbol + formatImaginary(1/math.Abs(s.mag), -s.pow)
	}

	return formatImaginary(s.mag, s.pow)
}

// String implements Number.
func (s Sum) String() string { return "(" + formatTerms(s.terms) + ")" }

// String implements Number.
func (p Power) String() string { return formatExponential(nil, p.base, p.exp) }

// String implements Number.
func (p Product) String() string { return formatExponential(p.mul, p.base, p.exp) }

func formatFloat(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e15) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatImaginary(mag, pow float64) string {
	var b strings.Builder
	switch mag {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(formatFloat(mag))
	}
	b.WriteString(unitSymbol)
	if pow != 1 {
		b.WriteString(powSymbol)
		b.WriteString(formatFloat(pow))
	}

	return b.String()
}

// formatTerms joins summands, folding the sign of each term into the
// separator.
func formatTerms(terms []Number) string {
	var b strings.Builder
	for i, t := range terms {
		s := t.String()
		if i > 0 && !strings.HasPrefix(s, "-") {
			b.WriteByte('+')
		}
		b.WriteString(s)
	}

	return b.String()
}

func formatBase(base []Number) string {
	if len(base) != 1 {
		return "(" + formatTerms(base) + ")"
	}
	if r, ok := RealPart(base[0]); ok && r > 0 {
		return base[0].String()
	}

	return "(" + base[0].String() + ")"
}

func formatExponent(exp Number) string {
	s := exp.String()
	switch exp.(type) {
	case Simple:
		if strings.Contains(s, barSymbol) {
			return "(" + s + ")"
		}
	case Power, Product:
		return "(" + s + ")"
	}

	return s
}

// formatExponential renders mul·(base)^exp; mul may be nil. A negative real
// exponent is written as a fraction with the multiplier as numerator.
func formatExponential(mul Number, base []Number, exp Number) string {
	b := formatBase(base)

	if r, ok := RealPart(exp); ok && r < 0 {
		num := "1"
		if mul != nil {
			num = formatNumerator(mul)
		}
		den := b
		if r != -1 {
			den += powSymbol + formatFloat(-r)
		}
		return num + barSymbol + den
	}

	power := b + powSymbol + formatExponent(exp)
	if mul == nil {
		return power
	}

	return formatMultiplier(mul, b) + power
}

func formatMultiplier(mul Number, base string) string {
	s := mul.String()
	switch v := mul.(type) {
	case Simple:
		if v.pow == 0 && v.mag == -1 {
			return "-"
		}
		if strings.Contains(s, barSymbol) {
			return "(" + s + ")"
		}
		if !strings.HasPrefix(base, "(") {
			return s + mulSymbol
		}
		return s
	case Sum:
		return s
	}

	return s + mulSymbol
}

func formatNumerator(mul Number) string {
	s := mul.String()
	if isExponential(mul) {
		return "(" + s + ")"
	}

	return s
}
