// SPDX-License-Identifier: MIT

package im

// Add returns a + b.
//
// Zero is the identity. Simple terms with the same imaginary power merge by
// magnitude, Power and Product terms over the same base and exponent merge by
// multiplier, and everything else becomes a term of one flat Sum. Undefined
// absorbs.
func Add(a, b Number) Number {
	switch {
	case IsUndefined(a) || IsUndefined(b):
		return Undefined{}
	case IsZero(a):
		return b
	case IsZero(b):
		return a
	}

	return node{terms: []Number{a, b}}.fix()
}

// Sub returns a - b. Equal operands yield Zero exactly.
func Sub(a, b Number) Number {
	switch {
	case IsUndefined(a) || IsUndefined(b):
		return Undefined{}
	case Equal(a, b):
		return Zero{}
	}

	return Add(a, Neg(b))
}

// Neg returns -n. A Power gains the multiplier -1; a Product has its
// multiplier negated.
func Neg(n Number) Number {
	switch v := n.(type) {
	case Simple:
		return Simple{mag: -v.mag, pow: v.pow}
	case Sum:
		terms := make([]Number, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Neg(t)
		}
		return Sum{terms: terms}
	case Power:
		return Product{base: v.base, exp: v.exp, mul: Simple{mag: -1}}
	case Product:
		return node{terms: v.base, exp: v.exp, mul: Neg(v.mul)}.fix()
	}

	return n
}

// SumOf folds Add over xs. The empty sum is Zero.
func SumOf(xs ...Number) Number {
	var acc Number = Zero{}
	for _, x := range xs {
		acc = Add(acc, x)
	}

	return acc
}
