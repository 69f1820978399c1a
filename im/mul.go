// SPDX-License-Identifier: MIT

package im

// Mul returns a · b.
//
// Rules, in order:
//   - Undefined absorbs, then Zero absorbs.
//   - Simple·Simple multiplies magnitudes and adds imaginary powers.
//   - A Sum times a Simple or Sum distributes term by term.
//   - Two exponentials over the same base add exponents and multiply
//     multipliers; a Sum counts as its own base raised to 1.
//   - Otherwise the Power or Product keeps its base and exponent and absorbs
//     the other operand into its multiplier.
func Mul(a, b Number) Number {
	switch {
	case IsUndefined(a) || IsUndefined(b):
		return Undefined{}
	case IsZero(a) || IsZero(b):
		return Zero{}
	}

	sa, aSimple := a.(Simple)
	sb, bSimple := b.(Simple)
	if aSimple && bSimple {
		return simple(sa.mag*sb.mag, sa.pow+sb.pow)
	}
	if !isExponential(a) && !isExponential(b) {
		return distribute(a, b)
	}

	ca, okA := coreOf(a)
	cb, okB := coreOf(b)
	if okA && okB && equalTerms(ca.base, cb.base) {
		return node{terms: ca.base, exp: Add(ca.exp, cb.exp), mul: mulOpt(ca.mul, cb.mul)}.fix()
	}

	// The exponential operand keeps its structure; with two exponentials the
	// one with the lexically smaller base stays outside so that operand order
	// does not change the result.
	if !isExponential(a) || (isExponential(b) && baseKey(cb.base) < baseKey(ca.base)) {
		ca, b = cb, a
	}

	return node{terms: ca.base, exp: ca.exp, mul: mulOpt(ca.mul, b)}.fix()
}

// Div returns a / b. A Zero divisor yields Undefined; a divisor equal to the
// dividend up to sign yields ±1 exactly.
func Div(a, b Number) Number {
	switch {
	case IsUndefined(a) || IsUndefined(b):
		return Undefined{}
	case IsZero(b):
		return Undefined{}
	case IsZero(a):
		return Zero{}
	}
	if sa, ok := a.(Simple); ok {
		if sb, ok := b.(Simple); ok {
			return simple(sa.mag/sb.mag, sa.pow-sb.pow)
		}
	}
	switch EqualByAbs(a, b) {
	case SignPlus:
		return One()
	case SignMinus:
		return Simple{mag: -1}
	}

	return Mul(a, Reciprocal(b))
}

// Reciprocal returns 1/n. A Sum becomes a Power with exponent -1; a Power or
// Product has its exponent negated.
func Reciprocal(n Number) Number {
	switch v := n.(type) {
	case Simple:
		return simple(1/v.mag, -v.pow)
	case Sum:
		return Power{base: v.terms, exp: Simple{mag: -1}}
	case Power:
		return node{terms: v.base, exp: Neg(v.exp)}.fix()
	case Product:
		return node{terms: v.base, exp: Neg(v.exp), mul: Reciprocal(v.mul)}.fix()
	}

	return Undefined{}
}

// ProductOf folds Mul over xs. The empty product is One.
func ProductOf(xs ...Number) Number {
	acc := One()
	for _, x := range xs {
		acc = Mul(acc, x)
	}

	return acc
}

// distribute multiplies two non-exponential operands term by term.
func distribute(a, b Number) Number {
	var acc Number = Zero{}
	for _, x := range termsOf(a) {
		for _, y := range termsOf(b) {
			acc = Add(acc, Mul(x, y))
		}
	}

	return acc
}

func termsOf(n Number) []Number {
	if s, ok := n.(Sum); ok {
		return s.terms
	}

	return []Number{n}
}

// mulOpt multiplies optional multipliers, where nil stands for 1.
func mulOpt(a, b Number) Number {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	return Mul(a, b)
}

// baseKey orders bases by their rendering.
func baseKey(base []Number) string {
	return formatTerms(base)
}
