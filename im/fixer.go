// SPDX-License-Identifier: MIT

package im

import (
	"cmp"
	"math"
	"slices"
)

// node is the unrestricted record assembled by the combination rules before
// fix turns it back into a canonical Number. A nil terms slice denotes the
// scalar mag·i^pow; otherwise terms is a list of summands (exp == nil) or an
// exponent base.
type node struct {
	mag, pow float64
	terms    []Number
	exp      Number // nil when absent
	mul      Number // nil when absent
}

// fix runs the fixer passes in their fixed order: imaginary-power reduction,
// exponent, multiplier, base and finally the simple fixer that collapses
// degenerate sums.
func (n node) fix() Number {
	if n.terms == nil {
		return simple(n.mag, n.pow)
	}
	if v, done := n.fixExponent(); done {
		return v
	}
	if v, done := n.fixMultiplier(); done {
		return v
	}

	return n.fixBase()
}

// fixExponent resolves x^0 to the multiplier (1 when absent) and drops an
// exponent equal to the real 1.
func (n *node) fixExponent() (Number, bool) {
	if n.exp == nil {
		return nil, false
	}
	switch {
	case IsUndefined(n.exp):
		return Undefined{}, true
	case IsZero(n.exp):
		if n.mul == nil {
			return One(), true
		}
		return n.mul, true
	case isRealOne(n.exp):
		n.exp = nil
	}

	return nil, false
}

// fixMultiplier resolves a Zero multiplier to Zero, drops a multiplier equal
// to the real 1 and folds a multiplier that shares the base into the exponent.
func (n *node) fixMultiplier() (Number, bool) {
	if n.mul == nil {
		return nil, false
	}
	switch {
	case IsUndefined(n.mul):
		return Undefined{}, true
	case IsZero(n.mul):
		return Zero{}, true
	case isRealOne(n.mul):
		n.mul = nil
		return nil, false
	}
	if n.exp == nil {
		return nil, false
	}
	if c, ok := coreOf(n.mul); ok && equalTerms(c.base, n.terms) {
		return node{terms: n.terms, exp: Add(n.exp, c.exp), mul: c.mul}.fix(), true
	}

	return nil, false
}

// fixBase normalizes the term list and folds bases that no longer need to
// stay symbolic: a single Simple under a real exponent, a multi-term base
// under a small positive integer exponent, or a term list without exponent.
func (n node) fixBase() Number {
	terms := mergeTerms(n.terms)
	for _, t := range terms {
		if IsUndefined(t) {
			return Undefined{}
		}
	}

	if n.exp == nil {
		return n.scale(collapse(terms))
	}
	switch len(terms) {
	case 0:
		return Zero{}
	case 1:
		s, ok := terms[0].(Simple)
		if !ok {
			return n.scale(Pow(terms[0], n.exp))
		}
		if r, isReal := RealPart(n.exp); isReal {
			return n.scale(powSimple(s, r, false))
		}
	default:
		if k, ok := integerOf(n.exp); ok && k > 1 {
			return n.scale(powInt(Sum{terms: terms}, k))
		}
	}
	if n.mul == nil {
		return Power{base: terms, exp: n.exp}
	}

	return Product{base: terms, exp: n.exp, mul: n.mul}
}

func (n node) scale(v Number) Number {
	if n.mul == nil {
		return v
	}

	return Mul(n.mul, v)
}

// collapse is the simple fixer: no terms is Zero, one term stands alone.
func collapse(terms []Number) Number {
	switch len(terms) {
	case 0:
		return Zero{}
	case 1:
		return terms[0]
	}

	return Sum{terms: terms}
}

// simple builds a reduced Simple, or Zero for a zero magnitude.
func simple(mag, pow float64) Number {
	mag, pow = reduceImaginary(mag, pow)
	if mag == 0 {
		return Zero{}
	}

	return Simple{mag: mag, pow: pow}
}

// reduceImaginary strips whole pairs of i factors from pow, negating mag
// once per odd pair count (i^2 = -1).
func reduceImaginary(mag, pow float64) (float64, float64) {
	pairs := math.Trunc(pow / 2)
	if pairs == 0 {
		return mag, pow
	}
	if math.Mod(pairs, 2) != 0 {
		mag = -mag
	}

	return mag, pow - 2*pairs
}

// core is the exponent-arithmetic view of a value: mul·(base)^exp. A Sum is
// its own base raised to 1.
type core struct {
	base []Number
	exp  Number
	mul  Number // nil when absent
}

func (c core) coef() Number {
	if c.mul == nil {
		return One()
	}

	return c.mul
}

func coreOf(n Number) (core, bool) {
	switch v := n.(type) {
	case Sum:
		return core{base: v.terms, exp: One()}, true
	case Power:
		return core{base: v.base, exp: v.exp}, true
	case Product:
		return core{base: v.base, exp: v.exp, mul: v.mul}, true
	}

	return core{}, false
}

// mergeTerms flattens nested sums, merges like terms, drops zeros and orders
// the result: real, imaginary, other Simple powers, then everything else by
// rendering, so operand order never changes the result.
func mergeTerms(in []Number) []Number {
	out := make([]Number, 0, len(in))
	for _, t := range in {
		out = absorb(out, t)
	}
	slices.SortStableFunc(out, compareTerms)

	return out
}

func absorb(out []Number, t Number) []Number {
	switch v := t.(type) {
	case Zero:
		return out
	case Sum:
		for _, u := range v.terms {
			out = absorb(out, u)
		}
		return out
	case Simple:
		m, p := v.folded()
		for i, u := range out {
			s, ok := u.(Simple)
			if !ok || !nearlyEqual(s.pow, p) {
				continue
			}
			sum := s.mag + m
			if cancels(sum, s.mag, m) {
				return slices.Delete(out, i, i+1)
			}
			out[i] = Simple{mag: sum, pow: s.pow}
			return out
		}
		return append(out, Simple{mag: m, pow: p})
	case Power, Product:
		c, _ := coreOf(v)
		for i, u := range out {
			if !isExponential(u) {
				continue
			}
			d, _ := coreOf(u)
			if !equalTerms(c.base, d.base) || !Equal(c.exp, d.exp) {
				continue
			}
			merged := node{terms: c.base, exp: c.exp, mul: Add(c.coef(), d.coef())}.fix()
			return absorb(slices.Delete(out, i, i+1), merged)
		}
	}

	return append(out, t)
}

func compareTerms(a, b Number) int {
	ra, rb := termRank(a), termRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	sa, okA := a.(Simple)
	sb, okB := b.(Simple)
	if okA && okB {
		return cmp.Compare(sa.pow, sb.pow)
	}

	return cmp.Compare(a.String(), b.String())
}

func termRank(n Number) int {
	s, ok := n.(Simple)
	switch {
	case !ok:
		return 3
	case s.pow == 0:
		return 0
	case s.pow == 1:
		return 1
	}

	return 2
}
