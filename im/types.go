// SPDX-License-Identifier: MIT

package im

// Shape classifies a Number by its canonical variant.
type Shape uint8

const (
	ShapeZero      Shape = iota // additive identity
	ShapeReal                   // Simple with imaginary power 0
	ShapeImaginary              // Simple with non-zero imaginary power
	ShapeSum                    // two or more merged terms
	ShapePower                  // (base)^exp
	ShapeProduct                // mul·(base)^exp
	ShapeUndefined              // division by zero
)

var shapeNames = [...]string{
	ShapeZero:      "zero",
	ShapeReal:      "real",
	ShapeImaginary: "imaginary",
	ShapeSum:       "sum",
	ShapePower:     "power",
	ShapeProduct:   "product",
	ShapeUndefined: "undefined",
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}

	return "unknown"
}

// Number is a canonical complex-valued expression.
//
// The set of implementations is closed: Zero, Simple, Sum, Power, Product and
// Undefined. Values are immutable and safe to share between goroutines.
type Number interface {
	// Shape reports the canonical variant of the value.
	Shape() Shape

	// String renders the value in the algebraic notation described in
	// format.go.
	String() string

	number()
}

// Zero is the additive identity.
type Zero struct{}

// Undefined is the absorbing result of dividing by Zero.
type Undefined struct{}

// Simple is mag·i^pow with mag != 0 and pow in (-2, 2).
type Simple struct {
	mag float64 // never 0
	pow float64 // reduced imaginary power
}

// Sum is the sum of two or more terms. Terms are never Zero, Sum or
// Undefined, and no two terms are alike.
type Sum struct {
	terms []Number
}

// Power is (base)^exp. The base is a single Simple or the terms of a Sum;
// exp is never Zero and never the real 1.
type Power struct {
	base []Number
	exp  Number
}

// Product is mul·(base)^exp with the Power invariants plus a multiplier that
// is never Zero and never the real 1.
type Product struct {
	base []Number
	exp  Number
	mul  Number
}

// Compile-time checks that every shape satisfies Number.
var (
	_ Number = Zero{}
	_ Number = Undefined{}
	_ Number = Simple{}
	_ Number = Sum{}
	_ Number = Power{}
	_ Number = Product{}
)

func (Zero) number()      {}
func (Undefined) number() {}
func (Simple) number()    {}
func (Sum) number()       {}
func (Power) number()     {}
func (Product) number()   {}

func (Zero) Shape() Shape      { return ShapeZero }
func (Undefined) Shape() Shape { return ShapeUndefined }
func (Sum) Shape() Shape       { return ShapeSum }
func (Power) Shape() Shape     { return ShapePower }
func (Product) Shape() Shape   { return ShapeProduct }

// Shape is ShapeReal for pow == 0 and ShapeImaginary otherwise.
func (s Simple) Shape() Shape {
	if s.pow == 0 {
		return ShapeReal
	}

	return ShapeImaginary
}

// Magnitude returns the real coefficient.
func (s Simple) Magnitude() float64 { return s.mag }

// ImaginaryPower returns the reduced exponent of i.
func (s Simple) ImaginaryPower() float64 { return s.pow }

// Terms returns a copy of the summands.
func (s Sum) Terms() []Number { return cloneTerms(s.terms) }

// Base returns a copy of the base terms.
func (p Power) Base() []Number { return cloneTerms(p.base) }

// Exponent returns the exponent.
func (p Power) Exponent() Number { return p.exp }

// Base returns a copy of the base terms.
func (p Product) Base() []Number { return cloneTerms(p.base) }

// Exponent returns the exponent.
func (p Product) Exponent() Number { return p.exp }

// Multiplier returns the coefficient in front of the power.
func (p Product) Multiplier() Number { return p.mul }

func cloneTerms(in []Number) []Number {
	out := make([]Number, len(in))
	copy(out, in)

	return out
}
