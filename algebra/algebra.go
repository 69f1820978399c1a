// SPDX-License-Identifier: MIT

// Package algebra solves the quadratic equation a·x² + b·x + c = 0 over the
// reals and, through the im number engine, over the complex numbers.
package algebra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/xmath/im"
)

// ErrNotQuadratic is returned when the leading coefficient is zero.
var ErrNotQuadratic = errors.New("algebra: leading coefficient must not be 0")

// Discriminant returns b² − 4ac.
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// Quadratic returns the real roots (−b ± √D) / 2a, larger-sign root first.
// ok is false when the discriminant is negative (no real roots); a double
// root is returned twice.
// Errors: ErrNotQuadratic when a == 0.
func Quadratic(a, b, c float64) (roots [2]float64, ok bool, err error) {
	if a == 0 {
		return roots, false, fmt.Errorf("Quadratic: %w", ErrNotQuadratic)
	}
	d := Discriminant(a, b, c)
	if d < 0 {
		return roots, false, nil
	}
	sq := math.Sqrt(d)
	roots[0] = (-b + sq) / (2 * a)
	roots[1] = (-b - sq) / (2 * a)

	return roots, true, nil
}

// QuadraticComplex returns both roots as im numbers. For a negative
// discriminant they are the conjugate pair −b/2a ± i·√(−D)/2a.
// Errors: ErrNotQuadratic when a == 0.
func QuadraticComplex(a, b, c float64) ([2]im.Number, error) {
	var out [2]im.Number
	if a == 0 {
		return out, fmt.Errorf("QuadraticComplex: %w", ErrNotQuadratic)
	}
	d := Discriminant(a, b, c)
	if d >= 0 {
		r, _, _ := Quadratic(a, b, c)
		out[0], out[1] = im.Real(r[0]), im.Real(r[1])
		return out, nil
	}

	re := -b / (2 * a)
	imag := math.Sqrt(-d) / (2 * a)
	out[0] = im.Complex(re, imag)
	out[1] = im.Complex(re, -imag)

	return out, nil
}
