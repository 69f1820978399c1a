// SPDX-License-Identifier: MIT

// Package im implements a symbolic complex-number algebra over float64.
//
// A Number is an immutable, canonical expression tree. Five constructive
// shapes exist plus one sentinel:
//
//	Zero      the additive identity
//	Simple    mag·i^p with p reduced into (-2, 2) ({-1, 0, 1} for integer powers)
//	Sum       two or more terms with like terms already merged
//	Power     (base)^exp where base is one Simple or the terms of a Sum
//	Product   mul·(base)^exp
//	Undefined the absorbing result of a division by Zero
//
// Every operator (Add, Sub, Mul, Div, Pow, PowI, Neg, Reciprocal) returns a
// canonical value: combination rules assemble an unrestricted intermediate
// record which a fixed pipeline of fixers (imaginary-power reduction,
// exponent, multiplier, base, simple) turns back into one of the shapes.
//
// Equality is tolerant: magnitudes and imaginary powers compare within
// Epsilon, Sum terms compare as multisets.
//
// Operators never fail. Undefined propagates through every operator the way
// NaN propagates through float arithmetic, so callers check IsUndefined once
// at the end of a computation.
//
//	x := im.Sub(im.One(), im.I())        // (1-i)
//	y := im.Pow(x, im.Imag(3))           // (1-i)^3i
//	z := im.Mul(im.Imag(0.75), y)        // 0.75i(1-i)^3i
//	fmt.Println(z)
package im
