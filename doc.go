// Package xmath is a small symbolic and numeric math toolkit built around an
// exact representation of numbers of the form a + b·i.
//
// Under the hood, everything is organized into focused subpackages:
//
//	im/            - symbolic complex numbers: Zero, Undefined, Simple, Sum, Power, Product
//	matrix/        - Complex (im elements) and Dense (float64) matrices: det, inverse, Cramer
//	algebra/       - discriminant and quadratic roots, complex when D < 0
//	combinatorics/ - factorial, sigma, binomial, Bernoulli trials
//	progression/   - arithmetic and geometric progressions
//	vector/        - 3D vectors: dot, cross, norm, angle
//	analysis/      - parallel grid search for roots and extrema of f(x)
//	token/         - word / number / imaginary-literal tokenizer
//	cmd/xmath      - command line front end
//
// Quick example:
//
//	a := im.Complex(-1, -3)          // (-1-3i)
//	b := im.Complex(4, 2)            // (4+2i)
//	fmt.Println(im.Mul(a, b))        // (2-14i)
//	fmt.Println(im.Pow(im.I(), im.Real(2))) // -1
//
//	go get github.com/katalvlaran/xmath
package xmath
