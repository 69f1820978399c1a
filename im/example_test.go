package im_test

import (
	"fmt"

	"github.com/katalvlaran/xmath/im"
)

// ExampleMul builds the product 0.75i(1-i)^3i step by step.
func ExampleMul() {
	base := im.Sub(im.One(), im.I())
	p := im.Pow(base, im.Imag(3))
	fmt.Println(p)
	fmt.Println(im.Mul(im.Mul(im.Imag(3), p), im.Real(0.25)))
	// Output:
	// (1-i)^3i
	// 0.75i(1-i)^3i
}

// ExampleDiv shows that division by zero yields Undefined instead of an error.
func ExampleDiv() {
	fmt.Println(im.Div(im.Complex(4, -7), im.Sub(im.Imag(7), im.Imag(7))))
	fmt.Println(im.Div(im.RealInt(12), im.RealInt(6)))
	// Output:
	// undefined
	// 2
}

// ExamplePowI contrasts PowI with Pow on an imaginary base.
func ExamplePowI() {
	fmt.Println(im.Pow(im.Imag(2), im.RealInt(3)))
	fmt.Println(im.PowI(im.Imag(2), im.RealInt(3)))
	// Output:
	// -8i
	// -2i
}
