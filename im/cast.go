// SPDX-License-Identifier: MIT

package im

import (
	"fmt"
	"strconv"
	"strings"
)

// imaginaryMarker is the suffix that lifts a literal onto the imaginary axis.
const imaginaryMarker = "i"

// Real lifts v onto the real axis. Real(0) is Zero.
func Real(v float64) Number { return simple(v, 0) }

// Imag lifts v onto the imaginary axis. Imag(0) is Zero.
func Imag(v float64) Number { return simple(v, 1) }

// RealInt lifts an integer onto the real axis.
func RealInt(v int32) Number { return Real(float64(v)) }

// ImagInt lifts an integer onto the imaginary axis.
func ImagInt(v int32) Number { return Imag(float64(v)) }

// Complex returns re + im·i in canonical form.
func Complex(re, imag float64) Number { return Add(Real(re), Imag(imag)) }

// One returns the real 1.
func One() Number { return Simple{mag: 1} }

// I returns the imaginary unit.
func I() Number { return Simple{mag: 1, pow: 1} }

// Parse reads a numeric literal optionally followed by the imaginary unit
// marker: "2.5", "-3i", "i", "-i". Surrounding whitespace is ignored.
func Parse(s string) (Number, error) {
	lit := strings.TrimSpace(s)
	if lit == "" {
		return nil, imErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}

	coef, imaginary := strings.CutSuffix(lit, imaginaryMarker)
	if imaginary {
		switch coef {
		case "", "+":
			return I(), nil
		case "-":
			return Imag(-1), nil
		}
	}

	v, err := strconv.ParseFloat(coef, 64)
	if err != nil {
		return nil, imErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}
	if imaginary {
		return Imag(v), nil
	}

	return Real(v), nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}
