// SPDX-License-Identifier: MIT

// Package matrix - Complex: an immutable row-major matrix of symbolic numbers.
//
// Purpose:
//   - Hold im.Number elements in a flat buffer (offset = i*cols + j).
//   - Provide the value-semantics counterpart of Dense: every operation
//     returns a new matrix and never mutates its receiver.
//
// Failure channels:
//   - Structural problems (shape mismatch, negative power) return an error.
//   - Mathematically undefined answers (singular inverse, cofactor of a
//     non-square matrix) return ok == false.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/xmath/im"
)

// complexErrorf wraps an error with a uniform Complex context.
func complexErrorf(method string, err error) error {
	return fmt.Errorf("Complex.%s: %w", method, err)
}

// Complex is a rows×cols matrix of im.Number values.
type Complex struct {
	r, c int
	body []im.Number // row-major, len == r*c, no nil entries
}

var (
	_ Shaped       = (*Complex)(nil)
	_ fmt.Stringer = (*Complex)(nil)
)

// NewComplex builds a rows×cols matrix from a row-major body. The body is
// copied; nil entries are stored as im.Zero.
// Errors: ErrInvalidDimensions, ErrBadShape.
func NewComplex(rows, cols int, body []im.Number) (*Complex, error) {
	if rows <= 0 || cols <= 0 {
		return nil, complexErrorf("New", ErrInvalidDimensions)
	}
	if len(body) != rows*cols {
		return nil, complexErrorf("New", fmt.Errorf("len %d, want %d: %w", len(body), rows*cols, ErrBadShape))
	}

	cp := make([]im.Number, len(body))
	for k, v := range body {
		if v == nil {
			v = im.Zero{}
		}
		cp[k] = v
	}

	return &Complex{r: rows, c: cols, body: cp}, nil
}

// ZeroComplex returns a rows×cols matrix filled with im.Zero.
func ZeroComplex(rows, cols int) (*Complex, error) {
	if rows <= 0 || cols <= 0 {
		return nil, complexErrorf("Zero", ErrInvalidDimensions)
	}

	return newComplexBuffer(rows, cols), nil
}

// IdentityComplex returns the n×n identity.
func IdentityComplex(n int) (*Complex, error) {
	m, err := ZeroComplex(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.body[i*n+i] = im.One()
	}

	return m, nil
}

// newComplexBuffer allocates a zero-filled matrix without validation.
func newComplexBuffer(rows, cols int) *Complex {
	body := make([]im.Number, rows*cols)
	for k := range body {
		body[k] = im.Zero{}
	}

	return &Complex{r: rows, c: cols, body: body}
}

// Rows returns the row count.
func (m *Complex) Rows() int { return m.r }

// Cols returns the column count.
func (m *Complex) Cols() int { return m.c }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Complex) At(row, col int) (im.Number, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, complexErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrOutOfRange)
	}

	return m.body[row*m.c+col], nil
}

// Body returns a copy of the row-major element buffer.
func (m *Complex) Body() []im.Number {
	cp := make([]im.Number, len(m.body))
	copy(cp, m.body)

	return cp
}

// Equal reports whether both matrices have the same shape and pairwise
// im.Equal elements.
func (m *Complex) Equal(o *Complex) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.body {
		if !im.Equal(m.body[k], o.body[k]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line:
//
//	[(3-i), 2]
//	[i, 0]
func (m *Complex) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(m.body[i*m.c+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
