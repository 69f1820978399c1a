// SPDX-License-Identifier: MIT

// Package matrixio reads matrix documents for the CLI. A document is YAML
// or TOML (chosen by extension) with this shape:
//
//	rows: 2
//	cols: 2
//	body: [{re: -1, im: -3}, {re: 4, im: 2}, {re: 1, im: 1}, {re: -2, im: 1}]
//	rhs:  [{re: 1}, {re: 0}]
package matrixio

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/xmath/im"
	"github.com/katalvlaran/xmath/internal/config"
	"github.com/katalvlaran/xmath/matrix"
)

var (
	// ErrNotReal is returned when a float matrix is requested from a document
	// with a non-zero imaginary part.
	ErrNotReal = errors.New("matrixio: document has imaginary entries")

	// ErrNoRHS is returned when a right-hand side is requested but absent.
	ErrNoRHS = errors.New("matrixio: document has no rhs")
)

// Entry is one complex element re + im·i.
type Entry struct {
	Re float64 `yaml:"re" toml:"re"`
	Im float64 `yaml:"im" toml:"im"`
}

// Number lifts the entry into the im engine.
func (e Entry) Number() im.Number {
	return im.Complex(e.Re, e.Im)
}

// Document is a decoded matrix file.
type Document struct {
	Rows int     `yaml:"rows" toml:"rows"`
	Cols int     `yaml:"cols" toml:"cols"`
	Body []Entry `yaml:"body" toml:"body"`
	RHS  []Entry `yaml:"rhs,omitempty" toml:"rhs,omitempty"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := config.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, f)
}

// Decode parses a document in the given format.
func Decode(data []byte, f config.Format) (*Document, error) {
	var doc Document
	if err := config.Decode(data, f, &doc); err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	return &doc, nil
}

// Complex builds the symbolic matrix.
func (d *Document) Complex() (*matrix.Complex, error) {
	return matrix.NewComplex(d.Rows, d.Cols, numbers(d.Body))
}

// Dense builds the float matrix; every entry must be real.
func (d *Document) Dense(opts ...matrix.Option) (*matrix.Dense, error) {
	vals, err := reals(d.Body)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(d.Rows, d.Cols, vals, opts...)
}

// ComplexRHS returns the right-hand side as im numbers.
func (d *Document) ComplexRHS() ([]im.Number, error) {
	if len(d.RHS) == 0 {
		return nil, ErrNoRHS
	}

	return numbers(d.RHS), nil
}

// RealRHS returns the right-hand side as floats.
func (d *Document) RealRHS() ([]float64, error) {
	if len(d.RHS) == 0 {
		return nil, ErrNoRHS
	}

	return reals(d.RHS)
}

func numbers(es []Entry) []im.Number {
	out := make([]im.Number, len(es))
	for k, e := range es {
		out[k] = e.Number()
	}

	return out
}

func reals(es []Entry) ([]float64, error) {
	out := make([]float64, len(es))
	for k, e := range es {
		if e.Im != 0 {
			return nil, fmt.Errorf("entry %d: %w", k, ErrNotReal)
		}
		out[k] = e.Re
	}

	return out, nil
}
