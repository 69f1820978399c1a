// SPDX-License-Identifier: MIT

// Package token splits free-form input into classified tokens: real number
// literals, imaginary literals such as "2.5i" or "-i", and words. It performs
// no evaluation; callers lift numeric tokens into im numbers with Token.Number.
package token

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/xmath/im"
)

// Kind classifies a token.
type Kind int

const (
	// KindWord is anything that is not a numeric literal.
	KindWord Kind = iota

	// KindNumber is a finite real literal ("3", "-0.5", "1e3").
	KindNumber

	// KindImaginary is a real literal (or a bare sign) followed by "i".
	KindImaginary
)

var kindNames = [...]string{
	KindWord:      "word",
	KindNumber:    "number",
	KindImaginary: "imaginary",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Token is one whitespace-separated field of the input.
type Token struct {
	Kind Kind
	Text string // lower-cased field
	Pos  int    // zero-based field index
}

// Tokenize lower-cases s, splits it on whitespace and classifies each field.
func Tokenize(s string) []Token {
	fields := strings.Fields(strings.ToLower(s))
	out := make([]Token, len(fields))
	for i, f := range fields {
		out[i] = Token{Kind: classify(f), Text: f, Pos: i}
	}

	return out
}

func classify(f string) Kind {
	if isFinite(f) {
		return KindNumber
	}
	if prefix, ok := strings.CutSuffix(f, "i"); ok {
		switch prefix {
		case "", "+", "-":
			return KindImaginary
		}
		if isFinite(prefix) {
			return KindImaginary
		}
	}

	return KindWord
}

// isFinite reports whether f parses as a finite float ("inf" and "nan" do not count).
func isFinite(f string) bool {
	v, err := strconv.ParseFloat(f, 64)

	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Number lifts a numeric token into an im.Number. ok is false for words.
func (t Token) Number() (im.Number, bool) {
	switch t.Kind {
	case KindNumber, KindImaginary:
		n, err := im.Parse(t.Text)
		if err != nil {
			return nil, false
		}
		return n, true
	}

	return nil, false
}
