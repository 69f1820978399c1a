// SPDX-License-Identifier: MIT
package token_test

import (
	"testing"

	"github.com/katalvlaran/xmath/im"
	"github.com/katalvlaran/xmath/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks := token.Tokenize("  Solve 2.5I plus -3 times i over PI  nan ")
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.KindWord, "solve"},
		{token.KindImaginary, "2.5i"},
		{token.KindWord, "plus"},
		{token.KindNumber, "-3"},
		{token.KindWord, "times"},
		{token.KindImaginary, "i"},
		{token.KindWord, "over"},
		{token.KindWord, "pi"},
		{token.KindWord, "nan"},
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w.kind, toks[i].Kind, "token %d", i)
		assert.Equal(t, w.text, toks[i].Text, "token %d", i)
		assert.Equal(t, i, toks[i].Pos)
	}
	require.Empty(t, token.Tokenize(" \t\n"))
}

func TestTokenNumber(t *testing.T) {
	toks := token.Tokenize("2.5i -3 -i word")

	n, ok := toks[0].Number()
	require.True(t, ok)
	assert.True(t, im.Equal(im.Imag(2.5), n))

	n, ok = toks[1].Number()
	require.True(t, ok)
	assert.True(t, im.Equal(im.Real(-3), n))

	n, ok = toks[2].Number()
	require.True(t, ok)
	assert.True(t, im.Equal(im.Imag(-1), n))

	_, ok = toks[3].Number()
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "imaginary", token.KindImaginary.String())
	assert.Equal(t, "Kind(7)", token.Kind(7).String())
}
