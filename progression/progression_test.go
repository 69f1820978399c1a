// SPDX-License-Identifier: MIT
package progression_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/xmath/progression"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := progression.Arithmetic{First: 1, Diff: 2} // 1, 3, 5, 7, …

	require.Equal(t, 0.0, a.Sum(0))
	require.Equal(t, 1.0, a.Sum(1))
	require.Equal(t, 100.0, a.Sum(10))

	got, err := a.Term(7, 4, 10) // a_4 = 7 → a_10 = 19
	require.NoError(t, err)
	require.Equal(t, 19.0, got)

	got, err = a.Term(19, 10, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	_, err = a.Term(1, 0, 1)
	require.ErrorIs(t, err, progression.ErrBadIndex)
}

func TestArithmeticTermsToReach(t *testing.T) {
	a := progression.Arithmetic{First: 1, Diff: 2}
	tests := []struct {
		sum  float64
		want uint
	}{
		{1, 1},
		{2, 2},
		{100, 10},
		{101, 11},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.sum), func(t *testing.T) {
			n, err := a.TermsToReach(tc.sum, 1000)
			require.NoError(t, err)
			require.Equal(t, tc.want, n)
		})
	}

	falling := progression.Arithmetic{First: 1, Diff: -1}
	_, err := falling.TermsToReach(10, 1000)
	require.ErrorIs(t, err, progression.ErrUnreachable)
}

func TestGeometric(t *testing.T) {
	g := progression.Geometric{First: 1, Ratio: 2} // 1, 2, 4, 8, …

	s, err := g.Sum(10)
	require.NoError(t, err)
	require.Equal(t, 1023.0, s)

	_, err = progression.Geometric{First: 1, Ratio: 1}.Sum(3)
	require.ErrorIs(t, err, progression.ErrUnitRatio)

	b, err := g.Term(8, 4, 6)
	require.NoError(t, err)
	require.Equal(t, 32.0, b)

	b, err = g.Term(8, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, b)

	_, err = progression.Geometric{First: 1}.Term(1, 1, 2)
	require.ErrorIs(t, err, progression.ErrZeroRatio)

	n, err := g.TermsToReach(1000, 64)
	require.NoError(t, err)
	require.Equal(t, uint(10), n)

	_, err = progression.Geometric{First: 1, Ratio: 0.5}.TermsToReach(3, 200)
	require.ErrorIs(t, err, progression.ErrUnreachable)
}

func TestRatioBetween(t *testing.T) {
	q, err := progression.RatioBetween(2, 54, 1, 4)
	require.NoError(t, err)
	require.InDelta(t, 3.0, q, 1e-12)

	q, err = progression.RatioBetween(54, 2, 4, 1)
	require.NoError(t, err)
	require.InDelta(t, 3.0, q, 1e-12)

	_, err = progression.RatioBetween(1, 2, 3, 3)
	require.ErrorIs(t, err, progression.ErrSameIndex)
	_, err = progression.RatioBetween(0, 2, 1, 3)
	require.ErrorIs(t, err, progression.ErrZeroTerm)
	_, err = progression.RatioBetween(2, 0, 3, 1)
	require.ErrorIs(t, err, progression.ErrZeroTerm)
}
