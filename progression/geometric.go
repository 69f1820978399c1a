// SPDX-License-Identifier: MIT

package progression

import (
	"fmt"
	"math"
)

// Geometric is the progression b_n = First · Ratio^(n−1).
type Geometric struct {
	First float64 // b_1
	Ratio float64 // common ratio q
}

// Sum returns S_n = b_1·(q^n − 1)/(q − 1).
// Errors: ErrUnitRatio when q == 1.
func (g Geometric) Sum(n uint) (float64, error) {
	if g.Ratio == 1 {
		return 0, fmt.Errorf("Geometric.Sum: %w", ErrUnitRatio)
	}

	return g.First * (math.Pow(g.Ratio, float64(n)) - 1) / (g.Ratio - 1), nil
}

// Term returns b_n given a known term bk at index k:
// b_n = b_k·q^(n−k) for n > k, b_k / q^(k−n) otherwise.
// Errors: ErrZeroRatio, ErrBadIndex.
func (g Geometric) Term(bk float64, k, n uint) (float64, error) {
	if g.Ratio == 0 {
		return 0, fmt.Errorf("Geometric.Term: %w", ErrZeroRatio)
	}
	if k == 0 || n == 0 {
		return 0, fmt.Errorf("Geometric.Term(k=%d, n=%d): %w", k, n, ErrBadIndex)
	}
	if n > k {
		return bk * math.Pow(g.Ratio, float64(n-k)), nil
	}

	return bk / math.Pow(g.Ratio, float64(k-n)), nil
}

// TermsToReach returns the smallest n ≥ 1 with Sum(n) ≥ sum, trying at most limit terms.
// Errors: ErrUnitRatio, ErrUnreachable.
func (g Geometric) TermsToReach(sum float64, limit uint) (uint, error) {
	if g.Ratio == 1 {
		return 0, fmt.Errorf("Geometric.TermsToReach: %w", ErrUnitRatio)
	}

	return termsToReach(func(n uint) float64 {
		s, _ := g.Sum(n)
		return s
	}, sum, limit)
}

// RatioBetween recovers q from two known terms b_k and b_n:
// q = (b_n/b_k)^(1/(n−k)) for n > k, (b_k/b_n)^(1/(k−n)) otherwise.
// Errors: ErrSameIndex, ErrZeroTerm, ErrBadIndex.
func RatioBetween(bk, bn float64, k, n uint) (float64, error) {
	switch {
	case k == 0 || n == 0:
		return 0, fmt.Errorf("RatioBetween(k=%d, n=%d): %w", k, n, ErrBadIndex)
	case n == k:
		return 0, fmt.Errorf("RatioBetween: %w", ErrSameIndex)
	case n > k:
		if bk == 0 {
			return 0, fmt.Errorf("RatioBetween: b_k: %w", ErrZeroTerm)
		}
		return math.Pow(bn/bk, 1/float64(n-k)), nil
	}
	if bn == 0 {
		return 0, fmt.Errorf("RatioBetween: b_n: %w", ErrZeroTerm)
	}

	return math.Pow(bk/bn, 1/float64(k-n)), nil
}
