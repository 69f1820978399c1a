// SPDX-License-Identifier: MIT

package progression

import "fmt"

// Arithmetic is the progression a_n = First + (n−1)·Diff.
type Arithmetic struct {
	First float64 // a_1
	Diff  float64 // common difference d
}

// Sum returns the partial sum of the first n terms:
// S_n = a_1·n + d·(1 + 2 + … + (n−1)).
// The sum of zero terms is 0.
func (a Arithmetic) Sum(n uint) float64 {
	if n == 0 {
		return 0
	}
	tri := float64(n) * float64(n-1) / 2

	return a.First*float64(n) + a.Diff*tri
}

// Term returns a_n given a known term ak at index k:
// a_n = a_k + (n−k)·d. Works for n on either side of k.
// Errors: ErrBadIndex when k or n is 0.
func (a Arithmetic) Term(ak float64, k, n uint) (float64, error) {
	if k == 0 || n == 0 {
		return 0, fmt.Errorf("Arithmetic.Term(k=%d, n=%d): %w", k, n, ErrBadIndex)
	}

	return ak + (float64(n)-float64(k))*a.Diff, nil
}

// TermsToReach returns the smallest n ≥ 1 with Sum(n) ≥ sum, trying at most limit terms.
// Errors: ErrUnreachable.
func (a Arithmetic) TermsToReach(sum float64, limit uint) (uint, error) {
	return termsToReach(a.Sum, sum, limit)
}

// termsToReach scans n = 1..limit for the first partial sum ≥ target.
func termsToReach(partial func(uint) float64, target float64, limit uint) (uint, error) {
	for n := uint(1); n <= limit; n++ {
		if partial(n) >= target {
			return n, nil
		}
	}

	return 0, fmt.Errorf("TermsToReach(%v, limit=%d): %w", target, limit, ErrUnreachable)
}
