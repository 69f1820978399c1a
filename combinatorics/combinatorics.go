// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"
	"math"
	"math/big"
)

// Factorial returns n! = 1·2·…·n. By convention 0! = 1.
// Complexity: O(n) big-integer multiplications.
func Factorial(n uint) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// Sigma returns the triangular number 1 + 2 + … + n.
func Sigma(n uint64) uint64 {
	return n * (n + 1) / 2
}

// Binomial returns C_n^m = n! / (m!·(n−m)!).
// Errors: ErrOrder when n < m.
func Binomial(m, n uint) (float64, error) {
	if n < m {
		return 0, fmt.Errorf("Binomial(%d, %d): %w", m, n, ErrOrder)
	}
	c := new(big.Int).Binomial(int64(n), int64(m))
	f, _ := new(big.Float).SetInt(c).Float64()

	return f, nil
}

// Bernoulli returns the probability of exactly m successes in n independent
// trials with success probability p and failure probability q:
// P_n^m = C_n^m · p^m · q^(n−m).
//
// q is taken as given rather than derived from p, so callers can model
// incomplete outcome spaces.
//
// Errors: ErrOrder when n < m; ErrProbability when p or q is outside [0, 1].
func Bernoulli(m, n uint, p, q float64) (float64, error) {
	if !isProbability(p) || !isProbability(q) {
		return 0, fmt.Errorf("Bernoulli(p=%v, q=%v): %w", p, q, ErrProbability)
	}
	c, err := Binomial(m, n)
	if err != nil {
		return 0, err
	}

	return c * math.Pow(p, float64(m)) * math.Pow(q, float64(n-m)), nil
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}
