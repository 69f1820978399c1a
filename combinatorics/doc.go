// Package combinatorics provides counting and probability formulas:
// factorial, triangular numbers, binomial coefficients and the Bernoulli
// scheme P_n^m = C_n^m · p^m · q^(n−m).
//
// Factorial returns *big.Int because n! overflows uint64 from n = 21.
// Binomial and Bernoulli return float64, computed from exact big.Int
// coefficients.
//
// Example:
//
//	p := 1.0 / 6
//	prob, _ := combinatorics.Bernoulli(2, 5, p, 1-p) // two sixes in five rolls
//	fmt.Printf("%.2f\n", prob)                       // 0.16
package combinatorics
