// SPDX-License-Identifier: MIT

package progression

import "errors"

var (
	// ErrUnitRatio is returned by Geometric.Sum when q == 1 (the closed form divides by q−1).
	ErrUnitRatio = errors.New("progression: ratio must not be 1")

	// ErrZeroRatio is returned by Geometric.Term when q == 0.
	ErrZeroRatio = errors.New("progression: ratio must not be 0")

	// ErrSameIndex is returned by RatioBetween when both indices coincide.
	ErrSameIndex = errors.New("progression: indices must differ")

	// ErrZeroTerm is returned by RatioBetween when the divisor term is 0.
	ErrZeroTerm = errors.New("progression: divisor term must not be 0")

	// ErrUnreachable is returned by TermsToReach when the partial sums do not
	// reach the target within the iteration limit.
	ErrUnreachable = errors.New("progression: sum not reached within limit")

	// ErrBadIndex is returned for a zero (1-based) index or term count.
	ErrBadIndex = errors.New("progression: index must be >= 1")
)
