// SPDX-License-Identifier: MIT

package combinatorics

import "errors"

var (
	// ErrOrder is returned when the subset size m exceeds the set size n.
	ErrOrder = errors.New("combinatorics: m must not exceed n")

	// ErrProbability is returned when p or q lies outside [0, 1].
	ErrProbability = errors.New("combinatorics: probability outside [0, 1]")
)
