// SPDX-License-Identifier: MIT

// Package progression implements arithmetic and geometric progressions.
//
// An Arithmetic progression is a_1, a_1+d, a_1+2d, …; a Geometric one is
// b_1, b_1·q, b_1·q², …. Both expose the n-term partial sum, the n-th term
// computed from any known k-th term, and TermsToReach: the smallest n whose
// partial sum reaches a target. TermsToReach is bounded by an explicit
// iteration limit and reports ErrUnreachable instead of looping forever on
// a progression that never gets there.
//
// Indices are 1-based, as in the textbook formulas.
package progression
