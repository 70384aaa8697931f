// SPDX-License-Identifier: MIT
// Package: qpulse/drag
//
// derivative.go — finite-difference derivative with boundary handling.

package drag

import "github.com/katalvlaran/qpulse/fixed"

// Derivative returns D[n] from E[n−1], E[n], E[n+1]. first and last mark the
// session boundaries; the neighbour outside the session is never read, so
// callers may pass zero for it. first and last are never both true for a
// valid command (length > 2); if they are, first wins.
func Derivative(prev, cur, next fixed.UQ1_15, first, last bool) fixed.SQ2_15 {
	switch {
	case first:
		return fixed.SQ2_15(int32(next) - int32(cur))
	case last:
		return fixed.SQ2_15(int32(cur) - int32(prev))
	default:
		return fixed.SQ2_15((int32(next) - int32(prev)) >> 1)
	}
}
