// SPDX-License-Identifier: MIT
// Package: qpulse/fixed
//
// round.go — rounding, saturation and interpolation on raw integers.
//
// All helpers work on int64 so callers can form wide intermediate products
// (up to Q45) without overflow, then narrow explicitly.

package fixed

// RoundShift divides v by 2^shift, rounding half up (towards +∞ on ties).
// The shift is arithmetic, so negative values round consistently:
// RoundShift(-3, 1) == -1, RoundShift(-1, 1) == 0.
func RoundShift(v int64, shift uint) int64 {
	if shift == 0 {
		return v
	}
	return (v + int64(1)<<(shift-1)) >> shift
}

// SaturateSQ1_15 clamps v to the SQ1.15 range and narrows it.
func SaturateSQ1_15(v int64) SQ1_15 {
	switch {
	case v > MaxSQ1_15:
		return MaxSQ1_15
	case v < MinSQ1_15:
		return MinSQ1_15
	}
	return SQ1_15(v)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between adjacent table entries y0 and y1. r is the
// sub-entry remainder with the given number of fractional bits, so the
// result is y0 + round((y1−y0)·r / 2^bits). For r in [0, 2^bits) the
// result lies between y0 and y1 inclusive.
func Lerp(y0, y1, r int64, bits uint) int64 {
	return y0 + RoundShift((y1-y0)*r, bits)
}
