// SPDX-License-Identifier: MIT
// Package: qpulse/fixed
//
// fixed.go — Q-format value types and float conversions.
//
// Contract:
//   • Every type stores the raw integer representation; the real value is
//     raw / 2^frac.
//   • NewX(f) rounds to nearest and saturates to the type's range.
//   • Float() is exact (all raw values are representable in float64).

package fixed

import "math"

// Fractional bit counts (no magic numbers in shifts).
const (
	Frac14 = 14 // UQ2.14
	Frac15 = 15 // UQ0.15, UQ1.15, SQ1.15, SQ2.15
	Frac16 = 16 // UQ0.16
	Frac30 = 30 // product of two 15-bit fractions
)

// Scale factors 2^frac as float64.
const (
	scale14 = 1 << Frac14
	scale15 = 1 << Frac15
	scale16 = 1 << Frac16
)

// Raw range limits.
const (
	MaxUQ0_15 = 0x7FFF // largest UQ0.15 value, 1 − 2^-15
	OneUQ1_15 = 0x8000 // 1.0 in UQ1.15
	MaxSQ1_15 = math.MaxInt16
	MinSQ1_15 = math.MinInt16
	OneQ30    = int64(1) << Frac30 // 1.0 in a Q30 product
)

// UQ0_15 is an unsigned fraction in [0, 1) with 15 fractional bits.
// Bit 15 is always clear.
type UQ0_15 uint16

// UQ1_15 is an unsigned value in [0, 2) with 15 fractional bits.
type UQ1_15 uint16

// UQ2_14 is an unsigned value in [0, 4) with 14 fractional bits.
type UQ2_14 uint16

// UQ0_16 is an unsigned fraction in [0, 1) with 16 fractional bits.
type UQ0_16 uint16

// SQ1_15 is a signed value in [-1, 1) with 15 fractional bits.
type SQ1_15 int16

// SQ2_15 is a signed value in [-2, 2) with 15 fractional bits, stored
// in 32 bits so that differences of two UQ1_15 values never overflow.
type SQ2_15 int32

// NewUQ0_15 converts f to UQ0.15, saturating to [0, MaxUQ0_15].
func NewUQ0_15(f float64) UQ0_15 {
	return UQ0_15(quantize(f, scale15, 0, MaxUQ0_15))
}

// NewUQ1_15 converts f to UQ1.15, saturating to [0, 0xFFFF].
func NewUQ1_15(f float64) UQ1_15 {
	return UQ1_15(quantize(f, scale15, 0, math.MaxUint16))
}

// NewUQ2_14 converts f to UQ2.14, saturating to [0, 0xFFFF].
func NewUQ2_14(f float64) UQ2_14 {
	return UQ2_14(quantize(f, scale14, 0, math.MaxUint16))
}

// NewUQ0_16 converts f to UQ0.16, saturating to [0, 0xFFFF].
func NewUQ0_16(f float64) UQ0_16 {
	return UQ0_16(quantize(f, scale16, 0, math.MaxUint16))
}

// NewSQ1_15 converts f to SQ1.15, saturating to [-1, 1 − 2^-15].
// NewSQ1_15(1.0) therefore yields MaxSQ1_15.
func NewSQ1_15(f float64) SQ1_15 {
	return SQ1_15(quantize(f, scale15, MinSQ1_15, MaxSQ1_15))
}

// quantize maps f·scale to the nearest integer and clamps it to [lo, hi].
// NaN maps to zero.
func quantize(f, scale float64, lo, hi int64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	r := math.Round(f * scale)
	if r <= float64(lo) {
		return lo
	}
	if r >= float64(hi) {
		return hi
	}
	return int64(r)
}

// Float returns the real value.
func (v UQ0_15) Float() float64 { return float64(v) / scale15 }

// Float returns the real value.
func (v UQ1_15) Float() float64 { return float64(v) / scale15 }

// Float returns the real value.
func (v UQ2_14) Float() float64 { return float64(v) / scale14 }

// Float returns the real value.
func (v UQ0_16) Float() float64 { return float64(v) / scale16 }

// Float returns the real value.
func (v SQ1_15) Float() float64 { return float64(v) / scale15 }

// Float returns the real value.
func (v SQ2_15) Float() float64 { return float64(v) / scale15 }

// Widen promotes a UQ0.15 value into UQ1.15 by inserting a zero integer
// bit. The raw pattern is unchanged.
func (v UQ0_15) Widen() UQ1_15 { return UQ1_15(v) }
