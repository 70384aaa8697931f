// SPDX-License-Identifier: MIT
// Package: qpulse/envelope
//
// gaussian.go — Gaussian evaluator over the exp LUT.
//
// Datapath (all integer):
//   d  = n − mu                      signed 17-bit
//   d² = d·d                         unsigned 32-bit
//   x  = d²·k                        k is UQ2.14, so d²·k/2 is exactly this
//                                    raw value read with 15 fractional bits
//   x > ExpClamp          → 0        (exp(-x) rounds to zero in UQ0.15)
//   addr = x >> 9                    UQ4.6 slice, ≤ 665 below the clamp
//   rem  = x & 0x1FF                 9 sub-entry bits for interpolation

package envelope

import (
	"github.com/katalvlaran/qpulse/fixed"
	"github.com/katalvlaran/qpulse/lut"
)

const (
	// expArgFrac is the fractional width of the exponent argument x.
	expArgFrac = fixed.Frac14 + 1

	// expSliceShift drops the argument's fraction down to the table's UQ4.6
	// address.
	expSliceShift = expArgFrac - lut.ExpFracBits
	expRemMask    = 1<<expSliceShift - 1

	// ExpClamp is round(15·ln2·2^15): the argument past which the true
	// exp(-x) is below 2^-15 and the output is forced to zero.
	ExpClamp = 340696
)

// Gaussian evaluates exp(-(n−Center)²·InvVar/2) as UQ0.15.
type Gaussian struct {
	Center      uint16
	InvVar      fixed.UQ2_14
	Interpolate bool
}

// Arg returns the raw exponent argument x for sample n, with 15 fractional
// bits. It is exported for tests and diagnostics.
func (g Gaussian) Arg(n uint16) uint64 {
	d := int64(n) - int64(g.Center)
	sq := uint64(d * d)
	return sq * uint64(g.InvVar)
}

// Eval returns the envelope value at n, or zero when disabled.
func (g Gaussian) Eval(n uint16, en bool) fixed.UQ0_15 {
	if !en {
		return 0
	}
	x := g.Arg(n)
	if x > ExpClamp {
		return 0
	}
	addr := uint16(x >> expSliceShift)
	y0 := lut.Exp(addr)
	if !g.Interpolate {
		return y0
	}
	rem := int64(x & expRemMask)
	y1 := lut.Exp(addr + 1)
	return fixed.UQ0_15(fixed.Lerp(int64(y0), int64(y1), rem, expSliceShift))
}
