// SPDX-License-Identifier: MIT
// Package: qpulse/envelope
//
// cosine.go — cosine evaluator over the cos LUT.
//
// Datapath:
//   d     = |n − mu|                 cosine is even, sign dropped
//   phase = d·wm                     UQ16.16 turns
//   frac  = phase mod 1              low 16 bits
//   addr  = frac >> 5                11-bit table address
//   rem   = frac & 0x1F              5 sub-entry bits
//   value = lerp(cos[addr], cos[addr+1 mod 2048], rem)

package envelope

import (
	"github.com/katalvlaran/qpulse/fixed"
	"github.com/katalvlaran/qpulse/lut"
)

const (
	cosSliceShift = fixed.Frac16 - lut.CosAddrBits
	cosRemMask    = 1<<cosSliceShift - 1
	turnMask      = 1<<fixed.Frac16 - 1

	// CosDisabled is the value a disabled Cosine returns: +1.0 saturated, so
	// a stray use cannot suppress an envelope.
	CosDisabled = fixed.SQ1_15(fixed.MaxSQ1_15)
)

// Cosine evaluates cos(2π·Freq·(n−Center)) as SQ1.15.
type Cosine struct {
	Center uint16
	Freq   fixed.UQ0_16
}

// Phase returns the fractional phase of sample n in 1/65536 turn.
func (c Cosine) Phase(n uint16) uint16 {
	d := uint32(n) - uint32(c.Center)
	if n < c.Center {
		d = uint32(c.Center) - uint32(n)
	}
	return uint16((d * uint32(c.Freq)) & turnMask)
}

// Eval returns the cosine at n, or CosDisabled when disabled.
func (c Cosine) Eval(n uint16, en bool) fixed.SQ1_15 {
	if !en {
		return CosDisabled
	}
	frac := c.Phase(n)
	addr := frac >> cosSliceShift
	rem := int64(frac & cosRemMask)
	y0 := lut.Cos(addr)
	y1 := lut.Cos(addr + 1) // lut masks, so 2047+1 wraps to 0
	return fixed.SQ1_15(fixed.Lerp(int64(y0), int64(y1), rem, cosSliceShift))
}
