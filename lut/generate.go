// SPDX-License-Identifier: MIT
// Package: qpulse/lut
//
// generate.go — reference derivation of the table contents.
//
// The pipeline never calls these at runtime; cmd/lutgen uses them to write
// tables_gen.go and the tests use them to check the committed data.

package lut

import (
	"math"

	"github.com/katalvlaran/qpulse/fixed"
)

// GenerateExp computes the exp table: floor(exp(-addr/64)·2^15 + 0.5),
// clamped to [0, 0x7FFF].
func GenerateExp() [ExpSize]uint16 {
	var out [ExpSize]uint16
	for addr := range out {
		x := float64(addr) / float64(1<<ExpFracBits)
		q := math.Floor(math.Exp(-x)*(1<<fixed.Frac15) + 0.5)
		out[addr] = uint16(fixed.Clamp(int64(q), 0, fixed.MaxUQ0_15))
	}
	return out
}

// GenerateCos computes the cos table: cos(2π·addr/2048)·2^15 rounded half
// to even, clamped to the SQ1.15 range.
func GenerateCos() [CosSize]int16 {
	var out [CosSize]int16
	for addr := range out {
		turns := float64(addr) / CosSize
		q := math.RoundToEven(math.Cos(2*math.Pi*turns) * (1 << fixed.Frac15))
		out[addr] = int16(fixed.Clamp(int64(q), fixed.MinSQ1_15, fixed.MaxSQ1_15))
	}
	return out
}
