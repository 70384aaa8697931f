// SPDX-License-Identifier: MIT
// Package: qpulse/lut
//
// lut.go — table geometry and the read-only access contract.

package lut

//go:generate go run ../cmd/lutgen -out tables_gen.go

import "github.com/katalvlaran/qpulse/fixed"

// Exp table geometry.
const (
	ExpAddrBits = 10               // UQ4.6 address
	ExpFracBits = 6                // fractional address bits
	ExpSize     = 1 << ExpAddrBits // 1024 entries
	expMask     = ExpSize - 1
)

// Cos table geometry.
const (
	CosAddrBits = 11               // 1/2048 turn per entry
	CosSize     = 1 << CosAddrBits // 2048 entries
	cosMask     = CosSize - 1
)

// Exp returns exp(-addr/64) as UQ0.15. The address is masked to 10 bits.
func Exp(addr uint16) fixed.UQ0_15 {
	return fixed.UQ0_15(expTable[addr&expMask])
}

// Cos returns cos(2π·addr/2048) as SQ1.15. The address is masked to 11
// bits, which is exactly the modulo-one-turn wrap.
func Cos(addr uint16) fixed.SQ1_15 {
	return fixed.SQ1_15(cosTable[addr&cosMask])
}
