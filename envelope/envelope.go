// SPDX-License-Identifier: MIT
// Package: qpulse/envelope
//
// envelope.go — envelope assembler (plain Gaussian or Wah-Wah).
//
// Contract:
//   • At(n) is pure; out-of-range n yields (0, false) with both evaluators
//     disabled.
//   • Plain and modulated modes return the same UQ1.15 representation.

package envelope

import (
	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/fixed"
)

// Evaluator yields the envelope value at a sample index. The boolean is
// false when n lies outside the session, in which case the value is zero.
type Evaluator interface {
	At(n int) (fixed.UQ1_15, bool)
}

// Envelope is the Evaluator for one latched command.
type Envelope struct {
	length int
	gauss  Gaussian
	cos    Cosine
	wah    bool
	wahAmp fixed.SQ1_15
}

var _ Evaluator = Envelope{}

// New builds the envelope evaluator for cmd. interpolate selects linear
// interpolation between exp table entries (the cos evaluator always
// interpolates).
func New(cmd command.Command, interpolate bool) Envelope {
	return Envelope{
		length: int(cmd.Length),
		gauss: Gaussian{
			Center:      cmd.Center,
			InvVar:      cmd.InvVar,
			Interpolate: interpolate,
		},
		cos: Cosine{
			Center: cmd.Center,
			Freq:   cmd.WahFreq,
		},
		wah:    cmd.WahWah,
		wahAmp: cmd.WahAmp,
	}
}

// At returns E[n].
func (e Envelope) At(n int) (fixed.UQ1_15, bool) {
	en := n >= 0 && n < e.length
	var idx uint16
	if en {
		idx = uint16(n)
	}
	g := e.gauss.Eval(idx, en)
	if !e.wah {
		return g.Widen(), en
	}
	m := Modulation(e.wahAmp, e.cos.Eval(idx, en))
	return Modulate(g, m), en
}

// Modulation returns M = clamp(1 − a·c, 0, 1) in UQ1.15. The product a·c is
// formed in Q30 and rounded once.
func Modulation(a, c fixed.SQ1_15) fixed.UQ1_15 {
	m := fixed.OneQ30 - int64(a)*int64(c)
	m = fixed.Clamp(m, 0, fixed.OneQ30)
	return fixed.UQ1_15(fixed.RoundShift(m, fixed.Frac15))
}

// Modulate returns G·M rounded into UQ1.15.
func Modulate(g fixed.UQ0_15, m fixed.UQ1_15) fixed.UQ1_15 {
	return fixed.UQ1_15(fixed.RoundShift(int64(g)*int64(m), fixed.Frac15))
}
