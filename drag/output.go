// SPDX-License-Identifier: MIT
// Package: qpulse/drag
//
// output.go — I/Q formation with rounding and saturation.

package drag

import (
	"fmt"

	"github.com/katalvlaran/qpulse/fixed"
)

// Sample is one streamed output pair.
type Sample struct {
	I fixed.SQ1_15
	Q fixed.SQ1_15
}

func (s Sample) String() string {
	return fmt.Sprintf("(%d, %d)", s.I, s.Q)
}

// InPhase returns sat(round(A·E)).
func InPhase(amp fixed.SQ1_15, e fixed.UQ1_15) fixed.SQ1_15 {
	p := int64(amp) * int64(e) // Q30
	return fixed.SaturateSQ1_15(fixed.RoundShift(p, fixed.Frac15))
}

// Quadrature returns sat(round(β·A·D)).
func Quadrature(beta, amp fixed.SQ1_15, d fixed.SQ2_15) fixed.SQ1_15 {
	ba := int64(beta) * int64(amp) // Q30
	p := ba * int64(d)             // Q45
	return fixed.SaturateSQ1_15(fixed.RoundShift(p, fixed.Frac30))
}

// Assemble forms the output pair for one sample.
func Assemble(amp, beta fixed.SQ1_15, e fixed.UQ1_15, d fixed.SQ2_15) Sample {
	return Sample{
		I: InPhase(amp, e),
		Q: Quadrature(beta, amp, d),
	}
}
