// SPDX-License-Identifier: MIT
// Package: qpulse/command
//
// command.go — the Command value and its validity predicate.
//
// Contract:
//   • Command is a plain value; copying it is the latch.
//   • Validate is pure and cheap; the generator calls it every tick while a
//     command waits for start.

package command

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qpulse/fixed"
)

// MinLength is the smallest valid session length (exclusive bound is 2).
const MinLength = 3

// Command parameterizes one pulse session.
type Command struct {
	Length  uint16       // number of samples to stream, > 2
	Center  uint16       // sample index of the envelope peak, < Length
	InvVar  fixed.UQ2_14 // Gaussian precision k = 1/σ², non-zero
	Amp     fixed.SQ1_15 // in-phase amplitude A
	Beta    fixed.SQ1_15 // DRAG derivative scale β
	WahWah  bool         // enable secondary cosine amplitude modulation
	WahAmp  fixed.SQ1_15 // secondary modulation depth a
	WahFreq fixed.UQ0_16 // secondary modulation frequency, cycles per sample
}

// Validate reports why c cannot start a session, or nil if it can.
// The returned error wraps one of the package sentinels.
func (c Command) Validate() error {
	switch {
	case c.Length < MinLength:
		return commandErrorf(MethodValidate, ErrLengthTooShort)
	case c.Center >= c.Length:
		return commandErrorf(MethodValidate, ErrCenterOutOfRange)
	case c.InvVar == 0:
		return commandErrorf(MethodValidate, ErrZeroInverseVariance)
	case c.WahWah && c.WahFreq == 0:
		return commandErrorf(MethodValidate, ErrZeroSecondaryFrequency)
	}
	return nil
}

// Valid is Validate() == nil without the error allocation.
func (c Command) Valid() bool {
	return c.Length >= MinLength &&
		c.Center < c.Length &&
		c.InvVar != 0 &&
		(!c.WahWah || c.WahFreq != 0)
}

// Sigma returns the Gaussian standard deviation implied by InvVar, or +Inf
// when InvVar is zero.
func (c Command) Sigma() float64 {
	if c.InvVar == 0 {
		return math.Inf(1)
	}
	return 1 / math.Sqrt(c.InvVar.Float())
}

func (c Command) String() string {
	s := fmt.Sprintf("len=%d mu=%d sigma=%.3f amp=%.5f beta=%.5f",
		c.Length, c.Center, c.Sigma(), c.Amp.Float(), c.Beta.Float())
	if c.WahWah {
		s += fmt.Sprintf(" wah(a=%.5f f=%.5f)", c.WahAmp.Float(), c.WahFreq.Float())
	}
	return s
}
