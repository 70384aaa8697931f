// SPDX-License-Identifier: MIT
// Package: qpulse/golden
//
// golden.go — real-valued envelope, derivative and I/Q reference.

package golden

import (
	"math"

	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/fixed"
)

// lsb is the weight of one SQ1.15 output step.
const lsb = 1.0 / (1 << fixed.Frac15)

// Point is the reference value of one sample.
type Point struct {
	N int
	E float64 // envelope
	D float64 // derivative
	I float64 // A·E
	Q float64 // β·A·D
}

// IRaw returns I scaled to SQ1.15 units, rounded and saturated.
func (p Point) IRaw() int { return toRaw(p.I) }

// QRaw returns Q scaled to SQ1.15 units, rounded and saturated.
func (p Point) QRaw() int { return toRaw(p.Q) }

func toRaw(v float64) int {
	return int(fixed.Clamp(int64(math.Round(v/lsb)), fixed.MinSQ1_15, fixed.MaxSQ1_15))
}

// Envelope returns the real-valued E[n] for cmd.
func Envelope(cmd command.Command, n int) float64 {
	d := float64(n - int(cmd.Center))
	g := math.Exp(-d * d * cmd.InvVar.Float() / 2)
	if !cmd.WahWah {
		return g
	}
	m := 1 - cmd.WahAmp.Float()*math.Cos(2*math.Pi*cmd.WahFreq.Float()*d)
	return g * math.Min(math.Max(m, 0), 1)
}

// Pulse evaluates the whole session. It returns nil for an invalid command,
// matching the core's zero-sample guarantee.
func Pulse(cmd command.Command) []Point {
	if !cmd.Valid() {
		return nil
	}
	length := int(cmd.Length)
	e := make([]float64, length)
	for n := range e {
		e[n] = Envelope(cmd, n)
	}

	amp := cmd.Amp.Float()
	beta := cmd.Beta.Float()
	out := make([]Point, length)
	for n := range out {
		var d float64
		switch n {
		case 0:
			d = e[1] - e[0]
		case length - 1:
			d = e[n] - e[n-1]
		default:
			d = (e[n+1] - e[n-1]) / 2
		}
		out[n] = Point{N: n, E: e[n], D: d, I: amp * e[n], Q: beta * amp * d}
	}
	return out
}
