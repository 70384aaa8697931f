// SPDX-License-Identifier: MIT
// Package: qpulse/harness
//
// types.go — pulses, tolerances and report records.

package harness

import "github.com/katalvlaran/qpulse/command"

// Tolerance is the allowed |DUT − golden| per channel, in LSB of SQ1.15.
type Tolerance struct {
	I int `json:"i"`
	Q int `json:"q"`
}

// Default tolerances. Plain and DRAG pulses reproduce the reference within
// 1 LSB (I) and 2 LSB (Q); the Wah-Wah product adds one more rounding.
var (
	DefaultTolerance = Tolerance{I: 1, Q: 2}
	WahWahTolerance  = Tolerance{I: 2, Q: 2}
)

// Pulse is one named command to verify.
type Pulse struct {
	Name string
	Cmd  command.Command
	Tol  Tolerance
}

// Params echoes the command in physical units.
type Params struct {
	Len     int     `json:"len"`
	Mu      int     `json:"mu"`
	Sigma   float64 `json:"sigma"`
	Amp     float64 `json:"amp"`
	Beta    float64 `json:"beta"`
	WahWah  bool    `json:"wah"`
	WahAmp  float64 `json:"wah_amp,omitempty"`
	WahFreq float64 `json:"wah_freq,omitempty"`
}

// Point is one compared sample.
type Point struct {
	N      int     `json:"n"`
	DutI   int     `json:"dut_i"`
	DutQ   int     `json:"dut_q"`
	GoldI  int     `json:"gold_i"`
	GoldQ  int     `json:"gold_q"`
	DutIR  float64 `json:"dut_i_r"`
	DutQR  float64 `json:"dut_q_r"`
	GoldIR float64 `json:"gold_i_r"`
	GoldQR float64 `json:"gold_q_r"`
}

// Result is the comparison of one pulse.
type Result struct {
	Name    string    `json:"name"`
	Params  Params    `json:"params"`
	Samples []Point   `json:"samples"`
	MaxErrI int       `json:"max_err_i"`
	MaxErrQ int       `json:"max_err_q"`
	DTW     float64   `json:"dtw"`
	Skew    int       `json:"skew"`
	Tol     Tolerance `json:"tolerance"`
}

// Within reports whether the result meets tol and is time-aligned.
func (r Result) Within(tol Tolerance) bool {
	return r.MaxErrI <= tol.I && r.MaxErrQ <= tol.Q && r.Skew == 0
}

// Pass reports whether the result meets its own tolerance.
func (r Result) Pass() bool { return r.Within(r.Tol) }

// Report is the collection written to pulse_results.json.
type Report struct {
	Pulses []Result `json:"pulses"`
}

// Failed returns the names of pulses outside tolerance.
func (r Report) Failed() []string {
	var out []string
	for _, p := range r.Pulses {
		if !p.Pass() {
			out = append(out, p.Name)
		}
	}
	return out
}
