// SPDX-License-Identifier: MIT
// Package: qpulse/harness
//
// suite.go — the canonical regression pulses and spec-file conversion.

package harness

import "github.com/katalvlaran/qpulse/command"

// DefaultSuite returns the three regression pulses: a plain Gaussian, a DRAG
// pulse, and a Wah-Wah pulse.
func DefaultSuite() []Pulse {
	return []Pulse{
		{
			Name: "gauss",
			Cmd:  command.New(64, 32, command.WithSigma(6), command.WithAmplitude(0.5)),
			Tol:  DefaultTolerance,
		},
		{
			Name: "drag",
			Cmd: command.New(64, 32,
				command.WithSigma(6),
				command.WithAmplitude(0.5),
				command.WithDragScale(0.5),
			),
			Tol: DefaultTolerance,
		},
		{
			Name: "wahwah",
			Cmd: command.New(128, 64,
				command.WithSigma(16),
				command.WithAmplitude(0.5),
				command.WithDragScale(0.25),
				command.WithWahWah(0.3, 0.05),
			),
			Tol: WahWahTolerance,
		},
	}
}

// FromSpecs converts pulse descriptions into a suite, choosing the default
// tolerance by mode.
func FromSpecs(specs []command.Spec) ([]Pulse, error) {
	out := make([]Pulse, 0, len(specs))
	for _, s := range specs {
		cmd, err := s.Command()
		if err != nil {
			return nil, err
		}
		tol := DefaultTolerance
		if cmd.WahWah {
			tol = WahWahTolerance
		}
		out = append(out, Pulse{Name: s.Name, Cmd: cmd, Tol: tol})
	}
	return out, nil
}
