// SPDX-License-Identifier: MIT
// Package: qpulse/harness
//
// harness.go — run the generator and the golden model side by side.

package harness

import (
	"fmt"

	"github.com/katalvlaran/qpulse/align"
	"github.com/katalvlaran/qpulse/drag"
	"github.com/katalvlaran/qpulse/generator"
	"github.com/katalvlaran/qpulse/golden"
)

// Compare verifies one pulse on a fresh generator.
func Compare(p Pulse, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	gen := generator.New(
		generator.WithInterpolation(cfg.interpolate),
		generator.WithLogger(cfg.logger.With("pulse", p.Name)),
	)
	return compare(gen, p, cfg)
}

// RunSuite verifies every pulse in order on one generator, exactly as a
// driver would issue them back to back.
func RunSuite(pulses []Pulse, opts ...Option) (Report, error) {
	if len(pulses) == 0 {
		return Report{}, ErrNoPulses
	}
	cfg := newConfig(opts...)
	gen := generator.New(
		generator.WithInterpolation(cfg.interpolate),
		generator.WithLogger(cfg.logger),
	)

	rep := Report{Pulses: make([]Result, 0, len(pulses))}
	for _, p := range pulses {
		res, err := compare(gen, p, cfg)
		if err != nil {
			return rep, err
		}
		rep.Pulses = append(rep.Pulses, res)
	}
	return rep, nil
}

func compare(gen *generator.Generator, p Pulse, cfg config) (Result, error) {
	dut, err := gen.Run(p.Cmd)
	if err != nil {
		return Result{}, fmt.Errorf("harness: %q: %w", p.Name, err)
	}
	ref := golden.Pulse(p.Cmd)
	if len(dut) != len(ref) || len(dut) != int(p.Cmd.Length) {
		return Result{}, fmt.Errorf("harness: %q: got %d samples, want %d: %w",
			p.Name, len(dut), p.Cmd.Length, ErrLengthMismatch)
	}

	res := Result{
		Name:    p.Name,
		Params:  paramsOf(p),
		Samples: make([]Point, len(dut)),
		Tol:     p.Tol,
	}
	dutI := make([]float64, len(dut))
	refI := make([]float64, len(dut))
	for n := range dut {
		res.Samples[n] = point(n, dut[n], ref[n])
		res.MaxErrI = max(res.MaxErrI, absInt(res.Samples[n].DutI-res.Samples[n].GoldI))
		res.MaxErrQ = max(res.MaxErrQ, absInt(res.Samples[n].DutQ-res.Samples[n].GoldQ))
		dutI[n] = float64(dut[n].I)
		refI[n] = float64(ref[n].IRaw())
	}

	opts := align.Options{
		Window:       cfg.alignWindow,
		SlopePenalty: cfg.alignPenalty,
		ReturnPath:   true,
		MemoryMode:   align.FullMatrix,
	}
	dist, path, err := align.DTW(dutI, refI, &opts)
	if err != nil {
		return Result{}, fmt.Errorf("harness: %q: %w", p.Name, err)
	}
	res.DTW = dist
	res.Skew = align.Skew(path)

	cfg.logger.Info("pulse compared",
		"pulse", p.Name,
		"samples", len(dut),
		"max_err_i", res.MaxErrI,
		"max_err_q", res.MaxErrQ,
		"skew", res.Skew,
		"pass", res.Pass(),
	)
	return res, nil
}

func point(n int, s drag.Sample, g golden.Point) Point {
	return Point{
		N:      n,
		DutI:   int(s.I),
		DutQ:   int(s.Q),
		GoldI:  g.IRaw(),
		GoldQ:  g.QRaw(),
		DutIR:  s.I.Float(),
		DutQR:  s.Q.Float(),
		GoldIR: g.I,
		GoldQR: g.Q,
	}
}

func paramsOf(p Pulse) Params {
	c := p.Cmd
	out := Params{
		Len:    int(c.Length),
		Mu:     int(c.Center),
		Sigma:  c.Sigma(),
		Amp:    c.Amp.Float(),
		Beta:   c.Beta.Float(),
		WahWah: c.WahWah,
	}
	if c.WahWah {
		out.WahAmp = c.WahAmp.Float()
		out.WahFreq = c.WahFreq.Float()
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
