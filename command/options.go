// SPDX-License-Identifier: MIT
// Package: qpulse/command
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on meaningless input (NaN, σ ≤ 0, negative
//     frequency); New itself never panics.
//   • Values outside a format's range saturate during quantization.

package command

import (
	"math"

	"github.com/katalvlaran/qpulse/fixed"
)

// Option customizes a Command built by New.
type Option func(*commandConfig)

// New quantizes the configured physical parameters into a Command. The
// result is not validated; call Validate before relying on it.
func New(length, center uint16, opts ...Option) Command {
	cfg := newCommandConfig(opts...)
	return Command{
		Length:  length,
		Center:  center,
		InvVar:  fixed.NewUQ2_14(cfg.invVar),
		Amp:     fixed.NewSQ1_15(cfg.amplitude),
		Beta:    fixed.NewSQ1_15(cfg.dragScale),
		WahWah:  cfg.wah,
		WahAmp:  fixed.NewSQ1_15(cfg.wahAmp),
		WahFreq: fixed.NewUQ0_16(cfg.wahFreq),
	}
}

// WithSigma sets the Gaussian width σ in samples (k = 1/σ²).
// Panics if σ is not a positive finite number.
func WithSigma(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		panic("command: WithSigma(sigma<=0)")
	}
	return func(c *commandConfig) {
		c.invVar = 1 / (sigma * sigma)
	}
}

// WithInverseVariance sets k = 1/σ² directly. Zero is accepted (and later
// rejected by Validate); negative or NaN panics.
func WithInverseVariance(k float64) Option {
	if !(k >= 0) {
		panic("command: WithInverseVariance(k<0)")
	}
	return func(c *commandConfig) {
		c.invVar = k
	}
}

// WithAmplitude sets the in-phase amplitude A in [-1, 1).
func WithAmplitude(a float64) Option {
	if math.IsNaN(a) {
		panic("command: WithAmplitude(NaN)")
	}
	return func(c *commandConfig) {
		c.amplitude = a
	}
}

// WithDragScale sets the DRAG coefficient β in [-1, 1).
func WithDragScale(beta float64) Option {
	if math.IsNaN(beta) {
		panic("command: WithDragScale(NaN)")
	}
	return func(c *commandConfig) {
		c.dragScale = beta
	}
}

// WithWahWah enables secondary modulation with depth a and frequency f in
// cycles per sample.
func WithWahWah(a, f float64) Option {
	if math.IsNaN(a) || !(f >= 0) {
		panic("command: WithWahWah(invalid)")
	}
	return func(c *commandConfig) {
		c.wah = true
		c.wahAmp = a
		c.wahFreq = f
	}
}
