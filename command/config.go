// SPDX-License-Identifier: MIT
// Package: qpulse/command
//
// config.go — internal configuration and deterministic defaults for New.
//
// Design:
//   • commandConfig holds physical (float) parameters; quantization happens
//     once, in New.
//   • newCommandConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • invVar     = 1/36   (σ = 6 samples)
//   • amplitude  = 0.5
//   • dragScale  = 0.0    (plain Gaussian)
//   • wah        = off

package command

// commandConfig aggregates all knobs resolved by New.
type commandConfig struct {
	invVar    float64
	amplitude float64
	dragScale float64
	wah       bool
	wahAmp    float64
	wahFreq   float64
}

const (
	defaultSigma     = 6.0
	defaultAmplitude = 0.5
	defaultDragScale = 0.0
)

// newCommandConfig constructs a config with defaults and applies opts.
func newCommandConfig(opts ...Option) commandConfig {
	cfg := commandConfig{
		invVar:    1 / (defaultSigma * defaultSigma),
		amplitude: defaultAmplitude,
		dragScale: defaultDragScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
