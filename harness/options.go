// SPDX-License-Identifier: MIT
// Package: qpulse/harness
//
// options.go — functional options and defaults.
//
// Defaults:
//   • interpolate  = true
//   • alignWindow  = 8 samples
//   • alignPenalty = 4 LSB per warp step
//   • logger       = discard

package harness

import (
	"io"
	"log/slog"
)

// Option customizes Compare and RunSuite.
type Option func(*config)

type config struct {
	interpolate  bool
	alignWindow  int
	alignPenalty float64
	logger       *slog.Logger
}

const (
	defaultAlignWindow  = 8
	defaultAlignPenalty = 4.0
)

func newConfig(opts ...Option) config {
	cfg := config{
		interpolate:  true,
		alignWindow:  defaultAlignWindow,
		alignPenalty: defaultAlignPenalty,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithLogger attaches a logger; it is also handed to the generator.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("harness: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithInterpolation toggles exp-table interpolation in the generator.
func WithInterpolation(on bool) Option {
	return func(c *config) {
		c.interpolate = on
	}
}

// WithAlignment sets the DTW band and warp penalty used for the skew check.
// Panics on a negative window or penalty.
func WithAlignment(window int, penalty float64) Option {
	if window < 0 || !(penalty >= 0) {
		panic("harness: WithAlignment(negative)")
	}
	return func(c *config) {
		c.alignWindow = window
		c.alignPenalty = penalty
	}
}
