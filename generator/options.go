// SPDX-License-Identifier: MIT
// Package: qpulse/generator
//
// options.go — functional options and deterministic defaults.
//
// Defaults:
//   • interpolate = true   (linear interpolation between exp entries)
//   • logger      = discard

package generator

import (
	"io"
	"log/slog"
)

// Option customizes a Generator.
type Option func(*config)

type config struct {
	interpolate bool
	logger      *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		interpolate: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithInterpolation turns exp-table interpolation on or off.
func WithInterpolation(on bool) Option {
	return func(c *config) {
		c.interpolate = on
	}
}

// WithLogger attaches a logger for state transitions (debug) and rejected
// starts (warn). Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
