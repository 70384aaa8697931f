// SPDX-License-Identifier: MIT
// Package: qpulse/harness
//
// random.go — seeded random pulse suites for wider regression sweeps.
//
// Determinism policy:
//   • RandomSuite(n, seed) draws from rand.New(rand.NewSource(seed)) unless a
//     generator is supplied with WithRand, in which case that stream is used.
//   • The same (n, seed) always yields the same suite.
//
// Every drawn command is valid: length in [16, 512], center in the middle
// half, σ in [1, length/6], |A|, |β| < 0.95 and, for half of the pulses,
// Wah-Wah with |a| < 0.5 and frequency in [0.005, 0.1) cycles per sample.

package harness

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qpulse/command"
)

const (
	randMinLen  = 16
	randMaxLen  = 512
	randMaxAmp  = 0.95
	randMaxWahA = 0.5
	randMinWahF = 0.005
	randMaxWahF = 0.1
)

// RandomOption customizes RandomSuite.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng *rand.Rand
}

// WithRand draws from r instead of a fresh seeded source. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("harness: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// RandomSuite returns n random valid pulses. Random pulses mix extreme
// amplitudes with modulation, so they all carry WahWahTolerance.
func RandomSuite(n int, seed int64, opts ...RandomOption) []Pulse {
	if n < 1 {
		return nil
	}
	var cfg randomConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}

	out := make([]Pulse, n)
	for i := range out {
		out[i] = Pulse{
			Name: fmt.Sprintf("rand-%03d", i),
			Cmd:  randomCommand(rng),
			Tol:  WahWahTolerance,
		}
	}
	return out
}

func randomCommand(rng *rand.Rand) command.Command {
	length := randMinLen + rng.Intn(randMaxLen-randMinLen+1)
	center := length/4 + rng.Intn(length/2)
	sigma := 1 + rng.Float64()*(float64(length)/6-1)

	opts := []command.Option{
		command.WithSigma(sigma),
		command.WithAmplitude(uniform(rng, randMaxAmp)),
		command.WithDragScale(uniform(rng, randMaxAmp)),
	}
	if rng.Intn(2) == 1 {
		f := randMinWahF + rng.Float64()*(randMaxWahF-randMinWahF)
		opts = append(opts, command.WithWahWah(uniform(rng, randMaxWahA), f))
	}
	return command.New(uint16(length), uint16(center), opts...)
}

// uniform draws from (−limit, limit).
func uniform(rng *rand.Rand, limit float64) float64 {
	return (2*rng.Float64() - 1) * limit
}
