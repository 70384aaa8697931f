package envelope_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qpulse/envelope"
	"github.com/katalvlaran/qpulse/fixed"
	"github.com/katalvlaran/qpulse/lut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sigma6 is the Gaussian for len=64, mu=32, σ=6 (k = 455/2^14).
var sigma6 = envelope.Gaussian{Center: 32, InvVar: 455, Interpolate: true}

// TestGaussianPeakAndDisable checks the peak value and the disabled output.
func TestGaussianPeakAndDisable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fixed.UQ0_15(fixed.MaxUQ0_15), sigma6.Eval(32, true), "exp(0) is 0x7FFF")
	assert.Equal(t, fixed.UQ0_15(32316), sigma6.Eval(33, true))
	assert.Equal(t, fixed.UQ0_15(0), sigma6.Eval(32, false), "disabled forces zero")
}

// TestGaussianArg pins the exponent argument layout: d²·k read as UQ.15.
func TestGaussianArg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), sigma6.Arg(32))
	assert.Equal(t, uint64(64*455), sigma6.Arg(40))
	assert.Equal(t, sigma6.Arg(24), sigma6.Arg(40), "sign of n−mu is squared away")

	x := float64(sigma6.Arg(40)) / (1 << 15)
	assert.InDelta(t, 64*(455.0/16384)/2, x, 1e-12)
}

// TestGaussianClamp checks the zero clamp past 15·ln2.
func TestGaussianClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int(math.Round(15*math.Ln2*(1<<15))), envelope.ExpClamp)

	// d = 27 → x = 331695 ≤ clamp, d = 28 → x = 356720 > clamp.
	assert.Equal(t, fixed.UQ0_15(1), sigma6.Eval(5, true))
	assert.Equal(t, fixed.UQ0_15(0), sigma6.Eval(4, true))
	assert.Equal(t, fixed.UQ0_15(0), sigma6.Eval(0, true))

	// Extreme distance and precision must not overflow the datapath.
	far := envelope.Gaussian{Center: 0, InvVar: math.MaxUint16, Interpolate: true}
	assert.Equal(t, fixed.UQ0_15(0), far.Eval(math.MaxUint16, true))
}

// TestGaussianInterpolation compares interpolated and table-only evaluation.
func TestGaussianInterpolation(t *testing.T) {
	t.Parallel()

	nearest := sigma6
	nearest.Interpolate = false

	// x = 29120 → addr 56, remainder 448/512.
	assert.Equal(t, lut.Exp(56), nearest.Eval(40, true))
	assert.Equal(t, fixed.UQ0_15(13660), nearest.Eval(40, true))
	assert.Equal(t, fixed.UQ0_15(13475), sigma6.Eval(40, true))
	assert.True(t, sigma6.Eval(40, true) > lut.Exp(57))
}

// TestGaussianShape checks symmetry, monotonic decay and accuracy against
// math.Exp across several widths.
func TestGaussianShape(t *testing.T) {
	t.Parallel()

	for _, k := range []fixed.UQ2_14{64, 256, 455, 1000, 16384} {
		g := envelope.Gaussian{Center: 100, InvVar: k, Interpolate: true}
		for d := uint16(1); d < 100; d++ {
			require.Equal(t, g.Eval(100+d, true), g.Eval(100-d, true), "k=%d d=%d", k, d)
			require.True(t, g.Eval(100+d, true) <= g.Eval(100+d-1, true), "k=%d d=%d", k, d)
		}
		for n := uint16(0); n < 200; n++ {
			d := float64(n) - 100
			want := math.Exp(-d*d*k.Float()/2) * (1 << 15)
			require.InDelta(t, want, float64(g.Eval(n, true)), 1.5, "k=%d n=%d", k, n)
		}
	}
}
