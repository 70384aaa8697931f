package envelope_test

import (
	"testing"

	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/envelope"
	"github.com/katalvlaran/qpulse/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModulation covers the clamp at both ends and rounding.
func TestModulation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, c fixed.SQ1_15
		want fixed.UQ1_15
	}{
		{"zero depth", 0, 5, fixed.OneUQ1_15},
		{"half depth at peak", 16384, 32767, 16385},
		{"full depth at peak", 32767, 32767, 2},
		{"product of minimums clamps to zero", fixed.MinSQ1_15, fixed.MinSQ1_15, 0},
		{"negative depth clamps to one", fixed.MinSQ1_15, fixed.MaxSQ1_15, fixed.OneUQ1_15},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, envelope.Modulation(tc.a, tc.c))
		})
	}
}

// TestModulate checks the G·M product stays in UQ0.15 range.
func TestModulate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fixed.UQ1_15(fixed.MaxUQ0_15), envelope.Modulate(fixed.MaxUQ0_15, fixed.OneUQ1_15))
	assert.Equal(t, fixed.UQ1_15(0), envelope.Modulate(fixed.MaxUQ0_15, 0))
	assert.Equal(t, fixed.UQ1_15(8192), envelope.Modulate(16384, 16384))
}

// TestEnvelopePlain checks plain mode is the widened Gaussian and that
// out-of-range indices are disabled.
func TestEnvelopePlain(t *testing.T) {
	t.Parallel()

	cmd := command.New(64, 32)
	env := envelope.New(cmd, true)
	g := envelope.Gaussian{Center: 32, InvVar: cmd.InvVar, Interpolate: true}

	for n := 0; n < 64; n++ {
		e, ok := env.At(n)
		require.True(t, ok)
		require.Equal(t, g.Eval(uint16(n), true).Widen(), e, "n=%d", n)
	}
	for _, n := range []int{-1, 64, 1000} {
		e, ok := env.At(n)
		assert.False(t, ok, "n=%d", n)
		assert.Equal(t, fixed.UQ1_15(0), e, "n=%d", n)
	}
}

// TestEnvelopeWahWah pins modulated values and the zero-depth degenerate case.
func TestEnvelopeWahWah(t *testing.T) {
	t.Parallel()

	cmd := command.New(128, 64,
		command.WithSigma(16),
		command.WithAmplitude(0.5),
		command.WithDragScale(0.25),
		command.WithWahWah(0.3, 0.05),
	)
	env := envelope.New(cmd, true)
	want := map[int]fixed.UQ1_15{0: 10, 50: 22347, 64: 22937, 70: 30544, 127: 12}
	for n, w := range want {
		e, ok := env.At(n)
		require.True(t, ok)
		assert.Equal(t, w, e, "n=%d", n)
	}
	_, ok := env.At(-1)
	assert.False(t, ok)

	// Zero depth degenerates to the plain envelope.
	flat := cmd
	flat.WahAmp = 0
	plain := cmd
	plain.WahWah = false
	fe, pe := envelope.New(flat, true), envelope.New(plain, true)
	for n := 0; n < 128; n++ {
		a, _ := fe.At(n)
		b, _ := pe.At(n)
		require.Equal(t, b, a, "n=%d", n)
	}
}
