package command_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qpulse/command"
	"github.com/katalvlaran/qpulse/fixed"
	"github.com/stretchr/testify/assert"
)

// TestNewDefaults verifies the deterministic defaults of New.
func TestNewDefaults(t *testing.T) {
	t.Parallel()

	c := command.New(64, 32)
	assert.Equal(t, uint16(64), c.Length)
	assert.Equal(t, uint16(32), c.Center)
	assert.Equal(t, fixed.UQ2_14(455), c.InvVar)
	assert.Equal(t, fixed.SQ1_15(16384), c.Amp)
	assert.Equal(t, fixed.SQ1_15(0), c.Beta)
	assert.False(t, c.WahWah)
	assert.NoError(t, c.Validate())
}

// TestNewOptions verifies option application, ordering and saturation.
func TestNewOptions(t *testing.T) {
	t.Parallel()

	c := command.New(128, 64,
		command.WithSigma(8),
		command.WithAmplitude(-1),
		command.WithDragScale(2), // saturates
		command.WithWahWah(0.3, 0.05),
	)
	assert.Equal(t, fixed.UQ2_14(256), c.InvVar)
	assert.Equal(t, fixed.SQ1_15(fixed.MinSQ1_15), c.Amp)
	assert.Equal(t, fixed.SQ1_15(fixed.MaxSQ1_15), c.Beta)
	assert.True(t, c.WahWah)
	assert.Equal(t, fixed.NewSQ1_15(0.3), c.WahAmp)
	assert.Equal(t, fixed.UQ0_16(3277), c.WahFreq)

	// Later options override earlier ones.
	c = command.New(10, 5, command.WithSigma(2), command.WithInverseVariance(0))
	assert.Equal(t, fixed.UQ2_14(0), c.InvVar)
	assert.ErrorIs(t, c.Validate(), command.ErrZeroInverseVariance)
}

// TestOptionPanics verifies option constructors fail fast on nonsense.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { command.WithSigma(0) })
	assert.Panics(t, func() { command.WithSigma(-1) })
	assert.Panics(t, func() { command.WithSigma(math.NaN()) })
	assert.Panics(t, func() { command.WithSigma(math.Inf(1)) })
	assert.Panics(t, func() { command.WithInverseVariance(-0.1) })
	assert.Panics(t, func() { command.WithAmplitude(math.NaN()) })
	assert.Panics(t, func() { command.WithDragScale(math.NaN()) })
	assert.Panics(t, func() { command.WithWahWah(0.1, -0.1) })
	assert.NotPanics(t, func() { command.WithWahWah(0, 0) })
}
