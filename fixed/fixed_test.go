package fixed_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qpulse/fixed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSQ1_15 covers rounding and saturation at both ends of the range.
func TestNewSQ1_15(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want fixed.SQ1_15
	}{
		{"zero", 0, 0},
		{"half", 0.5, 16384},
		{"minus half", -0.5, -16384},
		{"one saturates", 1.0, fixed.MaxSQ1_15},
		{"minus one exact", -1.0, fixed.MinSQ1_15},
		{"large negative saturates", -7.0, fixed.MinSQ1_15},
		{"nan is zero", math.NaN(), 0},
		{"rounds to nearest", 1.4 / 32768, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fixed.NewSQ1_15(tc.in))
		})
	}
}

// TestUnsignedConversions checks the unsigned constructors and Float round trips.
func TestUnsignedConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fixed.UQ0_15(fixed.MaxUQ0_15), fixed.NewUQ0_15(1.0), "UQ0.15 saturates below 1.0")
	assert.Equal(t, fixed.UQ0_15(0), fixed.NewUQ0_15(-0.25), "negative clamps to zero")
	assert.Equal(t, fixed.UQ1_15(fixed.OneUQ1_15), fixed.NewUQ1_15(1.0))
	assert.Equal(t, fixed.UQ2_14(455), fixed.NewUQ2_14(1.0/36.0), "sigma=6 inverse variance")
	assert.Equal(t, fixed.UQ0_16(3277), fixed.NewUQ0_16(0.05))

	assert.InDelta(t, 0.25, fixed.NewUQ0_16(0.25).Float(), 0)
	assert.InDelta(t, 1.5, fixed.NewUQ1_15(1.5).Float(), 0)
	assert.InDelta(t, -1.0, fixed.SQ1_15(fixed.MinSQ1_15).Float(), 0)
	assert.InDelta(t, -2.0, fixed.SQ2_15(-65536).Float(), 0)
}

// TestWidenKeepsPattern ensures promotion to UQ1.15 does not move bits.
func TestWidenKeepsPattern(t *testing.T) {
	t.Parallel()

	v := fixed.UQ0_15(0x1234)
	require.Equal(t, fixed.UQ1_15(0x1234), v.Widen())
	require.InDelta(t, v.Float(), v.Widen().Float(), 0)
}

// TestRoundShift pins the half-up behaviour for both signs.
func TestRoundShift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v     int64
		shift uint
		want  int64
	}{
		{5, 0, 5},
		{3, 1, 2},
		{-3, 1, -1},
		{-1, 1, 0},
		{-2, 1, -1},
		{16383, 15, 0},
		{16384, 15, 1},
		{-16384, 15, 0},
		{-16385, 15, -1},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, fixed.RoundShift(tc.v, tc.shift), "RoundShift(%d,%d)", tc.v, tc.shift)
	}
}

// TestSaturateSQ1_15 verifies clamping rather than wrapping.
func TestSaturateSQ1_15(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fixed.SQ1_15(fixed.MaxSQ1_15), fixed.SaturateSQ1_15(32768))
	assert.Equal(t, fixed.SQ1_15(fixed.MinSQ1_15), fixed.SaturateSQ1_15(-32769))
	assert.Equal(t, fixed.SQ1_15(fixed.MinSQ1_15), fixed.SaturateSQ1_15(-32768))
	assert.Equal(t, fixed.SQ1_15(-5), fixed.SaturateSQ1_15(-5))
	assert.Equal(t, int64(7), fixed.Clamp(9, 0, 7))
	assert.Equal(t, int64(0), fixed.Clamp(-9, 0, 7))
}

// TestLerp verifies end points and midpoints for rising and falling segments.
func TestLerp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(100), fixed.Lerp(100, 200, 0, 9))
	assert.Equal(t, int64(150), fixed.Lerp(100, 200, 256, 9))
	assert.Equal(t, int64(150), fixed.Lerp(200, 100, 256, 9))
	assert.Equal(t, int64(-16), fixed.Lerp(0, -32, 16, 5))

	// Results never leave [min(y0,y1), max(y0,y1)].
	for r := int64(0); r < 32; r++ {
		got := fixed.Lerp(32767, 32758, r, 5)
		assert.True(t, got <= 32767 && got >= 32758, "r=%d got=%d", r, got)
	}
}
