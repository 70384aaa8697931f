package drag_test

import (
	"testing"

	"github.com/katalvlaran/qpulse/drag"
	"github.com/katalvlaran/qpulse/fixed"
	"github.com/stretchr/testify/assert"
)

// TestDerivativeBoundaries checks the one-sided differences and that the
// neighbour outside the session is ignored.
func TestDerivativeBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		prev, cur, next fixed.UQ1_15
		first, last     bool
		want            fixed.SQ2_15
	}{
		{"forward at first", 999, 100, 300, true, false, 200},
		{"backward at last", 300, 100, 999, false, true, -200},
		{"central rising", 100, 0, 300, false, false, 100},
		{"central falling floors", 10, 0, 7, false, false, -2},
		{"central odd rising floors", 7, 0, 10, false, false, 1},
		{"first wins when both set", 5, 10, 20, true, true, 10},
		{"full swing", 0, 0, fixed.OneUQ1_15, true, false, fixed.OneUQ1_15},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := drag.Derivative(tc.prev, tc.cur, tc.next, tc.first, tc.last)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestInPhase covers rounding and saturation of A·E.
func TestInPhase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fixed.SQ1_15(16384), drag.InPhase(16384, fixed.MaxUQ0_15), "16383.5 rounds up")
	assert.Equal(t, fixed.SQ1_15(fixed.MinSQ1_15), drag.InPhase(fixed.MinSQ1_15, fixed.OneUQ1_15))
	assert.Equal(t, fixed.SQ1_15(fixed.MaxSQ1_15), drag.InPhase(fixed.MaxSQ1_15, 0xFFFF), "saturates, no wrap")
	assert.Equal(t, fixed.SQ1_15(0), drag.InPhase(0, fixed.OneUQ1_15))
}

// TestQuadrature covers the single Q45 rounding and saturation of β·A·D.
func TestQuadrature(t *testing.T) {
	t.Parallel()

	half := fixed.SQ1_15(16384)
	assert.Equal(t, fixed.SQ1_15(1), drag.Quadrature(half, half, 2), "+0.5 LSB rounds up")
	assert.Equal(t, fixed.SQ1_15(0), drag.Quadrature(half, half, -2), "−0.5 LSB rounds up to zero")
	assert.Equal(t, fixed.SQ1_15(-1), drag.Quadrature(half, half, -3))
	assert.Equal(t, fixed.SQ1_15(221), drag.Quadrature(half, half, 884))
	assert.Equal(t, fixed.SQ1_15(0), drag.Quadrature(0, half, 884), "β = 0 yields zero Q")

	// (−1)·(−1)·(+1) = +1 is unrepresentable and must clamp.
	assert.Equal(t, fixed.SQ1_15(fixed.MaxSQ1_15),
		drag.Quadrature(fixed.MinSQ1_15, fixed.MinSQ1_15, fixed.OneUQ1_15))
	assert.Equal(t, fixed.SQ1_15(fixed.MinSQ1_15),
		drag.Quadrature(fixed.MinSQ1_15, fixed.MinSQ1_15, -2*fixed.OneUQ1_15))
}

// TestAssemble checks the pair and its formatting.
func TestAssemble(t *testing.T) {
	t.Parallel()

	s := drag.Assemble(16384, 16384, 32316, -884)
	assert.Equal(t, drag.Sample{I: 16158, Q: -221}, s)
	assert.Equal(t, "(16158, -221)", s.String())
}
