package align_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qpulse/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDTW_EmptyInput verifies ErrEmptyInput for either empty sequence.
func TestDTW_EmptyInput(t *testing.T) {
	opts := align.DefaultOptions()

	_, _, err := align.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, align.ErrEmptyInput, "empty first sequence should error")

	_, _, err = align.DTW([]float64{1, 2, 3}, nil, &opts)
	assert.ErrorIs(t, err, align.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_BadOptions ensures malformed windows and penalties are rejected.
func TestDTW_BadOptions(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Window = -2
	_, _, err := align.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, align.ErrBadInput, "Window < -1 must error")

	opts = align.DefaultOptions()
	opts.SlopePenalty = math.NaN()
	_, _, err = align.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, align.ErrBadInput, "NaN penalty must error")
}

// TestDTW_PathNeedsMatrix ensures ReturnPath requires FullMatrix.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := align.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = align.TwoRows

	_, _, err := align.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, align.ErrPathNeedsMatrix)
}

// TestDTW_Identical verifies zero distance, a diagonal path and zero skew.
func TestDTW_Identical(t *testing.T) {
	a := []float64{0, 1, 2, 2, 2, 1, 0}
	opts := align.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := align.DTW(a, a, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	require.Len(t, path, len(a))
	for k, c := range path {
		assert.Equal(t, align.Coord{I: k, J: k}, c)
	}
	assert.Equal(t, 0, align.Skew(path))

	dist, path, err = align.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Nil(t, path, "nil options do not return a path")
}

// TestDTW_SubsequencePath checks a perfect match with one repeated element.
func TestDTW_SubsequencePath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := align.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := align.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	assert.Len(t, path, 4)
	assert.Equal(t, align.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, align.Coord{I: 2, J: 3}, path[len(path)-1])
	assert.Equal(t, 1, align.Skew(path))
}

// TestDTW_WindowConstraint verifies window=0 with a length mismatch is +Inf.
func TestDTW_WindowConstraint(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Window = 0
	opts.ReturnPath = true

	dist, path, err := align.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
	assert.Nil(t, path)
}

// TestDTW_SlopePenalty ensures a penalty adds exactly once per warp step.
func TestDTW_SlopePenalty(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	opts := align.DefaultOptions()
	dist0, _, err := align.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist0)

	opts.SlopePenalty = 1.0
	dist1, _, err := align.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist1)
}

// TestDTW_TwoRowsMatchesFull confirms both memory modes agree on distance.
func TestDTW_TwoRowsMatchesFull(t *testing.T) {
	a := []float64{0, 1, 2, 3, 5, 4}
	b := []float64{0, 1, 1, 2, 3, 4, 4}

	full := align.DefaultOptions()
	want, _, err := align.DTW(a, b, &full)
	require.NoError(t, err)

	rows := align.DefaultOptions()
	rows.MemoryMode = align.TwoRows
	got, path, err := align.DTW(a, b, &rows)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Nil(t, path)
}

// TestSkewDetectsDelay checks that a one-tick delay shows up as skew 1 once
// warping costs something.
func TestSkewDetectsDelay(t *testing.T) {
	ref := []float64{0, 0, 10, 40, 90, 40, 10, 0, 0}
	late := []float64{0, 0, 0, 10, 40, 90, 40, 10, 0}

	opts := align.Options{Window: 4, SlopePenalty: 4, ReturnPath: true, MemoryMode: align.FullMatrix}
	_, path, err := align.DTW(late, ref, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, align.Skew(path))
}
