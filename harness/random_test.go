package harness_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qpulse/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomSuiteDeterministic checks the seed policy.
func TestRandomSuiteDeterministic(t *testing.T) {
	t.Parallel()

	a := harness.RandomSuite(20, 7)
	b := harness.RandomSuite(20, 7)
	require.Len(t, a, 20)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, harness.RandomSuite(20, 8))

	c := harness.RandomSuite(20, 0, harness.WithRand(rand.New(rand.NewSource(7))))
	assert.Equal(t, a, c, "WithRand overrides the seed argument")

	assert.Nil(t, harness.RandomSuite(0, 1))
	assert.Panics(t, func() { harness.WithRand(nil) })
}

// TestRandomSuiteValid checks every drawn command is accepted and streams its
// full length.
func TestRandomSuiteValid(t *testing.T) {
	t.Parallel()

	pulses := harness.RandomSuite(40, 2024)
	wah := 0
	for _, p := range pulses {
		require.NoError(t, p.Cmd.Validate(), p.Name)
		assert.GreaterOrEqual(t, int(p.Cmd.Length), 16, p.Name)
		assert.Equal(t, harness.WahWahTolerance, p.Tol, p.Name)
		if p.Cmd.WahWah {
			wah++
		}
	}
	assert.True(t, wah > 0 && wah < len(pulses), "both modes drawn, got %d wah", wah)

	rep, err := harness.RunSuite(pulses)
	require.NoError(t, err)
	require.Len(t, rep.Pulses, len(pulses))
	for i, r := range rep.Pulses {
		assert.Len(t, r.Samples, int(pulses[i].Cmd.Length), r.Name)
	}
}
