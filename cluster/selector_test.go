// White-box tests for the dimension selection strategies.
package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformSelector_InRange(t *testing.T) {
	rng := rngFromSeed(3)
	var s UniformSelector

	seen := make(map[int]int)
	for i := 0; i < 10000; i++ {
		d := s.Choose(rng, 16)
		require.GreaterOrEqual(t, d, 0)
		require.Less(t, d, 16)
		seen[d]++
	}
	// With 10k draws over 16 buckets, every dimension is hit.
	require.Len(t, seen, 16)
}

func TestNewExponentialSelector_RateConflict(t *testing.T) {
	_, err := NewExponentialSelector(1.5, 4.0)
	require.ErrorIs(t, err, ErrRateConflict)
}

func TestNewExponentialSelector_RateBounds(t *testing.T) {
	_, err := NewExponentialSelector(-1, 0)
	require.ErrorIs(t, err, ErrRateBounds)
	_, err = NewExponentialSelector(0, -0.5)
	require.ErrorIs(t, err, ErrRateBounds)
}

func TestExponentialSelector_DefaultRelativeRate(t *testing.T) {
	s, err := NewExponentialSelector(0, 0)
	require.NoError(t, err)

	// With the default relative rate the pseudo-mean sits at dims/4; over
	// many draws the empirical mean must land well below the midpoint.
	const dims = 64
	rng := rngFromSeed(17)
	var sum int
	const draws = 20000
	for i := 0; i < draws; i++ {
		d := s.Choose(rng, dims)
		require.GreaterOrEqual(t, d, 0)
		require.Less(t, d, dims)
		sum += d
	}
	mean := float64(sum) / draws
	require.Less(t, mean, float64(dims)/2, "exponential selector must bias toward low indices")
	require.InDelta(t, float64(dims)/DefaultRelLambda, mean, 4.0)
}

func TestExponentialSelector_AbsoluteRate(t *testing.T) {
	s, err := NewExponentialSelector(2.0, 0)
	require.NoError(t, err)

	// Rate 2 ⇒ mean 0.5, so index 0 dominates even with many dimensions.
	rng := rngFromSeed(23)
	zero := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		d := s.Choose(rng, 1000)
		require.GreaterOrEqual(t, d, 0)
		require.Less(t, d, 1000)
		if d == 0 {
			zero++
		}
	}
	// P(v < 1) = 1 - e^{-2} ≈ 0.8647.
	require.Greater(t, zero, draws/2)
}

func TestExponentialSelector_Deterministic(t *testing.T) {
	s, err := NewExponentialSelector(0, 4.0)
	require.NoError(t, err)

	a := rngFromSeed(99)
	b := rngFromSeed(99)
	for i := 0; i < 256; i++ {
		require.Equal(t, s.Choose(a, 32), s.Choose(b, 32))
	}
}
