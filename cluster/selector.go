// Package cluster - dimension selection strategies.
//
// A DimensionSelector decides which axis of the dimensional parameter matrix
// the next split runs along. Two strategies are provided: uniform choice and
// an exponential bias toward low indices, for callers that order their
// dimensions by importance.

package cluster

import "math/rand"

// DefaultRelLambda is the relative exponential rate used when an
// ExponentialSelector is built with neither rate set. With rate
// DefaultRelLambda/D the draw's pseudo-mean sits at D/DefaultRelLambda,
// i.e. a quarter of the way into the dimension range.
const DefaultRelLambda = 4.0

// DimensionSelector chooses a splitting dimension.
// Implementations must be stateless or otherwise safe to reuse across
// invocations of one Finder; all randomness must come from the supplied rng
// so that a seed fully determines the search trajectory.
type DimensionSelector interface {
	// Choose returns an index in [0, dims). dims is always ≥ 1.
	Choose(rng *rand.Rand, dims int) int
}

// UniformSelector chooses every dimension with equal probability.
type UniformSelector struct{}

// Choose returns a uniform index in [0, dims). Complexity: O(1).
func (UniformSelector) Choose(rng *rand.Rand, dims int) int {
	return rng.Intn(dims)
}

// ExponentialSelector biases dimension choice toward low indices: it draws
// v ~ Exponential(λ) and redraws until v < dims, returning floor(v).
//
// λ is either the absolute rate passed to NewExponentialSelector, or, when a
// relative rate r was given instead, r/dims — placing the pseudo-mean at
// dims/r regardless of how many dimensions an invocation carries.
type ExponentialSelector struct {
	lambda    float64 // absolute rate; 0 when the relative form is in use
	relLambda float64 // relative rate; 0 when the absolute form is in use
}

// NewExponentialSelector builds an ExponentialSelector from at most one of
// an absolute rate and a relative rate (pass 0 for the unused one). With
// both zero, the relative rate defaults to DefaultRelLambda.
//
// Errors: ErrRateConflict when both rates are set; ErrRateBounds when a
// supplied rate is negative.
//
// Complexity: O(1).
func NewExponentialSelector(lambda, relLambda float64) (*ExponentialSelector, error) {
	if lambda != 0 && relLambda != 0 {
		return nil, ErrRateConflict
	}
	if lambda < 0 || relLambda < 0 {
		return nil, ErrRateBounds
	}
	if lambda == 0 && relLambda == 0 {
		relLambda = DefaultRelLambda
	}

	return &ExponentialSelector{lambda: lambda, relLambda: relLambda}, nil
}

// Choose returns an exponentially biased index in [0, dims), clamped into
// range by rejection.
//
// Complexity: O(1) expected; the rejection loop terminates with
// probability 1 for any positive rate.
func (s *ExponentialSelector) Choose(rng *rand.Rand, dims int) int {
	var rate float64
	rate = s.lambda
	if rate == 0 {
		rate = s.relLambda / float64(dims)
	}

	var v float64
	for {
		v = expDraw(rng, rate)
		if v < float64(dims) {
			return int(v)
		}
	}
}
