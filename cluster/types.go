// Package cluster defines the public types, configuration, and sentinel
// errors of the randomized cluster finder.
//
// Design goals:
//   - Determinism: every randomized decision is driven by a caller seed.
//   - Strict sentinels: precise errors matched with errors.Is; no panics on
//     user input.
//   - Zero surprises: sensible defaults (uniform dimension choice, singleton
//     floor, automatic depth cap).
package cluster

import (
	"errors"

	"github.com/katalvlaran/clusfind/matrix"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (configuration, invocation shape, search outcome)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Configuration errors, surfaced by New; the two rate errors come from
// NewExponentialSelector, and Find also returns ErrMaxDepthTooSmall when the
// automatic depth falls below 2.
var (
	// ErrNilCheck indicates that no check function was supplied.
	ErrNilCheck = errors.New("cluster: check function is nil")

	// ErrRateConflict indicates an exponential selector was given both an
	// absolute and a relative rate.
	ErrRateConflict = errors.New("cluster: both absolute and relative exponential rates supplied")

	// ErrRateBounds indicates a negative exponential rate (a zero rate means
	// the rate is not supplied).
	ErrRateBounds = errors.New("cluster: exponential rate must be positive")

	// ErrMaxDepthTooSmall indicates MaxDepth < 2: a search that may never
	// produce a single split has no meaning.
	ErrMaxDepthTooSmall = errors.New("cluster: max depth below 2 makes no sense")

	// ErrCountBounds indicates MinCount < 1, or a bounded MaxCount below
	// MinCount.
	ErrCountBounds = errors.New("cluster: invalid min/max count bounds")
)

// Invocation errors, surfaced by Find.
var (
	// ErrNilInput indicates a nil dimensional or non-dimensional matrix.
	ErrNilInput = errors.New("cluster: nil input matrix")

	// ErrShapeMismatch indicates the row-count axes of the two matrices
	// disagree: dimensional parameters are (D, N), non-dimensional
	// parameters are (N, M), and the two N must match.
	ErrShapeMismatch = errors.New("cluster: dimensional and non-dimensional row counts disagree")

	// ErrFixedShape indicates a configured fixed-shape expectation was
	// violated by the matrices of this invocation.
	ErrFixedShape = errors.New("cluster: fixed shape expectation violated")

	// ErrIterationBounds indicates a negative iteration budget.
	ErrIterationBounds = errors.New("cluster: iterations must be non-negative")
)

// Search outcome sentinels.
var (
	// ErrNoCluster is returned when the iteration budget exhausts without
	// the check function ever accepting a subset.
	ErrNoCluster = errors.New("cluster: no cluster found within the iteration budget")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Predicate contract
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Verdict is the ternary result of a check function. The sign carries the
// meaning, so arbitrary integer-valued predicates remain compatible: any
// positive value accepts, any negative value prunes, zero is undecided.
type Verdict int

const (
	// Prune rejects the current subset and its whole subtree; the sibling
	// subset is still tried.
	Prune Verdict = -1

	// Undecided lets the search continue splitting below this subset.
	Undecided Verdict = 0

	// Accept terminates the search with the current subset as the answer.
	Accept Verdict = 1
)

// CheckFunc is the caller-supplied decision procedure.
//
// The subset argument is a (remaining, M) matrix holding the rows of the
// non-dimensional parameters selected by the current bitmap, in ascending
// original-index order. The subset is materialized fresh for every call; the
// check function must not mutate it (it may alias it until the next call)
// and must be deterministic with respect to its input for search
// reproducibility. Side effects such as recording examined rows are fine.
//
// A non-nil error aborts the search immediately and surfaces to the caller
// unchanged (wrapped only with call context).
type CheckFunc func(subset *matrix.Dense) (Verdict, error)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Options defines the static configuration bound into a Finder.
// Zero value is not meaningful; start from DefaultOptions() and override.
type Options struct {
	// MinCount is the minimum acceptable cluster size: the check function is
	// never invoked with fewer rows. Default: 1.
	MinCount int

	// MaxCount is the maximum size above which the check function is not
	// invoked at a level (descent still proceeds, so smaller descendants are
	// still examined). Zero means unbounded. Default: 0.
	MaxCount int

	// MaxDepth caps the height of the bitmap stack. Zero means automatic:
	// 1 + floor(log2(N)) computed per invocation. Explicit values must be
	// at least 2. Default: 0.
	MaxDepth int

	// Selector chooses the splitting dimension at every left-branch
	// production. Nil means UniformSelector{}. Default: UniformSelector{}.
	Selector DimensionSelector

	// FixedDimensions, when non-zero, asserts the dimensional parameter
	// matrix has exactly this many rows (D); violation fails the invocation
	// with ErrFixedShape.
	FixedDimensions int

	// FixedFeatures, when non-zero, asserts the non-dimensional parameter
	// matrix has exactly this many columns (M).
	FixedFeatures int

	// FixedRows, when non-zero, asserts the data row count N (the columns of
	// the dimensional matrix, the rows of the non-dimensional one) is exactly
	// this value.
	FixedRows int

	// SkipDegenerateSplits abandons a level whose split range collapsed to a
	// single point (all active rows share one coordinate on the chosen
	// dimension): such a split puts every row into the left child and none
	// into the right. Default: false, which tolerates the wasted work.
	SkipDegenerateSplits bool

	// OnStep, if non-nil, is invoked after every left/right production with
	// the level just produced and its active row count. It is a trace hook:
	// it must not block for long and must not mutate search inputs.
	OnStep func(level, remaining int)
}

// DefaultOptions returns the production defaults:
//   - singleton floor (MinCount=1), unbounded MaxCount,
//   - automatic depth cap,
//   - uniform dimension selection,
//   - no fixed-shape assertions, no degenerate-split skipping, no trace.
func DefaultOptions() Options {
	return Options{
		MinCount: 1,
		MaxCount: 0,
		MaxDepth: 0,
		Selector: UniformSelector{},
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Per-invocation options
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// FindOption configures a single Find invocation.
// Use with Find(dp, ndp, opts...).
type FindOption func(*findConfig)

// findConfig holds the per-invocation knobs after applying FindOptions.
type findConfig struct {
	seed       int64
	iterations int
}

// WithSeed returns a FindOption that seeds the invocation's random stream.
// Seed 0 (or omitting the option) selects a fixed default stream, so every
// invocation is deterministic; distinct seeds give decorrelated searches.
func WithSeed(seed int64) FindOption {
	return func(c *findConfig) {
		c.seed = seed
	}
}

// WithIterations returns a FindOption bounding how many full root-to-leaves
// explorations the search may perform before giving up with ErrNoCluster.
// Zero (or omitting the option) means unbounded: the search then terminates
// only on accept or on a check error, which is the caller's responsibility.
func WithIterations(n int) FindOption {
	return func(c *findConfig) {
		c.iterations = n
	}
}
