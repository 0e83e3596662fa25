// Package cluster finds row subsets of a labelled dataset that jointly
// satisfy a caller-supplied predicate, by recursively partitioning the rows
// along randomly chosen axes of a dimensional feature matrix. The package
// exposes one factory (New) and one entry point (Finder.Find) behind strict
// sentinel errors and fully seeded determinism.
//
// # What & Why
//
// Given dimensional parameters DP shaped (D, N) — D splitting axes over N
// rows — and a non-dimensional payload NDP shaped (N, M), the finder draws a
// random axis and a random split point, halves the active row set into the
// ≥-side and the <-side, and walks the resulting implicit binary tree depth
// first. Every candidate subset whose size fits the configured bounds is
// handed to the check function, whose ternary verdict steers the walk:
//
//	Accept    — terminate; this subset is the answer (its bitmap is returned)
//	Undecided — keep splitting below this subset
//	Prune     — drop this subset and its subtree; the sibling is still tried
//
// The traversal is iterative over an explicit stack of membership bitmaps,
// so the working set stays O(MaxDepth·N) bits regardless of how deep the
// search runs. When a whole root-to-leaves exploration exhausts without an
// accept, the engine restarts from a fresh root split; the per-invocation
// iteration budget bounds how many such restarts occur.
//
// # Determinism
//
// No time-based randomness anywhere. The per-invocation seed (WithSeed)
// fully determines the sequence of (dimension, split point, side) choices,
// and therefore the exact sequence of check invocations: same seed, inputs,
// configuration, and check behavior ⇒ same trajectory and same result.
// Seed 0 selects a fixed default stream.
//
// # Options
//
//	type Options struct {
//	    MinCount int                    // size floor for check calls (default 1)
//	    MaxCount int                    // size ceiling for check calls (0 = unbounded)
//	    MaxDepth int                    // stack height (0 = 1+floor(log2(N)))
//	    Selector DimensionSelector      // axis strategy (default UniformSelector)
//	    FixedDimensions, FixedFeatures, FixedRows int // shape asserts (0 = off)
//	    SkipDegenerateSplits bool       // abandon collapsed split ranges
//	    OnStep func(level, remaining int) // per-production trace hook
//	}
//
//	func DefaultOptions() Options
//
// Per invocation: WithSeed(int64), WithIterations(int).
//
// # Errors (strict sentinels)
//
//	ErrNilCheck, ErrRateConflict, ErrRateBounds, ErrMaxDepthTooSmall,
//	ErrCountBounds, ErrNilInput, ErrShapeMismatch, ErrFixedShape,
//	ErrIterationBounds, ErrNoCluster.
//
// A check-function error aborts the search and surfaces unchanged (wrapped
// only with call context); match it with errors.Is against your own error.
//
// # Concurrency
//
// A Finder is immutable and may serve concurrent Find calls; every call owns
// its bitmap stack and RNG exclusively. One search never uses more than one
// goroutine. Callers wanting parallel exploration run several Find calls
// with disjoint seeds.
package cluster
