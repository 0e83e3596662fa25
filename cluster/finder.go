// Package cluster - the Finder factory and the depth-first traversal engine.
//
// The engine walks the implicit binary tree of random splits iteratively
// over an explicit stack: recursion depth is bounded by configuration, the
// working set stays O(height·n) bits, and backtracking is a level decrement
// plus a parent branch-counter increment rather than an unwound call stack.
package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/clusfind/matrix"
)

// Finder is an immutable binding of a check function and its static
// configuration. One Finder may run any number of searches, sequentially or
// from multiple goroutines: all mutable search state lives in the
// per-invocation searcher.
type Finder struct {
	check CheckFunc
	opts  Options
}

// New validates the configuration and binds it with the check function into
// a Finder.
//
// Errors: ErrNilCheck, ErrCountBounds, ErrMaxDepthTooSmall.
//
// Complexity: O(1).
func New(check CheckFunc, opts Options) (*Finder, error) {
	if err := validateOptions(check, opts); err != nil {
		return nil, err
	}
	if opts.Selector == nil {
		opts.Selector = UniformSelector{}
	}

	return &Finder{check: check, opts: opts}, nil
}

// Find runs one search for a row subset satisfying the check function.
//
// dp is the dimensional parameter matrix, shaped (D, N): row d holds
// dimension d's coordinate for every data row. ndp is the non-dimensional
// payload, shaped (N, M): row i is handed to the check function whenever row
// i is part of a candidate subset. Both are read-only for the duration.
//
// The search recursively halves the active row set along randomly chosen
// dimensions, invoking the check function on every candidate subset whose
// size fits the configured bounds, until the check accepts (the subset's
// bitmap is returned), the iteration budget exhausts (ErrNoCluster), or the
// check fails (its error surfaces wrapped). With an unbounded budget and a
// never-accepting check the search does not terminate by itself.
//
// Errors: ErrNilInput, ErrShapeMismatch, ErrFixedShape, ErrIterationBounds,
// ErrMaxDepthTooSmall (automatic depth over a single-row input), ErrNoCluster,
// or the check function's own error.
//
// Complexity: O(height·N) bits of state; each produced level costs
// O(N/64 + active) plus O(remaining·M) when the check is invoked.
func (f *Finder) Find(dp, ndp *matrix.Dense, fopts ...FindOption) (*Bitset, error) {
	// Per-invocation knobs.
	var cfg findConfig
	var fo FindOption
	for _, fo = range fopts {
		fo(&cfg)
	}
	if cfg.iterations < 0 {
		return nil, ErrIterationBounds
	}

	// Shape validation (canonical orientations: dp (D,N), ndp (N,M)).
	n, err := validateInputs(dp, ndp, f.opts)
	if err != nil {
		return nil, err
	}

	// Resolve the depth cap: explicit, or 1+floor(log2(N)).
	var depth int
	depth = f.opts.MaxDepth
	if depth == 0 {
		depth = 1 + int(math.Floor(math.Log2(float64(n))))
	}
	if depth < 2 {
		return nil, ErrMaxDepthTooSmall
	}

	s := &searcher{
		f:     f,
		dp:    dp,
		ndp:   ndp,
		rng:   rngFromSeed(cfg.seed),
		stack: newBitmapStack(depth, n),
		dims:  dp.Rows(),
	}

	return s.run(cfg.iterations)
}

// searcher owns the mutable state of one in-flight search.
type searcher struct {
	f     *Finder
	dp    *matrix.Dense
	ndp   *matrix.Dense
	rng   *rand.Rand
	stack *bitmapStack
	dims  int
}

// run drives the state machine until a terminal state is reached.
//
// At each step the branch counter of the current level dictates the action:
// produce the left child (fresh dimension + split point), flip to the right
// child, or unwind. After either production the post-production checks run
// in a fixed order: size floor, check-function gate, singleton floor, depth
// cap, descend.
func (s *searcher) run(maxIterations int) (*Bitset, error) {
	var (
		level      = 1 // the level being produced/explored; 0 is the root
		iterations = 0 // completed root-level exhaustions
		remaining  int
		degenerate bool
		parent     *Bitset
		child      *Bitset
	)

	for {
		parent = s.stack.rows[level-1]
		child = s.stack.rows[level]

		switch s.stack.branch[level] {
		case leftPending:
			// 1. Choose the axis, then split the parent at a fresh point.
			dim := s.f.opts.Selector.Choose(s.rng, s.dims)
			vals, err := s.dp.RowView(dim)
			if err != nil {
				// Only a selector violating its [0, dims) contract lands here.
				return nil, fmt.Errorf("cluster: selector chose dimension %d: %w", dim, err)
			}
			remaining, degenerate = splitIntoChild(vals, parent, child, s.rng)

		case rightPending:
			// 2. Same level, other side: invert within the parent mask.
			remaining = flipIntoSibling(parent, child)
			degenerate = false

		default: // exhausted
			// 3. Reset this level, then unwind or restart.
			s.stack.branch[level] = leftPending
			child.clear()
			if level > 1 {
				level--
				s.stack.branch[level]++

				continue
			}
			// Root-level exhaustion: one full iteration is complete. The
			// branch counter was already reset, so the next pass re-enters
			// this same level with a fresh left split.
			iterations++
			if maxIterations != 0 && iterations >= maxIterations {
				return nil, ErrNoCluster
			}

			continue
		}

		// 4. Trace hook fires on every production, successful or not.
		if s.f.opts.OnStep != nil {
			s.f.opts.OnStep(level, remaining)
		}

		// 5. A collapsed split range puts the whole parent into the left
		// child and nothing into the right; optionally abandon the level
		// rather than re-examining the parent's rows one level deeper.
		if degenerate && s.f.opts.SkipDegenerateSplits {
			s.stack.branch[level] = exhausted

			continue
		}

		// 6. Size floor: too small to be a cluster, try the other side.
		if remaining < s.f.opts.MinCount {
			s.stack.branch[level]++

			continue
		}

		// 7. Check gate: only subsets within the size ceiling are shown to
		// the check function; larger ones still descend.
		if s.f.opts.MaxCount == 0 || remaining <= s.f.opts.MaxCount {
			subset, err := s.gather(child, remaining)
			if err != nil {
				return nil, err
			}
			verdict, err := s.f.check(subset)
			if err != nil {
				return nil, fmt.Errorf("cluster: check: %w", err)
			}
			if verdict > 0 {
				// Accept: the caller owns the returned bitmap; detach it
				// from the stack before the state is torn down.
				return child.Clone(), nil
			}
			if verdict < 0 {
				// Prune: reject this child without descending; the sibling
				// (or an ancestor's sibling) is still tried.
				s.stack.branch[level]++

				continue
			}
		}

		// 8. Singleton floor: dividing one row further makes no sense.
		if remaining <= 1 {
			s.stack.branch[level]++

			continue
		}

		// 9. Depth cap.
		if level+1 >= s.stack.height {
			s.stack.branch[level]++

			continue
		}

		// 10. Descend.
		level++
	}
}

// gather materializes the non-dimensional payload rows selected by bm into a
// fresh (remaining, M) matrix, in ascending row order.
//
// Complexity: O(n/64 + remaining·M).
func (s *searcher) gather(bm *Bitset, remaining int) (*matrix.Dense, error) {
	subset, err := matrix.NewDense(remaining, s.ndp.Cols())
	if err != nil {
		return nil, err
	}

	var (
		r   int
		i   int
		src []float64
		dst []float64
	)
	for _, i = range bm.Indices() {
		src, err = s.ndp.RowView(i)
		if err != nil {
			return nil, err
		}
		dst, err = subset.RowView(r)
		if err != nil {
			return nil, err
		}
		copy(dst, src)
		r++
	}

	return subset, nil
}
