// Package cluster - validation helpers shared by the factory and the
// per-invocation entry point.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go, wrapped with call context where the axis matters.
package cluster

import (
	"fmt"

	"github.com/katalvlaran/clusfind/matrix"
)

// validateOptions checks the internal consistency of a factory
// configuration without referencing matrices.
//
// Complexity: O(1).
func validateOptions(check CheckFunc, opts Options) error {
	if check == nil {
		return ErrNilCheck
	}

	// MinCount == 0 would admit empty subsets to the check function;
	// negative counts are meaningless.
	if opts.MinCount < 1 {
		return ErrCountBounds
	}
	// MaxCount == 0 means unbounded; a bounded value below the floor would
	// make the check unreachable.
	if opts.MaxCount != 0 && opts.MaxCount < opts.MinCount {
		return ErrCountBounds
	}
	// MaxDepth == 0 means automatic; an explicit cap below 2 cannot hold
	// even one split level.
	if opts.MaxDepth != 0 && opts.MaxDepth < 2 {
		return ErrMaxDepthTooSmall
	}

	return nil
}

// validateInputs verifies the per-invocation matrices against each other and
// against the configured fixed-shape expectations, returning the shared row
// count N.
//
// The canonical orientations are: dimensional parameters (D, N) and
// non-dimensional parameters (N, M). The legacy payload layout (M, N) is
// rejected by the same row-count comparison.
//
// Complexity: O(1).
func validateInputs(dp, ndp *matrix.Dense, opts Options) (int, error) {
	if dp == nil || ndp == nil {
		return 0, ErrNilInput
	}

	var n int
	n = dp.Cols()
	if ndp.Rows() != n {
		return 0, ErrShapeMismatch
	}

	if opts.FixedDimensions != 0 && dp.Rows() != opts.FixedDimensions {
		return 0, fmt.Errorf("cluster: dimensional parameters: want %d rows, got %d: %w",
			opts.FixedDimensions, dp.Rows(), ErrFixedShape)
	}
	if opts.FixedFeatures != 0 && ndp.Cols() != opts.FixedFeatures {
		return 0, fmt.Errorf("cluster: non-dimensional parameters: want %d columns, got %d: %w",
			opts.FixedFeatures, ndp.Cols(), ErrFixedShape)
	}
	if opts.FixedRows != 0 && n != opts.FixedRows {
		return 0, fmt.Errorf("cluster: row count: want %d, got %d: %w",
			opts.FixedRows, n, ErrFixedShape)
	}

	return n, nil
}
