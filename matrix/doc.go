// Package matrix provides the dense numeric containers used throughout
// clusfind: row-major float64 matrices with explicit bounds checking and
// strict sentinel errors.
//
// # What & Why
//
// The cluster finder consumes two matrices per search: the dimensional
// parameters (one row per splitting dimension) and the non-dimensional
// payload (one row per data row). Both are immutable for the lifetime of a
// search, so Dense favors cheap reads over mutation safety: RowView exposes
// the backing storage of a single row without copying, which is what the
// partitioning and subset-gather hot paths require.
//
// # Errors
//
//	ErrBadShape    — requested dimensions are non-positive
//	ErrRaggedRows  — NewDenseFromRows received rows of differing lengths
//	ErrOutOfRange  — a row or column index is outside valid bounds
//	ErrNilMatrix   — a nil *Dense was used where a matrix is required
//
// All errors are sentinels matched with errors.Is; indexers return errors
// rather than panicking.
package matrix
