// Package matrix: sentinel error set.
// All public entry points return these sentinels; tests match them via
// errors.Is. No function in this package panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows is returned by NewDenseFromRows when the input rows do
	// not all share one length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/RowView) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
