// Package matrix - Dense, a row-major float64 matrix over a flat backing
// slice. Flat storage keeps rows contiguous, which the clusfind hot paths
// (per-dimension scans, subset gathers) rely on via RowView.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Errors: ErrBadShape when rows or cols ≤ 0.
//
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a slice of equal-length rows,
// copying the values (the input remains owned by the caller).
//
// Errors: ErrBadShape when rows is empty or the first row is empty;
// ErrRaggedRows when row lengths differ.
//
// Complexity: O(r·c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}

	var (
		r = len(rows)
		c = len(rows[0])
	)
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrRaggedRows
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows; a nil matrix has zero rows.
// Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns; a nil matrix has zero columns.
// Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// At retrieves the element at (row, col).
//
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange on an invalid index.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col).
//
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange on an invalid index.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// RowView returns the backing slice of one row, without copying.
// The returned slice aliases the matrix: writes through it are visible to
// every other reader. Callers that must not mutate the matrix (predicate
// inputs, dimensional scans) treat the view as read-only.
//
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange on an invalid row
// index.
//
// Complexity: O(1).
func (m *Dense) RowView(row int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("Dense.RowView(%d): %w", row, ErrOutOfRange)
	}

	return m.data[row*m.c : (row+1)*m.c : (row+1)*m.c], nil
}

// Clone returns a deep copy; a nil matrix clones to nil.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r·c).
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
