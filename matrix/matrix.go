// Package matrix provides the dense row-major vector storage backing an
// embedding table: one row per vocabulary entry, one column per dimension.
package matrix

import (
	"fmt"
	"time"

	"github.com/yangminglab/embedgo/util"
)

// ErrRowOutOfRange indicates a row access outside [0, Rows).
type ErrRowOutOfRange struct {
	Row  int
	Rows int
}

func (e *ErrRowOutOfRange) Error() string {
	return fmt.Sprintf("row %d out of range [0, %d)", e.Row, e.Rows)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates a row whose length disagrees with the
// established dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Dense is an N x D float32 matrix stored row-major in a single
// contiguous allocation. All rows share the dimension D.
type Dense struct {
	data []float32
	rows int
	dim  int
}

// NewDense allocates a zero-filled rows x dim matrix.
func NewDense(rows, dim int) (*Dense, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if rows < 0 {
		return nil, &ErrRowOutOfRange{Row: rows, Rows: 0}
	}
	return &Dense{
		data: make([]float32, rows*dim),
		rows: rows,
		dim:  dim,
	}, nil
}

// FromVectors builds a matrix from one slice per row, preserving order.
// All rows must share the same length or the build fails with
// ErrDimensionMismatch.
func FromVectors(vectors [][]float32) (*Dense, error) {
	if len(vectors) == 0 {
		return nil, &ErrInvalidDimension{Dimension: 0}
	}
	dim := len(vectors[0])
	m, err := NewDense(len(vectors), dim)
	if err != nil {
		return nil, err
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
		copy(m.data[i*dim:(i+1)*dim], v)
	}
	return m, nil
}

// FromData builds a matrix over an existing row-major float32 slice.
// The slice is owned by the matrix afterwards.
func FromData(data []float32, rows, dim int) (*Dense, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if len(data) != rows*dim {
		return nil, &ErrDimensionMismatch{Expected: rows * dim, Actual: len(data)}
	}
	return &Dense{data: data, rows: rows, dim: dim}, nil
}

// Random builds a rows x dim matrix with every entry drawn independently
// and uniformly from [-scale, scale]. If rng is nil a time-seeded RNG is
// used; pass a seeded RNG for reproducibility.
func Random(rows, dim int, scale float32, rng *util.RNG) (*Dense, error) {
	m, err := NewDense(rows, dim)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = util.NewRNG(time.Now().UnixNano())
	}
	for i := range m.data {
		m.data[i] = rng.Uniform(scale)
	}
	return m, nil
}

// Rows returns the row count N.
func (m *Dense) Rows() int {
	return m.rows
}

// Dimension returns the column count D.
func (m *Dense) Dimension() int {
	return m.dim
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float32, error) {
	if i < 0 || i >= m.rows {
		return nil, &ErrRowOutOfRange{Row: i, Rows: m.rows}
	}
	out := make([]float32, m.dim)
	copy(out, m.data[i*m.dim:(i+1)*m.dim])
	return out, nil
}

// RowView returns row i without copying. The slice aliases the matrix
// storage and must not be mutated.
func (m *Dense) RowView(i int) ([]float32, error) {
	if i < 0 || i >= m.rows {
		return nil, &ErrRowOutOfRange{Row: i, Rows: m.rows}
	}
	return m.data[i*m.dim : (i+1)*m.dim : (i+1)*m.dim], nil
}

// Data returns the row-major backing slice. The slice aliases the matrix
// storage and must not be mutated; it exists for bulk serialization.
func (m *Dense) Data() []float32 {
	return m.data
}
