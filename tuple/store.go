// Package tuple provides the in-memory TupleStore implementation gophercluster
// uses by default: a dense, row-major matrix of fixed-dimension float64 rows,
// plus a filtered view that scopes reads to a subset of rows under a local
// 0..M index (used by GMeansController to recurse into a single cluster).
package tuple

import (
	"fmt"
	"sync"

	"github.com/TIVerse/gophercluster/core"
)

// Store is a dense, row-major, in-memory core.TupleStore. It is the default
// backing store for callers that do not need the persistent, named storage
// described by core.TupleListFactory.
type Store struct {
	mu   sync.RWMutex
	dim  int
	data []float64 // len == rows*dim, row i occupies data[i*dim : i*dim+dim]
	rows int
}

// NewStore allocates a Store with the given dimension and row count, all
// coordinates initialized to zero. dimension must be >= 1; rows must be >= 0.
func NewStore(dimension, rows int) (*Store, error) {
	if dimension < 1 {
		return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("dimension must be >= 1, got %d", dimension))
	}
	if rows < 0 {
		return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("rows must be >= 0, got %d", rows))
	}
	return &Store{
		dim:  dimension,
		data: make([]float64, rows*dimension),
		rows: rows,
	}, nil
}

// NewStoreFromRows builds a Store by copying rows, a slice of equal-length
// float64 slices. All rows must share the same dimension, and that dimension
// must be >= 1.
func NewStoreFromRows(rows [][]float64) (*Store, error) {
	if len(rows) == 0 {
		return nil, core.Wrap(core.InvalidConfiguration, core.ErrEmptyStore)
	}
	dim := len(rows[0])
	if dim < 1 {
		return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("dimension must be >= 1, got %d", dim))
	}
	s, err := NewStore(dim, len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != dim {
			return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("row %d has dimension %d, want %d", i, len(row), dim))
		}
		copy(s.data[i*dim:(i+1)*dim], row)
	}
	return s, nil
}

// TupleLength returns D, the fixed dimension of every row.
func (s *Store) TupleLength() int {
	return s.dim
}

// TupleCount returns N, the number of rows.
func (s *Store) TupleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// GetTuple fills buffer[0:D] with row i's coordinates.
func (s *Store) GetTuple(row int, buffer []float64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if row < 0 || row >= s.rows {
		return core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: row %d, count %d", core.ErrIndexOutOfBounds, row, s.rows))
	}
	if len(buffer) < s.dim {
		return core.Wrap(core.InvalidConfiguration, fmt.Errorf("buffer length %d < dimension %d", len(buffer), s.dim))
	}
	copy(buffer[:s.dim], s.data[row*s.dim:(row+1)*s.dim])
	return nil
}

// SetTuple replaces row i's coordinates with values. len(values) must equal
// TupleLength().
func (s *Store) SetTuple(row int, values []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row < 0 || row >= s.rows {
		return core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: row %d, count %d", core.ErrIndexOutOfBounds, row, s.rows))
	}
	if len(values) != s.dim {
		return core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: got %d, want %d", core.ErrDimensionMismatch, len(values), s.dim))
	}
	copy(s.data[row*s.dim:(row+1)*s.dim], values)
	return nil
}
