package tuple

import (
	"fmt"

	"github.com/TIVerse/gophercluster/core"
)

// FilteredStore exposes a selected subset of rows from a backing
// core.TupleStore under a contiguous local index 0..M, with a reverse lookup
// from local to original index. It holds a non-owning reference to the
// backing store, which must outlive the filtered view (spec §5).
type FilteredStore struct {
	backing  core.TupleStore
	original []int // local index -> original row index
}

// NewFilteredStore builds a view over backing restricted to originalIndices,
// preserving their given order. originalIndices must be within
// [0, backing.TupleCount()) and contain no repeats.
func NewFilteredStore(backing core.TupleStore, originalIndices []int) (*FilteredStore, error) {
	n := backing.TupleCount()
	seen := make(map[int]struct{}, len(originalIndices))
	owned := make([]int, len(originalIndices))
	for i, idx := range originalIndices {
		if idx < 0 || idx >= n {
			return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: %d not in [0,%d)", core.ErrIndexOutOfBounds, idx, n))
		}
		if _, dup := seen[idx]; dup {
			return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: %d", core.ErrDuplicateIndex, idx))
		}
		seen[idx] = struct{}{}
		owned[i] = idx
	}
	return &FilteredStore{backing: backing, original: owned}, nil
}

// TupleLength returns D, the backing store's fixed dimension.
func (f *FilteredStore) TupleLength() int {
	return f.backing.TupleLength()
}

// TupleCount returns M, the number of rows in this view.
func (f *FilteredStore) TupleCount() int {
	return len(f.original)
}

// GetTuple fills buffer[0:D] with local row l's coordinates, reading through
// to the backing store's original row.
func (f *FilteredStore) GetTuple(local int, buffer []float64) error {
	orig, err := f.LocalToOriginal(local)
	if err != nil {
		return err
	}
	return f.backing.GetTuple(orig, buffer)
}

// SetTuple replaces local row l's coordinates, writing through to the
// backing store's original row.
func (f *FilteredStore) SetTuple(local int, values []float64) error {
	orig, err := f.LocalToOriginal(local)
	if err != nil {
		return err
	}
	return f.backing.SetTuple(orig, values)
}

// LocalToOriginal maps a local index in [0, M) to its original row index in
// the backing store.
func (f *FilteredStore) LocalToOriginal(local int) (int, error) {
	if local < 0 || local >= len(f.original) {
		return 0, core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: local %d, count %d", core.ErrIndexOutOfBounds, local, len(f.original)))
	}
	return f.original[local], nil
}

// OriginalIndices returns the ordered original row indices backing this view.
// The returned slice must not be mutated.
func (f *FilteredStore) OriginalIndices() []int {
	return f.original
}
