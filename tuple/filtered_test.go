package tuple

import "testing"

func TestFilteredRoundTrip(t *testing.T) {
	backing, err := NewStoreFromRows([][]float64{{0}, {1}, {2}, {3}, {4}})
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	filtered, err := NewFilteredStore(backing, []int{4, 1, 2})
	if err != nil {
		t.Fatalf("NewFilteredStore failed: %v", err)
	}

	if filtered.TupleCount() != 3 {
		t.Fatalf("got count %d, want 3", filtered.TupleCount())
	}

	buf := make([]float64, 1)
	origBuf := make([]float64, 1)
	for local := 0; local < filtered.TupleCount(); local++ {
		if err := filtered.GetTuple(local, buf); err != nil {
			t.Fatalf("GetTuple(%d) failed: %v", local, err)
		}
		orig, err := filtered.LocalToOriginal(local)
		if err != nil {
			t.Fatalf("LocalToOriginal(%d) failed: %v", local, err)
		}
		if err := backing.GetTuple(orig, origBuf); err != nil {
			t.Fatalf("backing.GetTuple(%d) failed: %v", orig, err)
		}
		if buf[0] != origBuf[0] {
			t.Errorf("local %d: filtered=%v, backing via original=%v", local, buf, origBuf)
		}
	}
}

func TestFilteredDuplicateIndex(t *testing.T) {
	backing, _ := NewStoreFromRows([][]float64{{0}, {1}, {2}})
	if _, err := NewFilteredStore(backing, []int{0, 1, 0}); err == nil {
		t.Error("expected error for duplicate original index")
	}
}

func TestFilteredOutOfRangeIndex(t *testing.T) {
	backing, _ := NewStoreFromRows([][]float64{{0}, {1}, {2}})
	if _, err := NewFilteredStore(backing, []int{0, 5}); err == nil {
		t.Error("expected error for out-of-range original index")
	}
}

func TestFilteredSetTupleWritesThrough(t *testing.T) {
	backing, _ := NewStoreFromRows([][]float64{{0}, {1}, {2}})
	filtered, err := NewFilteredStore(backing, []int{2, 0})
	if err != nil {
		t.Fatalf("NewFilteredStore failed: %v", err)
	}

	if err := filtered.SetTuple(1, []float64{99}); err != nil {
		t.Fatalf("SetTuple failed: %v", err)
	}

	buf := make([]float64, 1)
	if err := backing.GetTuple(0, buf); err != nil {
		t.Fatalf("GetTuple failed: %v", err)
	}
	if buf[0] != 99 {
		t.Errorf("expected write-through to backing row 0, got %v", buf)
	}
}
