package seed

import (
	"math/rand"
	"testing"

	"github.com/TIVerse/gophercluster/tuple"
)

func TestRandomSeederDistinctRows(t *testing.T) {
	store, err := tuple.NewStoreFromRows([][]float64{{0}, {1}, {2}, {3}, {4}})
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	centers, err := RandomSeeder{}.Seed(store, 3, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if centers.TupleCount() != 3 {
		t.Fatalf("got %d centers, want 3", centers.TupleCount())
	}

	seen := map[float64]bool{}
	buf := make([]float64, 1)
	for i := 0; i < 3; i++ {
		if err := centers.GetTuple(i, buf); err != nil {
			t.Fatalf("GetTuple failed: %v", err)
		}
		if seen[buf[0]] {
			t.Errorf("center value %v chosen more than once", buf[0])
		}
		seen[buf[0]] = true
	}
}

func TestRandomSeederKExceedsN(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0}, {1}})
	if _, err := (RandomSeeder{}).Seed(store, 5, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for k > n")
	}
}

func TestRandomSeederKZero(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0}, {1}})
	if _, err := (RandomSeeder{}).Seed(store, 0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for k == 0")
	}
}

func TestKMeansPlusPlusSeederDistinctRows(t *testing.T) {
	rows := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}, {20, 20}}
	store, err := tuple.NewStoreFromRows(rows)
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	centers, err := (KMeansPlusPlusSeeder{}).Seed(store, 3, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if centers.TupleCount() != 3 {
		t.Fatalf("got %d centers, want 3", centers.TupleCount())
	}
}

func TestKMeansPlusPlusSeederKExceedsN(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0}, {1}})
	if _, err := (KMeansPlusPlusSeeder{}).Seed(store, 5, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for k > n")
	}
}

func TestPreassignedSeederReturnsCentersUnchanged(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0}, {1}, {2}})
	seeds, _ := tuple.NewStoreFromRows([][]float64{{5}, {6}})

	result, err := (PreassignedSeeder{Centers: seeds}).Seed(store, 2, nil)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if result != seeds {
		t.Error("PreassignedSeeder should return the caller's store unchanged")
	}
}

func TestPreassignedSeederCountMismatch(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0}, {1}, {2}})
	seeds, _ := tuple.NewStoreFromRows([][]float64{{5}, {6}})

	if _, err := (PreassignedSeeder{Centers: seeds}).Seed(store, 3, nil); err == nil {
		t.Error("expected error when preassigned count != k")
	}
}

func TestPreassignedSeederDimensionMismatch(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0, 0}, {1, 1}})
	seeds, _ := tuple.NewStoreFromRows([][]float64{{5}, {6}})

	if _, err := (PreassignedSeeder{Centers: seeds}).Seed(store, 2, nil); err == nil {
		t.Error("expected error when preassigned dimension != store dimension")
	}
}
