package tuplemath

import (
	"math"
	"testing"

	"github.com/TIVerse/gophercluster/tuple"
)

func TestColumnMeanVariance(t *testing.T) {
	store, err := tuple.NewStoreFromRows([][]float64{{1, 10}, {2, 20}, {3, 30}})
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	mean, variance, err := ColumnMeanVariance(store, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("ColumnMeanVariance failed: %v", err)
	}

	if math.Abs(mean[0]-2) > 1e-9 || math.Abs(mean[1]-20) > 1e-9 {
		t.Errorf("mean = %v, want [2 20]", mean)
	}

	// biased variance of {1,2,3} is ((1-2)^2+(2-2)^2+(3-2)^2)/3 = 2/3
	if math.Abs(variance[0]-2.0/3.0) > 1e-9 {
		t.Errorf("variance[0] = %v, want %v", variance[0], 2.0/3.0)
	}
}

func TestColumnMeanVarianceEmptyMembers(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{1}})
	if _, _, err := ColumnMeanVariance(store, nil); err == nil {
		t.Error("expected error for zero members")
	}
}

func TestCentroid(t *testing.T) {
	store, _ := tuple.NewStoreFromRows([][]float64{{0, 0}, {2, 4}})
	centroid, err := Centroid(store, []int{0, 1})
	if err != nil {
		t.Fatalf("Centroid failed: %v", err)
	}
	if math.Abs(centroid[0]-1) > 1e-9 || math.Abs(centroid[1]-2) > 1e-9 {
		t.Errorf("centroid = %v, want [1 2]", centroid)
	}
}
