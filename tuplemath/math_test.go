package tuplemath

import (
	"math"
	"testing"
)

func TestEuclideanDistance(t *testing.T) {
	got := EuclideanDistance([]float64{0, 0}, []float64{3, 4})
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestDot(t *testing.T) {
	got, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	want := 1*4 + 2*5 + 3*6
	if math.Abs(got-float64(want)) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	if _, err := Dot([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestCheckFinite(t *testing.T) {
	if err := CheckFinite([]float64{1, 2, 3}); err != nil {
		t.Errorf("expected no error for finite vector, got %v", err)
	}
	if err := CheckFinite([]float64{1, math.NaN()}); err == nil {
		t.Error("expected error for NaN coordinate")
	}
	if err := CheckFinite([]float64{math.Inf(1)}); err == nil {
		t.Error("expected error for infinite coordinate")
	}
}
