package cluster

import (
	"math/rand"
	"testing"

	"github.com/TIVerse/gophercluster/task"
	"github.com/TIVerse/gophercluster/tuple"
)

func runGMeans(t *testing.T, store *tuple.Store, cfg GMeansConfig) GMeansResult {
	t.Helper()
	controller := NewGMeansController(store, cfg)

	var result GMeansResult
	tsk := task.New(func(cp task.Checkpoint) error {
		r, err := controller.Run(cp)
		result = r
		return err
	})
	if err := tsk.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := tsk.Get(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return result
}

// S4: a single isotropic Gaussian cluster should not be split.
func TestGMeansSingleGaussianNotSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, 800)
	for i := range rows {
		rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	store, err := tuple.NewStoreFromRows(rows)
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	result := runGMeans(t, store, GMeansConfig{MinClusterSize: 8})

	if len(result.Clusters) != 1 {
		t.Errorf("expected 1 cluster for a single Gaussian, got %d", len(result.Clusters))
	}
}

// S5: two well-separated Gaussians should be split into two clusters.
func TestGMeansTwoGaussiansSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, 0, 800)
	for i := 0; i < 400; i++ {
		rows = append(rows, []float64{-8 + rng.NormFloat64(), rng.NormFloat64()})
	}
	for i := 0; i < 400; i++ {
		rows = append(rows, []float64{8 + rng.NormFloat64(), rng.NormFloat64()})
	}
	store, err := tuple.NewStoreFromRows(rows)
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	result := runGMeans(t, store, GMeansConfig{MinClusterSize: 8})

	if len(result.Clusters) != 2 {
		t.Fatalf("expected 2 clusters for two well-separated Gaussians, got %d", len(result.Clusters))
	}

	total := 0
	for _, c := range result.Clusters {
		total += c.Size()
	}
	if total != len(rows) {
		t.Errorf("total members across clusters = %d, want %d", total, len(rows))
	}
}

func TestGMeansMinClusterSizePreventsSplit(t *testing.T) {
	store, err := tuple.NewStoreFromRows([][]float64{{0}, {1}, {2}, {100}, {101}})
	if err != nil {
		t.Fatalf("NewStoreFromRows failed: %v", err)
	}

	result := runGMeans(t, store, GMeansConfig{MinClusterSize: 10})

	if len(result.Clusters) != 1 {
		t.Errorf("expected 1 cluster when below MinClusterSize, got %d", len(result.Clusters))
	}
}

func TestGMeansEmptyStoreRejected(t *testing.T) {
	store, _ := tuple.NewStore(2, 0)
	controller := NewGMeansController(store, GMeansConfig{})
	tsk := task.New(func(cp task.Checkpoint) error {
		_, err := controller.Run(cp)
		return err
	})
	if err := tsk.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := tsk.Get(); err == nil {
		t.Error("expected error for an empty store")
	}
}
