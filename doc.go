// Package gophercluster is a numeric clustering library for Go: k-means
// iterative refinement plus a G-means adaptive extension that automatically
// discovers an appropriate number of clusters.
//
// # Quick Start
//
// Clustering a fixed-K dataset with k-means:
//
//	import (
//	    "github.com/TIVerse/gophercluster/cluster"
//	    "github.com/TIVerse/gophercluster/task"
//	    "github.com/TIVerse/gophercluster/tuple"
//	)
//
//	store, _ := tuple.NewStoreFromRows([][]float64{
//	    {0, 0}, {0, 1}, {10, 0}, {10, 1},
//	})
//
//	engine := cluster.NewKMeansEngine(store, cluster.KMeansConfig{ClusterCount: 2})
//	if err := engine.Validate(); err != nil {
//	    // handle invalid configuration
//	}
//
//	var result cluster.KMeansResult
//	t := task.New(func(cp task.Checkpoint) error {
//	    r, err := engine.Run(cp)
//	    result = r
//	    return err
//	})
//	t.Start()
//	if err := t.Get(); err != nil {
//	    // handle Cancelled or Errored outcome
//	}
//
// Letting G-means pick K automatically:
//
//	controller := cluster.NewGMeansController(store, cluster.GMeansConfig{})
//	var gmeansResult cluster.GMeansResult
//	t = task.New(func(cp task.Checkpoint) error {
//	    r, err := controller.Run(cp)
//	    gmeansResult = r
//	    return err
//	})
//
// # Package Organization
//
//   - core: error kinds, external collaborator interfaces, shared constants
//   - tuple: the default in-memory TupleStore and its filtered view
//   - tuplemath: pure numeric kernels (distance, dot product, column
//     statistics, the Anderson-Darling Gaussianity test)
//   - seed: seeding strategies (random, k-means++, preassigned)
//   - task: the cancellable, pausable, single-owner long-running operation
//   - cluster: Cluster (with its MeanAndVariance stats), KMeansEngine, GMeansController
//   - cmd/gdcluster: a demo CLI that loads a CSV and runs either engine
//
// # Design Principles
//
//   - Cooperative cancellation: long runs check a flag at well-defined
//     checkpoints rather than relying on goroutine interruption.
//   - No hidden state: TupleStore mutation is explicit and caller-driven;
//     the engine treats its input as read-only during a run.
//   - Determinism: a fixed rngSeed and PreassignedSeeder produce identical
//     results across runs on identical input.
//
// For more information, visit: https://github.com/TIVerse/gophercluster
package gophercluster
