package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TIVerse/gophercluster/cluster"
	"github.com/TIVerse/gophercluster/task"
)

func kmeansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmeans <file>",
		Short: "Run k-means with a fixed cluster count",
		Args:  cobra.ExactArgs(1),
	}

	k := cmd.Flags().IntP("clusters", "k", 2, "Number of clusters")
	maxIter := cmd.Flags().Int("max-iterations", 0, "Maximum iterations (0 = unbounded)")
	replaceEmpty := cmd.Flags().Bool("replace-empty", false, "Relocate empty clusters to the farthest row")
	workers := cmd.Flags().Int("workers", 0, "Parallel workers for the assignment step (0 = all cores)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		store, err := loadCSV(args[0])
		if err != nil {
			return err
		}

		engine := cluster.NewKMeansEngine(store, cluster.KMeansConfig{
			ClusterCount:         *k,
			MaxIterations:        *maxIter,
			ReplaceEmptyClusters: *replaceEmpty,
			WorkerThreadCount:    *workers,
		})
		if err := engine.Validate(); err != nil {
			return err
		}

		var result cluster.KMeansResult
		t := task.New(func(cp task.Checkpoint) error {
			r, err := engine.Run(cp)
			result = r
			return err
		})
		t.AddListener(stdoutListener{})

		if err := t.Start(); err != nil {
			return err
		}
		if err := t.Get(); err != nil {
			return err
		}

		printClusters(result.Clusters)
		fmt.Printf("converged in %d iterations\n", result.Iterations)
		return nil
	}

	return cmd
}

func printClusters(clusters []cluster.Cluster) {
	for i, c := range clusters {
		fmt.Printf("cluster %d: %d members, centroid=%v\n", i, c.Size(), c.Centroid())
	}
}
