package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TIVerse/gophercluster/cluster"
	"github.com/TIVerse/gophercluster/task"
)

func gmeansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gmeans <file>",
		Short: "Run G-means to discover the cluster count automatically",
		Args:  cobra.ExactArgs(1),
	}

	minSize := cmd.Flags().Int("min-cluster-size", 0, "Minimum cluster size before a split is attempted")
	maxK := cmd.Flags().Int("max-clusters", 0, "Maximum number of clusters (0 = unbounded)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		store, err := loadCSV(args[0])
		if err != nil {
			return err
		}

		controller := cluster.NewGMeansController(store, cluster.GMeansConfig{
			MinClusterSize:  *minSize,
			MaxClusterCount: *maxK,
		})

		var result cluster.GMeansResult
		t := task.New(func(cp task.Checkpoint) error {
			r, err := controller.Run(cp)
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
		fmt.Printf("discovered %d clusters\n", len(result.Clusters))
		return nil
	}

	return cmd
}
