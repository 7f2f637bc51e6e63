// gdcluster is a demo CLI for gophercluster: it loads a CSV file into a
// tuple.Store and runs either KMeansEngine or GMeansController against it,
// printing progress and final cluster membership to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TIVerse/gophercluster"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "gdcluster",
		Short:   "gdcluster - cluster a CSV file of numeric rows",
		Long:    "gdcluster loads a CSV file of numeric columns and clusters its rows with k-means or G-means.",
		Version: gophercluster.Version,
	}

	rootCmd.AddCommand(kmeansCmd())
	rootCmd.AddCommand(gmeansCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
