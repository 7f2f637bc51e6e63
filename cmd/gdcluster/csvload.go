package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/TIVerse/gophercluster/tuple"
)

// loadCSV reads path as a headerless CSV of numeric columns into a
// tuple.Store. CSV loading sits outside gophercluster's core (spec §1's
// "out of scope" list); this is a minimal loader for the demo CLI only.
func loadCSV(path string) (*tuple.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s has no rows", path)
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", path, i, j, err)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return tuple.NewStoreFromRows(rows)
}
