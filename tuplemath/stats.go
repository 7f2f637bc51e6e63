package tuplemath

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/TIVerse/gophercluster/core"
)

// ColumnMeanVariance computes, for each of the D columns, the mean and
// biased (denominator n) variance over the given member rows of tuples.
// This backs Cluster.MeanAndVariance (spec §4.6) and the seed
// proposal step of GMeansController (spec §4.4).
func ColumnMeanVariance(tuples core.TupleStore, members []int) (mean, variance []float64, err error) {
	if len(members) == 0 {
		return nil, nil, core.Wrap(core.InvalidConfiguration, core.ErrEmptyStore)
	}
	d := tuples.TupleLength()
	mean = make([]float64, d)
	variance = make([]float64, d)
	column := make([]float64, len(members))
	buf := make([]float64, d)

	for col := 0; col < d; col++ {
		for i, row := range members {
			if err := tuples.GetTuple(row, buf); err != nil {
				return nil, nil, err
			}
			column[i] = buf[col]
		}
		m, v := stat.MeanVariance(column, nil)
		// stat.MeanVariance returns the unbiased (n-1) sample variance;
		// rescale to the biased (n) variance spec §4.6 requires.
		n := float64(len(members))
		if n > 1 {
			v = v * (n - 1) / n
		} else {
			v = 0
		}
		mean[col] = m
		variance[col] = v
	}
	return mean, variance, nil
}

// Centroid computes the per-column arithmetic mean over the given member
// rows of tuples. It is the degenerate, variance-free case of
// ColumnMeanVariance used when only the centroid is needed.
func Centroid(tuples core.TupleStore, members []int) ([]float64, error) {
	if len(members) == 0 {
		return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("%w: cannot compute centroid of zero members", core.ErrEmptyStore))
	}
	d := tuples.TupleLength()
	sum := make([]float64, d)
	buf := make([]float64, d)
	for _, row := range members {
		if err := tuples.GetTuple(row, buf); err != nil {
			return nil, err
		}
		for j := 0; j < d; j++ {
			sum[j] += buf[j]
		}
	}
	n := float64(len(members))
	for j := range sum {
		sum[j] /= n
	}
	return sum, nil
}
