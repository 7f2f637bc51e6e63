// Package cluster implements the k-means refinement loop and the G-means
// adaptive extension that drives it (spec §4.3, §4.4), plus the immutable
// Cluster value type they produce (spec §4.6).
package cluster

import (
	"sort"

	"github.com/TIVerse/gophercluster/core"
	"github.com/TIVerse/gophercluster/tuplemath"
)

// Cluster is an immutable value pairing a sorted, unique set of member row
// indices into some TupleStore with a centroid vector of length D. Once
// constructed its centroid is never mutated (spec §3).
type Cluster struct {
	members  []int
	centroid []float64
}

// NewCluster builds a Cluster from members (copied and sorted) and a
// centroid snapshot (copied).
func NewCluster(members []int, centroid []float64) Cluster {
	m := append([]int(nil), members...)
	sort.Ints(m)
	c := append([]float64(nil), centroid...)
	return Cluster{members: m, centroid: c}
}

// Members returns the sorted, unique member row indices. The returned slice
// must not be mutated.
func (c Cluster) Members() []int {
	return c.members
}

// Centroid returns the cluster's centroid vector. The returned slice must
// not be mutated.
func (c Cluster) Centroid() []float64 {
	return c.centroid
}

// Size returns the number of members.
func (c Cluster) Size() int {
	return len(c.members)
}

// MeanAndVariance returns, for each of the D columns, the mean and biased
// (denominator n) variance over the cluster's members read from tuples
// (spec §4.6). Required for G-means seed generation and downstream quality
// reporting.
func (c Cluster) MeanAndVariance(tuples core.TupleStore) (mean, variance []float64, err error) {
	return tuplemath.ColumnMeanVariance(tuples, c.members)
}
