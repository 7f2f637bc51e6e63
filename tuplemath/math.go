// Package tuplemath provides the pure numeric kernels shared by the seeding,
// k-means, and G-means components: distance and dot product over raw
// float64 vectors, per-column mean/variance over a row subset, and the
// Anderson-Darling Gaussianity test used to decide whether to split a
// cluster.
package tuplemath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/TIVerse/gophercluster/core"
)

// DistanceFunc is a pluggable, symmetric, non-negative distance metric over
// two equal-length vectors (spec §4.3's distanceMetric).
type DistanceFunc func(a, b []float64) float64

// Dot returns the dot product of a and b. Dimensions must match.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, core.Wrap(core.NumericError, fmt.Errorf("%w: %d vs %d", core.ErrDimensionMismatch, len(a), len(b)))
	}
	return floats.Dot(a, b), nil
}

// EuclideanDistance returns the Euclidean (L2) distance between a and b.
// This is the default distanceMetric.
func EuclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// CheckFinite reports a NumericError if any coordinate of v is NaN or
// infinite (spec §4.3, §7: "a single row with a non-finite coordinate is a
// fatal error").
func CheckFinite(v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return core.Wrap(core.NumericError, core.ErrNonFinite)
		}
	}
	return nil
}
