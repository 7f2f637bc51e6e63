// Package seed provides the strategies KMeansEngine uses to produce K
// initial centers from a TupleStore before refinement begins (spec §4.2).
package seed

import (
	"fmt"
	"math/rand"

	"github.com/TIVerse/gophercluster/core"
	"github.com/TIVerse/gophercluster/internal/bitset"
	"github.com/TIVerse/gophercluster/tuple"
	"github.com/TIVerse/gophercluster/tuplemath"
)

// Seeder produces K initial centers from tuples. Implementations must
// return a fatal error (core.InvalidConfiguration) for K=0 or K>N.
type Seeder interface {
	Seed(tuples core.TupleStore, k int, rng *rand.Rand) (core.TupleStore, error)
}

func validateK(k, n int) error {
	if k <= 0 {
		return core.Wrap(core.InvalidConfiguration, core.ErrKNotPositive)
	}
	if k > n {
		return core.Wrap(core.InvalidConfiguration, core.ErrKExceedsN)
	}
	return nil
}

// copyRowsToStore builds a new tuple.Store of len(rows) rows, each a copy of
// tuples' row at the given original index.
func copyRowsToStore(tuples core.TupleStore, rows []int) (core.TupleStore, error) {
	d := tuples.TupleLength()
	out, err := tuple.NewStore(d, len(rows))
	if err != nil {
		return nil, err
	}
	buf := make([]float64, d)
	for i, row := range rows {
		if err := tuples.GetTuple(row, buf); err != nil {
			return nil, err
		}
		if err := out.SetTuple(i, buf); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RandomSeeder samples K distinct row indices uniformly without replacement
// and copies those rows as the initial centers.
type RandomSeeder struct{}

// Seed implements Seeder.
func (RandomSeeder) Seed(tuples core.TupleStore, k int, rng *rand.Rand) (core.TupleStore, error) {
	n := tuples.TupleCount()
	if err := validateK(k, n); err != nil {
		return nil, err
	}
	perm := rng.Perm(n)
	return copyRowsToStore(tuples, perm[:k])
}

// KMeansPlusPlusSeeder picks the first center uniformly at random, then
// picks each subsequent center with probability proportional to its squared
// distance from the nearest already-chosen center (Arthur & Vassilvitskii,
// 2007). Ties in the weighted draw break toward the lowest row index.
type KMeansPlusPlusSeeder struct {
	Distance tuplemath.DistanceFunc // default EuclideanDistance if nil
}

// Seed implements Seeder.
func (s KMeansPlusPlusSeeder) Seed(tuples core.TupleStore, k int, rng *rand.Rand) (core.TupleStore, error) {
	n := tuples.TupleCount()
	if err := validateK(k, n); err != nil {
		return nil, err
	}
	distance := s.Distance
	if distance == nil {
		distance = tuplemath.EuclideanDistance
	}
	d := tuples.TupleLength()

	rows := make([][]float64, n)
	buf := make([]float64, d)
	for i := 0; i < n; i++ {
		if err := tuples.GetTuple(i, buf); err != nil {
			return nil, err
		}
		rows[i] = append([]float64(nil), buf...)
	}

	chosen := make([]int, 0, k)
	seen := bitset.New(n)

	first := rng.Intn(n)
	chosen = append(chosen, first)
	seen.Set(first)

	nearestSq := make([]float64, n)
	for i := range nearestSq {
		dist := distance(rows[i], rows[first])
		nearestSq[i] = dist * dist
	}

	for len(chosen) < k {
		total := 0.0
		for i := 0; i < n; i++ {
			if !seen.Test(i) {
				total += nearestSq[i]
			}
		}

		var next int
		if total <= 0 {
			// All remaining candidates coincide with a chosen center;
			// fall back to the lowest unseen row index.
			next = -1
			for i := 0; i < n; i++ {
				if !seen.Test(i) {
					next = i
					break
				}
			}
		} else {
			r := rng.Float64() * total
			cumulative := 0.0
			next = -1
			for i := 0; i < n; i++ {
				if seen.Test(i) {
					continue
				}
				cumulative += nearestSq[i]
				if cumulative >= r {
					next = i
					break
				}
			}
			if next == -1 {
				// Floating point rounding; take the last unseen candidate.
				for i := n - 1; i >= 0; i-- {
					if !seen.Test(i) {
						next = i
						break
					}
				}
			}
		}
		if next < 0 {
			return nil, core.Wrap(core.NumericError, fmt.Errorf("kmeans++ seeding exhausted candidates before reaching k=%d", k))
		}

		chosen = append(chosen, next)
		seen.Set(next)
		for i := 0; i < n; i++ {
			if seen.Test(i) {
				continue
			}
			dist := distance(rows[i], rows[next])
			sq := dist * dist
			if sq < nearestSq[i] {
				nearestSq[i] = sq
			}
		}
	}

	return copyRowsToStore(tuples, chosen)
}

// PreassignedSeeder returns the caller-provided center store unchanged; K is
// implied by its row count.
type PreassignedSeeder struct {
	Centers core.TupleStore
}

// Seed implements Seeder. It ignores the rng argument and validates that the
// requested k matches the preassigned center count and dimension.
func (s PreassignedSeeder) Seed(tuples core.TupleStore, k int, _ *rand.Rand) (core.TupleStore, error) {
	if s.Centers == nil {
		return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("preassigned seeder has no centers"))
	}
	if s.Centers.TupleCount() != k {
		return nil, core.Wrap(core.InvalidConfiguration, fmt.Errorf("preassigned center count %d != k %d", s.Centers.TupleCount(), k))
	}
	if s.Centers.TupleLength() != tuples.TupleLength() {
		return nil, core.Wrap(core.InvalidConfiguration, core.ErrDimensionMismatch)
	}
	return s.Centers, nil
}
