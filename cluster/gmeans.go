package cluster

import (
	"math"

	"github.com/TIVerse/gophercluster/core"
	"github.com/TIVerse/gophercluster/seed"
	"github.com/TIVerse/gophercluster/task"
	"github.com/TIVerse/gophercluster/tuple"
	"github.com/TIVerse/gophercluster/tuplemath"
)

// GMeansConfig configures a GMeansController run (spec §4.4).
type GMeansConfig struct {
	// Distance is the symmetric, non-negative distance metric used by the
	// inner KMeans passes. Defaults to tuplemath.EuclideanDistance.
	Distance tuplemath.DistanceFunc

	// ADCriticalValue is the Anderson-Darling critical value the adjusted
	// statistic is compared against. 0 means the critical value for
	// core.DefaultADSignificance.
	ADCriticalValue float64

	// MinClusterSize is the minimum cluster size below which a split is
	// never attempted.
	MinClusterSize int

	// MaxClusterCount bounds the total number of clusters emitted. 0 means
	// unbounded.
	MaxClusterCount int

	// RNGSeed, if non-nil, makes the inner KMeans passes' seeding
	// deterministic (spec §4.4's determinism contract).
	RNGSeed *int64
}

func (c GMeansConfig) withDefaults() GMeansConfig {
	if c.Distance == nil {
		c.Distance = tuplemath.EuclideanDistance
	}
	if c.MinClusterSize <= 0 {
		c.MinClusterSize = core.DefaultMinClusterSize
	}
	return c
}

// GMeansResult is the outcome of a completed GMeansController run.
type GMeansResult struct {
	Clusters []Cluster
}

// GMeansController is the recursive adaptive splitter that decides K by
// testing each candidate cluster's Gaussianity (spec §4.4). It drives a
// FIFO work queue of candidate clusters, splitting any whose projection
// onto the axis between two trial sub-centers fails the Anderson-Darling
// normality test.
type GMeansController struct {
	config GMeansConfig
	tuples core.TupleStore
}

// NewGMeansController constructs a controller bound to tuples and config.
func NewGMeansController(tuples core.TupleStore, config GMeansConfig) *GMeansController {
	return &GMeansController{config: config.withDefaults(), tuples: tuples}
}

// Run executes the FIFO split/accept driver synchronously, honoring cp for
// cancellation and progress. It is meant to be invoked from inside a
// task.Body.
func (g *GMeansController) Run(cp task.Checkpoint) (GMeansResult, error) {
	n := g.tuples.TupleCount()
	if n == 0 {
		return GMeansResult{}, core.Wrap(core.InvalidConfiguration, core.ErrEmptyStore)
	}

	allRows := make([]int, n)
	for i := range allRows {
		allRows[i] = i
	}
	rootCentroid, err := tuplemath.Centroid(g.tuples, allRows)
	if err != nil {
		return GMeansResult{}, err
	}

	queue := []Cluster{NewCluster(allRows, rootCentroid)}
	var final []Cluster
	totalEmitted := 0

	for len(queue) > 0 {
		if err := cp.Checkpoint(); err != nil {
			return GMeansResult{}, err
		}
		if g.config.MaxClusterCount > 0 && totalEmitted+len(queue) >= g.config.MaxClusterCount {
			final = append(final, queue...)
			break
		}

		c := queue[0]
		queue = queue[1:]

		if c.Size() < g.config.MinClusterSize {
			final = append(final, c)
			totalEmitted++
			cp.Message("emitted cluster below minimum split size")
			continue
		}

		c1, c2, err := g.proposeSplit(c)
		if err != nil {
			return GMeansResult{}, err
		}
		if c1 == nil || c2 == nil {
			final = append(final, c)
			totalEmitted++
			cp.Message("split produced an empty child, keeping parent")
			continue
		}

		accept, err := g.acceptTest(c, *c1, *c2)
		if err != nil {
			return GMeansResult{}, err
		}
		if accept {
			final = append(final, c)
			totalEmitted++
			cp.Message("cluster accepted as Gaussian")
		} else {
			queue = append(queue, *c1, *c2)
			cp.Message("cluster split")
		}

		total := totalEmitted + len(queue)
		if total > 0 {
			cp.Progress(float64(totalEmitted) / float64(total))
		}
	}

	return GMeansResult{Clusters: final}, nil
}

// proposeSplit forms two trial seeds s1 = mean - stddev, s2 = mean + stddev
// (elementwise) and runs a single-threaded, unbounded 2-center KMeansEngine
// on a FilteredTupleStore scoped to c's members (spec §4.4 step 2b).
func (g *GMeansController) proposeSplit(c Cluster) (*Cluster, *Cluster, error) {
	mean, variance, err := tuplemath.ColumnMeanVariance(g.tuples, c.Members())
	if err != nil {
		return nil, nil, err
	}
	d := len(mean)
	s1 := make([]float64, d)
	s2 := make([]float64, d)
	for j := 0; j < d; j++ {
		std := sqrtNonNegative(variance[j])
		s1[j] = mean[j] - std
		s2[j] = mean[j] + std
	}

	filtered, err := tuple.NewFilteredStore(g.tuples, c.Members())
	if err != nil {
		return nil, nil, err
	}

	seeds, err := tuple.NewStoreFromRows([][]float64{s1, s2})
	if err != nil {
		return nil, nil, err
	}

	innerConfig := KMeansConfig{
		ClusterCount:         2,
		MaxIterations:        0,
		MovesGoal:            0,
		WorkerThreadCount:    1,
		ReplaceEmptyClusters: false,
		Distance:             g.config.Distance,
		Seeder:               seed.PreassignedSeeder{Centers: seeds},
		RNGSeed:              g.config.RNGSeed,
	}

	engine := NewKMeansEngine(filtered, innerConfig)
	if err := engine.Validate(); err != nil {
		return nil, nil, err
	}

	result, err := engine.Run(noopCheckpoint{})
	if err != nil {
		return nil, nil, err
	}
	if len(result.Clusters) != 2 {
		return nil, nil, nil
	}
	child1 := result.Clusters[0]
	child2 := result.Clusters[1]
	if child1.Size() == 0 || child2.Size() == 0 {
		return nil, nil, nil
	}

	origMembers1, err := remapLocalToOriginal(filtered, child1.Members())
	if err != nil {
		return nil, nil, err
	}
	origMembers2, err := remapLocalToOriginal(filtered, child2.Members())
	if err != nil {
		return nil, nil, err
	}

	out1 := NewCluster(origMembers1, child1.Centroid())
	out2 := NewCluster(origMembers2, child2.Centroid())
	return &out1, &out2, nil
}

// acceptTest projects every member of parent onto the axis between the two
// children's centroids and runs the Anderson-Darling test on the
// projections (spec §4.4 step 2d). accept=true means "do not split".
func (g *GMeansController) acceptTest(parent, c1, c2 Cluster) (bool, error) {
	d := len(c1.Centroid())
	v := make([]float64, d)
	for j := 0; j < d; j++ {
		v[j] = c1.Centroid()[j] - c2.Centroid()[j]
	}

	buf := make([]float64, d)
	projections := make([]float64, 0, parent.Size())
	for _, row := range parent.Members() {
		if err := g.tuples.GetTuple(row, buf); err != nil {
			return false, err
		}
		dot, err := tuplemath.Dot(buf, v)
		if err != nil {
			return false, err
		}
		projections = append(projections, dot)
	}

	result := tuplemath.AndersonDarlingGaussian(projections, g.config.ADCriticalValue)
	return result.Gaussian, nil
}

func remapLocalToOriginal(filtered *tuple.FilteredStore, localMembers []int) ([]int, error) {
	out := make([]int, len(localMembers))
	for i, local := range localMembers {
		orig, err := filtered.LocalToOriginal(local)
		if err != nil {
			return nil, err
		}
		out[i] = orig
	}
	return out, nil
}

func sqrtNonNegative(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// noopCheckpoint drives an inner KMeansEngine pass with no pause/cancel
// support and no progress fan-out; the outer GMeansController's own
// checkpoint governs cancellation for the whole recursive run (spec §5:
// checkpoints at cluster pop granularity).
type noopCheckpoint struct{}

func (noopCheckpoint) IsCancelled() bool   { return false }
func (noopCheckpoint) IsInterrupted() bool { return false }
func (noopCheckpoint) Checkpoint() error   { return nil }
func (noopCheckpoint) Progress(float64)    {}
func (noopCheckpoint) Message(string)      {}
