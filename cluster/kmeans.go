package cluster

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/TIVerse/gophercluster/core"
	"github.com/TIVerse/gophercluster/internal/memory"
	"github.com/TIVerse/gophercluster/internal/parallel"
	"github.com/TIVerse/gophercluster/seed"
	"github.com/TIVerse/gophercluster/task"
	"github.com/TIVerse/gophercluster/tuplemath"
)

// KMeansConfig configures one KMeansEngine pass (spec §4.3). ClusterCount
// is the only required field.
type KMeansConfig struct {
	// ClusterCount is K, the number of clusters to produce. Required, >= 1.
	ClusterCount int

	// MaxIterations bounds the refinement loop. 0 means unbounded.
	MaxIterations int

	// MovesGoal is the convergence threshold: the pass converges once
	// fewer than this many rows change cluster in an iteration.
	MovesGoal int

	// WorkerThreadCount bounds the assignment step's parallelism. 0 means
	// core.DefaultWorkers, or runtime.NumCPU() when that is also 0.
	WorkerThreadCount int

	// ReplaceEmptyClusters controls what happens to a cluster that loses
	// all members during an iteration (spec §4.3 step 2c).
	ReplaceEmptyClusters bool

	// Distance is the symmetric, non-negative distance metric. Defaults to
	// tuplemath.EuclideanDistance.
	Distance tuplemath.DistanceFunc

	// Seeder produces the initial centers. Defaults to
	// seed.KMeansPlusPlusSeeder.
	Seeder seed.Seeder

	// RNGSeed, if non-nil, makes seeding deterministic.
	RNGSeed *int64
}

func (c KMeansConfig) withDefaults() KMeansConfig {
	if c.Distance == nil {
		c.Distance = tuplemath.EuclideanDistance
	}
	if c.Seeder == nil {
		c.Seeder = seed.KMeansPlusPlusSeeder{Distance: c.Distance}
	}
	if c.WorkerThreadCount <= 0 {
		c.WorkerThreadCount = core.DefaultWorkers
	}
	if c.WorkerThreadCount <= 0 {
		c.WorkerThreadCount = runtime.NumCPU()
	}
	return c
}

func (c KMeansConfig) validate(n int) error {
	if c.ClusterCount <= 0 {
		return core.Wrap(core.InvalidConfiguration, core.ErrKNotPositive)
	}
	if c.ClusterCount > n {
		return core.Wrap(core.InvalidConfiguration, core.ErrKExceedsN)
	}
	return nil
}

// KMeansResult is the outcome of a completed KMeansEngine run.
type KMeansResult struct {
	Clusters   []Cluster
	Iterations int
}

// KMeansEngine runs one clustering pass producing K clusters from a
// TupleStore plus configuration (spec §4.3).
type KMeansEngine struct {
	config KMeansConfig
	tuples core.TupleStore
}

// NewKMeansEngine constructs an engine bound to tuples and config.
func NewKMeansEngine(tuples core.TupleStore, config KMeansConfig) *KMeansEngine {
	return &KMeansEngine{config: config.withDefaults(), tuples: tuples}
}

// Validate checks the configuration against tuples synchronously, before
// any task is started. InvalidConfiguration must be raised from the
// configuring call rather than discovered inside the task body (spec §7),
// so callers should invoke this before wrapping Run in a task.Task.
func (e *KMeansEngine) Validate() error {
	return e.config.validate(e.tuples.TupleCount())
}

// Run executes the pass synchronously on the calling goroutine, honoring cp
// for cancellation, pause, and progress reporting. It is meant to be
// invoked from inside a task.Body.
func (e *KMeansEngine) Run(cp task.Checkpoint) (KMeansResult, error) {
	n := e.tuples.TupleCount()
	d := e.tuples.TupleLength()
	cfg := e.config

	if err := cfg.validate(n); err != nil {
		return KMeansResult{}, err
	}

	buf := make([]float64, d)
	for i := 0; i < n; i++ {
		if err := e.tuples.GetTuple(i, buf); err != nil {
			return KMeansResult{}, err
		}
		if err := tuplemath.CheckFinite(buf); err != nil {
			return KMeansResult{}, err
		}
	}

	var rng *rand.Rand
	if cfg.RNGSeed != nil {
		rng = rand.New(rand.NewSource(*cfg.RNGSeed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	centerStore, err := cfg.Seeder.Seed(e.tuples, cfg.ClusterCount, rng)
	if err != nil {
		return KMeansResult{}, err
	}
	if centerStore.TupleLength() != d {
		return KMeansResult{}, core.Wrap(core.InvalidConfiguration, core.ErrDimensionMismatch)
	}
	k := cfg.ClusterCount

	centers := make([][]float64, k)
	for j := 0; j < k; j++ {
		row := make([]float64, d)
		if err := centerStore.GetTuple(j, row); err != nil {
			return KMeansResult{}, err
		}
		centers[j] = row
	}

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}

	movesBaseline := n
	iteration := 0
	maxIter := cfg.MaxIterations
	unbounded := maxIter <= 0

	for {
		if err := cp.Checkpoint(); err != nil {
			return KMeansResult{}, err
		}
		if !unbounded && iteration >= maxIter {
			break
		}

		newAssignment := make([]int, n)
		var moves int64

		rowIdx := make([]int, n)
		for i := range rowIdx {
			rowIdx[i] = i
		}

		var movesMu sync.Mutex
		assignRow := func(i int) {
			row := memory.GetFloat64Slice(d)
			defer memory.PutFloat64Slice(row)
			if err := e.tuples.GetTuple(i, row); err != nil {
				return
			}
			distances := memory.GetDistanceSlice(k)
			defer memory.PutDistanceSlice(distances)
			for j := 0; j < k; j++ {
				distances[j] = cfg.Distance(row, centers[j])
			}
			best := 0
			bestDist := distances[0]
			for j := 1; j < k; j++ {
				if distances[j] < bestDist {
					bestDist = distances[j]
					best = j
				}
			}
			newAssignment[i] = best
			if best != assignment[i] {
				movesMu.Lock()
				moves++
				movesMu.Unlock()
			}
		}

		parallel.ParallelForEach(rowIdx, assignRow, cfg.WorkerThreadCount)

		assignment = newAssignment
		iteration++

		members := make([][]int, k)
		for i, c := range assignment {
			members[c] = append(members[c], i)
		}

		var claimed map[int]bool
		for j := 0; j < k; j++ {
			if len(members[j]) == 0 {
				if cfg.ReplaceEmptyClusters {
					if claimed == nil {
						claimed = make(map[int]bool)
					}
					replacement, err := farthestRowFromOwnCenter(e.tuples, assignment, centers, cfg.Distance, d, claimed)
					if err != nil {
						return KMeansResult{}, err
					}
					if replacement >= 0 {
						claimed[replacement] = true
						copy(centers[j], mustRow(e.tuples, replacement, d))
					}
				}
				continue
			}
			newCenter, err := tuplemath.Centroid(e.tuples, members[j])
			if err != nil {
				return KMeansResult{}, err
			}
			centers[j] = newCenter
		}

		convergenceFraction := 1.0
		if moves > 0 {
			convergenceFraction = float64(movesBaseline) / float64(moves)
			if convergenceFraction > 1 {
				convergenceFraction = 1
			}
		}
		// Spec's iteration/maxIterations term only makes sense with a
		// bounded maxIterations; an unbounded pass reports the
		// convergence-rate estimate alone.
		fraction := convergenceFraction
		if !unbounded {
			iterFraction := float64(iteration) / float64(maxIter)
			fraction = math.Min(iterFraction, convergenceFraction)
		}
		cp.Progress(fraction)
		cp.Message(fmt.Sprintf("iteration %d: %d moves", iteration, moves))

		if int(moves) < cfg.MovesGoal || moves == 0 {
			break
		}
	}

	clusters := make([]Cluster, k)
	byCluster := make([][]int, k)
	for i, c := range assignment {
		byCluster[c] = append(byCluster[c], i)
	}
	for j := 0; j < k; j++ {
		clusters[j] = NewCluster(byCluster[j], centers[j])
	}

	return KMeansResult{Clusters: clusters, Iterations: iteration}, nil
}

func mustRow(tuples core.TupleStore, row int, d int) []float64 {
	buf := make([]float64, d)
	_ = tuples.GetTuple(row, buf)
	return buf
}

// farthestRowFromOwnCenter finds the row currently farthest from its
// assigned center, breaking ties toward the lowest row index (spec §4.3
// step 2c, §9 open question resolved toward this conventional policy).
// claimed excludes rows already handed to another empty cluster earlier in
// the same pass, so two simultaneously empty clusters never get relocated to
// the same row.
func farthestRowFromOwnCenter(tuples core.TupleStore, assignment []int, centers [][]float64, distance tuplemath.DistanceFunc, d int, claimed map[int]bool) (int, error) {
	best := -1
	bestDist := -1.0
	buf := make([]float64, d)
	for i, c := range assignment {
		if c < 0 || c >= len(centers) || claimed[i] {
			continue
		}
		if err := tuples.GetTuple(i, buf); err != nil {
			return -1, err
		}
		dist := distance(buf, centers[c])
		if dist > bestDist {
			bestDist = dist
			best = i
		}
	}
	return best, nil
}
