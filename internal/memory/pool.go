// Package memory provides pooled scratch buffers for the hot paths of the
// clustering engine, so a parallel assignment step does not allocate a
// center-length and a cluster-length slice on every row it visits.
package memory

import "sync"

// Pool is a generic sync.Pool wrapper.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool creates a pool whose elements are produced by newFn.
func NewPool[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// Get retrieves an item from the pool, allocating one via the pool's
// constructor if none is available.
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns an item to the pool for reuse.
func (p *Pool[T]) Put(item T) {
	p.pool.Put(item)
}

// Float64SlicePool hands out scratch float64 slices sized for a single
// tuple's coordinates. KMeansEngine's assignment step draws a slice from this
// pool for each row it visits and returns it when the row is done.
var Float64SlicePool = NewPool(func() []float64 {
	return make([]float64, 0, 16)
})

// GetFloat64Slice returns a slice of length n, drawn from Float64SlicePool
// when the pooled capacity suffices and freshly allocated otherwise.
func GetFloat64Slice(n int) []float64 {
	buf := Float64SlicePool.Get()
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

// PutFloat64Slice returns buf to Float64SlicePool.
func PutFloat64Slice(buf []float64) {
	Float64SlicePool.Put(buf[:0])
}

// DistancePool hands out scratch float64 slices sized to hold one distance
// per cluster, used by the assignment step to find each row's nearest
// center without allocating per row.
var DistancePool = NewPool(func() []float64 {
	return make([]float64, 0, 16)
})

// GetDistanceSlice returns a slice of length k, drawn from DistancePool when
// the pooled capacity suffices and freshly allocated otherwise.
func GetDistanceSlice(k int) []float64 {
	buf := DistancePool.Get()
	if cap(buf) < k {
		return make([]float64, k)
	}
	return buf[:k]
}

// PutDistanceSlice returns buf to DistancePool.
func PutDistanceSlice(buf []float64) {
	DistancePool.Put(buf[:0])
}
