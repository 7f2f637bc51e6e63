// Package parallel provides concurrency utilities for parallel data processing.
package parallel

import (
	"runtime"
	"sync"
)

// ParallelForEach applies a function to each element in parallel (no return value).
func ParallelForEach[T any](data []T, fn func(T), workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if len(data) == 0 {
		return
	}

	chunkSize := (len(data) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= len(data) {
			break
		}
		if end > len(data) {
			end = len(data)
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(data[i])
			}
		}(start, end)
	}

	wg.Wait()
}
