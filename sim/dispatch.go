package sim

import (
	"runtime"
	"sync"
)

// Dispatcher runs a per-particle function as a chunked data-parallel map.
// A pass must not touch any index other than its own; under that contract
// chunks never share mutable state and need no locking.
type Dispatcher struct {
	workers int
}

// NewDispatcher creates a dispatcher with the given worker count.
// Zero or negative selects one worker per CPU.
func NewDispatcher(workers int) *Dispatcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Dispatcher{workers: workers}
}

// Workers returns the configured worker count
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Run evaluates fn for every index in [0, n) and blocks until all chunks
// complete. With one worker the map runs inline on the caller's goroutine.
func (d *Dispatcher) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if d.workers == 1 || n < d.workers {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + d.workers - 1) / d.workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
