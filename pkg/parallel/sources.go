package parallel

import (
	"runtime"
	"sync"
)

// ForEachSource runs fn once per source across a pool of workers and hands
// each result, in the original source order, to merge on the calling
// goroutine. Per-source computations only read shared graph state and write
// into their own accumulator, so the only synchronization needed is the
// ordered handoff here. Merging in source order keeps floating-point
// reductions deterministic regardless of worker scheduling.
//
// workers <= 0 selects GOMAXPROCS; a single worker degenerates to a plain
// sequential loop with no goroutines.
func ForEachSource[T any](sources []string, workers int, fn func(source string) T, merge func(partial T)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(sources) <= 1 {
		for _, s := range sources {
			merge(fn(s))
		}
		return nil
	}

	pool, err := NewWorkerPool(workers)
	if err != nil {
		return err
	}

	partials := make([]T, len(sources))
	var wg sync.WaitGroup
	for i, s := range sources {
		i, s := i, s
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			partials[i] = fn(s)
		})
	}
	wg.Wait()
	pool.Close()

	for _, p := range partials {
		merge(p)
	}
	return nil
}
