package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs submitted functions on a fixed set of goroutines. With a single
// worker Do runs the function inline and Wait returns immediately.
type Pool struct {
	wg     sync.WaitGroup
	size   int
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		size: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Span is the half open range [Start, End).
type Span struct {
	Start int
	End   int
}

// Split cuts [0, total) into at most parts contiguous spans of nearly equal
// length. Empty spans are never returned.
func Split(total, parts int) []Span {
	if total <= 0 {
		return nil
	}
	parts = max(1, min(parts, total))

	spans := make([]Span, 0, parts)
	step, extra := total/parts, total%parts
	start := 0
	for i := range parts {
		end := start + step
		if i < extra {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}

// ForEach calls fn once per span of [0, total) using up to numWorkers
// goroutines and returns when every call has finished.
func ForEach(numWorkers, total int, fn func(Span)) {
	spans := Split(total, numWorkers)
	if len(spans) == 0 {
		return
	}

	pool := Start(len(spans))
	for _, s := range spans {
		pool.Do(func() { fn(s) })
	}
	pool.Wait(true)
}
