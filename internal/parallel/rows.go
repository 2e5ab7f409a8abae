package parallel

import "sync"

// MinBand is the smallest number of rows given to one job. Images shorter
// than 2*MinBand run on the calling goroutine.
const MinBand = 16

var (
	defaultPool     *WorkerPool
	defaultPoolOnce sync.Once
)

// Default returns the process-wide pool used by Rows.
// It is created on first use with GOMAXPROCS workers and never closed.
func Default() *WorkerPool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewWorkerPool(0)
	})
	return defaultPool
}

// Rows calls fn over [0, n) split into contiguous bands and returns when
// every band is done. fn receives a half-open range [start, end).
func Rows(n int, fn func(start, end int)) {
	RowsOn(Default(), n, fn)
}

// RowsOn is Rows on an explicit pool. A nil pool runs fn inline.
func RowsOn(p *WorkerPool, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || n < 2*MinBand {
		fn(0, n)
		return
	}

	bands := Bands(n, p.Workers()*2, MinBand)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}

// Bands splits [0, n) into at most count contiguous ranges of at least
// minSize elements each (the last range absorbs the remainder).
func Bands(n, count, minSize int) [][2]int {
	if n <= 0 {
		return nil
	}
	minSize = max(minSize, 1)
	count = max(min(count, n/minSize), 1)

	size := n / count
	bands := make([][2]int, 0, count)
	for i := range count {
		start := i * size
		end := start + size
		if i == count-1 {
			end = n
		}
		bands = append(bands, [2]int{start, end})
	}
	return bands
}
