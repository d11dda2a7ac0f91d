// Package startriple — parallel-split strategy.
//
// Scheme:
//  1. Split once at the x-midpoint (x_0 + x_{n−1})/2: mid = first index with
//     x ≥ midpoint, falling back to n/2 when that leaves a side empty.
//  2. Two goroutines solve [0,mid) and [mid,n) with the sequential engine.
//     Each has its own scanner and boundary cache; both share the Tracker.
//  3. Join (sync.WaitGroup, no timeout, no cancellation).
//  4. One single-threaded strip recheck across mid with the joined best.
//
// Point data is never written, so the halves read it without locks.
package startriple

import (
	"sync"

	"github.com/katalvlaran/startriple/geom"
)

// splitIndex picks the geometric split of the parallel strategy.
//
// Complexity: O(log n).
func splitIndex(xs []float64) int {
	var (
		n    = len(xs)
		midX = xs[0]/2 + xs[n-1]/2 // no overflow near ±MaxFloat64
		mid  = geom.LowerBoundX(xs, midX)
	)
	if mid <= 0 || mid >= n {
		mid = n / 2
	}

	return mid
}

// solveParallel runs the parallel-split strategy and returns merged stats.
func solveParallel(pts []geom.Point, xs, ys []float64, block int, opts Options, best *Tracker) Stats {
	var (
		n     = len(pts)
		mid   = splitIndex(xs)
		left  = newEngine(pts, xs, ys, block, opts, best)
		right = newEngine(pts, xs, ys, block, opts, best)
		wg    sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		left.run(0, mid)
	}()
	go func() {
		defer wg.Done()
		right.run(mid, n)
	}()
	wg.Wait()

	// Cross-boundary pass on the caller's goroutine.
	final := newEngine(pts, xs, ys, block, opts, best)
	final.recheck(0, n, mid)

	var stats Stats
	stats.add(left.collect())
	stats.add(right.collect())
	stats.add(final.collect())

	return stats
}
