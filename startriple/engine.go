// Package startriple — partition engine.
//
// The engine owns the read-only columns of one solve (points, xs, ys) plus
// its per-worker state (scanner, boundary cache, stats) and a handle to the
// shared Tracker. We use a dedicated engine struct (instead of closures) to
// keep the hot-path state explicit and each worker's state separate.
//
// Partition schemes over a half-open index window [lo, hi):
//
//	Recursive:      len ≤ B → block solver
//	                else    → mid = lo+(hi-lo)/2; left; right; recheck(mid)
//
//	BlockIterative: blocks [lo,lo+B), [lo+B,lo+2B), … each by block solver,
//	                then recheck(b) for every block boundary b.
//
// Both schemes give the global optimum over [lo, hi): a triple contained in
// one block is seen by that block; any other triple spans a split or block
// boundary and lies in that boundary's strip.
package startriple

import "github.com/katalvlaran/startriple/geom"

// engine holds all search data for one worker.
type engine struct {
	// Read-only columns, shared between workers of one solve.
	pts []geom.Point
	xs  []float64
	ys  []float64

	// Policy
	block     int
	partition Partition

	// Per-worker state
	best  *Tracker
	scan  candidateScanner
	cache *boundaryCache // nil when caching is disabled
	stats Stats
}

// columns splits points into x and y columns for the scanners and searches.
//
// Complexity: O(n) time and space.
func columns(points []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))

	var i int
	for i = range points {
		xs[i] = points[i].X
		ys[i] = points[i].Y
	}

	return xs, ys
}

// newEngine wires one worker. Each worker gets its own scanner and cache.
func newEngine(pts []geom.Point, xs, ys []float64, block int, opts Options, best *Tracker) *engine {
	e := &engine{
		pts:       pts,
		xs:        xs,
		ys:        ys,
		block:     block,
		partition: opts.Partition,
		best:      best,
		scan:      scalarScan{},
	}
	if opts.Strategy == VectorizedScan {
		e.scan = newVectorScan()
	}
	if !opts.DisableCache {
		e.cache = newBoundaryCache(xs)
	}

	return e
}

// run solves the window [lo, hi) with the configured partition.
func (e *engine) run(lo, hi int) {
	switch e.partition {
	case BlockIterative:
		e.sweep(lo, hi)
	default:
		e.divide(lo, hi)
	}
}

// divide is the recursive partition.
func (e *engine) divide(lo, hi int) {
	if hi-lo <= e.block {
		e.stats.Blocks++
		e.solveRange(lo, hi, hi)
		return
	}

	mid := lo + (hi-lo)/2
	e.divide(lo, mid)
	e.divide(mid, hi)
	e.recheck(lo, hi, mid)
}

// sweep is the block-iterative partition.
func (e *engine) sweep(lo, hi int) {
	var start, end int

	// Stage 1 - independent blocks.
	for start = lo; start < hi; start += e.block {
		end = min(start+e.block, hi)
		e.stats.Blocks++
		e.solveRange(start, end, end)
	}

	// Stage 2 - one strip recheck per block boundary. The merge window is
	// the full strip around the boundary (at least the two neighbouring
	// blocks when the strip is wide), so triples spanning several narrow
	// blocks are still covered.
	for start = lo + e.block; start < hi; start += e.block {
		e.recheck(lo, hi, start)
	}
}

// stripRange returns the index range [start, end] of points with
// x ∈ [loX, hiX], through the cache when enabled.
func (e *engine) stripRange(loX, hiX float64) (int, int) {
	if e.cache == nil {
		return searchRange(e.xs, loX, hiX)
	}

	return e.cache.indexRangeFor(loX, hiX)
}

// collect folds cache counters into the stats and returns them.
func (e *engine) collect() Stats {
	s := e.stats
	if e.cache != nil {
		s.CacheHits = e.cache.hits
		s.CacheMisses = e.cache.misses
	}

	return s
}
