// Package startriple - unified dispatcher.
//
// This file provides the canonical entry points:
//
//   - Solve:         x-sorted input → validate → route by Strategy.
//   - SolveUnsorted: any order → stable sort of a copy → Solve → indices
//     mapped back to the caller's order.
//
// Design principles:
//   - Deterministic: Sequential and VectorizedScan are bit-identical across
//     runs; ParallelSplit is identical in cost.
//   - Strict sentinels: errors from types.go and geom only.
//   - Fail fast: non-finite coordinates are rejected before any work.
package startriple

import "github.com/katalvlaran/startriple/geom"

// Solve returns the minimum star-triple of points.
//
// Contracts:
//   - points sorted ascending by X (ErrUnsorted otherwise).
//   - every coordinate finite (geom.ErrNonFinite otherwise).
//   - len(points) < 3 ⇒ NotFound(), nil.
//
// Errors: ErrBlockSizeTooSmall, ErrUnsupportedStrategy,
// ErrUnsupportedPartition, ErrUnsorted, geom.ErrNonFinite.
//
// Complexity: see package documentation.
func Solve(points []geom.Point, opts Options) (Result, error) {
	// Stage 1 - validation.
	block, err := validateOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = validatePoints(points); err != nil {
		return Result{}, err
	}
	if len(points) < 3 {
		return NotFound(), nil
	}

	// Stage 2 - shared read-only columns and the tracker.
	var (
		n      = len(points)
		xs, ys = columns(points)
		best   = NewTracker()
		stats  Stats
	)

	// Stage 3 - route by strategy.
	switch opts.Strategy {
	case ParallelSplit:
		stats = solveParallel(points, xs, ys, block, opts, best)

	case Sequential, VectorizedScan:
		e := newEngine(points, xs, ys, block, opts, best)
		e.run(0, n)
		stats = e.collect()

	default:
		return Result{}, ErrUnsupportedStrategy
	}

	// Stage 4 - snapshot.
	res := resultFrom(points, best)
	res.Stats = stats
	res.Stats.Improvements = best.Accepted()

	return res, nil
}

// SolveUnsorted sorts a copy of points by X (stable), solves it and maps
// Result.Indices back to positions in points. points is not modified.
//
// Complexity: O(n log n) for the sort plus Solve.
func SolveUnsorted(points []geom.Point, opts Options) (Result, error) {
	perm, err := geom.SortedIndexByX(points)
	if err != nil {
		return Result{}, err
	}

	sorted := make([]geom.Point, len(points))
	var i int
	for i = range perm {
		sorted[i] = points[perm[i]]
	}

	res, err := Solve(sorted, opts)
	if err != nil || !res.Found {
		return res, err
	}
	for i = range res.Indices {
		res.Indices[i] = perm[res.Indices[i]]
	}

	return res, nil
}

// resultFrom materializes the tracker snapshot against points.
func resultFrom(points []geom.Point, best *Tracker) Result {
	cost, idx, found := best.Read()
	if !found {
		return NotFound()
	}

	return Result{
		Cost:    cost,
		Indices: idx,
		Points:  [3]geom.Point{points[idx[0]], points[idx[1]], points[idx[2]]},
		Found:   true,
	}
}
