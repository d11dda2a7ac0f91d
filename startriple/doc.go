// Package startriple finds the minimum star-triple of a planar point set.
//
// A star-triple is (center, P, Q) over three distinct points; its cost is
// dist(center,P) + dist(center,Q). The solver returns the triple of minimal
// cost, the natural subroutine for greedy/insertion tour construction.
//
// Pipeline (x-sorted input):
//
//	Solve ─┬─ Sequential ──── Recursive | BlockIterative ─┐
//	       ├─ ParallelSplit ─ 2 goroutines + final recheck ├─► block solver ◄─ strip recheck
//	       └─ VectorizedScan ─ same as Sequential, vek scan ┘         │
//	                                                    Tracker (shared best) / boundary cache
//
// Building blocks:
//
//   - Tracker         — best cost + index triple; strict improvement only.
//   - boundary cache  — (loX,hiX) → index range memo, one per worker.
//   - block solver    — exhaustive over a bounded block with y/x pruning.
//   - strip recheck   — re-solves the strip of width 2·best around a split.
//   - partition       — recursive median split or block-iterative sweep.
//   - strategies      — Sequential, ParallelSplit, VectorizedScan.
//   - Exhaustive      — O(n³) reference enumeration.
//
// Contracts:
//   - Solve requires points sorted ascending by X (see geom.SortByX) and
//     finite coordinates; SolveUnsorted sorts a copy for the caller.
//   - Fewer than three points is not an error: Result.Found is false.
//   - Improvements are strict (<). The first optimal triple met under the
//     traversal order wins; under exact cost ties strategies may report
//     different triples, never different costs.
//
// Complexity:
//   - Expected O(n log n) for the recursive partition on spread-out input.
//   - Worst case O(B³) per block of size B, O(n³) when all points collapse
//     into one strip.
//   - Memory: O(n) for the x/y columns plus the per-worker cache.
//
// Concurrency: only ParallelSplit starts goroutines (exactly two). The point
// data is read-only; the Tracker is the only shared mutable state.
package startriple
