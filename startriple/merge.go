// Package startriple — strip merge / recheck.
//
// After both sides of a split at index mid are solved, an improving triple
// that was missed must cross the split: one point left of mid, one at or
// right of it. Its cost d' < d bounds every pairwise distance inside the
// triple (through the center), so each point lies within d of a point on
// the other side, hence within d of the line x = x[mid]:
//
//	strip = { k ∈ [lo,hi) : x[mid] − d ≤ x_k ≤ x[mid] + d }
//
// The block solver is re-run on the strip with i restricted to indices
// below mid (the smallest index of a crossing triple is always left).
// d is the joined best of both halves, read after they finished.
package startriple

// recheck re-solves the strip around the split index mid within [lo, hi).
func (e *engine) recheck(lo, hi, mid int) {
	var d = e.best.Cost()
	if d == 0 {
		return // nothing beats a zero-cost triple
	}

	var (
		reach  = d * pruneGuard
		splitX = e.xs[mid]
	)
	start, end := e.stripRange(splitX-reach, splitX+reach)

	// Clamp to the caller's window; the cache answers for the full column.
	start = max(start, lo)
	end = min(end+1, hi) // exclusive from here on

	// A crossing triple needs a left point, a right point and three points.
	if start >= mid || end <= mid || end-start < 3 {
		return
	}

	e.stats.Merges++
	e.solveRange(start, end, mid)
}
