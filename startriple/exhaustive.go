// Package startriple — exhaustive reference solver.
//
// Exhaustive enumerates every star (c; p, q) with p < q, c ∉ {p, q}, in the
// fixed order c ascending, then p, then q, and keeps the first strictly
// cheaper one. It needs no sorting and serves as ground truth for the
// engine and for `startriple solve --verify`.
package startriple

import "github.com/katalvlaran/startriple/geom"

// Exhaustive returns the minimum star-triple by full O(n³) enumeration.
// Indices refer to points as given. Non-finite input is rejected.
//
// Complexity: O(n³) time, O(1) extra space.
func Exhaustive(points []geom.Point) (Result, error) {
	if err := geom.Validate(points); err != nil {
		return Result{}, err
	}
	if len(points) < 3 {
		return NotFound(), nil
	}

	var (
		n       = len(points)
		best    = NewTracker()
		c, p, q int
		dcp     float64
		cost    float64
	)
	for c = 0; c < n; c++ {
		for p = 0; p < n; p++ {
			if p == c {
				continue
			}
			dcp = geom.Distance(points[c], points[p])
			if !(dcp < best.Cost()) {
				continue // second leg is >= 0
			}
			for q = p + 1; q < n; q++ {
				if q == c {
					continue
				}
				cost = dcp + geom.Distance(points[c], points[q])
				best.TryImprove(cost, c, p, q)
			}
		}
	}

	res := resultFrom(points, best)
	res.Stats.Improvements = best.Accepted()

	return res, nil
}
