// Package startriple — brute-force block solver.
//
// solveRange enumerates every candidate triple of a bounded index window.
//
// Enumeration (i < j, k > i, k ≠ j):
//  1. i walks [lo, iEnd).
//  2. j is the next index after the previous j whose |y_j − y_i| < d, found
//     by the candidate scanner; stop once x_j − x_i ≥ d (x-sorted input, so
//     every later j is farther still). Skip the pair if dist(i,j) ≥ d.
//  3. k walks (i, hi) with slack s = d − dist(i,j): skip k when both
//     |y_k − y_i| ≥ s and |y_k − y_j| ≥ s; stop once x_k − x_j ≥ s.
//  4. For each surviving k evaluate pivot i: dist(i,j)+dist(i,k), then
//     pivot j: dist(i,j)+dist(j,k); offer both to the Tracker.
//
// Completeness: a star (c; p, q) always contains its smallest-index point m
// together with the center in one pair — (c,p) if m is c, otherwise (m,c) —
// and the remaining point has a larger index than m. So k > i loses nothing.
//
// Soundness of every prune: an improving candidate has cost < d, hence each
// leg < d, and with a fixed first leg dist(i,j) the second leg is < s.
// |Δy| and |Δx| are lower bounds on any leg.
//
// d is re-read from the Tracker after each improvement, so pruning tightens
// during the scan. Geometric prunes compare against d·pruneGuard: a leg
// bound off by a rounding ulp must never discard a candidate whose exact
// cost check (cost < d) would pass. The cost check itself is exact.
//
// Complexity: O(B³) worst case for B = hi − lo.
package startriple

import (
	"math"

	"github.com/katalvlaran/startriple/geom"
)

// pruneGuard widens every geometric prune bound by a relative 1e-12,
// far above the few-ulp error of Distance and far below any real gap.
const pruneGuard = 1 + 1e-12

// solveRange runs the block solver on [lo, hi) with i restricted to [lo, iEnd).
// A plain block passes iEnd == hi; the strip recheck passes the split index.
func (e *engine) solveRange(lo, hi, iEnd int) {
	var (
		i, j int
		d    float64
		far  float64
		dij  float64
		pi   geom.Point
		pj   geom.Point
	)

	for i = lo; i < iEnd; i++ {
		pi = e.pts[i]
		j = i + 1
		for j < hi {
			d = e.best.Cost()
			far = d * pruneGuard
			j = e.scan.next(e.ys, j, hi, pi.Y, far)
			if j >= hi {
				break
			}
			pj = e.pts[j]
			if pj.X-pi.X >= far {
				break
			}
			dij = geom.Distance(pi, pj)
			if dij < d {
				e.thirds(i, j, hi, dij)
			}
			j++
		}
	}
}

// thirds completes the pair (i, j) with every admissible k in (i, hi).
func (e *engine) thirds(i, j, hi int, dij float64) {
	var (
		k     int
		d     float64
		slack float64
		cost  float64
		pi    = e.pts[i]
		pj    = e.pts[j]
		pk    geom.Point
	)

	for k = i + 1; k < hi; k++ {
		d = e.best.Cost()
		slack = d*pruneGuard - dij
		if slack <= 0 {
			return // the pair itself can no longer improve
		}
		if k == j {
			continue
		}
		pk = e.pts[k]
		if pk.X-pj.X >= slack {
			return
		}
		if math.Abs(pk.Y-pi.Y) >= slack && math.Abs(pk.Y-pj.Y) >= slack {
			continue
		}

		// Pivot at i.
		cost = dij + geom.Distance(pi, pk)
		if cost < d {
			e.best.TryImprove(cost, i, j, k)
			d = e.best.Cost()
		}

		// Pivot at j.
		cost = dij + geom.Distance(pj, pk)
		if cost < d {
			e.best.TryImprove(cost, j, i, k)
		}
	}
}
