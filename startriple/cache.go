// Package startriple — boundary-index cache.
//
// A strip recheck needs the index range of the points whose X lies in
// [loX, hiX]. The same boundary pair recurs across merges (duplicate X at
// several split points, unchanged best cost between siblings), so lookups
// are memoized on the exact (loX, hiX) key.
//
// Ranges are always computed against the full x column of the solve, never
// against a sub-slice, which keeps one cached value valid at every recursion
// depth. Callers clamp the range to their own window.
//
// Lifetime: one solve, one worker. Never shared across goroutines.
package startriple

import "github.com/katalvlaran/startriple/geom"

// boundaryKey is the exact pair of strip boundaries.
type boundaryKey struct {
	lo, hi float64
}

// boundaryCache memoizes (loX, hiX) → (start, end) over one x column.
type boundaryCache struct {
	xs      []float64
	entries map[boundaryKey][2]int
	hits    int
	misses  int
}

// newBoundaryCache binds a cache to a sorted x column.
func newBoundaryCache(xs []float64) *boundaryCache {
	return &boundaryCache{
		xs:      xs,
		entries: make(map[boundaryKey][2]int),
	}
}

// indexRangeFor returns start = first index with x >= loX and end = last
// index with x <= hiX. For an empty range end < start.
//
// Complexity: O(1) on a hit, O(log n) on a miss.
func (c *boundaryCache) indexRangeFor(loX, hiX float64) (int, int) {
	key := boundaryKey{lo: loX, hi: hiX}
	if r, ok := c.entries[key]; ok {
		c.hits++
		return r[0], r[1]
	}

	c.misses++
	start, end := searchRange(c.xs, loX, hiX)
	c.entries[key] = [2]int{start, end}

	return start, end
}

// size returns the number of memoized boundary pairs.
func (c *boundaryCache) size() int { return len(c.entries) }

// searchRange is the uncached lookup behind indexRangeFor.
func searchRange(xs []float64, loX, hiX float64) (int, int) {
	return geom.LowerBoundX(xs, loX), geom.UpperBoundX(xs, hiX) - 1
}
