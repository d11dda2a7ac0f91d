package startriple

// Test bridge (white-box) for unexported machinery.
//
// Purpose:
//   - Expose the boundary cache, the two candidate scanners and the parallel
//     split rule to startriple_test without widening the production API.
//   - Compiled only with the tests of this package.

// BoundaryCacheT wraps the private cache for black-box tests.
type BoundaryCacheT struct{ c *boundaryCache }

// NewBoundaryCache_TestOnly binds a fresh cache to xs.
func NewBoundaryCache_TestOnly(xs []float64) BoundaryCacheT {
	return BoundaryCacheT{c: newBoundaryCache(xs)}
}

// IndexRangeFor forwards to indexRangeFor.
func (b BoundaryCacheT) IndexRangeFor(loX, hiX float64) (int, int) {
	return b.c.indexRangeFor(loX, hiX)
}

// Hits, Misses and Size expose the cache counters.
func (b BoundaryCacheT) Hits() int   { return b.c.hits }
func (b BoundaryCacheT) Misses() int { return b.c.misses }
func (b BoundaryCacheT) Size() int   { return b.c.size() }

// ScalarNext_TestOnly runs the reference scan.
func ScalarNext_TestOnly(ys []float64, from, to int, y, d float64) int {
	return scalarScan{}.next(ys, from, to, y, d)
}

// VectorNext_TestOnly runs the batched scan with a fresh scratch.
func VectorNext_TestOnly(ys []float64, from, to int, y, d float64) int {
	return newVectorScan().next(ys, from, to, y, d)
}

// SplitIndex_TestOnly exposes the parallel split rule.
var SplitIndex_TestOnly = splitIndex
