// Package startriple_test provides helpers shared across *_test.go files.
package startriple_test

import (
	"testing"

	"github.com/katalvlaran/startriple/geom"
	"github.com/katalvlaran/startriple/pointgen"
	"github.com/katalvlaran/startriple/startriple"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the base seed for random clouds.
	seedDet = int64(20240611)

	// smallBlock forces deep recursion on the small oracle-sized inputs.
	smallBlock = 4
)

// allStrategies lists every strategy under test.
var allStrategies = []startriple.Strategy{
	startriple.Sequential,
	startriple.ParallelSplit,
	startriple.VectorizedScan,
}

// allPartitions lists every partition under test.
var allPartitions = []startriple.Partition{
	startriple.Recursive,
	startriple.BlockIterative,
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// sortedUniform returns n x-sorted uniform points in [lo,hi)².
func sortedUniform(t testing.TB, n int, lo, hi float64, seed int64) []geom.Point {
	t.Helper()
	pts, err := pointgen.Uniform(n, lo, hi, seed)
	require.NoError(t, err)
	require.NoError(t, geom.SortByX(pts))

	return pts
}

// pts builds a point slice from flat x,y pairs.
func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	var i int
	for i = 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Pt(xy[i], xy[i+1]))
	}

	return out
}

// opts builds Options for a strategy/partition/block combination.
func opts(s startriple.Strategy, p startriple.Partition, block int) startriple.Options {
	o := startriple.DefaultOptions()
	o.Strategy = s
	o.Partition = p
	o.BlockSize = block

	return o
}

// mustSolve runs Solve and fails the test on error.
func mustSolve(t testing.TB, points []geom.Point, o startriple.Options) startriple.Result {
	t.Helper()
	res, err := startriple.Solve(points, o)
	require.NoError(t, err)

	return res
}

// mustOracle runs the exhaustive reference solver.
func mustOracle(t testing.TB, points []geom.Point) startriple.Result {
	t.Helper()
	res, err := startriple.Exhaustive(points)
	require.NoError(t, err)

	return res
}

// requireConsistent checks that a found result is a valid triple whose
// cost matches its own points bit-for-bit.
func requireConsistent(t testing.TB, points []geom.Point, res startriple.Result) {
	t.Helper()
	require.True(t, res.Found)
	c, p, q := res.Indices[0], res.Indices[1], res.Indices[2]
	require.NotEqual(t, c, p)
	require.NotEqual(t, c, q)
	require.NotEqual(t, p, q)
	require.Equal(t, points[c], res.Points[0])
	require.Equal(t, points[p], res.Points[1])
	require.Equal(t, points[q], res.Points[2])
	require.Equal(t, geom.PathCost(points[c], points[p], points[q]), res.Cost)
}

// Repeat runs fn n times (stability under repetition).
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts errors.Is(err, target).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
}
