// Package pointgen builds deterministic synthetic point sets for tests,
// benchmarks and the `startriple gen` command.
//
// Generators:
//   - Uniform   — n points uniformly in [lo, hi)² (lo == hi collapses every
//     point onto one coordinate, a useful degenerate case).
//   - Normal    — n points, each axis ~ N(mean, stddev²).
//   - Clustered — n points spread normally around k uniform centers.
//   - Grid      — cols×rows lattice with a fixed step (many exact ties).
//   - Shuffle   — deterministic in-place permutation.
//
// Every generator takes a seed; seed==0 selects a fixed default, so output
// never depends on wall-clock time. Results are in generation order, not
// sorted.
package pointgen

import (
	"errors"
	"math"

	"github.com/katalvlaran/startriple/geom"
)

var (
	// ErrBadCount indicates a negative point or cluster count.
	ErrBadCount = errors.New("pointgen: count must be non-negative")

	// ErrBadRange indicates lo > hi, a negative stddev, or a non-finite bound.
	ErrBadRange = errors.New("pointgen: invalid range")
)

// Uniform returns n points with both coordinates uniform in [lo, hi).
//
// Complexity: O(n).
func Uniform(n int, lo, hi float64, seed int64) ([]geom.Point, error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	if !finite(lo) || !finite(hi) || lo > hi {
		return nil, ErrBadRange
	}

	var (
		base = rngFromSeed(seed)
		rx   = deriveRNG(base, 0)
		ry   = deriveRNG(base, 1)
		span = hi - lo
		pts  = make([]geom.Point, n)
		i    int
	)
	for i = 0; i < n; i++ {
		pts[i] = geom.Pt(lo+rx.Float64()*span, lo+ry.Float64()*span)
	}

	return pts, nil
}

// Normal returns n points with both coordinates ~ N(mean, stddev²).
//
// Complexity: O(n).
func Normal(n int, mean, stddev float64, seed int64) ([]geom.Point, error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	if !finite(mean) || !finite(stddev) || stddev < 0 {
		return nil, ErrBadRange
	}

	var (
		base = rngFromSeed(seed)
		rx   = deriveRNG(base, 0)
		ry   = deriveRNG(base, 1)
		pts  = make([]geom.Point, n)
		i    int
	)
	for i = 0; i < n; i++ {
		pts[i] = geom.Pt(mean+rx.NormFloat64()*stddev, mean+ry.NormFloat64()*stddev)
	}

	return pts, nil
}

// Clustered returns n points around k centers drawn uniformly in [lo, hi)²;
// each point picks a center uniformly and is offset by N(0, spread²) per axis.
//
// Complexity: O(n + k).
func Clustered(n, k int, lo, hi, spread float64, seed int64) ([]geom.Point, error) {
	if n < 0 || k < 0 || (k == 0 && n > 0) {
		return nil, ErrBadCount
	}
	if !finite(spread) || spread < 0 {
		return nil, ErrBadRange
	}
	centers, err := Uniform(k, lo, hi, deriveSeed(seed, 7))
	if err != nil {
		return nil, err
	}

	var (
		base = rngFromSeed(seed)
		pick = deriveRNG(base, 0)
		off  = deriveRNG(base, 1)
		pts  = make([]geom.Point, n)
		c    geom.Point
		i    int
	)
	for i = 0; i < n; i++ {
		c = centers[pick.Intn(k)]
		pts[i] = geom.Pt(c.X+off.NormFloat64()*spread, c.Y+off.NormFloat64()*spread)
	}

	return pts, nil
}

// Grid returns a cols×rows lattice starting at the origin, row by row.
//
// Complexity: O(cols·rows).
func Grid(cols, rows int, step float64) ([]geom.Point, error) {
	if cols < 0 || rows < 0 {
		return nil, ErrBadCount
	}
	if !finite(step) || step <= 0 {
		return nil, ErrBadRange
	}

	pts := make([]geom.Point, 0, cols*rows)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			pts = append(pts, geom.Pt(float64(c)*step, float64(r)*step))
		}
	}

	return pts, nil
}

// Shuffle permutes pts in place with a Fisher–Yates pass.
//
// Complexity: O(n).
func Shuffle(pts []geom.Point, seed int64) {
	var (
		r = rngFromSeed(seed)
		i int
		j int
	)
	for i = len(pts) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
