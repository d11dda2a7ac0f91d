package geom

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

var (
	// ErrNonFinite indicates a NaN or ±Inf coordinate, or one beyond
	// ±MaxCoord. Ordering and pruning both assume totally ordered finite
	// doubles and finite star costs, so such input is rejected.
	ErrNonFinite = errors.New("geom: coordinate is NaN, Inf or out of range")

	// ErrNaN is returned by CompareByX when either operand has a NaN X.
	ErrNaN = errors.New("geom: NaN is not ordered")
)

// MaxCoord bounds |X| and |Y| accepted by Validate. Within it a coordinate
// difference is at most MaxFloat64/4, a leg at most √2 of that, and the sum
// of two legs stays finite.
const MaxCoord = math.MaxFloat64 / 8

// Point is a float64 2-D point.
type Point r2.Point

// Pt is a shorthand constructor.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec exposes the point as an r2.Point.
func (p Point) Vec() r2.Point { return r2.Point(p) }

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// InRange reports whether both coordinates lie within ±MaxCoord.
// NaN is never in range.
func (p Point) InRange() bool {
	return math.Abs(p.X) <= MaxCoord && math.Abs(p.Y) <= MaxCoord
}

// Same reports coordinate identity (both X and Y equal).
func (p Point) Same(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Distance returns the Euclidean distance between a and b.
//
// math.Hypot scales before squaring, so the result does not overflow for
// large finite differences, and it takes absolute values first, so
// Distance(a,b) == Distance(b,a) exactly. No fast-math shortcuts.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	d := r2.Point(a).Sub(r2.Point(b))
	return math.Hypot(d.X, d.Y)
}

// PathCost returns the star cost with center as pivot:
// Distance(center,p) + Distance(center,q).
func PathCost(center, p, q Point) float64 {
	return Distance(center, p) + Distance(center, q)
}

// CompareByX orders a and b by X only: -1, 0 or +1.
// Equal X yields 0 even when Y differs; that is an ordering statement,
// not an identity statement. NaN on either side returns ErrNaN.
func CompareByX(a, b Point) (int, error) {
	if math.IsNaN(a.X) || math.IsNaN(b.X) {
		return 0, ErrNaN
	}
	switch {
	case a.X < b.X:
		return -1, nil
	case a.X > b.X:
		return 1, nil
	default:
		return 0, nil
	}
}

// Validate returns a wrapped ErrNonFinite naming the first offending index,
// or nil when every coordinate is finite and within ±MaxCoord.
//
// Complexity: O(n).
func Validate(points []Point) error {
	var i int
	for i = range points {
		if !points[i].IsFinite() || !points[i].InRange() {
			return fmt.Errorf("point %d %v: %w", i, points[i], ErrNonFinite)
		}
	}

	return nil
}

// IsSortedByX reports whether points are in non-decreasing X order.
func IsSortedByX(points []Point) bool {
	var i int
	for i = 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			return false
		}
	}

	return true
}

// SortByX sorts points in place by X. The sort is stable, so points sharing
// an X keep their input order. Points must be validated first; NaN input
// returns ErrNonFinite without touching the slice.
//
// Complexity: O(n log n).
func SortByX(points []Point) error {
	if err := Validate(points); err != nil {
		return err
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		c, _ := CompareByX(a, b) // finite after Validate
		return c
	})

	return nil
}

// SortedIndexByX returns the permutation that sorts points by X (stable).
// perm[k] is the input index of the k-th smallest point.
func SortedIndexByX(points []Point) ([]int, error) {
	if err := Validate(points); err != nil {
		return nil, err
	}
	perm := make([]int, len(points))
	var i int
	for i = range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		c, _ := CompareByX(points[a], points[b])
		return c
	})

	return perm, nil
}

// LowerBoundX returns the first index i with xs[i] >= v (len(xs) if none).
// xs must be sorted ascending.
//
// Complexity: O(log n).
func LowerBoundX(xs []float64, v float64) int {
	i, _ := slices.BinarySearch(xs, v)
	return i
}

// UpperBoundX returns the first index i with xs[i] > v (len(xs) if none).
// xs must be sorted ascending.
//
// Complexity: O(log n).
func UpperBoundX(xs []float64, v float64) int {
	i, _ := slices.BinarySearchFunc(xs, v, func(e, target float64) int {
		if e <= target {
			return -1
		}
		return 1
	})
	return i
}

// Bounds returns the smallest axis-aligned rectangle containing points.
// An empty input yields r2.EmptyRect().
func Bounds(points []Point) r2.Rect {
	r := r2.EmptyRect()
	for _, p := range points {
		r = r.AddPoint(r2.Point(p))
	}

	return r
}
