// Package geom provides the planar primitives shared by the star-triple
// solver and its collaborators.
//
// What lives here:
//
//   - Point        — an immutable 2-D point backed by golang/geo r2.Point.
//   - Distance     — Euclidean distance, symmetric bit-for-bit.
//   - PathCost     — star cost dist(center,p) + dist(center,q).
//   - CompareByX   — total order on the X coordinate (NaN fails fast).
//   - Validate     — rejects NaN / ±Inf coordinates before any solve.
//   - SortByX, IsSortedByX, LowerBoundX, UpperBoundX — x-sorted helpers.
//   - Bounds       — bounding rectangle as an r2.Rect.
//
// Ordering vs identity:
//
//	The X coordinate is only an ordering key for binary search. Two points
//	with equal X are NOT the same point; callers identify points by their
//	index in the sorted slice.
//
// All functions are deterministic, side-effect free and never log.
package geom
