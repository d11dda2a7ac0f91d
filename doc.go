// Package startriple is the root of the minimum star-triple toolkit: given a
// planar point set, find the three points (center; P, Q) minimizing
// dist(center,P) + dist(center,Q). The cheapest star is the usual seed of
// insertion-based tour construction.
//
// What is in the module?
//
//	A divide-and-conquer solver with a brute-force leaf and strip merges,
//	three execution strategies and the tooling around it:
//		• Geometry: points, distances, x-ordering, bounds (golang/geo r2)
//		• Solver: recursive and block-iterative partitions, shared best-state
//		  tracker, boundary-index cache, 8-wide candidate scan (viterin/vek)
//		• Strategies: Sequential, ParallelSplit (two goroutines), VectorizedScan
//		• Reference: O(n³) exhaustive enumeration for verification
//		• I/O: NODE_COORD_SECTION files, seeded point generators, PNG rendering
//
// Layout:
//
//	geom/           — Point, Distance, PathCost, SortByX, bound searches
//	startriple/     — Solve, SolveUnsorted, Exhaustive, Options, Tracker
//	pointgen/       — uniform, normal, clustered and grid clouds (seeded)
//	tspfile/        — NODE_COORD_SECTION reader / writer
//	render/         — point cloud + best triple to PNG (fogleman/gg)
//	cmd/startriple/ — CLI: solve, gen, bench, render
//	examples/       — runnable scenario programs
//
// Quick example:
//
//	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 5), geom.Pt(1, 0), geom.Pt(5, 5)}
//	res, _ := startriple.Solve(pts, startriple.DefaultOptions())
//	// res.Cost == 6, res.Center() == (0, 0)
//
//	go get github.com/katalvlaran/startriple/startriple
package startriple
