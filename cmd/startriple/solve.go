package main

import (
	"fmt"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/startriple/geom"
	"github.com/katalvlaran/startriple/startriple"
	"github.com/katalvlaran/startriple/tspfile"
)

// runSolve handles `startriple solve`.
func runSolve(au aurora.Aurora) error {
	opts, err := options(*solveBlock, *solveStrategy, *solvePartition, *solveNoCache)
	if err != nil {
		return err
	}
	points, err := loadSorted(*solveFile)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := startriple.Solve(points, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%s %d points, %s/%s, block %d\n",
		au.Bold("input:"), len(points), opts.Strategy, opts.Partition, opts.BlockSize)
	printResult(au, res, elapsed)

	if !*solveVerify {
		return nil
	}
	ref, err := startriple.Exhaustive(points)
	if err != nil {
		return err
	}
	if ref.Cost != res.Cost {
		return fmt.Errorf("verify: engine cost %v, exhaustive cost %v", res.Cost, ref.Cost)
	}
	fmt.Println(au.Green("verify: exhaustive enumeration agrees"))

	return nil
}

// loadSorted reads a point file and sorts it by X.
func loadSorted(path string) ([]geom.Point, error) {
	points, err := tspfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = geom.SortByX(points); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

func printResult(au aurora.Aurora, res startriple.Result, elapsed time.Duration) {
	if !res.Found {
		fmt.Println(au.Yellow("no triple: fewer than three points"))
		return
	}

	fmt.Printf("%s %s\n", au.Bold("cost:"), au.Green(fmt.Sprintf("%.10g", res.Cost)))
	fmt.Printf("%s %v  %s %v %v\n",
		au.Bold("center:"), au.Cyan(res.Points[0]),
		au.Bold("leaves:"), res.Points[1], res.Points[2])
	fmt.Printf("%s %v  %s blocks=%d merges=%d cache=%d/%d improvements=%d\n",
		au.Bold("time:"), elapsed.Round(time.Microsecond),
		au.Bold("stats:"), res.Stats.Blocks, res.Stats.Merges,
		res.Stats.CacheHits, res.Stats.CacheHits+res.Stats.CacheMisses,
		res.Stats.Improvements)
}
