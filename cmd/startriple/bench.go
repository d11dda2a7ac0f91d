package main

import (
	"fmt"
	"time"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/startriple/geom"
	"github.com/katalvlaran/startriple/startriple"
)

// runBench handles `startriple bench`.
func runBench(au aurora.Aurora) error {
	if *benchRuns < 1 {
		return fmt.Errorf("bench: --runs must be >= 1, got %d", *benchRuns)
	}
	points, err := loadSorted(*benchFile)
	if err != nil {
		return err
	}

	names := []string{*benchStrategy}
	if *benchStrategy == "all" {
		names = []string{
			startriple.Sequential.String(),
			startriple.ParallelSplit.String(),
			startriple.VectorizedScan.String(),
		}
	}

	fmt.Printf("%s %s, %d points, %d runs\n", au.Bold("bench:"), *benchFile, len(points), *benchRuns)
	for _, name := range names {
		opts, err := options(*benchBlock, name, *benchPartition, false)
		if err != nil {
			return err
		}
		ms, res, err := timeSolves(points, opts, *benchRuns)
		if err != nil {
			return err
		}

		mean, spread := summarize(ms)
		fmt.Printf("  %-10s %s ms %s  (min %.2f, max %.2f)  cost %.10g\n",
			name, au.Green(fmt.Sprintf("%9.2f", mean)), spread,
			floats.Min(ms), floats.Max(ms), res.Cost)
	}

	return nil
}

// summarize returns the mean of ms and its spread as "± std". The sample
// standard deviation is undefined for a single run, so it is left out then.
func summarize(ms []float64) (float64, string) {
	if len(ms) < 2 {
		return stat.Mean(ms, nil), "(single run)"
	}
	mean, std := stat.MeanStdDev(ms, nil)

	return mean, fmt.Sprintf("± %.2f", std)
}

// timeSolves runs Solve runs times and returns the wall times in ms.
func timeSolves(points []geom.Point, opts startriple.Options, runs int) ([]float64, startriple.Result, error) {
	var (
		ms  = make([]float64, runs)
		res startriple.Result
		err error
		i   int
	)
	for i = 0; i < runs; i++ {
		start := time.Now()
		if res, err = startriple.Solve(points, opts); err != nil {
			return nil, res, err
		}
		ms[i] = float64(time.Since(start).Microseconds()) / 1000
	}

	return ms, res, nil
}
