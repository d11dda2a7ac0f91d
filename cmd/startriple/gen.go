package main

import (
	"fmt"
	"math"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/startriple/geom"
	"github.com/katalvlaran/startriple/pointgen"
	"github.com/katalvlaran/startriple/tspfile"
)

// runGen handles `startriple gen`.
func runGen(au aurora.Aurora) error {
	points, err := generate(*genDist, *genN, *genLo, *genHi, *genSeed)
	if err != nil {
		return err
	}

	out := *genOut
	if out == "" {
		out = petname.Generate(2, "-") + ".tsp"
	}
	if err = tspfile.WriteFile(out, points); err != nil {
		return err
	}
	fmt.Printf("%s %d %s points -> %s\n", au.Green("wrote"), len(points), *genDist, au.Bold(out))

	return nil
}

// generate dispatches on the distribution name.
func generate(dist string, n int, lo, hi float64, seed int64) ([]geom.Point, error) {
	switch dist {
	case "normal":
		return pointgen.Normal(n, (lo+hi)/2, (hi-lo)/6, seed)
	case "clustered":
		k := max(1, int(math.Sqrt(float64(n))/4))
		return pointgen.Clustered(n, k, lo, hi, (hi-lo)/float64(10*k), seed)
	case "grid":
		if n < 1 {
			return nil, pointgen.ErrBadCount
		}
		side := int(math.Ceil(math.Sqrt(float64(n))))
		return pointgen.Grid(side, side, (hi-lo)/float64(side))
	default:
		return pointgen.Uniform(n, lo, hi, seed)
	}
}
