// Command startriple solves, generates, benchmarks and renders minimum
// star-triple instances stored as NODE_COORD_SECTION files.
//
// Usage:
//
//	startriple solve  FILE [--block N] [--strategy S] [--partition P] [--no-cache] [--verify]
//	startriple gen    --n N [--dist uniform|normal|clustered|grid] [--seed S] [--out FILE]
//	startriple bench  FILE [--runs R] [--strategy S] [--partition P] [--block N]
//	startriple render FILE [--out PNG] [--imgcat]
//
// Fatal errors go through the standard logger with a "startriple: " prefix
// and exit status 1.
package main

import (
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/startriple/startriple"
)

var (
	app   = kingpin.New("startriple", "Minimum star-triple solver.")
	color = app.Flag("color", "Colour output (default: when stdout is a terminal).").
		Default(boolString(isTerminal(os.Stdout))).Bool()

	// solve
	solveCmd       = app.Command("solve", "Solve a point file.")
	solveFile      = solveCmd.Arg("file", "NODE_COORD_SECTION file.").Required().ExistingFile()
	solveBlock     = solveCmd.Flag("block", "Brute-force block size (>= 3).").Default("128").Int()
	solveStrategy  = solveCmd.Flag("strategy", "sequential | parallel | vectorized.").Default("sequential").String()
	solvePartition = solveCmd.Flag("partition", "recursive | iterative.").Default("recursive").String()
	solveNoCache   = solveCmd.Flag("no-cache", "Disable the boundary-index cache.").Bool()
	solveVerify    = solveCmd.Flag("verify", "Cross-check against the O(n³) enumeration.").Bool()

	// gen
	genCmd  = app.Command("gen", "Generate a random point file.")
	genN    = genCmd.Flag("n", "Number of points.").Required().Int()
	genDist = genCmd.Flag("dist", "Distribution.").Default("uniform").
		Enum("uniform", "normal", "clustered", "grid")
	genLo   = genCmd.Flag("lo", "Lower coordinate bound (uniform, clustered).").Default("0").Float64()
	genHi   = genCmd.Flag("hi", "Upper coordinate bound (uniform, clustered).").Default("1000000").Float64()
	genSeed = genCmd.Flag("seed", "RNG seed; 0 selects the fixed default.").Default("0").Int64()
	genOut  = genCmd.Flag("out", "Output file (default: <petname>.tsp).").String()

	// bench
	benchCmd       = app.Command("bench", "Time repeated solves of a point file.")
	benchFile      = benchCmd.Arg("file", "NODE_COORD_SECTION file.").Required().ExistingFile()
	benchRuns      = benchCmd.Flag("runs", "Number of timed solves.").Default("10").Int()
	benchStrategy  = benchCmd.Flag("strategy", "sequential | parallel | vectorized | all.").Default("all").String()
	benchPartition = benchCmd.Flag("partition", "recursive | iterative.").Default("recursive").String()
	benchBlock     = benchCmd.Flag("block", "Brute-force block size (>= 3).").Default("128").Int()

	// render
	renderCmd  = app.Command("render", "Draw a point file and its best triple to PNG.")
	renderFile = renderCmd.Arg("file", "NODE_COORD_SECTION file.").Required().ExistingFile()
	renderOut  = renderCmd.Flag("out", "PNG path (default: FILE with .png).").String()
	renderSize = renderCmd.Flag("size", "Canvas edge in pixels.").Default("1024").Int()
	renderCat  = renderCmd.Flag("imgcat", "Print the image inline (iTerm2).").Bool()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("startriple: ")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(*color)

	var err error
	switch cmd {
	case solveCmd.FullCommand():
		err = runSolve(au)
	case genCmd.FullCommand():
		err = runGen(au)
	case benchCmd.FullCommand():
		err = runBench(au)
	case renderCmd.FullCommand():
		err = runRender(au)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// options assembles solver options from CLI names.
func options(block int, strategy, partition string, noCache bool) (startriple.Options, error) {
	opts := startriple.DefaultOptions()
	opts.BlockSize = block
	opts.DisableCache = noCache

	var err error
	if opts.Strategy, err = startriple.ParseStrategy(strategy); err != nil {
		return opts, err
	}
	if opts.Partition, err = startriple.ParsePartition(partition); err != nil {
		return opts, err
	}

	return opts, nil
}

func isTerminal(f *os.File) bool {
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
