// Package startriple — shared types, options and sentinel errors.
package startriple

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/startriple/geom"
)

// Sentinel errors. Match with errors.Is; context may be added upstream with %w.
var (
	// ErrUnsorted indicates input not sorted ascending by X.
	ErrUnsorted = errors.New("startriple: points are not sorted by x")

	// ErrBlockSizeTooSmall indicates Options.BlockSize in [1,2] or negative.
	// A block smaller than a triple cannot be solved by brute force.
	ErrBlockSizeTooSmall = errors.New("startriple: block size must be >= 3")

	// ErrUnsupportedStrategy indicates an unknown Strategy value or name.
	ErrUnsupportedStrategy = errors.New("startriple: unsupported strategy")

	// ErrUnsupportedPartition indicates an unknown Partition value or name.
	ErrUnsupportedPartition = errors.New("startriple: unsupported partition")
)

// DefaultBlockSize is the largest partition solved by brute force when
// Options.BlockSize is zero. Values in ~100–180 perform alike.
const DefaultBlockSize = 128

// MinBlockSize is the smallest accepted block size.
const MinBlockSize = 3

// Strategy selects how the partition engine is executed.
type Strategy int

const (
	// Sequential runs the partition engine on the calling goroutine.
	Sequential Strategy = iota

	// ParallelSplit splits once at the x-midpoint, solves both halves on two
	// goroutines sharing one Tracker, then rechecks the split single-threaded.
	ParallelSplit

	// VectorizedScan is Sequential with the candidate scan done in 8-wide
	// batches (github.com/viterin/vek). Same first index, same result.
	VectorizedScan
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case ParallelSplit:
		return "parallel"
	case VectorizedScan:
		return "vectorized"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "seq":
		return Sequential, nil
	case "parallel", "parallel-split", "mt":
		return ParallelSplit, nil
	case "vectorized", "vector", "simd":
		return VectorizedScan, nil
	default:
		return 0, ErrUnsupportedStrategy
	}
}

// Partition selects the splitting scheme of the engine.
type Partition int

const (
	// Recursive splits at the positional median until a part fits a block,
	// then rechecks the strip of every split on the way back up.
	Recursive Partition = iota

	// BlockIterative solves consecutive fixed-size blocks, then sweeps every
	// block boundary with a strip recheck. No recursion.
	BlockIterative
)

// String returns the CLI name of the partition.
func (p Partition) String() string {
	switch p {
	case Recursive:
		return "recursive"
	case BlockIterative:
		return "iterative"
	default:
		return "unknown"
	}
}

// ParsePartition maps a name (case-insensitive) to a Partition.
func ParsePartition(name string) (Partition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive", "rec":
		return Recursive, nil
	case "iterative", "block-iterative", "it":
		return BlockIterative, nil
	default:
		return 0, ErrUnsupportedPartition
	}
}

// Options configures Solve.
//
// Fields:
//   - BlockSize    — brute-force threshold; 0 ⇒ DefaultBlockSize, else >= 3.
//   - Strategy     — Sequential, ParallelSplit or VectorizedScan.
//   - Partition    — Recursive or BlockIterative (each worker in ParallelSplit
//     uses it too).
//   - DisableCache — bypass the boundary-index cache. Output is identical.
type Options struct {
	BlockSize    int
	Strategy     Strategy
	Partition    Partition
	DisableCache bool
}

// DefaultOptions returns the recommended configuration:
// DefaultBlockSize, Sequential, Recursive, cache enabled.
func DefaultOptions() Options {
	return Options{
		BlockSize: DefaultBlockSize,
		Strategy:  Sequential,
		Partition: Recursive,
	}
}

// Stats reports engine activity of one solve. Informational only; the
// values depend on strategy and timing and are not part of the result.
type Stats struct {
	Blocks       int // leaf blocks solved by brute force
	Merges       int // strip rechecks that evaluated at least one candidate range
	CacheHits    int // boundary lookups answered from the cache
	CacheMisses  int // boundary lookups that ran a binary search
	Improvements int // accepted TryImprove calls
}

func (s *Stats) add(o Stats) {
	s.Blocks += o.Blocks
	s.Merges += o.Merges
	s.CacheHits += o.CacheHits
	s.CacheMisses += o.CacheMisses
}

// Result is the outcome of a solve.
//
// Indices[0] is the center, Indices[1] and Indices[2] the two leaves, all
// relative to the slice passed in. When Found is false (fewer than three
// points) Cost is +Inf and Indices/Points are zero.
type Result struct {
	Cost    float64
	Indices [3]int
	Points  [3]geom.Point
	Found   bool
	Stats   Stats
}

// NotFound is the result reported for inputs with fewer than three points.
func NotFound() Result {
	return Result{Cost: math.Inf(1)}
}

// Center returns the pivot point of the triple.
func (r Result) Center() geom.Point { return r.Points[0] }
