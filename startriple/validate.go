// Package startriple - validation utilities run before any solve.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     and geom (wrapped with %w where an index helps the caller).
//   - O(n) worst case; nothing here allocates.
package startriple

import (
	"fmt"

	"github.com/katalvlaran/startriple/geom"
)

// validateOptions checks Options in isolation and returns the effective
// block size (0 is replaced by DefaultBlockSize).
//
// Complexity: O(1).
func validateOptions(opts Options) (int, error) {
	var block = opts.BlockSize
	if block == 0 {
		block = DefaultBlockSize
	}
	if block < MinBlockSize {
		return 0, ErrBlockSizeTooSmall
	}

	switch opts.Strategy {
	case Sequential, ParallelSplit, VectorizedScan:
		// ok
	default:
		return 0, ErrUnsupportedStrategy
	}

	switch opts.Partition {
	case Recursive, BlockIterative:
		// ok
	default:
		return 0, ErrUnsupportedPartition
	}

	return block, nil
}

// validatePoints enforces the solve preconditions: finite coordinates
// (geom.ErrNonFinite) first, then ascending X order (ErrUnsorted).
//
// Complexity: O(n).
func validatePoints(points []geom.Point) error {
	if err := geom.Validate(points); err != nil {
		return err
	}

	var i int
	for i = 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			return fmt.Errorf("index %d: %w", i, ErrUnsorted)
		}
	}

	return nil
}
