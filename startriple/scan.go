// Package startriple — candidate scan.
//
// Inside the block solver, the partner j of a point i is found by scanning
// forward for the first index whose y lies strictly within the current best
// cost of y_i. Two interchangeable scanners implement it:
//
//   - scalarScan — one comparison per step.
//   - vectorScan — 8 candidates per step through github.com/viterin/vek
//     (SIMD when the CPU supports it), then a scalar tail.
//
// Both return the SAME first qualifying index: the batch only decides
// whether a lane of 8 contains a hit, the hit itself is picked by lane order.
// Traversal order, and with it the tie-break of equal costs, is unchanged.
package startriple

import (
	"math"

	"github.com/viterin/vek"
)

// laneWidth is the batch size of vectorScan.
const laneWidth = 8

// candidateScanner finds the first k in [from, to) with |ys[k]-y| < d and
// returns to when there is none.
type candidateScanner interface {
	next(ys []float64, from, to int, y, d float64) int
}

// scalarScan is the reference linear scan.
type scalarScan struct{}

func (scalarScan) next(ys []float64, from, to int, y, d float64) int {
	var k int
	for k = from; k < to; k++ {
		if math.Abs(ys[k]-y) < d {
			return k
		}
	}

	return to
}

// vectorScan batches the comparison. The scratch buffers make it
// single-goroutine; every engine owns its own instance.
type vectorScan struct {
	diff [laneWidth]float64
	mask [laneWidth]bool
}

func newVectorScan() *vectorScan { return &vectorScan{} }

func (v *vectorScan) next(ys []float64, from, to int, y, d float64) int {
	var (
		k    int
		lane int
		diff = v.diff[:]
		mask = v.mask[:]
	)

	for k = from; k+laneWidth <= to; k += laneWidth {
		// |ys[k:k+8] - y| < d, lane-wise.
		vek.SubNumber_Into(diff, ys[k:k+laneWidth], y)
		vek.Abs_Inplace(diff)
		vek.LtNumber_Into(mask, diff, d)
		if !vek.Any(mask) {
			continue
		}
		for lane = 0; lane < laneWidth; lane++ {
			if mask[lane] {
				return k + lane
			}
		}
	}

	// Tail shorter than one lane.
	for ; k < to; k++ {
		if math.Abs(ys[k]-y) < d {
			return k
		}
	}

	return to
}
