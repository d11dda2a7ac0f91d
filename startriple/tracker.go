// Package startriple — best-state tracker.
//
// Tracker holds the incumbent (cost, center, p, q). The only update rule is
// strict improvement: a candidate replaces the incumbent iff its cost is
// strictly lower. Equal costs never substitute, so the first optimal triple
// met under the traversal order is the one reported.
//
// Concurrency:
//   - Cost() is a lock-free atomic load of the float bits; hot loops call it
//     for pruning. The value only ever decreases.
//   - TryImprove compares and updates under the write lock; Read snapshots
//     under the read lock, so (cost, indices) are always mutually consistent.
package startriple

import (
	"math"
	"sync"
	"sync/atomic"
)

// Tracker is the best-state tracker shared by every part of one solve.
// Use NewTracker; the zero value is not ready for use.
type Tracker struct {
	mu       sync.RWMutex
	bits     atomic.Uint64 // math.Float64bits of the current best cost
	indices  [3]int        // center, p, q of the incumbent
	found    bool
	accepted int
}

// NewTracker returns a tracker with cost +Inf and no triple.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.bits.Store(math.Float64bits(math.Inf(1)))

	return t
}

// Cost returns the current best cost (+Inf before the first improvement).
func (t *Tracker) Cost() float64 {
	return math.Float64frombits(t.bits.Load())
}

// TryImprove records (center, p, q) iff cost < Cost(). It reports whether
// the incumbent was replaced. NaN never improves.
//
// Complexity: O(1); takes the write lock only for plausible candidates.
func (t *Tracker) TryImprove(cost float64, center, p, q int) bool {
	// Cheap rejection without the lock; most callers pre-filter anyway.
	if !(cost < t.Cost()) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Re-check: another worker may have improved in between.
	if !(cost < t.Cost()) {
		return false
	}
	t.indices = [3]int{center, p, q}
	t.found = true
	t.accepted++
	t.bits.Store(math.Float64bits(cost))

	return true
}

// Read returns a consistent snapshot of (cost, indices, found).
func (t *Tracker) Read() (float64, [3]int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.Cost(), t.indices, t.found
}

// Accepted returns how many improvements were recorded.
func (t *Tracker) Accepted() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.accepted
}
