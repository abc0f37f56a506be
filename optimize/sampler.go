// SPDX-License-Identifier: MIT
package optimize

import (
	"math"
	"math/rand"
	"sync"

	"github.com/dmaksimov/hilbertcluster/point"
	"github.com/dmaksimov/hilbertcluster/rngutil"
)

// sampleFloor is the minimum sample size used once the full population
// exceeds it, per the design notes' "floored at 2000 for N>2000".
const sampleFloor = 2000

// sampler draws subsamples of a fixed point population and tracks sample
// sizes that have already produced a rejected (implausibly low) estimate,
// so the search never retries a size it already knows is too small.
type sampler struct {
	full []*point.Point

	mu       sync.Mutex
	rejected map[int]bool
}

func newSampler(full []*point.Point) *sampler {
	return &sampler{full: full, rejected: make(map[int]bool)}
}

// sizeFor computes a sample size S such that S*khat/N >= 100, floored at
// sampleFloor once the full population exceeds it.
func (s *sampler) sizeFor(khat int) int {
	n := len(s.full)
	if khat <= 0 {
		khat = 1
	}
	needed := int(math.Ceil(100 * float64(n) / float64(khat)))
	if needed > n {
		needed = n
	}
	if n > sampleFloor && needed < sampleFloor {
		needed = sampleFloor
	}
	return needed
}

// draw returns a deterministic subsample of the given size without
// replacement, using rng. size is clamped to the population.
func (s *sampler) draw(size int, rng *rand.Rand) []*point.Point {
	if size >= len(s.full) {
		out := make([]*point.Point, len(s.full))
		copy(out, s.full)
		return out
	}
	idx := rngutil.PermRange(len(s.full), rng)
	out := make([]*point.Point, size)
	for i := 0; i < size; i++ {
		out[i] = s.full[idx[i]]
	}
	return out
}

// grow records that size produced a rejected estimate and returns the next
// size to try: min(N, 1.5*size).
func (s *sampler) grow(size int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected[size] = true
	next := int(math.Ceil(1.5 * float64(size)))
	if next > len(s.full) {
		next = len(s.full)
	}
	return next
}

// wasRejected reports whether size has already produced a rejected
// estimate in this search.
func (s *sampler) wasRejected(size int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejected[size]
}
