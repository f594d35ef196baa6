// Package dataset provides seeded, reproducible input generators for the
// benchmark harness and property tests.
package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// RNG wraps a seeded random source with generators for each input shape.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Floats returns n uniform values in [0, 1).
func (r *RNG) Floats(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()
	}

	return out
}

// IntKeys returns n group keys in [0, maxKey).
func (r *RNG) IntKeys(n, maxKey int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if maxKey < 1 {
		maxKey = 1
	}

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxKey)
	}

	return out
}

// Strings returns n strings of the form "string_<i>" drawn from a pool of
// distinct values.
func (r *RNG) Strings(n, distinct int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if distinct < 1 {
		distinct = 1
	}

	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("string_%d", r.rand.Intn(distinct))
	}

	return out
}

// SortedUnique returns n distinct ascending values in [0, max).
// n is clamped to max.
func (r *RNG) SortedUnique(n, max int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > max {
		n = max
	}

	seen := make(map[int]struct{}, n)
	for len(seen) < n {
		seen[r.rand.Intn(max)] = struct{}{}
	}

	out := make([]int, 0, n)
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// RunValues returns n values grouped into runs of repeated values, averaging
// about runLen consecutive repeats. Suited to run-length encoding inputs.
func (r *RNG) RunValues(n, runLen int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if runLen < 1 {
		runLen = 1
	}

	out := make([]int64, 0, n)
	for len(out) < n {
		v := int64(r.rand.Intn(1000))
		run := 1 + r.rand.Intn(2*runLen)
		for i := 0; i < run && len(out) < n; i++ {
			out = append(out, v)
		}
	}

	return out
}
