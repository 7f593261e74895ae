// Package rng provides the single random number generator owned by a
// simulation run. Every generator and system draws from the same instance so
// a seed reproduces a whole run.
package rng

import "math/rand"

// RNG wraps math/rand.Rand and counts draws.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Range returns an integer in [min, max). If max <= min it returns min.
func (r *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	r.pos++
	return min + r.src.Intn(max-min)
}

// Index returns a random index into a collection of length n, which must be
// positive.
func (r *RNG) Index(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// CoinFlip returns true half of the time.
func (r *RNG) CoinFlip() bool {
	return r.Range(0, 2) == 1
}

// WeightedSelect returns an index chosen by weighted random selection.
// weights must be non-empty with a positive total.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r.pos++
	roll := r.src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
