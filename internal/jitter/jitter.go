// Package jitter draws the bounded random offsets used for trigger timing,
// grain length variance and phasor wobble.
package jitter

import "math/rand/v2"

// seedStream is the fixed PCG stream selector; the caller only picks the
// seed.
const seedStream = 0x9e3779b97f4a7c15

// Source is a deterministic random source. It is not safe for concurrent
// use; each engine owns its own.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed. Equal seeds give equal sequences.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seedStream))}
}

// HalfRange returns a uniform integer in [-r, r]. A non-positive r yields 0.
func (s *Source) HalfRange(r int64) int64 {
	if r <= 0 {
		return 0
	}
	return s.rng.Int64N(2*r+1) - r
}

// Bipolar returns a uniform value in [-1, 1).
func (s *Source) Bipolar() float64 {
	return 2*s.rng.Float64() - 1
}
