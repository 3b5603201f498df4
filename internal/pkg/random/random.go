package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields the random values the mock collaborators draw from
// (weather snapshots, closure probability, share tokens, itinerary
// variation). Keeping it behind an interface lets tests inject fixed
// sequences instead of patching global state.
type Source interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded deterministically. Two sources built
// from the same seed produce the same sequence.
func NewSource(seed uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NewTimeSource returns a Source seeded from the current time.
func NewTimeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
