package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source provides the uniform draws every game outcome is derived from.
// Injecting it keeps the outcome engines deterministic under test.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// Intn returns a uniform draw in [0, n).
	Intn(n int) int

	// Perm returns a uniform random permutation of [0, n).
	Perm(n int) []int
}

// lockedSource wraps math/rand with a mutex so a single Source can be
// shared by handlers running on different connections.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Source seeded from the current time.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a Source with a fixed seed for reproducible runs.
func NewSeeded(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *lockedSource) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}

// Sequence is a test Source that replays a fixed list of draws.
// Float64 pops from Floats, Intn pops from Ints (modulo n as a guard),
// and Perm returns the identity permutation unless Perms are queued.
type Sequence struct {
	Floats []float64
	Ints   []int
	Perms  [][]int
}

func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *Sequence) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if n > 0 {
		v = v % n
	}
	return v
}

func (s *Sequence) Perm(n int) []int {
	if len(s.Perms) > 0 {
		p := s.Perms[0]
		s.Perms = s.Perms[1:]
		return p
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
