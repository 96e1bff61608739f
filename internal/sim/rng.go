package sim

import "math/rand/v2"

// RandomSource supplies uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }

// DefaultRNG returns the process-wide, randomly seeded source.
func DefaultRNG() RandomSource { return globalRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source for tests and headless runs.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// IntN returns a uniform integer in [0, n) drawn from rng.
func IntN(rng RandomSource, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance reports whether a draw from rng falls below p.
func Chance(rng RandomSource, p float64) bool {
	return rng.Float64() < p
}
