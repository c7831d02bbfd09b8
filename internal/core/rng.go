package core

import "math/rand"

// RandomSource draws integers from a half-open range [min, max).
type RandomSource interface {
	Range(min, max int) int
}

// RNG is a seeded RandomSource backed by math/rand.
// The same seed always yields the same sequence.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator from the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Range returns a value in [min, max). If max <= min it returns min.
func (g *RNG) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min)
}
