package game

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness seam used by every engine. *rand.Rand from
// math/rand/v2 satisfies it; tests may supply scripted sequences.
type Rand interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed draws from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// shuffle is an in-place Fisher-Yates driven by r.
func shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// sample draws up to k distinct elements of s uniformly, leaving s untouched.
func sample[T any](r Rand, s []T, k int) []T {
	pool := append([]T(nil), s...)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
