package engine

import (
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the source of randomness the engine draws from. *rand.Rand from
// math/rand/v2 satisfies it. Implementations need not be safe for
// concurrent use; callers hand each generation its own source.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// KeyedRand derives a generator from a base seed and a search key, so the
// same key under the same seed always yields the same flights.
func KeyedRand(seed int64, key string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return NewRand(uint64(seed) ^ h.Sum64())
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
