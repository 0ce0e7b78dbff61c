// Package rng holds the seeded random sources used by the layout builders,
// the level generator and the repair pipeline. Nothing here reads the clock.
//
// A *rand.Rand is not safe for concurrent use. Stream gives every level its
// own source so results depend on the seed and the level ID only.
package rng

import "math/rand"

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// FromSeed returns a source seeded with seed, or with DefaultSeed when seed
// is 0.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// golden is the 64-bit golden-ratio increment of the splitmix64 sequence.
const golden = 0x9e3779b97f4a7c15

// Stream returns the source for level id under seed. The result is a pure
// function of (seed, id); a zero seed is read as DefaultSeed.
func Stream(seed int64, id uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	z := uint64(seed) + (id+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return rand.New(rand.NewSource(int64(z)))
}

// IntBetween returns a uniform integer in [lo, hi], or lo when hi <= lo.
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Shuffle permutes a in place. A nil r uses the DefaultSeed source.
func Shuffle[T any](r *rand.Rand, a []T) {
	if len(a) <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
