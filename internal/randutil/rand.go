// Package randutil builds the seeded random sources the engine and tools
// inject. Every source is a PCG generator from math/rand/v2, so a seed
// always replays the same shuffles.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a generator seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	return Derive(seed, 0)
}

// Derive returns the generator for one of several independent streams
// sharing a seed, such as the tables of a simulation. Stream 0 is New(seed).
func Derive(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) + stream*goldenRatio64*2
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finaliser; it spreads nearby seeds across the
// whole 64-bit space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
