// Package randutil centralises deterministic RNG construction so that all
// call sites get reproducible sequences from an int64 seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64, deriving the two 64-bit PCG seeds through a splitmix finalizer.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Stream returns an independent sub-stream for a worker index. Workers
// seeded from the same base seed with distinct indices produce
// decorrelated sequences, which keeps parallel simulation reproducible.
func Stream(seed int64, index int) *rand.Rand {
	u := uint64(seed) + uint64(index+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
