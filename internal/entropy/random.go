// Package entropy derives deterministic random sub-streams from a single
// board seed. Generation must be exactly reproducible from the seed, so
// every consumer gets its own stream keyed by a purpose label instead of
// sharing one global source.
package entropy

import (
	"hash/fnv"
	"math/rand"
)

// SubSeed derives a secondary seed from a base seed and a purpose label.
// The same (seed, purpose) pair always yields the same value, and distinct
// purposes yield uncorrelated streams.
func SubSeed(seed int64, purpose string) int64 {
	h := fnv.New64a()
	h.Write([]byte(purpose))
	return seed ^ int64(h.Sum64())
}

// Stream returns a seeded math/rand source for the given purpose.
func Stream(seed int64, purpose string) *rand.Rand {
	return rand.New(rand.NewSource(SubSeed(seed, purpose)))
}

// CoordFloat hashes an integer coordinate pair to a float64 in [0, 1).
// Used as a last-resort height source when a noise sample comes back
// non-finite; the result depends only on the inputs.
func CoordFloat(seed int64, q, r int) float64 {
	x := uint64(seed) ^ uint64(int64(q))*0x9e3779b97f4a7c15 ^ uint64(int64(r))*0xc2b2ae3d27d4eb4f
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	// Use only 53 bits for a uniform float64 in [0, 1).
	return float64(x>>11) / float64(1<<53)
}

// CoordNoise is CoordFloat rescaled to the noise convention [-1, 1].
func CoordNoise(seed int64, q, r int) float64 {
	return CoordFloat(seed, q, r)*2.0 - 1.0
}
