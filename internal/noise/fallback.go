package noise

import "github.com/talgya/hexboard/internal/entropy"

// Hash is a self-contained value-noise Source built on coordinate hashing.
// It exists so the generator never depends on an external noise library
// being present: anything accepting a Source can run on it, and its output
// is exactly reproducible from the seed.
type Hash struct {
	seed int64
}

// NewHash creates a hash-based fallback source from a seed.
func NewHash(seed int64) *Hash {
	return &Hash{seed: seed}
}

// Sample evaluates smoothed lattice noise at (x, y). Output is in [-1, 1].
func (h *Hash) Sample(x, y float64) float64 {
	x0 := floor(x)
	y0 := floor(y)
	tx := fade(x - float64(x0))
	ty := fade(y - float64(y0))

	v00 := entropy.CoordNoise(h.seed, x0, y0)
	v10 := entropy.CoordNoise(h.seed, x0+1, y0)
	v01 := entropy.CoordNoise(h.seed, x0, y0+1)
	v11 := entropy.CoordNoise(h.seed, x0+1, y0+1)

	return lerp(ty, lerp(tx, v00, v10), lerp(tx, v01, v11))
}

// fade applies the smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func floor(v float64) int {
	i := int(v)
	if v < float64(i) {
		i--
	}
	return i
}
