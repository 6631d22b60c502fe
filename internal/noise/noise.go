// Package noise provides the coherent-noise sources that drive terrain
// shape. Every sampler implements Source and is injected explicitly; no
// package-level noise state exists.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a seeded 2D coherent-noise sampler. Sample returns a value in
// [-1, 1] for any finite input.
type Source interface {
	Sample(x, y float64) float64
}

// Simplex wraps an opensimplex generator as a Source.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an opensimplex-backed source from a seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Sample evaluates the noise at (x, y). Output is in [-1, 1].
func (s *Simplex) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// offsetSource shifts inputs by a fixed amount before delegating. Regions
// sharing one underlying seed use distinct offsets so each gets a
// unique-looking but deterministic pattern without re-seeding.
type offsetSource struct {
	src    Source
	dx, dy float64
}

// Offset returns a derived source that adds (dx, dy) to every sample
// position before delegating to src.
func Offset(src Source, dx, dy float64) Source {
	return &offsetSource{src: src, dx: dx, dy: dy}
}

func (o *offsetSource) Sample(x, y float64) float64 {
	return o.src.Sample(x+o.dx, y+o.dy)
}

// fbmSource layers several octaves of the underlying source.
type fbmSource struct {
	src        Source
	octaves    int
	lacunarity float64
	gain       float64
}

// FBM returns a fractal source summing octaves at increasing frequency
// (×lacunarity per octave) and decreasing amplitude (×gain per octave),
// normalized back into [-1, 1]. Typical terrain use: 4–5 octaves,
// lacunarity 2.2, gain 0.55.
func FBM(src Source, octaves int, lacunarity, gain float64) Source {
	if octaves < 1 {
		octaves = 1
	}
	return &fbmSource{src: src, octaves: octaves, lacunarity: lacunarity, gain: gain}
}

func (f *fbmSource) Sample(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxVal := 0.0

	for i := 0; i < f.octaves; i++ {
		total += f.src.Sample(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= f.gain
		frequency *= f.lacunarity
	}

	return total / maxVal
}

// Constant returns a source that always yields v. Used by tests and as a
// degenerate flat-terrain source.
func Constant(v float64) Source {
	return constantSource(v)
}

type constantSource float64

func (c constantSource) Sample(x, y float64) float64 {
	return float64(c)
}

// IsFinite reports whether a sample is usable. Non-finite samples are
// recovered per-cell with a coordinate hash rather than failing generation.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
