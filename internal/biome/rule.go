// Package biome defines the terrain policies of the board. A biome is pure
// configuration — height range, color bands, object densities, water
// tuning — plus two pure functions deriving a cell's height and shading
// from an injected noise source. Rules are created once and shared
// read-only by every tile that uses them.
package biome

import (
	"math"

	"github.com/talgya/hexboard/internal/entropy"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/noise"
)

// Kind identifies a biome. The set is closed; cells carry a Kind tag
// rather than a pointer back into rule state.
type Kind uint8

const (
	Grass  Kind = iota // Rolling meadows — grazing land
	Forest             // Dense tree cover
	Rock               // High peaks, sparse growth
	Clay               // Badlands terraces
	Desert             // Dunes with rare oases
	Wheat              // Cultivated plains
)

// RGB is a color with channels in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorBand maps normalized heights up to UpTo onto a color. Bands are
// checked in order; the last band should have UpTo = 1.
type ColorBand struct {
	UpTo  float64
	Color RGB
}

// Zone restricts object placement to a normalized-height window.
// The zero value imposes no restriction.
type Zone struct {
	Min, Max float64
}

// Allows reports whether a normalized height falls inside the zone.
func (z Zone) Allows(t float64) bool {
	if z.Min == 0 && z.Max == 0 {
		return true
	}
	return t >= z.Min && t <= z.Max
}

// Densities holds per-cell placement probabilities for each object kind.
type Densities struct {
	Tree   float64 `yaml:"tree"`
	Crop   float64 `yaml:"crop"`
	Grazer float64 `yaml:"grazer"`
}

// Rule is one biome's full configuration. Immutable after construction.
type Rule struct {
	Kind Kind
	Name string

	// Logical height range for land cells. Water sits below HeightMin.
	HeightMin float64
	HeightMax float64

	// Noise sampling frequency for the height field.
	HeightNoiseScale float64

	// Color variance channel: sampling frequency and amplitude of the
	// per-cell jitter applied on top of the band color.
	VarianceScale  float64
	VarianceAmount float64

	Bands []ColorBand

	Densities  Densities
	TreeZone   Zone
	CropZone   Zone
	GrazerZone Zone

	// Cells whose normalized height falls below WaterThreshold become
	// water candidates. Candidate clusters of at least WaterMinCluster
	// cells are flattened to HeightMin - WaterLevelDrop and painted
	// WaterColor. Both knobs vary per biome.
	WaterThreshold  float64
	WaterMinCluster int
	WaterLevelDrop  float64
	WaterColor      RGB
}

// Span returns the height range width.
func (r Rule) Span() float64 {
	return r.HeightMax - r.HeightMin
}

// Normalized maps a height back to [0, 1] within the rule's range.
func (r Rule) Normalized(h float64) float64 {
	span := r.Span()
	if span <= 0 {
		return 0
	}
	t := (h - r.HeightMin) / span
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Height derives the cell height at an axial coordinate whose center
// projects to world (x, z). The noise sample is normalized from [-1, 1]
// into the rule's height range and quantized to 0.1 logical units. A
// non-finite sample falls back to a hash of the coordinate, so generation
// always completes.
func (r Rule) Height(c hexgrid.Coord, x, z float64, src noise.Source) float64 {
	n := src.Sample(x*r.HeightNoiseScale, z*r.HeightNoiseScale)
	if !noise.IsFinite(n) {
		n = entropy.CoordNoise(int64(r.Kind), c.Q, c.R)
	}
	t := (n + 1.0) / 2.0
	h := quantize(r.HeightMin + t*r.Span())
	if h < r.HeightMin {
		h = r.HeightMin
	}
	if h > r.HeightMax {
		h = r.HeightMax
	}
	return h
}

// Shading is the result of the color pass: the cell color plus whether
// the cell is a candidate for water reclassification. Candidacy is
// decided here because the low-water threshold is biome-specific, but
// actual water status belongs to the cluster detector.
type Shading struct {
	Color          RGB
	WaterCandidate bool
}

// Shade derives a cell's shading from its height and world position.
// The variance channel samples the noise source at a decorrelated
// frequency so color jitter never feeds back into height.
func (r Rule) Shade(height, x, z float64, src noise.Source) Shading {
	t := r.Normalized(height)

	base := r.Bands[len(r.Bands)-1].Color
	for _, band := range r.Bands {
		if t <= band.UpTo {
			base = band.Color
			break
		}
	}

	jitter := src.Sample(x*r.VarianceScale+311.7, z*r.VarianceScale-173.3)
	if !noise.IsFinite(jitter) {
		jitter = 0
	}
	jitter *= r.VarianceAmount

	return Shading{
		Color: RGB{
			R: clamp01(base.R + jitter),
			G: clamp01(base.G + jitter),
			B: clamp01(base.B + jitter),
		},
		WaterCandidate: t < r.WaterThreshold,
	}
}

// quantize rounds to the nearest 0.1 logical height unit.
func quantize(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
