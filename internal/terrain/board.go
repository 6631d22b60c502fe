package terrain

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/entropy"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/noise"
)

// noiseDecorrelation scales a tile's world position into a noise-space
// offset, so same-biome tiles sharing one base seed never look identical.
const noiseDecorrelation = 997.0

// BoardConfig holds board generation parameters.
type BoardConfig struct {
	Seed     int64   // Random seed (0 = random)
	Radius   int     // Per-tile region radius
	CellSize float64 // Hex circumradius in world units

	// Fractal noise shape for the shared height field.
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// DefaultBoardConfig returns a reasonable starting configuration.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Radius:     8,
		CellSize:   1.0,
		Octaves:    4,
		Lacunarity: 2.2,
		Gain:       0.55,
	}
}

// SmallTestConfig returns a tiny board setup for rapid iteration.
func SmallTestConfig() BoardConfig {
	return BoardConfig{
		Seed:       42,
		Radius:     3,
		CellSize:   1.0,
		Octaves:    4,
		Lacunarity: 2.2,
		Gain:       0.55,
	}
}

// Placement declares where a tile goes and, optionally, which biome it
// uses. An empty Biome is auto-assigned so counts stay balanced across
// the board.
type Placement struct {
	X     float64
	Z     float64
	Biome string
}

// Board composes tiles at caller-specified world positions and exposes
// their cells and objects as one aggregate. It owns the tiles; cells and
// instances stay owned by their tile and are shared by reference.
type Board struct {
	seed  int64
	tiles []*Tile

	boundsValid bool
	bounds      Bounds
}

// Bounds is the axis-aligned extent of the board on the ground plane.
type Bounds struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// NewBoard builds the board's tiles from the placements. Placements with
// no biome (or an unknown biome name) receive balanced assignments: each
// available biome is used floor(n/k) or ceil(n/k) times, shuffled
// deterministically from the seed. Tiles are not generated yet; they
// generate lazily on first access (or via GenerateAll).
func NewBoard(cfg BoardConfig, placements []Placement) *Board {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	base := noise.FBM(noise.NewSimplex(seed), cfg.Octaves, cfg.Lacunarity, cfg.Gain)
	rules := resolveBiomes(placements, seed)

	b := &Board{seed: seed}
	for i, p := range placements {
		src := noise.Offset(base, p.X*noiseDecorrelation, p.Z*noiseDecorrelation)
		tileSeed := entropy.SubSeed(seed, fmt.Sprintf("tile:%d", i))
		b.tiles = append(b.tiles, NewTile(rules[i], src, cfg.Radius, cfg.CellSize, p.X, p.Z, tileSeed))
	}
	return b
}

// resolveBiomes maps each placement to a rule. Explicit known names are
// honored; everything else draws from a balanced, seed-shuffled list.
func resolveBiomes(placements []Placement, seed int64) []biome.Rule {
	rules := make([]biome.Rule, len(placements))
	var unassigned []int

	for i, p := range placements {
		if p.Biome == "" {
			unassigned = append(unassigned, i)
			continue
		}
		r, ok := biome.ByName(p.Biome)
		if !ok {
			slog.Warn("unknown biome name, assigning from balance list",
				"biome", p.Biome, "placement", i)
			unassigned = append(unassigned, i)
			continue
		}
		rules[i] = r
	}

	balance := balancedRules(len(unassigned), seed)
	for j, i := range unassigned {
		if j < len(balance) {
			rules[i] = balance[j]
		} else {
			rules[i] = biome.Default()
		}
	}
	return rules
}

// balancedRules builds n rule picks where biome counts differ by at most
// one, in seed-deterministic shuffled order.
func balancedRules(n int, seed int64) []biome.Rule {
	all := biome.All()
	if n == 0 || len(all) == 0 {
		return nil
	}

	out := make([]biome.Rule, 0, n)
	for len(out) < n {
		remaining := n - len(out)
		if remaining >= len(all) {
			out = append(out, all...)
			continue
		}
		out = append(out, all[:remaining]...)
	}

	rng := entropy.Stream(seed, "biome-balance")
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Seed returns the board's effective seed.
func (b *Board) Seed() int64 {
	return b.seed
}

// Tiles returns the board's tiles.
func (b *Board) Tiles() []*Tile {
	return b.tiles
}

// GenerateAll forces generation of every tile.
func (b *Board) GenerateAll() {
	for _, t := range b.tiles {
		t.Generate()
	}
}

// AllCells concatenates every tile's cells. The cells themselves are
// shared, not copied.
func (b *Board) AllCells() []*Cell {
	var out []*Cell
	for _, t := range b.tiles {
		out = append(out, t.Cells()...)
	}
	return out
}

// AllObjects concatenates every tile's object instances.
func (b *Board) AllObjects() []*ObjectInstance {
	var out []*ObjectInstance
	for _, t := range b.tiles {
		out = append(out, t.Objects()...)
	}
	return out
}

// BoundingBox returns the board extent, computed once from each tile's
// offset plus its region's effective radius and cached.
func (b *Board) BoundingBox() Bounds {
	if b.boundsValid {
		return b.bounds
	}
	b.boundsValid = true

	if len(b.tiles) == 0 {
		return b.bounds
	}

	first := true
	for _, t := range b.tiles {
		// Widest extent of a filled hex region: radius steps of
		// size*sqrt(3) between centers, plus the outer cell itself.
		reach := (float64(t.radius) + 1.0) * t.cellSize * hexgrid.Sqrt3
		ox, oz := t.Offset()
		minX, maxX := ox-reach, ox+reach
		minZ, maxZ := oz-reach, oz+reach

		if first {
			b.bounds = Bounds{MinX: minX, MinZ: minZ, MaxX: maxX, MaxZ: maxZ}
			first = false
			continue
		}
		if minX < b.bounds.MinX {
			b.bounds.MinX = minX
		}
		if minZ < b.bounds.MinZ {
			b.bounds.MinZ = minZ
		}
		if maxX > b.bounds.MaxX {
			b.bounds.MaxX = maxX
		}
		if maxZ > b.bounds.MaxZ {
			b.bounds.MaxZ = maxZ
		}
	}
	return b.bounds
}
