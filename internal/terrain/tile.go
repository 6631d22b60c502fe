package terrain

import (
	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/entropy"
	"github.com/talgya/hexboard/internal/noise"
)

// Tile is one relocatable hex region: a biome rule, a noise source
// (already offset for this tile), a world offset, and the cells and
// object instances derived from them. Generation is lazy and happens
// exactly once.
type Tile struct {
	rule     biome.Rule
	src      noise.Source
	radius   int
	cellSize float64
	offsetX  float64
	offsetZ  float64
	seed     int64

	generated   bool
	cells       []*Cell
	objects     []*ObjectInstance
	waterBodies int
}

// NewTile creates an ungenerated tile. The source should already carry
// any per-tile decorrelation offset; seed feeds the object placement
// stream.
func NewTile(rule biome.Rule, src noise.Source, radius int, cellSize float64, offsetX, offsetZ float64, seed int64) *Tile {
	return &Tile{
		rule:     rule,
		src:      src,
		radius:   radius,
		cellSize: cellSize,
		offsetX:  offsetX,
		offsetZ:  offsetZ,
		seed:     seed,
	}
}

// Generate runs the tile's full pipeline: field generation, a single
// world-space translation by the tile offset, water clustering, then
// object placement on the translated cells. Calling it again is a no-op.
func (t *Tile) Generate() {
	if t.generated {
		return
	}
	t.generated = true

	t.cells = GenerateField(t.rule, t.src, t.radius, t.cellSize)
	for _, c := range t.cells {
		c.X += t.offsetX
		c.Z += t.offsetZ
	}

	t.waterBodies = ClassifyWater(t.cells, t.rule)
	t.objects = PlaceObjects(t.cells, t.rule, entropy.Stream(t.seed, "objects"))
}

// Cells returns the tile's cells, generating on first use.
func (t *Tile) Cells() []*Cell {
	t.Generate()
	return t.cells
}

// Objects returns the tile's object instances, generating on first use.
func (t *Tile) Objects() []*ObjectInstance {
	t.Generate()
	return t.objects
}

// Offset returns the tile's world offset.
func (t *Tile) Offset() (x, z float64) {
	return t.offsetX, t.offsetZ
}

// Rule returns the tile's biome rule.
func (t *Tile) Rule() biome.Rule {
	return t.rule
}

// Radius returns the tile's region radius.
func (t *Tile) Radius() int {
	return t.radius
}

// WaterBodies returns the number of water clusters kept on the tile.
func (t *Tile) WaterBodies() int {
	t.Generate()
	return t.waterBodies
}
