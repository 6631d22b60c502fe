// Package terrain builds hex terrain boards: it generates the cell field
// for a region, reclassifies connected low-lying cells into water bodies,
// scatters decorative objects, and composes relocatable tiles into a
// board. All randomness flows in through injected noise sources and
// seeded streams; a board is exactly reproducible from its seed.
package terrain

import (
	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/hexgrid"
)

// Cell is one hex of a tile. Cells are created by the field generator,
// adjusted by the water detector and the object placer during a tile's
// generation pass, and read-only afterwards. Each cell belongs to exactly
// one tile; board-level aggregation shares the pointers.
type Cell struct {
	Coord hexgrid.Coord `json:"coord"`

	// World-space center. Set at creation from the hex projection, then
	// translated exactly once when the owning tile is placed.
	X float64 `json:"x"`
	Z float64 `json:"z"`

	// Logical height within the biome's range; water cells sit at a
	// fixed offset below it.
	Height float64 `json:"height"`

	Color biome.RGB  `json:"color"`
	Biome biome.Kind `json:"biome"`

	// WaterCandidate is set by the biome's shading pass; IsWater only by
	// the cluster detector, and only on candidates.
	WaterCandidate bool `json:"-"`
	IsWater        bool `json:"water"`

	// Occupied is set by the first object kind to claim the cell and
	// never cleared within a generation pass.
	Occupied bool `json:"-"`
}
