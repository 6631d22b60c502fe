package terrain

import (
	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/noise"
)

// GenerateField builds all cells of a filled hex region of the given
// radius. Heights come from the rule's height function, colors and water
// candidacy from its shading function; no cell reads another cell's
// state, so the output depends only on the rule, the source, and the
// enumeration order of hexgrid.Range.
//
// A negative or zero radius is not an error: radius 0 produces the lone
// origin cell, radius < 0 an empty field.
func GenerateField(rule biome.Rule, src noise.Source, radius int, cellSize float64) []*Cell {
	coords := hexgrid.Range(radius)
	cells := make([]*Cell, 0, len(coords))

	for _, c := range coords {
		x, z := hexgrid.ToWorld(c, cellSize)
		h := rule.Height(c, x, z, src)

		cell := &Cell{
			Coord:  c,
			X:      x,
			Z:      z,
			Height: h,
			Biome:  rule.Kind,
		}

		sh := rule.Shade(h, x, z, src)
		cell.Color = sh.Color
		cell.WaterCandidate = sh.WaterCandidate

		cells = append(cells, cell)
	}

	return cells
}
