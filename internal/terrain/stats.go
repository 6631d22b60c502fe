package terrain

import "github.com/talgya/hexboard/internal/biome"

// BoardStats summarizes a generated board for logging and inspection.
type BoardStats struct {
	Tiles       int
	Cells       int
	WaterCells  int
	WaterBodies int

	CellsByBiome  map[biome.Kind]int
	ObjectsByKind map[ObjectKind]int
}

// Stats walks the board (generating it if needed) and tallies cells,
// water, and placed objects.
func (b *Board) Stats() BoardStats {
	s := BoardStats{
		Tiles:         len(b.tiles),
		CellsByBiome:  make(map[biome.Kind]int),
		ObjectsByKind: make(map[ObjectKind]int),
	}

	for _, t := range b.tiles {
		s.WaterBodies += t.WaterBodies()
		for _, c := range t.Cells() {
			s.Cells++
			s.CellsByBiome[c.Biome]++
			if c.IsWater {
				s.WaterCells++
			}
		}
		for _, o := range t.Objects() {
			s.ObjectsByKind[o.Kind]++
		}
	}
	return s
}
