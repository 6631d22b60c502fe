package terrain

import (
	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/hexgrid"
)

// ClassifyWater flood-fills connected water-candidate cells and promotes
// clusters of at least rule.WaterMinCluster to water: flattened height
// below the biome floor and the biome's fixed water color. Smaller
// clusters are demoted — IsWater stays false and the candidate flag is
// cleared, so a second run finds nothing left to do. Cells that were
// never candidates are never touched.
//
// Returns the number of water bodies created.
func ClassifyWater(cells []*Cell, rule biome.Rule) int {
	byCoord := make(map[hexgrid.Coord]*Cell, len(cells))
	for _, c := range cells {
		byCoord[c.Coord] = c
	}

	visited := make(map[hexgrid.Coord]bool, len(cells))
	bodies := 0

	for _, c := range cells {
		if !c.WaterCandidate || visited[c.Coord] {
			continue
		}

		// BFS over candidate-adjacent cells. Traversal order does not
		// matter; only the final membership of the cluster does.
		cluster := []*Cell{c}
		visited[c.Coord] = true
		for i := 0; i < len(cluster); i++ {
			for _, nc := range cluster[i].Coord.Neighbors() {
				n := byCoord[nc]
				if n == nil || !n.WaterCandidate || visited[n.Coord] {
					continue
				}
				visited[n.Coord] = true
				cluster = append(cluster, n)
			}
		}

		if len(cluster) >= rule.WaterMinCluster {
			level := rule.HeightMin - rule.WaterLevelDrop
			for _, m := range cluster {
				m.IsWater = true
				m.Height = level
				m.Color = rule.WaterColor
			}
			bodies++
		} else {
			// Too small to read as water — demote the false positives.
			for _, m := range cluster {
				m.IsWater = false
				m.WaterCandidate = false
			}
		}
	}

	return bodies
}
