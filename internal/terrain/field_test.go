package terrain

import (
	"testing"

	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/noise"
)

// testRule builds a minimal rule for generator tests; production rules
// live in the biome package table.
func testRule(min, max float64, minCluster int) biome.Rule {
	return biome.Rule{
		Kind:             biome.Grass,
		Name:             "test",
		HeightMin:        min,
		HeightMax:        max,
		HeightNoiseScale: 0.1,
		VarianceScale:    0.3,
		VarianceAmount:   0.02,
		Bands: []biome.ColorBand{
			{UpTo: 1.0, Color: biome.RGB{R: 0.5, G: 0.6, B: 0.4}},
		},
		WaterThreshold:  0.15,
		WaterMinCluster: minCluster,
		WaterLevelDrop:  0.3,
		WaterColor:      biome.RGB{R: 0.2, G: 0.4, B: 0.6},
	}
}

func TestGenerateField_Radius2Produces19Cells(t *testing.T) {
	cells := GenerateField(testRule(1, 3, 6), noise.NewSimplex(11), 2, 1.0)
	if len(cells) != 19 {
		t.Fatalf("radius 2 produced %d cells, want 19", len(cells))
	}

	seen := make(map[hexgrid.Coord]bool)
	for _, c := range cells {
		if seen[c.Coord] {
			t.Fatalf("duplicate coord %v", c.Coord)
		}
		seen[c.Coord] = true
	}
}

func TestGenerateField_ZeroNoiseHeights(t *testing.T) {
	// Constant zero noise normalizes to 0.5, which lands every cell at
	// round(1 + 0.5*(3-1)) == 2.
	cells := GenerateField(testRule(1, 3, 6), noise.Constant(0), 2, 1.0)
	if len(cells) != 19 {
		t.Fatalf("got %d cells, want 19", len(cells))
	}
	for _, c := range cells {
		if c.Height != 2.0 {
			t.Fatalf("cell %v height = %f, want 2.0", c.Coord, c.Height)
		}
		if c.WaterCandidate {
			t.Fatalf("midpoint cell %v marked as water candidate", c.Coord)
		}
	}
}

func TestGenerateField_HeightsWithinRange(t *testing.T) {
	rule := testRule(1, 5, 6)
	for _, c := range GenerateField(rule, noise.NewSimplex(3), 5, 1.0) {
		if c.Height < rule.HeightMin || c.Height > rule.HeightMax {
			t.Fatalf("cell %v height %f outside [%f, %f]",
				c.Coord, c.Height, rule.HeightMin, rule.HeightMax)
		}
	}
}

func TestGenerateField_Deterministic(t *testing.T) {
	rule := testRule(1, 4, 6)
	a := GenerateField(rule, noise.NewSimplex(321), 3, 1.0)
	b := GenerateField(rule, noise.NewSimplex(321), 3, 1.0)
	if len(a) != len(b) {
		t.Fatalf("cell counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Coord != b[i].Coord || a[i].Height != b[i].Height {
			t.Fatalf("cell %d differs: %v/%f vs %v/%f",
				i, a[i].Coord, a[i].Height, b[i].Coord, b[i].Height)
		}
		if a[i].WaterCandidate != b[i].WaterCandidate {
			t.Fatalf("cell %d water candidacy differs", i)
		}
	}
}

func TestGenerateField_EmptyRegion(t *testing.T) {
	if cells := GenerateField(testRule(1, 3, 6), noise.Constant(0), -1, 1.0); len(cells) != 0 {
		t.Fatalf("negative radius produced %d cells", len(cells))
	}
	cells := GenerateField(testRule(1, 3, 6), noise.Constant(0), 0, 1.0)
	if len(cells) != 1 {
		t.Fatalf("radius 0 produced %d cells, want 1", len(cells))
	}
	if cells[0].Coord != (hexgrid.Coord{Q: 0, R: 0}) {
		t.Fatalf("radius 0 cell at %v, want origin", cells[0].Coord)
	}
}

func TestGenerateField_WorldPositions(t *testing.T) {
	const size = 2.0
	for _, c := range GenerateField(testRule(1, 3, 6), noise.Constant(0), 2, size) {
		x, z := hexgrid.ToWorld(c.Coord, size)
		if c.X != x || c.Z != z {
			t.Fatalf("cell %v at (%f, %f), want (%f, %f)", c.Coord, c.X, c.Z, x, z)
		}
	}
}
