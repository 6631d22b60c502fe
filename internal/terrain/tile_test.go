package terrain

import (
	"testing"

	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/noise"
)

func TestTile_GenerateIdempotent(t *testing.T) {
	tile := NewTile(testRule(1, 3, 6), noise.NewSimplex(8), 2, 1.0, 0, 0, 8)

	first := tile.Cells()
	tile.Generate()
	second := tile.Cells()

	if len(first) != 19 {
		t.Fatalf("got %d cells, want 19", len(first))
	}
	if &first[0] != &second[0] || len(first) != len(second) {
		t.Fatal("repeated generation replaced the cell set")
	}

	objsA := tile.Objects()
	objsB := tile.Objects()
	if len(objsA) != len(objsB) {
		t.Fatal("repeated access changed the object set")
	}
}

func TestTile_TranslatesExactlyOnce(t *testing.T) {
	const ox, oz = 10.0, -5.0
	tile := NewTile(testRule(1, 3, 6), noise.Constant(0), 2, 1.0, ox, oz, 1)

	for _, c := range tile.Cells() {
		wx, wz := hexgrid.ToWorld(c.Coord, 1.0)
		if c.X != wx+ox || c.Z != wz+oz {
			t.Fatalf("cell %v at (%f, %f), want (%f, %f)",
				c.Coord, c.X, c.Z, wx+ox, wz+oz)
		}
	}

	// A second pass through the accessors must not translate again.
	for _, c := range tile.Cells() {
		wx, wz := hexgrid.ToWorld(c.Coord, 1.0)
		if c.X != wx+ox || c.Z != wz+oz {
			t.Fatalf("cell %v translated twice", c.Coord)
		}
	}
}

func TestTile_ObjectsSitOnTranslatedCells(t *testing.T) {
	rule := testRule(1, 3, 6)
	rule.Densities = biome.Densities{Tree: 1.0}
	tile := NewTile(rule, noise.Constant(0), 1, 1.0, 100, 200, 3)

	cells := tile.Cells()
	anchors := make(map[[2]float64]bool, len(cells))
	for _, c := range cells {
		anchors[[2]float64{c.X, c.Z}] = true
	}
	for _, o := range tile.Objects() {
		if !anchors[[2]float64{o.X, o.Z}] {
			t.Fatalf("object at (%f, %f) not anchored on a tile cell", o.X, o.Z)
		}
	}
}

func TestTile_Accessors(t *testing.T) {
	rule := testRule(1, 3, 6)
	tile := NewTile(rule, noise.Constant(0), 0, 1.0, 7, 9, 2)

	if x, z := tile.Offset(); x != 7 || z != 9 {
		t.Fatalf("offset (%f, %f), want (7, 9)", x, z)
	}
	if tile.Rule().Name != rule.Name {
		t.Fatal("rule accessor mismatch")
	}
	if tile.Radius() != 0 {
		t.Fatal("radius accessor mismatch")
	}
	if got := len(tile.Cells()); got != 1 {
		t.Fatalf("radius 0 tile has %d cells, want 1", got)
	}
	if tile.WaterBodies() != 0 {
		t.Fatal("flat tile should have no water bodies")
	}
}
