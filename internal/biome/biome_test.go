package biome

import (
	"math"
	"testing"

	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/noise"
)

func TestHeight_WithinRangeForAllRules(t *testing.T) {
	src := noise.NewSimplex(2024)
	for _, rule := range All() {
		for _, c := range hexgrid.Range(6) {
			x, z := hexgrid.ToWorld(c, 1.0)
			h := rule.Height(c, x, z, src)
			if h < rule.HeightMin || h > rule.HeightMax {
				t.Errorf("%s height %f at %v outside [%f, %f]",
					rule.Name, h, c, rule.HeightMin, rule.HeightMax)
			}
		}
	}
}

func TestHeight_QuantizedToTenths(t *testing.T) {
	src := noise.NewSimplex(5)
	rule := ByKind(Rock)
	for _, c := range hexgrid.Range(4) {
		x, z := hexgrid.ToWorld(c, 1.0)
		h := rule.Height(c, x, z, src)
		scaled := h * 10
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("height %f not on the 0.1 grid", h)
		}
	}
}

func TestHeight_ZeroNoiseHitsMidpoint(t *testing.T) {
	rule := ByKind(Grass) // range 1..3
	h := rule.Height(hexgrid.Coord{Q: 0, R: 0}, 0, 0, noise.Constant(0))
	if h != 2.0 {
		t.Fatalf("midpoint height = %f, want 2.0", h)
	}
}

func TestHeight_NonFiniteSampleRecovers(t *testing.T) {
	rule := ByKind(Grass)
	nan := noise.Constant(math.NaN())
	c := hexgrid.Coord{Q: 3, R: -1}
	h := rule.Height(c, 1, 2, nan)
	if math.IsNaN(h) || h < rule.HeightMin || h > rule.HeightMax {
		t.Fatalf("fallback height %f invalid", h)
	}
	// Fallback depends only on the coordinate.
	if h != rule.Height(c, 1, 2, nan) {
		t.Fatal("fallback height not deterministic")
	}
}

func TestShade_WaterCandidacyThreshold(t *testing.T) {
	rule := ByKind(Grass) // threshold 0.15 over range 1..3
	low := rule.Shade(1.0, 0, 0, noise.Constant(0))
	if !low.WaterCandidate {
		t.Error("bottom-of-range cell should be a water candidate")
	}
	high := rule.Shade(3.0, 0, 0, noise.Constant(0))
	if high.WaterCandidate {
		t.Error("top-of-range cell should not be a water candidate")
	}
	mid := rule.Shade(2.0, 0, 0, noise.Constant(0))
	if mid.WaterCandidate {
		t.Error("midpoint cell should not be a water candidate")
	}
}

func TestShade_ColorChannelsClamped(t *testing.T) {
	src := noise.NewSimplex(77)
	for _, rule := range All() {
		for _, c := range hexgrid.Range(4) {
			x, z := hexgrid.ToWorld(c, 1.0)
			h := rule.Height(c, x, z, src)
			sh := rule.Shade(h, x, z, src)
			for _, ch := range []float64{sh.Color.R, sh.Color.G, sh.Color.B} {
				if ch < 0 || ch > 1 {
					t.Fatalf("%s color channel %f out of [0,1]", rule.Name, ch)
				}
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, rule := range All() {
		got, ok := ByName(rule.Name)
		if !ok || got.Kind != rule.Kind {
			t.Errorf("ByName(%q) failed", rule.Name)
		}
	}
	if _, ok := ByName("lava"); ok {
		t.Error("ByName accepted an unknown name")
	}
}

func TestAll_StableOrder(t *testing.T) {
	a := All()
	b := All()
	if len(a) != 6 {
		t.Fatalf("expected 6 rules, got %d", len(a))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			t.Fatal("All() order not stable")
		}
	}
}

func TestZone_Allows(t *testing.T) {
	var open Zone
	if !open.Allows(0) || !open.Allows(1) || !open.Allows(0.5) {
		t.Error("zero zone should allow everything")
	}
	z := Zone{Min: 0.2, Max: 0.6}
	if z.Allows(0.1) || z.Allows(0.7) {
		t.Error("zone allowed a height outside its window")
	}
	if !z.Allows(0.2) || !z.Allows(0.6) || !z.Allows(0.4) {
		t.Error("zone rejected a height inside its window")
	}
}

func TestNormalized_Clamps(t *testing.T) {
	rule := ByKind(Grass)
	if rule.Normalized(0.0) != 0 {
		t.Error("below-range height should normalize to 0")
	}
	if rule.Normalized(10.0) != 1 {
		t.Error("above-range height should normalize to 1")
	}
	if rule.Normalized(2.0) != 0.5 {
		t.Error("midpoint should normalize to 0.5")
	}
}

func TestRuleTable_Sane(t *testing.T) {
	for _, rule := range All() {
		if rule.HeightMax <= rule.HeightMin {
			t.Errorf("%s has degenerate height range", rule.Name)
		}
		if len(rule.Bands) == 0 {
			t.Errorf("%s has no color bands", rule.Name)
		}
		if rule.Bands[len(rule.Bands)-1].UpTo != 1.0 {
			t.Errorf("%s last band does not cover the full range", rule.Name)
		}
		if rule.WaterMinCluster <= 0 {
			t.Errorf("%s has non-positive min cluster size", rule.Name)
		}
		if rule.WaterThreshold <= 0 || rule.WaterThreshold >= 1 {
			t.Errorf("%s water threshold %f out of (0,1)", rule.Name, rule.WaterThreshold)
		}
	}
}
