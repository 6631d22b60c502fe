package terrain

import (
	"math"
	"math/rand"

	"github.com/talgya/hexboard/internal/biome"
)

// ObjectKind enumerates the decorative objects scattered on a tile.
type ObjectKind uint8

const (
	ObjectTree ObjectKind = iota
	ObjectCrop
	ObjectGrazer
)

// String returns a human-readable name for an object kind.
func (k ObjectKind) String() string {
	switch k {
	case ObjectTree:
		return "tree"
	case ObjectCrop:
		return "crop"
	case ObjectGrazer:
		return "grazer"
	default:
		return "unknown"
	}
}

// placementOrder fixes which kind wins a contested cell: trees claim
// first, then crops, then grazers. Changing this order changes boards.
var placementOrder = [3]ObjectKind{ObjectTree, ObjectCrop, ObjectGrazer}

// ObjectInstance is one placed decorative object, anchored on the top
// surface of its cell.
type ObjectInstance struct {
	Kind     ObjectKind `json:"kind"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Z        float64    `json:"z"`
	Rotation float64    `json:"rotation"` // radians about the vertical axis
	Scale    float64    `json:"scale"`
}

// PlaceObjects scatters all object kinds over a finished cell set in the
// fixed priority order, claiming each chosen cell via its Occupied flag
// so no two objects share a cell. Water cells and cells of a foreign
// biome are skipped; each kind additionally respects the rule's
// normalized-height placement zone. Iteration follows the cell list
// order produced by the field generator, which together with the seeded
// rng makes placement reproducible.
func PlaceObjects(cells []*Cell, rule biome.Rule, rng *rand.Rand) []*ObjectInstance {
	var out []*ObjectInstance

	for _, kind := range placementOrder {
		density := densityFor(rule, kind)
		zone := zoneFor(rule, kind)

		for _, c := range cells {
			if c.IsWater || c.Occupied || c.Biome != rule.Kind {
				continue
			}
			if !zone.Allows(rule.Normalized(c.Height)) {
				continue
			}
			if rng.Float64() >= density {
				continue
			}

			c.Occupied = true
			out = append(out, newInstance(kind, c, rng))
		}
	}

	return out
}

func densityFor(rule biome.Rule, kind ObjectKind) float64 {
	switch kind {
	case ObjectTree:
		return rule.Densities.Tree
	case ObjectCrop:
		return rule.Densities.Crop
	default:
		return rule.Densities.Grazer
	}
}

func zoneFor(rule biome.Rule, kind ObjectKind) biome.Zone {
	switch kind {
	case ObjectTree:
		return rule.TreeZone
	case ObjectCrop:
		return rule.CropZone
	default:
		return rule.GrazerZone
	}
}

// newInstance anchors an object at the cell's top surface. All kinds
// spin randomly about the vertical axis; only trees vary in scale.
func newInstance(kind ObjectKind, c *Cell, rng *rand.Rand) *ObjectInstance {
	inst := &ObjectInstance{
		Kind:     kind,
		X:        c.X,
		Y:        c.Height,
		Z:        c.Z,
		Rotation: rng.Float64() * 2 * math.Pi,
		Scale:    1.0,
	}
	if kind == ObjectTree {
		inst.Scale = 0.8 + rng.Float64()*0.4
	}
	return inst
}
