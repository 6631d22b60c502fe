// Package hexgrid provides axial hex coordinates and the projection to
// world space. All board geometry goes through this package.
package hexgrid

import "math"

// Coord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// NeighborDirections defines the six neighbor offsets in axial coordinates.
var NeighborDirections = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range NeighborDirections {
		result[i] = Coord{Q: c.Q + dir.Q, R: c.R + dir.R}
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// Sqrt3 is the pointy-top width factor: adjacent hex centers sit exactly
// size*sqrt(3) apart.
var Sqrt3 = math.Sqrt(3.0)

// ToWorld projects an axial coordinate to world space using the pointy-top
// layout. This is the only projection in the codebase; every cell center,
// object anchor, and bounding box derives from it.
//
//	x = size * sqrt(3) * (q + r/2)
//	z = size * 3/2 * r
func ToWorld(c Coord, size float64) (x, z float64) {
	q := float64(c.Q)
	r := float64(c.R)
	x = size * Sqrt3 * (q + r/2.0)
	z = size * 1.5 * r
	return x, z
}

// Range enumerates every coordinate within the given hex distance of the
// origin, in deterministic order (q ascending, then r). A radius R region
// contains 3R(R+1)+1 coordinates; radius 0 yields just the origin and a
// negative radius yields nothing.
func Range(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	coords := make([]Coord, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			s := -q - r
			// Cube coordinate constraint: max(|q|,|r|,|s|) <= radius
			aq, ar, as := abs(q), abs(r), abs(s)
			maxCoord := aq
			if ar > maxCoord {
				maxCoord = ar
			}
			if as > maxCoord {
				maxCoord = as
			}
			if maxCoord > radius {
				continue
			}
			coords = append(coords, Coord{Q: q, R: r})
		}
	}
	return coords
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
