// Package export writes a generated board as a gzipped JSON snapshot —
// the full downstream contract (cells plus object instances) in a form a
// renderer or external tool can consume without linking this module.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/terrain"
)

// CellRecord is one cell in a snapshot.
type CellRecord struct {
	Q      int       `json:"q"`
	R      int       `json:"r"`
	X      float64   `json:"x"`
	Z      float64   `json:"z"`
	Height float64   `json:"height"`
	Color  biome.RGB `json:"color"`
	Biome  string    `json:"biome"`
	Water  bool      `json:"water"`
}

// ObjectRecord is one placed object in a snapshot.
type ObjectRecord struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Rotation float64 `json:"rotation"`
	Scale    float64 `json:"scale"`
}

// Snapshot is the serialized form of a generated board.
type Snapshot struct {
	Seed    int64          `json:"seed"`
	Bounds  terrain.Bounds `json:"bounds"`
	Cells   []CellRecord   `json:"cells"`
	Objects []ObjectRecord `json:"objects"`
}

// FromBoard flattens a board into a snapshot, generating it if needed.
func FromBoard(b *terrain.Board) *Snapshot {
	snap := &Snapshot{
		Seed:   b.Seed(),
		Bounds: b.BoundingBox(),
	}
	for _, c := range b.AllCells() {
		snap.Cells = append(snap.Cells, CellRecord{
			Q:      c.Coord.Q,
			R:      c.Coord.R,
			X:      c.X,
			Z:      c.Z,
			Height: c.Height,
			Color:  c.Color,
			Biome:  biome.KindName(c.Biome),
			Water:  c.IsWater,
		})
	}
	for _, o := range b.AllObjects() {
		snap.Objects = append(snap.Objects, ObjectRecord{
			Kind:     o.Kind.String(),
			X:        o.X,
			Y:        o.Y,
			Z:        o.Z,
			Rotation: o.Rotation,
			Scale:    o.Scale,
		})
	}
	return snap
}

// Write encodes a board as gzipped JSON.
func Write(w io.Writer, b *terrain.Board) error {
	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(FromBoard(b)); err != nil {
		gz.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return gz.Close()
}

// WriteFile writes a board snapshot to the given path.
func WriteFile(path string, b *terrain.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a snapshot previously produced by Write.
func Read(r io.Reader) (*Snapshot, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer gz.Close()

	var snap Snapshot
	if err := json.NewDecoder(gz).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
