// Package config loads board generation settings from YAML files and
// provides the defaults used when no file is given.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexboard/internal/terrain"
)

// TilePlacement declares one tile in a config file. An empty biome is
// auto-assigned at board construction.
type TilePlacement struct {
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Biome string  `yaml:"biome,omitempty"`
}

// Config is the full boardgen configuration.
type Config struct {
	Seed     int64   `yaml:"seed"`
	Radius   int     `yaml:"radius"`
	CellSize float64 `yaml:"cell_size"`

	Octaves    int     `yaml:"octaves"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`

	Tiles []TilePlacement `yaml:"tiles"`
}

// Default returns the configuration used when no file is supplied: a
// single auto-biome tile at the origin with the default board shape.
func Default() Config {
	bc := terrain.DefaultBoardConfig()
	return Config{
		Seed:       bc.Seed,
		Radius:     bc.Radius,
		CellSize:   bc.CellSize,
		Octaves:    bc.Octaves,
		Lacunarity: bc.Lacunarity,
		Gain:       bc.Gain,
		Tiles:      []TilePlacement{{X: 0, Z: 0}},
	}
}

// Load reads a YAML config file. Fields left at zero fall back to the
// defaults, so partial files are fine.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Radius <= 0 {
		cfg.Radius = terrain.DefaultBoardConfig().Radius
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = terrain.DefaultBoardConfig().CellSize
	}
	if cfg.Octaves <= 0 {
		cfg.Octaves = terrain.DefaultBoardConfig().Octaves
	}
	if cfg.Lacunarity <= 0 {
		cfg.Lacunarity = terrain.DefaultBoardConfig().Lacunarity
	}
	if cfg.Gain <= 0 {
		cfg.Gain = terrain.DefaultBoardConfig().Gain
	}
	if len(cfg.Tiles) == 0 {
		cfg.Tiles = []TilePlacement{{X: 0, Z: 0}}
	}

	return cfg, nil
}

// BoardConfig converts the file settings into board parameters.
func (c Config) BoardConfig() terrain.BoardConfig {
	return terrain.BoardConfig{
		Seed:       c.Seed,
		Radius:     c.Radius,
		CellSize:   c.CellSize,
		Octaves:    c.Octaves,
		Lacunarity: c.Lacunarity,
		Gain:       c.Gain,
	}
}

// Placements converts the file's tile list into board placements.
func (c Config) Placements() []terrain.Placement {
	out := make([]terrain.Placement, 0, len(c.Tiles))
	for _, t := range c.Tiles {
		out = append(out, terrain.Placement{X: t.X, Z: t.Z, Biome: t.Biome})
	}
	return out
}
