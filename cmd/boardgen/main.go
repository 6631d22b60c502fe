// Command boardgen generates a hex terrain board and reports what it
// made. The board can optionally be stored in SQLite and/or written out
// as a gzipped JSON snapshot for a renderer to pick up.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/config"
	"github.com/talgya/hexboard/internal/export"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/persistence"
	"github.com/talgya/hexboard/internal/terrain"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		seed       = flag.Int64("seed", 0, "board seed (0 = random; overrides config)")
		radius     = flag.Int("radius", 0, "per-tile region radius (overrides config)")
		tiles      = flag.Int("tiles", 0, "generate N auto-biome tiles in a row (overrides config tiles)")
		dbPath     = flag.String("db", "", "store the board in this SQLite database")
		exportPath = flag.String("export", "", "write a gzipped JSON snapshot to this path")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// ── Configuration ────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *radius > 0 {
		cfg.Radius = *radius
	}
	if *tiles > 0 {
		cfg.Tiles = rowPlacements(*tiles, cfg.Radius, cfg.CellSize)
	}

	// ── Generation ───────────────────────────────────────────────────
	board := terrain.NewBoard(cfg.BoardConfig(), cfg.Placements())
	board.GenerateAll()

	stats := board.Stats()
	slog.Info("board generated",
		"seed", board.Seed(),
		"tiles", stats.Tiles,
		"cells", stats.Cells,
		"water_cells", stats.WaterCells,
		"water_bodies", stats.WaterBodies,
	)
	for kind, n := range stats.CellsByBiome {
		slog.Info("biome", "name", biome.KindName(kind), "cells", n)
	}
	for kind, n := range stats.ObjectsByKind {
		slog.Info("objects", "kind", kind.String(), "count", n)
	}
	bb := board.BoundingBox()
	slog.Info("bounds", "min_x", bb.MinX, "min_z", bb.MinZ, "max_x", bb.MaxX, "max_z", bb.MaxZ)

	// ── Storage ──────────────────────────────────────────────────────
	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		id, err := db.SaveBoard(board, cfg.Radius, cfg.CellSize)
		if err != nil {
			slog.Error("failed to save board", "error", err)
			os.Exit(1)
		}
		slog.Info("board stored", "path", *dbPath, "id", id)
	}

	if *exportPath != "" {
		if err := export.WriteFile(*exportPath, board); err != nil {
			slog.Error("failed to export snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot written", "path", *exportPath)
	}

	fmt.Printf("\n%d tiles, %d cells, %d objects (seed %d)\n",
		stats.Tiles, stats.Cells, len(board.AllObjects()), board.Seed())
}

// rowPlacements lays n auto-biome tiles in a row, spaced so neighboring
// regions sit side by side.
func rowPlacements(n, radius int, cellSize float64) []config.TilePlacement {
	span := (2*float64(radius) + 1) * cellSize * hexgrid.Sqrt3
	out := make([]config.TilePlacement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, config.TilePlacement{X: float64(i) * span, Z: 0})
	}
	return out
}
