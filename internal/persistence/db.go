// Package persistence provides SQLite-based storage of generated boards,
// for inspection and reuse by downstream tooling. The generation core
// never depends on it.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexboard/internal/biome"
	"github.com/talgya/hexboard/internal/terrain"
)

// DB wraps a SQLite connection for board storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		radius INTEGER NOT NULL,
		cell_size REAL NOT NULL,
		tile_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cells (
		board_id TEXT NOT NULL,
		tile INTEGER NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		x REAL NOT NULL,
		z REAL NOT NULL,
		height REAL NOT NULL,
		red REAL NOT NULL,
		green REAL NOT NULL,
		blue REAL NOT NULL,
		biome TEXT NOT NULL,
		water INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS objects (
		board_id TEXT NOT NULL,
		tile INTEGER NOT NULL,
		kind TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL,
		rotation REAL NOT NULL,
		scale REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS board_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cells_board ON cells(board_id);
	CREATE INDEX IF NOT EXISTS idx_objects_board ON objects(board_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveBoard writes a fully generated board and returns its assigned ID.
func (db *DB) SaveBoard(b *terrain.Board, radius int, cellSize float64) (string, error) {
	b.GenerateAll()
	id := uuid.New().String()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO boards (id, seed, radius, cell_size, tile_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, b.Seed(), radius, cellSize, len(b.Tiles()), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert board: %w", err)
	}

	cellStmt, err := tx.Preparex(`INSERT INTO cells
		(board_id, tile, q, r, x, z, height, red, green, blue, biome, water)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer cellStmt.Close()

	objStmt, err := tx.Preparex(`INSERT INTO objects
		(board_id, tile, kind, x, y, z, rotation, scale)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer objStmt.Close()

	for ti, t := range b.Tiles() {
		for _, c := range t.Cells() {
			water := 0
			if c.IsWater {
				water = 1
			}
			_, err := cellStmt.Exec(
				id, ti, c.Coord.Q, c.Coord.R, c.X, c.Z, c.Height,
				c.Color.R, c.Color.G, c.Color.B, biome.KindName(c.Biome), water,
			)
			if err != nil {
				return "", fmt.Errorf("insert cell (%d,%d): %w", c.Coord.Q, c.Coord.R, err)
			}
		}
		for _, o := range t.Objects() {
			_, err := objStmt.Exec(id, ti, o.Kind.String(), o.X, o.Y, o.Z, o.Rotation, o.Scale)
			if err != nil {
				return "", fmt.Errorf("insert object: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("board saved", "id", id, "tiles", len(b.Tiles()))
	return id, nil
}

// BoardSummary describes one stored board.
type BoardSummary struct {
	ID        string `db:"id"`
	Seed      int64  `db:"seed"`
	Radius    int    `db:"radius"`
	TileCount int    `db:"tile_count"`
	CreatedAt string `db:"created_at"`
}

// RecentBoards returns the most recently stored boards.
func (db *DB) RecentBoards(limit int) ([]BoardSummary, error) {
	var out []BoardSummary
	err := db.conn.Select(&out,
		"SELECT id, seed, radius, tile_count, created_at FROM boards ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	return out, err
}

// CellCount returns the number of stored cells for a board.
func (db *DB) CellCount(boardID string) (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM cells WHERE board_id = ?", boardID)
	return n, err
}

// SaveMeta stores a key-value pair in board metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO board_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM board_meta WHERE key = ?", key)
	return value, err
}
