// Package export writes a one-way SQLite snapshot of a generated macro
// map for downstream inspection tooling. The generator never reads a
// snapshot back; maps are always regenerated from their seed.
// See design doc Section 6.
package export

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/at10ti0n/pirate-cove-roguelike/internal/world"
)

// DB wraps a SQLite connection holding a macro map snapshot.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a snapshot database at the given path.
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
	CREATE TABLE IF NOT EXISTS cells (
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		elevation REAL NOT NULL,
		moisture REAL NOT NULL,
		temperature REAL NOT NULL,
		climate TEXT NOT NULL,
		biome TEXT NOT NULL,
		landform TEXT NOT NULL,
		has_river INTEGER NOT NULL,
		river_entry_sides TEXT NOT NULL,
		is_sea_border INTEGER NOT NULL,
		population INTEGER NOT NULL,
		wealth REAL NOT NULL,
		PRIMARY KEY (x, y)
	);

	CREATE TABLE IF NOT EXISTS map_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cells_population ON cells(population);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMap writes the full grid to the database (full replace), plus the
// map metadata needed to regenerate it.
func (db *DB) SaveMap(m *world.MacroMap) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO cells
		(x, y, elevation, moisture, temperature, climate, biome, landform,
		 has_river, river_entry_sides, is_sea_border, population, wealth)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.CellAt(x, y)

			hasRiver := 0
			if c.HasRiver {
				hasRiver = 1
			}
			seaBorder := 0
			if c.IsSeaBorder {
				seaBorder = 1
			}

			_, err := stmt.Exec(
				c.X, c.Y, c.Elevation, c.Moisture, c.Temperature,
				c.Climate.String(), c.Biome.String(), c.Landform.String(),
				hasRiver, entrySides(c), seaBorder, c.Population, c.Wealth,
			)
			if err != nil {
				return fmt.Errorf("insert cell (%d,%d): %w", x, y, err)
			}
		}
	}

	meta := [][2]string{
		{"seed", strconv.FormatInt(m.Seed, 10)},
		{"width", strconv.Itoa(m.Width)},
		{"height", strconv.Itoa(m.Height)},
		{"generator", m.Noise},
	}
	for _, kv := range meta {
		_, err := tx.Exec(
			"INSERT OR REPLACE INTO map_meta (key, value) VALUES (?, ?)",
			kv[0], kv[1],
		)
		if err != nil {
			return fmt.Errorf("insert meta %s: %w", kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("macro map exported", "cells", m.CellCount(), "seed", m.Seed)
	return nil
}

// Meta retrieves a metadata value from a snapshot.
func (db *DB) Meta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM map_meta WHERE key = ?", key)
	return value, err
}

// entrySides renders a cell's river entry set as sorted comma-joined
// names, so equal sets always serialize identically.
func entrySides(c *world.MacroCell) string {
	if c.RiverEntrySides.Size() == 0 {
		return ""
	}
	var names []string
	c.RiverEntrySides.Each(func(d world.Direction) {
		names = append(names, d.String())
	})
	sort.Strings(names)
	return strings.Join(names, ",")
}
