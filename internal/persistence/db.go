// Package persistence snapshots a tile map to SQLite.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/pkg/hex"
)

// ErrNoSnapshot is returned when loading from a database that was never saved to.
var ErrNoSnapshot = errors.New("no map snapshot")

// DB wraps a SQLite connection for tile map snapshots.
type DB struct {
	conn *sqlx.DB
}

// Meta describes the map a snapshot was taken from.
type Meta struct {
	Radius  int
	Seed    int64
	Backend string
	Tiles   int
}

type tileRow struct {
	Q         int     `db:"q"`
	R         int     `db:"r"`
	Terrain   string  `db:"terrain"`
	Elevation float64 `db:"elevation"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

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
	CREATE TABLE IF NOT EXISTS tiles (
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		terrain TEXT NOT NULL,
		elevation REAL NOT NULL,
		PRIMARY KEY (q, r)
	);

	CREATE TABLE IF NOT EXISTS map_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMap replaces the stored snapshot with every tile in gm.
func (db *DB) SaveMap(ctx context.Context, gm *gamemap.GameMap) error {
	tiles := gm.Tiles()

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tiles"); err != nil {
		return err
	}

	stmt, err := tx.PreparexContext(ctx, "INSERT INTO tiles (q, r, terrain, elevation) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range tiles {
		if _, err := stmt.ExecContext(ctx, p.Coord.Q, p.Coord.R, p.Terrain.String(), p.Elevation); err != nil {
			return fmt.Errorf("insert tile %v: %w", p.Coord, err)
		}
	}

	meta := map[string]string{
		"radius":  strconv.Itoa(gm.Radius()),
		"seed":    strconv.FormatInt(gm.Seed(), 10),
		"backend": gm.Backend(),
		"tiles":   strconv.Itoa(len(tiles)),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, "INSERT OR REPLACE INTO map_meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("save meta %s: %w", k, err)
		}
	}

	return tx.Commit()
}

// LoadMap replaces the tiles of gm with the stored snapshot and returns how
// many were loaded. Stored tiles outside gm's radius or with an unknown
// terrain are an error, and leave gm untouched.
func (db *DB) LoadMap(ctx context.Context, gm *gamemap.GameMap) (int, error) {
	if _, err := db.GetMeta(ctx, "tiles"); err != nil {
		return 0, err
	}

	var rows []tileRow
	if err := db.conn.SelectContext(ctx, &rows, "SELECT q, r, terrain, elevation FROM tiles ORDER BY r, q"); err != nil {
		return 0, fmt.Errorf("select tiles: %w", err)
	}

	placed := make([]gamemap.Placed, len(rows))
	for i, row := range rows {
		terrain, err := gamemap.ParseTerrain(row.Terrain)
		if err != nil {
			return 0, fmt.Errorf("tile (%d, %d): %w", row.Q, row.R, err)
		}
		a := hex.Axial[int]{Q: row.Q, R: row.R}
		if !gm.Contains(a) {
			return 0, fmt.Errorf("tile %v: %w", a, gamemap.ErrOutOfBounds)
		}
		placed[i] = gamemap.Placed{Coord: a, Tile: gamemap.Tile{Terrain: terrain, Elevation: row.Elevation}}
	}

	// Every row is valid; only now touch the map.
	gm.Reset()
	for _, p := range placed {
		if err := gm.SetTile(p.Coord, p.Tile); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

// SaveMeta stores a key-value pair in map metadata.
func (db *DB) SaveMeta(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO map_meta (key, value) VALUES (?, ?)",
		key, value)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := db.conn.GetContext(ctx, &value, "SELECT value FROM map_meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: missing %s", ErrNoSnapshot, key)
	}
	return value, err
}

// Meta reads the description of the stored snapshot.
func (db *DB) Meta(ctx context.Context) (Meta, error) {
	var rows []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	if err := db.conn.SelectContext(ctx, &rows, "SELECT key, value FROM map_meta"); err != nil {
		return Meta{}, fmt.Errorf("select meta: %w", err)
	}
	kv := make(map[string]string, len(rows))
	for _, row := range rows {
		kv[row.Key] = row.Value
	}
	for _, key := range []string{"radius", "seed", "backend", "tiles"} {
		if _, ok := kv[key]; !ok {
			return Meta{}, fmt.Errorf("%w: missing %s", ErrNoSnapshot, key)
		}
	}

	m := Meta{Backend: kv["backend"]}
	var err error
	if m.Radius, err = strconv.Atoi(kv["radius"]); err != nil {
		return Meta{}, fmt.Errorf("meta radius: %w", err)
	}
	if m.Seed, err = strconv.ParseInt(kv["seed"], 10, 64); err != nil {
		return Meta{}, fmt.Errorf("meta seed: %w", err)
	}
	if m.Tiles, err = strconv.Atoi(kv["tiles"]); err != nil {
		return Meta{}, fmt.Errorf("meta tiles: %w", err)
	}
	return m, nil
}
