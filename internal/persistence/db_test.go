package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/pkg/hex"
)

func newMap(t *testing.T, backend string, radius int) *gamemap.GameMap {
	t.Helper()
	cfg := config.Default().Grid
	cfg.Backend = backend
	cfg.Radius = radius
	cfg.Seed = 99
	gm, err := gamemap.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return gm
}

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "map.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	src := newMap(t, "dynamic", 5)
	if err := src.Generate(); err != nil {
		t.Fatal(err)
	}
	if err := src.SetTile(hex.Axial[int]{Q: 1, R: -1}, gamemap.Tile{Terrain: gamemap.TerrainDesert, Elevation: 0.4}); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveMap(ctx, src); err != nil {
		t.Fatalf("save: %v", err)
	}

	dst := newMap(t, "shaped", 5)
	n, err := db.LoadMap(ctx, dst)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 91 || dst.Len() != 91 {
		t.Fatalf("expected 91 tiles, loaded %d, map holds %d", n, dst.Len())
	}
	want, got := src.Tiles(), dst.Tiles()
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("tile %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	meta, err := db.Meta(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Radius != 5 || meta.Seed != 99 || meta.Backend != "dynamic" || meta.Tiles != 91 {
		t.Fatalf("unexpected meta %+v", meta)
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	big := newMap(t, "table", 3)
	_ = big.Generate()
	if err := db.SaveMap(ctx, big); err != nil {
		t.Fatal(err)
	}
	small := newMap(t, "table", 1)
	_ = small.Generate()
	if err := db.SaveMap(ctx, small); err != nil {
		t.Fatal(err)
	}

	dst := newMap(t, "array", 3)
	n, err := db.LoadMap(ctx, dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("expected the second snapshot's 7 tiles, got %d", n)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	if _, err := db.LoadMap(ctx, newMap(t, "table", 2)); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}

	big := newMap(t, "table", 4)
	_ = big.Generate()
	if err := db.SaveMap(ctx, big); err != nil {
		t.Fatal(err)
	}
	small := newMap(t, "table", 2)
	_ = small.Generate()
	before := small.Tiles()
	if _, err := db.LoadMap(ctx, small); !errors.Is(err, gamemap.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds loading into a smaller map, got %v", err)
	}
	assertSameTiles(t, before, small.Tiles())
}

func TestLoadBadRowLeavesMapUntouched(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	src := newMap(t, "dynamic", 3)
	_ = src.Generate()
	if err := db.SaveMap(ctx, src); err != nil {
		t.Fatal(err)
	}
	// The last row in load order goes bad, after every other row parsed.
	if _, err := db.conn.ExecContext(ctx, "UPDATE tiles SET terrain = 'lava' WHERE q = 0 AND r = 3"); err != nil {
		t.Fatal(err)
	}

	dst := newMap(t, "array", 3)
	_ = dst.Generate()
	before := dst.Tiles()
	if _, err := db.LoadMap(ctx, dst); err == nil {
		t.Fatal("expected error for unknown terrain")
	}
	assertSameTiles(t, before, dst.Tiles())
}

func assertSameTiles(t *testing.T, want, got []gamemap.Placed) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %d tiles, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("tile %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestMeta(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)
	if err := db.SaveMeta(ctx, "owner", "ops"); err != nil {
		t.Fatal(err)
	}
	v, err := db.GetMeta(ctx, "owner")
	if err != nil || v != "ops" {
		t.Fatalf("expected ops, got %q (%v)", v, err)
	}
	if _, err := db.Meta(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}
