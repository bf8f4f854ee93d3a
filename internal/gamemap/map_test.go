package gamemap

import (
	"errors"
	"testing"

	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/pkg/hex"
)

func gridConfig(backend string, radius int) config.GridConfig {
	cfg := config.Default().Grid
	cfg.Backend = backend
	cfg.Radius = radius
	cfg.Seed = 42
	return cfg
}

var allBackends = []string{"array", "dynamic", "table", "shaped"}

func TestGenerateFillsDisk(t *testing.T) {
	const radius = 6
	for _, backend := range allBackends {
		gm, err := New(gridConfig(backend, radius))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", backend, err)
		}
		if err := gm.Generate(); err != nil {
			t.Fatalf("%s: generate failed: %v", backend, err)
		}
		want := 3*radius*radius + 3*radius + 1
		if gm.Len() != want {
			t.Fatalf("%s: expected %d tiles, got %d", backend, want, gm.Len())
		}
		tiles := gm.Tiles()
		if len(tiles) != want {
			t.Fatalf("%s: expected %d tiles in snapshot, got %d", backend, want, len(tiles))
		}
		for _, p := range tiles {
			if !p.Terrain.Valid() {
				t.Fatalf("%s: tile %v has no terrain", backend, p.Coord)
			}
			if !gm.Contains(p.Coord) {
				t.Fatalf("%s: tile %v outside the map", backend, p.Coord)
			}
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	var reference []Placed
	for _, backend := range allBackends {
		gm, err := New(gridConfig(backend, 5))
		if err != nil {
			t.Fatal(err)
		}
		if err := gm.Generate(); err != nil {
			t.Fatal(err)
		}
		tiles := gm.Tiles()
		if reference == nil {
			reference = tiles
			continue
		}
		for i := range reference {
			if tiles[i] != reference[i] {
				t.Fatalf("%s: tile %d differs: %+v vs %+v", backend, i, tiles[i], reference[i])
			}
		}
	}
}

func TestShapedRectangleBackend(t *testing.T) {
	cfg := gridConfig("shaped", 4)
	cfg.Shape = "rectangle"
	gm, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := gm.Generate(); err != nil {
		t.Fatal(err)
	}
	if gm.Len() != 61 {
		t.Fatalf("expected 61 tiles, got %d", gm.Len())
	}

	cfg.Shape = "triangle"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for unknown shape")
	}
}

func TestSetAndGetTile(t *testing.T) {
	for _, backend := range allBackends {
		gm, err := New(gridConfig(backend, 3))
		if err != nil {
			t.Fatal(err)
		}
		a := hex.Axial[int]{Q: -2, R: 1}

		if _, err := gm.Tile(a); !errors.Is(err, ErrNoTile) {
			t.Fatalf("%s: expected ErrNoTile, got %v", backend, err)
		}
		if err := gm.SetTile(a, Tile{Terrain: TerrainForest, Elevation: 0.5}); err != nil {
			t.Fatalf("%s: set failed: %v", backend, err)
		}
		if err := gm.SetTile(a, Tile{Terrain: TerrainSwamp}); err != nil {
			t.Fatalf("%s: overwrite failed: %v", backend, err)
		}
		got, err := gm.Tile(a)
		if err != nil || got.Terrain != TerrainSwamp {
			t.Fatalf("%s: expected swamp, got %v (%v)", backend, got, err)
		}
		if gm.Len() != 1 {
			t.Fatalf("%s: overwrite must not add a tile, got %d", backend, gm.Len())
		}

		far := hex.Axial[int]{Q: 4, R: 0}
		if err := gm.SetTile(far, Tile{Terrain: TerrainPlains}); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("%s: expected ErrOutOfBounds, got %v", backend, err)
		}
		if _, err := gm.Tile(far); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("%s: expected ErrOutOfBounds, got %v", backend, err)
		}
		if err := gm.SetTile(a, Tile{}); err == nil {
			t.Fatalf("%s: expected error for empty terrain", backend)
		}

		gm.Reset()
		if gm.Len() != 0 {
			t.Fatalf("%s: expected empty map after reset, got %d", backend, gm.Len())
		}
	}
}

func TestNeighborsAndCounts(t *testing.T) {
	gm, err := New(gridConfig("dynamic", 2))
	if err != nil {
		t.Fatal(err)
	}
	if err := gm.Generate(); err != nil {
		t.Fatal(err)
	}
	if n := gm.Neighbors(hex.Axial[int]{}); len(n) != 6 {
		t.Fatalf("expected 6 neighbors at the origin, got %d", len(n))
	}
	// (2, 0) is on the rim; three of its neighbors fall outside
	if n := gm.Neighbors(hex.Axial[int]{Q: 2, R: 0}); len(n) != 3 {
		t.Fatalf("expected 3 neighbors on the rim, got %d", len(n))
	}
	total := 0
	for _, c := range gm.TerrainCounts() {
		total += c
	}
	if total != 19 {
		t.Fatalf("expected counts to cover 19 tiles, got %d", total)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, _ := New(gridConfig("table", 4))
	b, _ := New(gridConfig("table", 4))
	_ = a.Generate()
	_ = b.Generate()
	ta, tb := a.Tiles(), b.Tiles()
	for i := range ta {
		if ta[i] != tb[i] {
			t.Fatalf("same seed produced different tile at %v", ta[i].Coord)
		}
	}

	cfg := gridConfig("table", 4)
	cfg.Seed = 0
	r, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.Seed() == 0 {
		t.Fatalf("expected a random seed to be picked")
	}
}

func TestTerrainNames(t *testing.T) {
	for tr := TerrainPlains; tr <= TerrainOcean; tr++ {
		got, err := ParseTerrain(tr.String())
		if err != nil || got != tr {
			t.Fatalf("round trip %s: %v %v", tr, got, err)
		}
	}
	if _, err := ParseTerrain("none"); err == nil {
		t.Fatalf("none must not parse as a terrain")
	}
	if Terrain(99).Valid() {
		t.Fatalf("expected out-of-range terrain to be invalid")
	}
}
