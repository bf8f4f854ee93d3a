package gamemap

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"sync"

	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/pkg/hex"
)

var (
	// ErrOutOfBounds is returned for coordinates farther from the origin than the map radius
	ErrOutOfBounds = errors.New("coordinate outside the map")

	// ErrNoTile is returned when a cell inside the map has no tile yet
	ErrNoTile = errors.New("no tile at coordinate")
)

// Placed pairs a tile with its position.
type Placed struct {
	Coord hex.Axial[int] `json:"coord"`
	Tile
}

// GameMap is a hex disk of tiles around the origin, held in one of the
// storage backends. It is safe for concurrent use.
type GameMap struct {
	mu      sync.RWMutex
	radius  int
	seed    int64
	backend string
	cells   []hex.Axial[int]
	tiles   tileStore
}

// New creates an empty map sized by cfg. Call Generate to fill it.
func New(cfg config.GridConfig) (*GameMap, error) {
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("invalid map radius %d", cfg.Radius)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	cells := hex.Disk(hex.Axial[int]{}, cfg.Radius)
	tiles, err := newStore(cfg, cells)
	if err != nil {
		return nil, fmt.Errorf("failed to create tile store: %w", err)
	}

	log.Printf("Created %s tile map with radius %d (%d cells)", cfg.Backend, cfg.Radius, len(cells))
	return &GameMap{
		radius:  cfg.Radius,
		seed:    seed,
		backend: cfg.Backend,
		cells:   cells,
		tiles:   tiles,
	}, nil
}

// Generate seeds every cell with noise terrain, replacing existing tiles.
func (gm *GameMap) Generate() error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gen := newTerrainGen(gm.seed, gm.radius)
	gm.tiles.reset()
	for _, a := range gm.cells {
		if err := gm.tiles.set(a, gen.tile(a)); err != nil {
			return fmt.Errorf("failed to generate tile %v: %w", a, err)
		}
	}

	log.Printf("Generated %d tiles with seed %d", gm.tiles.count(), gm.seed)
	return nil
}

// Radius returns the map radius.
func (gm *GameMap) Radius() int { return gm.radius }

// Seed returns the terrain seed.
func (gm *GameMap) Seed() int64 { return gm.seed }

// Backend returns the storage backend name.
func (gm *GameMap) Backend() string { return gm.backend }

// Contains reports whether a lies within the map radius.
func (gm *GameMap) Contains(a hex.Axial[int]) bool {
	return a.Distance(hex.Axial[int]{}) <= gm.radius
}

// Tile returns the tile at a.
func (gm *GameMap) Tile(a hex.Axial[int]) (Tile, error) {
	if !gm.Contains(a) {
		return Tile{}, fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}

	gm.mu.RLock()
	defer gm.mu.RUnlock()

	t, ok := gm.tiles.get(a)
	if !ok {
		return Tile{}, fmt.Errorf("%w: %v", ErrNoTile, a)
	}
	return t, nil
}

// SetTile stores t at a.
func (gm *GameMap) SetTile(a hex.Axial[int], t Tile) error {
	if !gm.Contains(a) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !t.Terrain.Valid() {
		return fmt.Errorf("invalid terrain %s", t.Terrain)
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.tiles.set(a, t)
}

// Neighbors returns the tiles adjacent to a, in direction order.
func (gm *GameMap) Neighbors(a hex.Axial[int]) []Placed {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	var out []Placed
	for _, n := range a.Neighbors() {
		if !gm.Contains(n) {
			continue
		}
		if t, ok := gm.tiles.get(n); ok {
			out = append(out, Placed{Coord: n, Tile: t})
		}
	}
	return out
}

// Len returns the number of tiles stored.
func (gm *GameMap) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.tiles.count()
}

// Tiles returns a snapshot of every tile ordered by (r, q).
func (gm *GameMap) Tiles() []Placed {
	gm.mu.RLock()
	out := make([]Placed, 0, gm.tiles.count())
	for a, t := range gm.tiles.all() {
		out = append(out, Placed{Coord: a, Tile: t})
	}
	gm.mu.RUnlock()

	slices.SortFunc(out, func(x, y Placed) int {
		if c := cmp.Compare(x.Coord.R, y.Coord.R); c != 0 {
			return c
		}
		return cmp.Compare(x.Coord.Q, y.Coord.Q)
	})
	return out
}

// Reset drops every tile.
func (gm *GameMap) Reset() {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.tiles.reset()
}

// TerrainCounts tallies tiles by terrain.
func (gm *GameMap) TerrainCounts() map[Terrain]int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	counts := make(map[Terrain]int)
	for _, t := range gm.tiles.all() {
		counts[t.Terrain]++
	}
	return counts
}
