package gamemap

import (
	"fmt"
	"iter"

	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/pkg/hex"
	"github.com/gravitas-games/hextile/pkg/storage"
)

// tileStore adapts one storage backend to the map. Callers hold the map lock.
type tileStore interface {
	get(a hex.Axial[int]) (Tile, bool)
	set(a hex.Axial[int], t Tile) error
	count() int
	all() iter.Seq2[hex.Axial[int], Tile]
	reset()
}

func newStore(cfg config.GridConfig, cells []hex.Axial[int]) (tileStore, error) {
	shift := hex.Axial[int]{Q: cfg.Radius, R: cfg.Radius}
	switch cfg.Backend {
	case "array":
		side := 2*cfg.Radius + 1
		return newArrayStore(max(cfg.Width, side), max(cfg.Height, side), shift), nil
	case "dynamic":
		return newDynamicStore(cfg.Capacity, cfg.FillFactor), nil
	case "table":
		return newTableStore(), nil
	case "shaped":
		shape, err := storage.ParseShape(cfg.Shape)
		if err != nil {
			return nil, err
		}
		return newShapedStore(shape, cfg.Width, cfg.Height, shift, cells), nil
	}
	return nil, fmt.Errorf("unknown grid backend %q", cfg.Backend)
}

// arrayStore keeps tiles in a fixed dense array. Keys are shifted by the
// map radius so the whole disk lands on non-negative slots.
type arrayStore struct {
	width, height int
	shift         hex.Axial[int]
	arr           *storage.Array[hex.Axial[int], Tile]
}

func newArrayStore(width, height int, shift hex.Axial[int]) *arrayStore {
	return &arrayStore{
		width:  width,
		height: height,
		shift:  shift,
		arr:    storage.NewArray[hex.Axial[int], Tile](width, height),
	}
}

func (s *arrayStore) get(a hex.Axial[int]) (Tile, bool) { return s.arr.Lookup(a.Add(s.shift)) }

func (s *arrayStore) set(a hex.Axial[int], t Tile) error {
	k := a.Add(s.shift)
	s.arr.Add(k, t)
	if !s.arr.Has(k.Axes()) {
		return fmt.Errorf("%w: %v does not fit a %dx%d array", ErrOutOfBounds, a, s.width, s.height)
	}
	return nil
}

func (s *arrayStore) count() int { return s.arr.Len() }

func (s *arrayStore) all() iter.Seq2[hex.Axial[int], Tile] {
	return func(yield func(hex.Axial[int], Tile) bool) {
		for k, t := range s.arr.All() {
			if !yield(k.Sub(s.shift), t) {
				return
			}
		}
	}
}

func (s *arrayStore) reset() {
	s.arr = storage.NewArray[hex.Axial[int], Tile](s.width, s.height)
}

// dynamicStore appends tiles to a growable array and updates them in place.
type dynamicStore struct {
	d *storage.Dynamic[hex.Axial[int], Tile]
}

func newDynamicStore(capacity int, fill float64) *dynamicStore {
	return &dynamicStore{d: storage.NewDynamic[hex.Axial[int], Tile](
		storage.WithCapacity(capacity),
		storage.WithFillFactor(fill),
	)}
}

func (s *dynamicStore) get(a hex.Axial[int]) (Tile, bool) {
	p, ok := s.d.Ref(a)
	if !ok {
		return Tile{}, false
	}
	return *p, true
}

func (s *dynamicStore) set(a hex.Axial[int], t Tile) error {
	if p, ok := s.d.Ref(a); ok {
		*p = t
		return nil
	}
	return s.d.Add(a, t)
}

func (s *dynamicStore) count() int { return s.d.Len() }

func (s *dynamicStore) all() iter.Seq2[hex.Axial[int], Tile] { return s.d.All() }

func (s *dynamicStore) reset() { s.d.Clear() }

// tableStore keys a hash table by cube coordinate.
type tableStore struct {
	t *storage.Table[hex.Cube[int], Tile]
}

func newTableStore() *tableStore {
	return &tableStore{t: storage.NewTable[hex.Cube[int], Tile]()}
}

func (s *tableStore) get(a hex.Axial[int]) (Tile, bool) {
	t, err := s.t.Get(a.ToCube())
	return t, err == nil
}

func (s *tableStore) set(a hex.Axial[int], t Tile) error {
	s.t.Set(a.ToCube(), t)
	return nil
}

func (s *tableStore) count() int { return s.t.Len() }

func (s *tableStore) all() iter.Seq2[hex.Axial[int], Tile] {
	return func(yield func(hex.Axial[int], Tile) bool) {
		for c, t := range s.t.All() {
			if !yield(c.ToAxial(), t) {
				return
			}
		}
	}
}

func (s *tableStore) reset() { s.t = storage.NewTable[hex.Cube[int], Tile]() }

// shapedStore owns the buffer behind a shape-addressed store. Slots cannot
// be mapped back to coordinates under every shape, so iteration walks the
// map's cells instead.
type shapedStore struct {
	buf   []Tile
	st    *storage.Shaped[int, Tile]
	shift hex.Axial[int]
	cells []hex.Axial[int]
	n     int
}

func newShapedStore(shape storage.Shape, width, height int, shift hex.Axial[int], cells []hex.Axial[int]) *shapedStore {
	s := &shapedStore{shift: shift, cells: cells}

	// size the buffer to fit every cell of the map under this shape
	probe := storage.NewShaped[int, Tile](nil, 0, shape)
	for _, a := range cells {
		row, col := probe.Position(a.Add(shift))
		width = max(width, row+1)
		height = max(height, col+1)
	}
	s.buf = make([]Tile, width*height)
	s.st = storage.NewShaped[int](func() []Tile { return s.buf }, height, shape)
	return s
}

func (s *shapedStore) get(a hex.Axial[int]) (Tile, bool) {
	p, ok := s.st.Ref(a.Add(s.shift))
	if !ok || p.Terrain == TerrainNone {
		return Tile{}, false
	}
	return *p, true
}

func (s *shapedStore) set(a hex.Axial[int], t Tile) error {
	p, ok := s.st.Ref(a.Add(s.shift))
	if !ok {
		return fmt.Errorf("%w: %v has no slot in the %s buffer", ErrOutOfBounds, a, s.st.Shape())
	}
	if p.Terrain == TerrainNone {
		s.n++
	}
	*p = t
	return nil
}

func (s *shapedStore) count() int { return s.n }

func (s *shapedStore) all() iter.Seq2[hex.Axial[int], Tile] {
	return func(yield func(hex.Axial[int], Tile) bool) {
		for _, a := range s.cells {
			if t, ok := s.get(a); ok && !yield(a, t) {
				return
			}
		}
	}
}

func (s *shapedStore) reset() {
	clear(s.buf)
	s.n = 0
}
