package storage

import (
	"testing"

	"github.com/gravitas-games/hextile/pkg/hex"
)

func TestArrayStoresByCubeAxes(t *testing.T) {
	a := NewArray[hex.Cube[int], string](4, 4)
	c := hex.MustCube(1, -2, 1)
	a.Add(c, "tile")

	if got := a.Get(1, 1); got != "tile" {
		t.Fatalf("expected tile at (1, 1), got %q", got)
	}
	if v, ok := a.Lookup(c); !ok || v != "tile" {
		t.Fatalf("expected lookup hit, got %q %v", v, ok)
	}
	if !a.Has(1, 1) || a.Has(0, 0) {
		t.Fatalf("unexpected occupancy")
	}
	if a.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", a.Len())
	}
}

func TestArrayOutOfRange(t *testing.T) {
	a := NewArray[hex.Axial[int], int](3, 2)
	a.Add(hex.Axial[int]{Q: 5, R: 0}, 1)
	a.Add(hex.Axial[int]{Q: -1, R: 0}, 1)
	// z past the row length must not spill into the next row
	a.Add(hex.Axial[int]{Q: 0, R: 2}, 1)

	if a.Len() != 0 {
		t.Fatalf("expected out-of-range writes to be dropped, got %d entries", a.Len())
	}
	if a.Get(1, 0) != 0 || a.Get(-3, 7) != 0 {
		t.Fatalf("expected zero values")
	}
	if _, ok := a.Lookup(hex.Axial[int]{Q: 9, R: 9}); ok {
		t.Fatalf("expected miss outside the grid")
	}
}

func TestArrayOverwriteAndIterate(t *testing.T) {
	a := NewArray[hex.Axial[int], int](3, 3)
	a.Add(hex.Axial[int]{Q: 2, R: 1}, 1)
	a.Add(hex.Axial[int]{Q: 0, R: 2}, 2)
	a.Add(hex.Axial[int]{Q: 2, R: 1}, 3)

	var keys []hex.Axial[int]
	var vals []int
	for k, v := range a.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(keys))
	}
	if keys[0] != (hex.Axial[int]{Q: 0, R: 2}) || vals[0] != 2 {
		t.Fatalf("unexpected first entry %v=%d", keys[0], vals[0])
	}
	if keys[1] != (hex.Axial[int]{Q: 2, R: 1}) || vals[1] != 3 {
		t.Fatalf("unexpected second entry %v=%d", keys[1], vals[1])
	}

	view := a.TableView()
	if len(view) != 3 || view[2][1] != 3 || view[0][2] != 2 {
		t.Fatalf("unexpected table view %v", view)
	}
}
