package storage

import (
	"testing"

	"github.com/gravitas-games/hextile/pkg/hex"
)

func TestShapedRhombus(t *testing.T) {
	s := NewShapedArray[int, int](4, 4, Rhombus)
	s.Set(hex.Axial[int]{Q: 1, R: 2}, 7)
	if s.Memory()[2*4+1] != 7 {
		t.Fatalf("expected slot row=2 col=1, memory %v", s.Memory())
	}
	// double-height (row=5, col=1) is axial (1, 2)
	if got := s.Get(hex.DoubleHeight[int]{Row: 5, Col: 1}); got != 7 {
		t.Fatalf("expected 7 through double-height, got %d", got)
	}
	// double-width (col=4, row=2) is axial (1, 2)
	if got := s.Get(hex.DoubleWidth[int]{Col: 4, Row: 2}); got != 7 {
		t.Fatalf("expected 7 through double-width, got %d", got)
	}
}

func TestShapedRectangle(t *testing.T) {
	buf := make([]string, 16)
	s := NewShaped[int](func() []string { return buf }, 4, Rectangle)

	s.Set(hex.DoubleHeight[int]{Row: 2, Col: 1}, "dh")
	if buf[2*4+2] != "dh" {
		t.Fatalf("expected col shifted by row/2, buffer %q", buf)
	}
	s.Set(hex.DoubleWidth[int]{Col: 3, Row: 1}, "dw")
	if buf[1*4+3] != "dw" {
		t.Fatalf("unexpected double-width slot, buffer %q", buf)
	}
	// axial (1, 0) is double-height (row=1, col=1)
	s.Set(hex.Axial[int]{Q: 1, R: 0}, "ax")
	if buf[1*4+1] != "ax" {
		t.Fatalf("unexpected axial slot, buffer %q", buf)
	}

	row, col := s.Position(hex.DoubleHeight[int]{Row: -1, Col: 0})
	if row != -1 || col != -1 {
		t.Fatalf("expected floor on negative rows, got (%d, %d)", row, col)
	}
}

func TestShapedIgnoreMatchesRectangle(t *testing.T) {
	rect := NewShapedArray[int, int](6, 6, Rectangle)
	ign := NewShapedArray[int, int](6, 6, Ignore)
	for _, c := range hex.Disk(hex.Axial[int]{Q: 2, R: 1}, 2) {
		r1, c1 := rect.Position(c)
		r2, c2 := ign.Position(c)
		if r1 != r2 || c1 != c2 {
			t.Fatalf("%v: rectangle (%d, %d) ignore (%d, %d)", c, r1, c1, r2, c2)
		}
	}
}

func TestShapedRefAliasesBuffer(t *testing.T) {
	s := NewShapedArray[int, int](3, 3, Rhombus)
	a := hex.Axial[int]{Q: 2, R: 1}
	p, ok := s.Ref(a)
	if !ok {
		t.Fatalf("expected in-range ref")
	}
	*p = 42
	if got := s.Get(a); got != 42 {
		t.Fatalf("expected mutation through ref, got %d", got)
	}
	*p++
	if s.Memory()[1*3+2] != 43 {
		t.Fatalf("expected buffer to see the change")
	}

	if p, ok := s.Ref(hex.Axial[int]{Q: -1, R: 0}); ok || p != nil {
		t.Fatalf("expected miss outside the buffer")
	}
	s.Set(hex.Axial[int]{Q: 3, R: 0}, 9)
	for _, v := range s.Memory() {
		if v == 9 {
			t.Fatalf("out-of-range set must be dropped")
		}
	}
}

func TestShapedFollowsAccessCallback(t *testing.T) {
	small := make([]int, 4)
	large := make([]int, 16)
	cur := small
	s := NewShaped[int](func() []int { return cur }, 2, Rhombus)

	a := hex.Axial[int]{Q: 1, R: 3}
	s.Set(a, 1)
	if _, ok := s.Ref(a); ok {
		t.Fatalf("row 3 should be outside a 2x2 buffer")
	}
	cur = large
	s.Set(a, 5)
	if large[3*2+1] != 5 || s.Width() != 8 {
		t.Fatalf("expected write into the swapped buffer")
	}
}

func TestShapedViews(t *testing.T) {
	s := NewShapedArray[int, int](2, 3, Rhombus)
	s.Set(hex.Axial[int]{Q: 2, R: 1}, 4)

	tv := s.TableView()
	if len(tv) != 2 || len(tv[0]) != 3 || tv[1][2] != 4 {
		t.Fatalf("unexpected table view %v", tv)
	}
	rv := s.RhombusView()
	if rv[hex.Axial[int]{Q: 2, R: 1}] != 4 {
		t.Fatalf("unexpected rhombus view %v", rv)
	}
	if _, ok := rv[hex.Axial[int]{Q: 0, R: 2}]; ok {
		t.Fatalf("row 2 is outside the buffer")
	}

	r := NewShapedArray[int, int](4, 4, Rectangle)
	r.Set(hex.DoubleHeight[int]{Row: 1, Col: 2}, 8)
	if got := r.RectangleView()[hex.DoubleHeight[int]{Row: 1, Col: 2}]; got != 8 {
		t.Fatalf("unexpected rectangle view value %d", got)
	}
}

func TestParseShape(t *testing.T) {
	for _, s := range []Shape{Rhombus, Rectangle, Ignore} {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Fatalf("round trip %s: %v %v", s, got, err)
		}
	}
	if _, err := ParseShape("hexagon"); err == nil {
		t.Fatalf("expected error")
	}
}
