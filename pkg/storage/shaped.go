package storage

import (
	"fmt"
	"math"

	"github.com/gravitas-games/hextile/pkg/hex"
)

// Shape tells a Shaped store how the map it holds is laid out.
type Shape uint8

const (
	// Rhombus stores axial (q, r) directly as (col, row).
	Rhombus Shape = iota
	// Rectangle shifts every row by half its index, col' = col + ⌊row/2⌋,
	// so a rectangular map fills the buffer without gaps.
	Rectangle
	// Ignore indexes like Rectangle but makes no promise about density;
	// expect unused slots.
	Ignore
)

func (s Shape) String() string {
	switch s {
	case Rhombus:
		return "rhombus"
	case Rectangle:
		return "rectangle"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// ParseShape accepts the names returned by Shape.String.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "rhombus":
		return Rhombus, nil
	case "rectangle":
		return Rectangle, nil
	case "ignore":
		return Ignore, nil
	}
	return 0, fmt.Errorf("storage: unknown shape %q", s)
}

// Cell is any hex coordinate the shaped store can normalize. Axial,
// DoubleHeight and DoubleWidth get their own addressing; other forms go
// through cube.
type Cell[T hex.Scalar] interface {
	ToCube() hex.Cube[T]
}

// Shaped addresses a buffer it does not own. access is called on every
// operation, so the caller may swap or grow the buffer between calls.
type Shaped[T hex.Scalar, V any] struct {
	access func() []V
	height int
	shape  Shape
}

// NewShaped wraps the buffer returned by access. height is the row length.
func NewShaped[T hex.Scalar, V any](access func() []V, height int, shape Shape) *Shaped[T, V] {
	return &Shaped[T, V]{access: access, height: height, shape: shape}
}

// NewShapedArray allocates a width×height buffer and wraps it.
func NewShapedArray[T hex.Scalar, V any](width, height int, shape Shape) *Shaped[T, V] {
	buf := make([]V, max(width, 0)*max(height, 0))
	return NewShaped[T](func() []V { return buf }, height, shape)
}

// Shape returns the declared layout.
func (s *Shaped[T, V]) Shape() Shape { return s.shape }

// Height returns the row length.
func (s *Shaped[T, V]) Height() int { return s.height }

// Width returns the number of rows the current buffer holds.
func (s *Shaped[T, V]) Width() int {
	if s.height <= 0 {
		return 0
	}
	return len(s.access()) / s.height
}

// Position returns the (row, col) slot c maps to under the store's shape.
func (s *Shaped[T, V]) Position(c Cell[T]) (row, col int) {
	if s.shape == Rhombus {
		a := c.ToCube().ToAxial()
		return int(a.R), int(a.Q)
	}
	var r, q T
	switch v := c.(type) {
	case hex.DoubleHeight[T]:
		r, q = v.Row, v.Col
	case hex.DoubleWidth[T]:
		r, q = v.Row, v.Col
	default:
		d := c.ToCube().ToAxial().ToDoubleHeight()
		r, q = d.Row, d.Col
	}
	return int(r), int(math.Floor(float64(q) + math.Floor(float64(r)/2)))
}

func (s *Shaped[T, V]) index(buf []V, c Cell[T]) (int, bool) {
	if s.height <= 0 {
		return 0, false
	}
	row, col := s.Position(c)
	return slot(row, col, len(buf)/s.height, s.height)
}

// Set overwrites the slot for c. Cells outside the buffer are ignored.
func (s *Shaped[T, V]) Set(c Cell[T], v V) {
	buf := s.access()
	if i, ok := s.index(buf, c); ok {
		buf[i] = v
	}
}

// Ref returns a pointer into the backing buffer for c, or false when c
// falls outside it. Writes through the pointer land in the buffer.
func (s *Shaped[T, V]) Ref(c Cell[T]) (*V, bool) {
	buf := s.access()
	i, ok := s.index(buf, c)
	if !ok {
		return nil, false
	}
	return &buf[i], true
}

// Get returns a copy of the value at c, or the zero value outside the buffer.
func (s *Shaped[T, V]) Get(c Cell[T]) V {
	if p, ok := s.Ref(c); ok {
		return *p
	}
	var zero V
	return zero
}
