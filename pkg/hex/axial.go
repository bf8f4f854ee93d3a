package hex

import "fmt"

// Axial represents axial coordinates (q, r). The third cube axis is
// derived: s = -q - r.
type Axial[T Scalar] struct {
	Q T `json:"q"`
	R T `json:"r"`
}

// S returns the implicit third axis.
func (a Axial[T]) S() T { return -a.Q - a.R }

// Axes returns (Q, R) as a 2-D storage key.
func (a Axial[T]) Axes() (int, int) { return int(a.Q), int(a.R) }

func (a Axial[T]) String() string { return fmt.Sprintf("Axial(%v, %v)", a.Q, a.R) }

// ToCube converts axial to cube: q stays, the cube's s is the axial r and
// the cube's r is the derived axial s.
func (a Axial[T]) ToCube() Cube[T] {
	return Cube[T]{q: a.Q, r: a.S(), s: a.R}
}

// Add returns a+b in axial space.
func (a Axial[T]) Add(b Axial[T]) Axial[T] { return Axial[T]{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial[T]) Sub(b Axial[T]) Axial[T] { return Axial[T]{a.Q - b.Q, a.R - b.R} }

// Scale multiplies an axial vector by k.
func (a Axial[T]) Scale(k T) Axial[T] { return Axial[T]{a.Q * k, a.R * k} }

// Distance returns the hex distance between two axial coords.
func (a Axial[T]) Distance(b Axial[T]) T {
	return a.ToCube().Distance(b.ToCube())
}

// Neighbors returns the six adjacent cells in direction order.
func (a Axial[T]) Neighbors() [6]Axial[T] {
	var out [6]Axial[T]
	c := a.ToCube()
	for i := range out {
		out[i] = c.Neighbor(Direction(i)).ToAxial()
	}
	return out
}

// ToDoubleHeight converts to double-height coordinates: col = q,
// row = 2r + q.
func (a Axial[T]) ToDoubleHeight() DoubleHeight[T] {
	return DoubleHeight[T]{Row: 2*a.R + a.Q, Col: a.Q}
}

// ToDoubleWidth converts to double-width coordinates: col = 2q + r,
// row = r.
func (a Axial[T]) ToDoubleWidth() DoubleWidth[T] {
	return DoubleWidth[T]{Col: 2*a.Q + a.R, Row: a.R}
}

// ToOffset converts to the given offset layout.
func (a Axial[T]) ToOffset(l Layout) Offset[T] {
	return OffsetFromCube(l, a.ToCube())
}
