// Package hex implements coordinate algebra for hexagonal tile grids.
//
// Cube is the canonical form. Axial, the two doubled forms and the four
// offset layouts are views of the same lattice and every conversion between
// them is routed through Cube (or Axial, which is Cube with s dropped).
package hex

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCube is returned when q+r+s != 0.
var ErrInvalidCube = errors.New("hex: cube coordinates must satisfy q+r+s=0")

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube[T Scalar] struct {
	q, r, s T
}

// NewCube builds a cube coordinate and validates the q+r+s=0 invariant.
func NewCube[T Scalar](q, r, s T) (Cube[T], error) {
	if q+r+s != 0 {
		return Cube[T]{}, fmt.Errorf("%w: (%v, %v, %v)", ErrInvalidCube, q, r, s)
	}
	return Cube[T]{q: q, r: r, s: s}, nil
}

// MustCube is like NewCube but panics on an invalid triple.
func MustCube[T Scalar](q, r, s T) Cube[T] {
	c, err := NewCube(q, r, s)
	if err != nil {
		panic(err)
	}
	return c
}

// Q returns the q axis.
func (c Cube[T]) Q() T { return c.q }

// R returns the r axis.
func (c Cube[T]) R() T { return c.r }

// S returns the s axis.
func (c Cube[T]) S() T { return c.s }

// Vector returns the three axes as an array.
func (c Cube[T]) Vector() [3]T { return [3]T{c.q, c.r, c.s} }

// Axes returns the (q, s) pair used as a 2-D storage key. It matches the
// (Q, R) pair of the equivalent Axial value.
func (c Cube[T]) Axes() (int, int) { return int(c.q), int(c.s) }

func (c Cube[T]) String() string {
	return fmt.Sprintf("Cube(%v, %v, %v)", c.q, c.r, c.s)
}

// ToAxial converts cube to axial.
func (c Cube[T]) ToAxial() Axial[T] { return Axial[T]{Q: c.q, R: c.s} }

// Add returns c+o.
func (c Cube[T]) Add(o Cube[T]) Cube[T] {
	return Cube[T]{q: c.q + o.q, r: c.r + o.r, s: c.s + o.s}
}

// Sub returns c-o.
func (c Cube[T]) Sub(o Cube[T]) Cube[T] {
	return Cube[T]{q: c.q - o.q, r: c.r - o.r, s: c.s - o.s}
}

// Scale multiplies every axis by k.
func (c Cube[T]) Scale(k T) Cube[T] {
	return Cube[T]{q: c.q * k, r: c.r * k, s: c.s * k}
}

// Div divides every axis by k. Integral division truncates per axis, so the
// result is validated again and may fail with ErrInvalidCube.
func (c Cube[T]) Div(k T) (Cube[T], error) {
	return NewCube(c.q/k, c.r/k, c.s/k)
}

// Neg returns -c.
func (c Cube[T]) Neg() Cube[T] {
	return Cube[T]{q: -c.q, r: -c.r, s: -c.s}
}

// RotateLeft rotates 60° around the origin: (-s, -q, -r).
func (c Cube[T]) RotateLeft() Cube[T] {
	return Cube[T]{q: -c.s, r: -c.q, s: -c.r}
}

// RotateRight rotates 60° the other way: (-r, -s, -q).
func (c Cube[T]) RotateRight() Cube[T] {
	return Cube[T]{q: -c.r, r: -c.s, s: -c.q}
}

// Length returns the hex lattice norm (|q|+|r|+|s|)/2.
func (c Cube[T]) Length() T {
	return (Abs(c.q) + Abs(c.r) + Abs(c.s)) / 2
}

// Distance returns the number of steps between c and o.
func (c Cube[T]) Distance(o Cube[T]) T {
	return c.Sub(o).Length()
}

// Round snaps a fractional cube to the nearest lattice cell. The axis with
// the largest rounding error is recomputed from the other two so the result
// keeps q+r+s=0. For integral scalars it returns c unchanged.
func (c Cube[T]) Round() Cube[T] {
	if IsIntegral[T]() {
		return c
	}
	fq, fr, fs := float64(c.q), float64(c.r), float64(c.s)
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cube[T]{q: T(q), r: T(r), s: T(s)}
}
