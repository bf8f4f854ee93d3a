package hex

import "fmt"

// Direction indexes the six cardinal unit vectors. The same index has a
// flat-top and a pointy-top name; both resolve to the same vector.
type Direction int

// Flat-top names.
const (
	FlatRightDown Direction = iota
	FlatDown
	FlatLeftDown
	FlatLeftUp
	FlatUp
	FlatRightUp
)

// Pointy-top names.
const (
	PointyRight Direction = iota
	PointyRightDown
	PointyLeftDown
	PointyLeft
	PointyLeftUp
	PointyRightUp
)

var (
	flatDirectionNames   = [6]string{"right-down", "down", "left-down", "left-up", "up", "right-up"}
	pointyDirectionNames = [6]string{"right", "right-down", "left-down", "left", "left-up", "right-up"}
)

// Valid reports whether d is in 0..5.
func (d Direction) Valid() bool { return d >= 0 && d < 6 }

// FlatName returns the flat-top label.
func (d Direction) FlatName() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return flatDirectionNames[d]
}

// PointyName returns the pointy-top label.
func (d Direction) PointyName() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return pointyDirectionNames[d]
}

func (d Direction) String() string { return d.PointyName() }

// Opposite returns the direction pointing the other way. Out-of-range values
// are reduced mod 6 first, so the result is always Valid.
func (d Direction) Opposite() Direction { return (d%6 + 9) % 6 }

// Diagonal indexes the six diagonal ("corner") unit vectors.
type Diagonal int

// Flat-top diagonal names.
const (
	FlatDiagonalRight Diagonal = iota
	FlatDiagonalRightDown
	FlatDiagonalLeftDown
	FlatDiagonalLeft
	FlatDiagonalLeftUp
	FlatDiagonalRightUp
)

// Pointy-top diagonal names.
const (
	PointyDiagonalRightDown Diagonal = iota
	PointyDiagonalDown
	PointyDiagonalLeftDown
	PointyDiagonalLeftUp
	PointyDiagonalUp
	PointyDiagonalRightUp
)

// Valid reports whether d is in 0..5.
func (d Diagonal) Valid() bool { return d >= 0 && d < 6 }

// Diagonal labels swap the cardinal label sets: flat diagonals point where
// pointy cardinals do and the other way round.

// FlatName returns the flat-top label.
func (d Diagonal) FlatName() string {
	if !d.Valid() {
		return fmt.Sprintf("diagonal(%d)", int(d))
	}
	return pointyDirectionNames[d]
}

// PointyName returns the pointy-top label.
func (d Diagonal) PointyName() string {
	if !d.Valid() {
		return fmt.Sprintf("diagonal(%d)", int(d))
	}
	return flatDirectionNames[d]
}

func (d Diagonal) String() string { return d.PointyName() }

// Unit vectors as (q, r, s). Both tables are fixed.
var (
	cardinals = [6][3]int8{
		{1, -1, 0}, {0, -1, 1}, {-1, 0, 1},
		{-1, 1, 0}, {0, 1, -1}, {1, 0, -1},
	}
	diagonals = [6][3]int8{
		{2, -1, -1}, {1, -2, 1}, {-1, -1, 2},
		{-2, 1, 1}, {-1, 2, -1}, {1, 1, -2},
	}
)

func unit[T Scalar](v [3]int8) Cube[T] {
	return Cube[T]{q: T(v[0]), r: T(v[1]), s: T(v[2])}
}

// DirectionVector returns the unit vector for d. It panics if d is out of
// range, like indexing a slice.
func DirectionVector[T Scalar](d Direction) Cube[T] { return unit[T](cardinals[d]) }

// DiagonalVector returns the diagonal vector for d.
func DiagonalVector[T Scalar](d Diagonal) Cube[T] { return unit[T](diagonals[d]) }

// Neighbor returns the adjacent cell in direction d.
func (c Cube[T]) Neighbor(d Direction) Cube[T] { return c.Add(DirectionVector[T](d)) }

// DiagonalNeighbor returns the cell across the corner in direction d.
func (c Cube[T]) DiagonalNeighbor(d Diagonal) Cube[T] { return c.Add(DiagonalVector[T](d)) }

// Neighbors returns the six adjacent cells in direction order.
func (c Cube[T]) Neighbors() [6]Cube[T] {
	var out [6]Cube[T]
	for i := range out {
		out[i] = c.Neighbor(Direction(i))
	}
	return out
}
