package hex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the numeric types a coordinate can be built
// on. Unsigned integers are left out because the lattice needs negation.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// IsIntegral reports whether T truncates division.
func IsIntegral[T Scalar]() bool {
	var one T = 1
	return one/2 == 0
}

// Half divides v by two. Integral scalars use floor division so that
// negative odd values round toward negative infinity; floats halve exactly.
func Half[T Scalar](v T) T {
	q := v / 2
	if IsIntegral[T]() && v < 0 && q*2 != v {
		q--
	}
	return q
}

// Parity returns v&1 for integral scalars, which is 0 or 1 for any sign in
// two's complement. Floats use the parity of the floor of v.
func Parity[T Scalar](v T) T {
	if IsIntegral[T]() {
		return v - Half(v)*2
	}
	f := math.Floor(float64(v))
	return T(math.Abs(math.Mod(f, 2)))
}

// Abs returns the absolute value of v.
func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// floorHalf is ⌊v/2⌋ for any scalar, floats included.
func floorHalf[T Scalar](v T) T {
	if IsIntegral[T]() {
		return Half(v)
	}
	return T(math.Floor(float64(v) / 2))
}
