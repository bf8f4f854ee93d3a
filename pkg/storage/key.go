// Package storage holds containers that map hex grid cells to payloads:
// a fixed dense array, a growable dense array with keyed lookup, a hash
// table, and a shape-aware store over a caller-owned buffer.
//
// None of the containers are safe for concurrent use.
package storage

import "math"

// Coord is a cell that can be addressed on a 2-D grid. Every coordinate
// type in pkg/hex implements it.
type Coord interface {
	comparable
	Axes() (int, int)
}

// CompositeKey packs two 32-bit axes into one 64-bit key, x in the high
// half and z in the low half. Negative axes keep their two's complement bits.
// Axes outside the int32 range are truncated.
func CompositeKey(x, z int) uint64 {
	return uint64(uint32(x))<<32 | uint64(uint32(z))
}

// packKey is CompositeKey for axes that fit in 32 bits. Wider axes would
// alias onto another cell's key, so it reports false for them.
func packKey(x, z int) (uint64, bool) {
	if x < math.MinInt32 || x > math.MaxInt32 || z < math.MinInt32 || z > math.MaxInt32 {
		return 0, false
	}
	return CompositeKey(x, z), true
}

// SplitKey reverses CompositeKey.
func SplitKey(k uint64) (x, z int) {
	return int(int32(uint32(k >> 32))), int(int32(uint32(k)))
}

// slot maps (x, z) to a row-major index into a width×height buffer. Each
// axis is bounds checked on its own so that an overflowing z never wraps
// into the next row.
func slot(x, z, width, height int) (int, bool) {
	if x < 0 || x >= width || z < 0 || z >= height {
		return 0, false
	}
	return x*height + z, true
}
