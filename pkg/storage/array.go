package storage

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Array is a fixed width×height dense store addressed by a key's axes.
// Writes outside the grid are dropped and reads outside it return the zero
// value; neither is an error.
type Array[K Coord, V any] struct {
	width, height int
	keys          []K
	values        []V
	used          *bitset.BitSet
}

// NewArray allocates a width×height array. Negative sizes are treated as zero.
func NewArray[K Coord, V any](width, height int) *Array[K, V] {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	return &Array[K, V]{
		width:  width,
		height: height,
		keys:   make([]K, n),
		values: make([]V, n),
		used:   bitset.New(uint(n)),
	}
}

// Width returns the size of the first axis.
func (a *Array[K, V]) Width() int { return a.width }

// Height returns the size of the second axis.
func (a *Array[K, V]) Height() int { return a.height }

// Add stores v at key's slot, overwriting whatever was there.
func (a *Array[K, V]) Add(key K, v V) {
	x, z := key.Axes()
	i, ok := slot(x, z, a.width, a.height)
	if !ok {
		return
	}
	a.keys[i] = key
	a.values[i] = v
	a.used.Set(uint(i))
}

// Get returns the value stored at (x, z).
func (a *Array[K, V]) Get(x, z int) V {
	i, ok := slot(x, z, a.width, a.height)
	if !ok {
		var zero V
		return zero
	}
	return a.values[i]
}

// Lookup returns the value stored for key and whether the slot was written.
func (a *Array[K, V]) Lookup(key K) (V, bool) {
	x, z := key.Axes()
	i, ok := slot(x, z, a.width, a.height)
	if !ok || !a.used.Test(uint(i)) {
		var zero V
		return zero, false
	}
	return a.values[i], true
}

// Has reports whether (x, z) has been written.
func (a *Array[K, V]) Has(x, z int) bool {
	i, ok := slot(x, z, a.width, a.height)
	return ok && a.used.Test(uint(i))
}

// Len returns the number of written slots.
func (a *Array[K, V]) Len() int { return int(a.used.Count()) }

// All yields every written slot in index order.
func (a *Array[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, ok := a.used.NextSet(0); ok; i, ok = a.used.NextSet(i + 1) {
			if !yield(a.keys[i], a.values[i]) {
				return
			}
		}
	}
}
