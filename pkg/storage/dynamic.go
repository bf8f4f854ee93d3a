package storage

import (
	"fmt"
	"iter"
	"math"
)

const (
	defaultCapacity   = 1000
	defaultFillFactor = 0.75
)

type dynamicOptions struct {
	capacity int
	fill     float64
}

// Option configures a Dynamic store.
type Option func(*dynamicOptions)

// WithCapacity sets the initial buffer size, which is also the growth
// increment. Non-positive values keep the default of 1000.
func WithCapacity(n int) Option {
	return func(o *dynamicOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithFillFactor sets the occupancy ratio above which the buffer grows
// before the next insert. Values outside (0, 1] keep the default of 0.75.
func WithFillFactor(f float64) Option {
	return func(o *dynamicOptions) {
		if f > 0 && f <= 1 {
			o.fill = f
		}
	}
}

type entry[K Coord, V any] struct {
	key   K
	value V
}

// Dynamic is a growable dense store. Entries are appended to a buffer in
// insertion order and found through a map from CompositeKey to slot.
// There is no removal; Clear drops everything at once.
type Dynamic[K Coord, V any] struct {
	opts     dynamicOptions
	buf      []entry[K, V]
	lookup   map[uint64]uint64
	counter  uint64
	maxSlots uint64
}

// NewDynamic creates an empty store.
func NewDynamic[K Coord, V any](opts ...Option) *Dynamic[K, V] {
	o := dynamicOptions{capacity: defaultCapacity, fill: defaultFillFactor}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dynamic[K, V]{
		opts:     o,
		buf:      make([]entry[K, V], o.capacity),
		lookup:   make(map[uint64]uint64),
		maxSlots: math.MaxUint64,
	}
}

// Add inserts key with value v.
func (d *Dynamic[K, V]) Add(key K, v V) error {
	if d.counter >= d.maxSlots {
		return wrapError("add", ErrCapacityExhausted)
	}
	k, ok := packKey(key.Axes())
	if !ok {
		return wrapError("add", fmt.Errorf("%w: %v", ErrAxisOutOfRange, key))
	}
	if at, ok := d.lookup[k]; ok {
		return wrapError("add", fmt.Errorf("%w: %v already at slot %d", ErrDuplicateKey, key, at))
	}
	if float64(d.counter) > float64(len(d.buf))*d.opts.fill || d.counter >= uint64(len(d.buf)) {
		d.grow()
	}
	d.lookup[k] = d.counter
	d.buf[d.counter] = entry[K, V]{key: key, value: v}
	d.counter++
	return nil
}

func (d *Dynamic[K, V]) grow() {
	next := make([]entry[K, V], len(d.buf)+d.opts.capacity)
	copy(next, d.buf)
	d.buf = next
}

// Get returns the value stored under the axes (x, z).
func (d *Dynamic[K, V]) Get(x, z int) (V, error) {
	var i uint64
	k, ok := packKey(x, z)
	if ok {
		i, ok = d.lookup[k]
	}
	if !ok {
		var zero V
		return zero, wrapError("get", fmt.Errorf("%w: (%d, %d)", ErrKeyNotFound, x, z))
	}
	return d.buf[i].value, nil
}

// Lookup is Get keyed by a coordinate.
func (d *Dynamic[K, V]) Lookup(key K) (V, error) {
	return d.Get(key.Axes())
}

// Ref returns a pointer to the stored value for key. The pointer is valid
// until the next Add or Clear, either of which may move the buffer.
func (d *Dynamic[K, V]) Ref(key K) (*V, bool) {
	k, ok := packKey(key.Axes())
	if !ok {
		return nil, false
	}
	i, ok := d.lookup[k]
	if !ok {
		return nil, false
	}
	return &d.buf[i].value, true
}

// Has reports whether key is stored.
func (d *Dynamic[K, V]) Has(key K) bool {
	k, ok := packKey(key.Axes())
	if !ok {
		return false
	}
	_, ok = d.lookup[k]
	return ok
}

// Len returns the number of stored entries.
func (d *Dynamic[K, V]) Len() int { return int(d.counter) }

// Cap returns the current buffer size.
func (d *Dynamic[K, V]) Cap() int { return len(d.buf) }

// Clear discards every entry and shrinks the buffer back to its initial size.
func (d *Dynamic[K, V]) Clear() {
	d.counter = 0
	clear(d.lookup)
	d.buf = make([]entry[K, V], d.opts.capacity)
}

// All yields entries in insertion order.
func (d *Dynamic[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.buf[:d.counter] {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
