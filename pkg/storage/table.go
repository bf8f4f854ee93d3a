package storage

import (
	"fmt"
	"iter"
)

// Table is a hash map keyed by the coordinate value itself.
type Table[K comparable, V any] struct {
	m map[K]V
}

// NewTable creates an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{m: make(map[K]V)}
}

// Insert adds key. It fails if key is already present.
func (t *Table[K, V]) Insert(key K, v V) error {
	if _, ok := t.m[key]; ok {
		return wrapError("insert", fmt.Errorf("%w: %v", ErrDuplicateKey, key))
	}
	t.m[key] = v
	return nil
}

// Get returns the value for key.
func (t *Table[K, V]) Get(key K) (V, error) {
	v, ok := t.m[key]
	if !ok {
		return v, wrapError("get", fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	return v, nil
}

// Set stores v under key whether or not it exists.
func (t *Table[K, V]) Set(key K, v V) { t.m[key] = v }

// Len returns the number of keys.
func (t *Table[K, V]) Len() int { return len(t.m) }

// All yields every entry in unspecified order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range t.m {
			if !yield(k, v) {
				return
			}
		}
	}
}
