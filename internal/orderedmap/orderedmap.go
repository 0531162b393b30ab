// Package orderedmap implements an insertion-ordered map that is never
// mutated once built: Set returns a new map sharing nothing writable with
// the receiver. A nil *Map is a valid empty map.
package orderedmap

import (
	"errors"
	"iter"
	"maps"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set returns a copy of m with key bound to value. If key is already
// present, m itself is returned together with ErrDuplicateEntry.
func (m *Map[K, V]) Set(key K, value V) (*Map[K, V], error) {
	if m == nil {
		m = New[K, V]()
	}
	if _, exists := m.keys[key]; exists {
		return m, ErrDuplicateEntry
	}

	entries := make([]K, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	keys := maps.Clone(m.keys)
	if keys == nil {
		keys = make(map[K]V)
	}
	keys[key] = value
	return &Map[K, V]{
		entries: append(entries, key),
		keys:    keys,
	}, nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
