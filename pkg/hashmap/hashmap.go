// Package hashmap provides a hash-backed implementation of kvmap.Map, with
// unspecified enumeration order.
package hashmap

import "github.com/mapkit-go/mapkit/pkg/kvmap"

// Map is a mutable hash-backed map. The zero value is not usable; use New.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// New returns a new map populated with the given entries, inserted in order
// with overwrite semantics.
func New[K comparable, V any](entries ...kvmap.Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{entries: make(map[K]V, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *Map[K, V]) Index(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *Map[K, V]) Set(k K, v V) {
	m.entries[k] = v
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map[K, V]) CloneEmpty() kvmap.Map[K, V] {
	return New[K, V]()
}

// Iterator returns an iterator over a snapshot of the current keys. Values
// are resolved against the live map, so mutating m during the traversal is
// undefined behavior.
func (m *Map[K, V]) Iterator() kvmap.Iterator[K, V] {
	return &iterator[K, V]{m: m, keys: m.Keys()}
}

type iterator[K comparable, V any] struct {
	m    *Map[K, V]
	keys []K
	next int
	key  K
}

func (it *iterator[K, V]) HasNext() bool {
	return it.next < len(it.keys)
}

func (it *iterator[K, V]) Next() V {
	it.key = it.keys[it.next]
	it.next++
	return it.m.entries[it.key]
}

func (it *iterator[K, V]) Key() K {
	return it.key
}
