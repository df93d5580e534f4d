// Package sortedmap provides a comparator-ordered implementation of
// kvmap.Map. The comparator is supplied once at construction and used for all
// ordering decisions for the map's lifetime.
//
// Entries are kept in a sorted slice: lookups are O(log n), inserts O(n).
package sortedmap

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/mapkit-go/mapkit/pkg/kvmap"
)

// Map is a mutable map that enumerates entries in ascending comparator
// order. The zero value is not usable; use New or NewOrdered.
type Map[K, V any] struct {
	cmp     func(K, K) int
	entries []kvmap.Entry[K, V]
}

// New returns a new map ordered by cmp, populated with the given entries.
// cmp must define a total order: negative if a sorts before b, zero if they
// are equal, positive otherwise. Keys comparing equal are the same key.
func New[K, V any](cmp func(a, b K) int, entries ...kvmap.Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{cmp: cmp}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// NewOrdered is New with the natural order of K.
func NewOrdered[K constraints.Ordered, V any](entries ...kvmap.Entry[K, V]) *Map[K, V] {
	return New(func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}, entries...)
}

// search returns the index at which k is or would be stored, and whether it
// is there.
func (m *Map[K, V]) search(k K) (int, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.cmp(m.entries[i].Key, k) >= 0
	})
	return i, i < len(m.entries) && m.cmp(m.entries[i].Key, k) == 0
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.search(k)
	return ok
}

func (m *Map[K, V]) Index(k K) (V, bool) {
	if i, ok := m.search(k); ok {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Set(k K, v V) {
	i, ok := m.search(k)
	if ok {
		m.entries[i].Value = v
		return
	}
	m.entries = append(m.entries, kvmap.Entry[K, V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = kvmap.Entry[K, V]{Key: k, Value: v}
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// CloneEmpty returns a fresh empty map with the same comparator.
func (m *Map[K, V]) CloneEmpty() kvmap.Map[K, V] {
	return New[K, V](m.cmp)
}

func (m *Map[K, V]) Iterator() kvmap.Iterator[K, V] {
	return &iterator[K, V]{m: m}
}

type iterator[K, V any] struct {
	m    *Map[K, V]
	next int
	key  K
}

func (it *iterator[K, V]) HasNext() bool {
	return it.next < len(it.m.entries)
}

func (it *iterator[K, V]) Next() V {
	e := it.m.entries[it.next]
	it.next++
	it.key = e.Key
	return e.Value
}

func (it *iterator[K, V]) Key() K {
	return it.key
}
