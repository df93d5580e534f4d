// Package linkedmap provides an insertion-order-preserving implementation of
// kvmap.Map, backed by github.com/wk8/go-ordered-map.
package linkedmap

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mapkit-go/mapkit/pkg/kvmap"
)

// Map is a mutable map that enumerates entries in the order their keys were
// first inserted; overwriting a key keeps its original position. The zero
// value is not usable; use New.
type Map[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

// New returns a new map populated with the given entries, inserted in order
// with overwrite semantics.
func New[K comparable, V any](entries ...kvmap.Entry[K, V]) *Map[K, V] {
	m := &Map[K, V]{om: orderedmap.New[K, V]()}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *Map[K, V]) Len() int {
	return m.om.Len()
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.om.Get(k)
	return ok
}

func (m *Map[K, V]) Index(k K) (V, bool) {
	return m.om.Get(k)
}

func (m *Map[K, V]) Set(k K, v V) {
	m.om.Set(k, v)
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.om.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

func (m *Map[K, V]) CloneEmpty() kvmap.Map[K, V] {
	return New[K, V]()
}

func (m *Map[K, V]) Iterator() kvmap.Iterator[K, V] {
	return &iterator[K, V]{next: m.om.Oldest()}
}

type iterator[K comparable, V any] struct {
	next *orderedmap.Pair[K, V]
	key  K
}

func (it *iterator[K, V]) HasNext() bool {
	return it.next != nil
}

func (it *iterator[K, V]) Next() V {
	p := it.next
	it.key = p.Key
	it.next = p.Next()
	return p.Value
}

func (it *iterator[K, V]) Key() K {
	return it.key
}
