// Package kvmap defines a minimal capability interface for map-like
// containers, along with stateless helpers for looking up, filtering, cloning
// and populating them.
//
// The helpers work against any type satisfying Map; concrete containers with
// specific enumeration orders live in the hashmap, linkedmap and sortedmap
// packages.
package kvmap

// Map is the contract a container must satisfy to be usable with the helpers
// in this package. Keys are unique within a map; Set on an existing key
// overwrites its value. Enumeration order is implementation-defined.
type Map[K, V any] interface {
	// Len returns the number of entries in the map.
	Len() int
	// Has reports whether there is a value associated with the given key.
	Has(k K) bool
	// Index returns the value associated with the given key, and whether the
	// association exists.
	Index(k K) (V, bool)
	// Set associates the given key with the given value, replacing any
	// existing association.
	Set(k K, v V)
	// Keys returns a snapshot of all current keys, in the map's enumeration
	// order.
	Keys() []K
	// CloneEmpty returns a fresh empty map of the same concrete kind as the
	// receiver, preserving its ordering semantics (including any comparator).
	CloneEmpty() Map[K, V]
	// Iterator returns a fresh iterator over the map.
	Iterator() Iterator[K, V]
}

// Iterator is a single-use, forward-only cursor over a map's entries. It can
// be used like this:
//
//	for it := m.Iterator(); it.HasNext(); {
//	    v := it.Next()
//	    k := it.Key()
//	    // do something with the entry...
//	}
//
// Mutating the underlying map while an iterator is live is undefined
// behavior.
type Iterator[K, V any] interface {
	// HasNext reports whether there are more entries to return.
	HasNext() bool
	// Next advances the iterator and returns the next value. Calling Next
	// when HasNext is false is undefined behavior; implementations may panic.
	Next() V
	// Key returns the key of the value most recently returned by Next. It is
	// valid only after a call to Next, and until the next such call.
	Key() K
}
