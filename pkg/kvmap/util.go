package kvmap

import "fmt"

// NoSuchKeyError is returned by Get and GetMsg when the looked-up key has no
// association in the map.
type NoSuchKeyError struct {
	// Key is the key that was looked up.
	Key any
	msg string
}

// Error returns the caller-supplied message if one was given to GetMsg, and a
// generated message naming the key otherwise.
func (e *NoSuchKeyError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("no value for key %v", e.Key)
}

// Get returns the value associated with k. If k is absent it returns a
// *NoSuchKeyError naming k. It never mutates m.
func Get[K, V any](m Map[K, V], k K) (V, error) {
	return GetMsg(m, k, "")
}

// GetMsg is like Get, except that the error returned for an absent key
// carries exactly msg as its message. An empty msg selects the generated
// default.
func GetMsg[K, V any](m Map[K, V], k K, msg string) (V, error) {
	if v, ok := m.Index(k); ok {
		return v, nil
	}
	var zero V
	return zero, &NoSuchKeyError{Key: k, msg: msg}
}

// GetOr returns the value associated with k if the association exists, and
// def unmodified otherwise. Presence is decided by the association alone: a
// stored zero value is still present. It never mutates m.
func GetOr[K, V any](m Map[K, V], k K, def V) V {
	if v, ok := m.Index(k); ok {
		return v
	}
	return def
}

// GetOrSet associates k with v if k is absent, and leaves m untouched
// otherwise. In both cases it returns the argument v, never a previously
// stored value; callers that need the stored value should use GetOr or Index
// first.
func GetOrSet[K, V any](m Map[K, V], k K, v V) V {
	if !m.Has(k) {
		m.Set(k, v)
	}
	return v
}

// FilterKeys returns a new map of the same concrete kind as m, containing
// exactly the entries of m whose key satisfies keyOK. m is never mutated.
func FilterKeys[K, V any](m Map[K, V], keyOK func(K) bool) Map[K, V] {
	out := m.CloneEmpty()
	for _, k := range m.Keys() {
		if !keyOK(k) {
			continue
		}
		if v, ok := m.Index(k); ok {
			out.Set(k, v)
		}
	}
	return out
}

// Clone returns a new map of the same concrete kind as m, containing the
// entries of m whose key satisfies keyOK and whose value satisfies valOK. A
// nil predicate accepts everything, so Clone(m, nil, nil) is a full copy.
// Values are shared by reference, not deep-copied; the entry set of the
// returned map is independent of m.
func Clone[K, V any](m Map[K, V], keyOK func(K) bool, valOK func(V) bool) Map[K, V] {
	out := m.CloneEmpty()
	for it := Filter(m.Iterator(), keyOK, valOK); it.HasNext(); {
		v := it.Next()
		out.Set(it.Key(), v)
	}
	return out
}

// Copy inserts every entry of src into dst, overwriting existing
// associations, and returns dst to support chaining. src is never mutated.
// src and dst must not be the same map; aliasing them is undefined behavior.
func Copy[K, V any](src, dst Map[K, V]) Map[K, V] {
	for it := src.Iterator(); it.HasNext(); {
		v := it.Next()
		dst.Set(it.Key(), v)
	}
	return dst
}

// SetAll inserts each entry into m in order, overwriting existing
// associations. With no entries it is a no-op.
func SetAll[K, V any](m Map[K, V], entries ...Entry[K, V]) {
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
}
