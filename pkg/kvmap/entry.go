package kvmap

// Entry is a single key-value association.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// E returns an Entry associating k with v. It exists to make literal entry
// lists shorter to write.
func E[K, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{k, v}
}

// Pairs converts a flat list of alternating keys and values into entries,
// type-asserting elements at even indices to K and elements at odd indices to
// V. A wrongly typed element panics. If the list has an odd length, the
// trailing unpaired element is dropped silently.
func Pairs[K, V any](kvs ...any) []Entry[K, V] {
	n := len(kvs) - len(kvs)%2
	entries := make([]Entry[K, V], 0, n/2)
	for i := 0; i < n; i += 2 {
		entries = append(entries, Entry[K, V]{kvs[i].(K), kvs[i+1].(V)})
	}
	return entries
}
