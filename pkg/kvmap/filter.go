package kvmap

// Filter returns an iterator that yields only the entries of src for which
// both predicates hold. A nil predicate accepts every entry. The returned
// iterator reads src lazily and assumes sole ownership of it; src must not be
// used afterwards.
func Filter[K, V any](src Iterator[K, V], keyOK func(K) bool, valOK func(V) bool) Iterator[K, V] {
	return &filterIterator[K, V]{src: src, keyOK: keyOK, valOK: valOK}
}

type filterIterator[K, V any] struct {
	src   Iterator[K, V]
	keyOK func(K) bool
	valOK func(V) bool
	// Entry admitted by the lookahead in HasNext but not yet returned by
	// Next. Kept separate from key so that the lookahead never disturbs the
	// Key side channel.
	pending    bool
	pendingKey K
	pendingVal V
	// Key of the entry last returned by Next.
	key K
}

func (it *filterIterator[K, V]) HasNext() bool {
	for !it.pending && it.src.HasNext() {
		v := it.src.Next()
		k := it.src.Key()
		if (it.keyOK == nil || it.keyOK(k)) && (it.valOK == nil || it.valOK(v)) {
			it.pendingKey, it.pendingVal, it.pending = k, v, true
		}
	}
	return it.pending
}

func (it *filterIterator[K, V]) Next() V {
	if !it.HasNext() {
		panic("kvmap: Next called on exhausted iterator")
	}
	it.pending = false
	it.key = it.pendingKey
	return it.pendingVal
}

func (it *filterIterator[K, V]) Key() K {
	return it.key
}
