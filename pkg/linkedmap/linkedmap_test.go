package linkedmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mapkit-go/mapkit/pkg/kvmap"
)

func TestMap(t *testing.T) {
	m := New[string, int]()
	if m.Len() != 0 {
		t.Errorf("m.Len() = %d, want 0", m.Len())
	}
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	if m.Len() != 3 {
		t.Errorf("m.Len() = %d, want 3", m.Len())
	}
	if !m.Has("b") {
		t.Errorf("m.Has(b) = false")
	}
	if v, ok := m.Index("b"); !ok || v != 2 {
		t.Errorf("m.Index(b) = %d, %v, want 2, true", v, ok)
	}
	if _, ok := m.Index("x"); ok {
		t.Errorf("m.Index(x) reports a value for a missing key")
	}
}

func TestInsertionOrder(t *testing.T) {
	m := New(
		kvmap.E("c", 3), kvmap.E("a", 1), kvmap.E("b", 2))
	if diff := cmp.Diff([]string{"c", "a", "b"}, m.Keys()); diff != "" {
		t.Errorf("m.Keys() (-want +got):\n%s", diff)
	}

	// Overwriting a key keeps its original position.
	m.Set("a", 100)
	if diff := cmp.Diff([]string{"c", "a", "b"}, m.Keys()); diff != "" {
		t.Errorf("m.Keys() after overwrite (-want +got):\n%s", diff)
	}
	if v, _ := m.Index("a"); v != 100 {
		t.Errorf("m.Index(a) = %d after overwrite, want 100", v)
	}

	// A fresh key goes to the end.
	m.Set("d", 4)
	if diff := cmp.Diff([]string{"c", "a", "b", "d"}, m.Keys()); diff != "" {
		t.Errorf("m.Keys() after insert (-want +got):\n%s", diff)
	}
}

func TestIterator(t *testing.T) {
	m := New(
		kvmap.E("b", 2), kvmap.E("a", 1), kvmap.E("c", 3))
	var got []kvmap.Entry[string, int]
	for it := m.Iterator(); it.HasNext(); {
		v := it.Next()
		got = append(got, kvmap.E(it.Key(), v))
	}
	want := []kvmap.Entry[string, int]{{Key: "b", Value: 2}, {Key: "a", Value: 1}, {Key: "c", Value: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("iterated entries (-want +got):\n%s", diff)
	}
}

func TestCloneEmpty(t *testing.T) {
	m := New(kvmap.E("a", 1))
	clone := m.CloneEmpty()
	if _, ok := clone.(*Map[string, int]); !ok {
		t.Errorf("CloneEmpty returns %T, want *Map[string, int]", clone)
	}
	if clone.Len() != 0 {
		t.Errorf("CloneEmpty().Len() = %d, want 0", clone.Len())
	}
	// The clone preserves the kind, so it keeps insertion order too.
	clone.Set("z", 26)
	clone.Set("y", 25)
	if diff := cmp.Diff([]string{"z", "y"}, clone.Keys()); diff != "" {
		t.Errorf("clone.Keys() (-want +got):\n%s", diff)
	}
	if m.Has("z") {
		t.Errorf("mutating the clone affected the original")
	}
}
