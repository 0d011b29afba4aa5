package collection

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/wippyai/webidl-runtime/errors"
)

// Entry is a key/value pair used to seed read-only collections.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type mapEntry[K comparable, V any] struct {
	key   K
	value V
}

// Maplike is the keyed collection policy: insertion-ordered map semantics
// with key uniqueness. Up to four entries live inline and are found by
// linear scan, which beats hashing at that size; the fifth entry moves
// the map one-way into an ordered-map with hashed lookup.
type Maplike[K comparable, V any] struct {
	inline   smallStore[mapEntry[K, V]]
	om       *orderedmap.OrderedMap[K, V]
	readonly bool
}

// NewMaplike creates an empty mutable map.
func NewMaplike[K comparable, V any]() *Maplike[K, V] {
	return &Maplike[K, V]{}
}

// NewReadonlyMaplike creates a map pre-populated with entries that rejects
// all further mutation. Duplicate keys keep the first occurrence's
// position with the last occurrence's value.
func NewReadonlyMaplike[K comparable, V any](entries ...Entry[K, V]) *Maplike[K, V] {
	m := &Maplike[K, V]{}
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	m.readonly = true
	return m
}

// Len returns the number of entries.
func (m *Maplike[K, V]) Len() int {
	if m.om != nil {
		return m.om.Len()
	}
	return m.inline.Len()
}

// IsInline reports whether entries still live in inline storage.
func (m *Maplike[K, V]) IsInline() bool {
	return m.om == nil
}

// Get returns the value stored under key.
func (m *Maplike[K, V]) Get(key K) (V, bool) {
	if m.om != nil {
		return m.om.Get(key)
	}
	for _, e := range m.inline.live() {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Maplike[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position and gets
// the new value; a new key is appended.
func (m *Maplike[K, V]) Set(key K, value V) error {
	if m.readonly {
		return errors.Readonly("set")
	}
	m.set(key, value)
	return nil
}

func (m *Maplike[K, V]) set(key K, value V) {
	if m.om != nil {
		m.om.Set(key, value)
		return
	}
	for i, e := range m.inline.live() {
		if e.key == key {
			m.inline.Set(i, mapEntry[K, V]{key: key, value: value})
			return
		}
	}
	if m.inline.Len() < inlineCap {
		m.inline.Append(mapEntry[K, V]{key: key, value: value})
		return
	}
	m.promote()
	m.om.Set(key, value)
}

// promote moves the inline entries, in order, into the external ordered-map
// primitive. One-way: m.om is never reset to nil.
func (m *Maplike[K, V]) promote() {
	om := orderedmap.New[K, V](2 * inlineCap)
	for _, e := range m.inline.live() {
		om.Set(e.key, e.value)
	}
	m.inline.Clear()
	m.om = om
	storeLogger().Debug("maplike promoted to ordered-map storage")
}

// Delete removes the entry under key, reporting whether one existed.
func (m *Maplike[K, V]) Delete(key K) (bool, error) {
	if m.readonly {
		return false, errors.Readonly("delete")
	}
	if m.om != nil {
		_, present := m.om.Delete(key)
		return present, nil
	}
	for i, e := range m.inline.live() {
		if e.key == key {
			m.inline.RemoveAt(i)
			return true, nil
		}
	}
	return false, nil
}

// Clear removes every entry. A promoted map stays promoted.
func (m *Maplike[K, V]) Clear() error {
	if m.readonly {
		return errors.Readonly("clear")
	}
	if m.om != nil {
		for m.om.Len() > 0 {
			m.om.Delete(m.om.Oldest().Key)
		}
		return nil
	}
	m.inline.Clear()
	return nil
}

// Entries iterates key/value pairs in insertion order.
func (m *Maplike[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.om != nil {
			for k, v := range m.om.FromOldest() {
				if !yield(k, v) {
					return
				}
			}
			return
		}
		for _, e := range m.inline.live() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys iterates keys in insertion order.
func (m *Maplike[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.Entries() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates values in insertion order.
func (m *Maplike[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.Entries() {
			if !yield(v) {
				return
			}
		}
	}
}
