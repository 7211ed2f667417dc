package trackmap

import (
	"reflect"

	"github.com/joshuapare/trackmap/internal/kvorder"
)

// Map is a change-tracked key-value container. Iteration follows key
// insertion order. The zero value is not usable; construct with New.
//
// Mutations feed two internal change sets: keys changed or added since
// the last drain, and keys removed since the last drain. Both may hold
// a key more than once between drains; de-duplication happens when the
// sets are queried or compiled into a ChangeLog.
type Map[K comparable, V any] struct {
	entries *kvorder.Map[K, V]

	// Change sets. Order is first-occurrence order; duplicates are
	// allowed transiently and coalesced at query/drain time.
	dirty   []K
	deleted []K

	defaultVal V
	defaultFn  func(m *Map[K, V], key K) V
	equal      func(a, b V) bool
}

// New creates a Map configured by opts.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		entries: kvorder.New[K, V](),
		equal: func(a, b V) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.entries.Len()
}

// Has reports whether key is currently present. The default-value
// policy does not apply.
func (m *Map[K, V]) Has(key K) bool {
	return m.entries.Has(key)
}

// Get returns the value stored under key. For absent keys it applies
// the default policy chosen at construction (fixed value, generator
// callback, or the zero value when neither was configured). Reads
// never mutate the map or its change sets.
func (m *Map[K, V]) Get(key K) V {
	if v, ok := m.entries.Get(key); ok {
		return v
	}
	if m.defaultFn != nil {
		return m.defaultFn(m, key)
	}
	return m.defaultVal
}

// Lookup returns the value stored under key and whether the key is
// present. The default policy does not apply.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.entries.Get(key)
}

// Set stores value under key and returns value.
//
// When key already holds an equal value the call is a no-op for change
// tracking: nothing is stored and the key is not marked dirty.
// Otherwise the key is recorded as changed.
func (m *Map[K, V]) Set(key K, value V) V {
	if current, ok := m.entries.Get(key); ok && m.equal(current, value) {
		return value
	}
	m.dirty = append(m.dirty, key)
	m.entries.Set(key, value)
	return value
}

// Store is a synonym for Set.
func (m *Map[K, V]) Store(key K, value V) V {
	return m.Set(key, value)
}

// Delete removes key and returns its prior value and whether it was
// present. A deletion event is recorded unconditionally, even when the
// key did not exist. Any pending changed-marker for the key is
// discarded: the deletion supersedes it.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	prior, existed := m.entries.Delete(key)
	m.deleted = append(m.deleted, key)
	m.dirty = withoutKey(m.dirty, key)
	return prior, existed
}

// TakeAny removes and returns the first entry in iteration order,
// recording it as deleted. Returns ErrEmptyMap when the map has no
// entries.
func (m *Map[K, V]) TakeAny() (K, V, error) {
	key, value, ok := m.entries.First()
	if !ok {
		var zk K
		var zv V
		return zk, zv, ErrEmptyMap
	}
	m.entries.Delete(key)
	m.deleted = append(m.deleted, key)
	m.dirty = withoutKey(m.dirty, key)
	return key, value, nil
}

// Clear removes all entries. Every previously present key is recorded
// as deleted; pending changed-markers are wiped outright, since a
// deletion wins over a change in the same epoch.
func (m *Map[K, V]) Clear() {
	m.deleted = append(m.deleted, m.entries.Keys()...)
	m.dirty = m.dirty[:0]
	m.entries.Clear()
}

// Keys returns the live keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	return m.entries.Keys()
}

// Values returns the live values in iteration order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.entries.Len())
	m.entries.Range(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Range calls fn for each live entry in iteration order until fn
// returns false. fn must not mutate the map.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.entries.Range(fn)
}

// withoutKey removes every occurrence of key from keys in place.
func withoutKey[K comparable](keys []K, key K) []K {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// dedup returns keys with duplicates removed, keeping first
// occurrences in order.
func dedup[K comparable](keys []K) []K {
	out := make([]K, 0, len(keys))
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// containsKey reports whether keys holds key.
func containsKey[K comparable](keys []K, key K) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
