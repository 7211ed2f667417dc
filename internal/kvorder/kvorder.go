// Package kvorder provides an insertion-ordered map primitive.
//
// It exists so public containers can compose over a private ordered map
// instead of embedding one, keeping every mutation path under the
// owner's control.
package kvorder

// Map is a mapping with unique keys that iterates in the order keys
// were first inserted. Re-setting an existing key keeps its original
// position.
type Map[K comparable, V any] struct {
	values map[K]V
	order  []K
}

// New creates an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.values)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, appending the key to the iteration order
// if it is new.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// Delete removes key and returns its prior value and whether it was
// present. The iteration order of the remaining keys is unchanged.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	v, ok := m.values[key]
	if !ok {
		return v, false
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return v, true
}

// First returns the first entry in iteration order, or ok=false when
// the map is empty.
func (m *Map[K, V]) First() (K, V, bool) {
	if len(m.order) == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	k := m.order[0]
	return k, m.values[k], true
}

// Keys returns the keys in iteration order. The slice is a copy.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.order))
	copy(keys, m.order)
	return keys
}

// Range calls fn for each entry in iteration order until fn returns
// false. fn must not mutate the map.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, k := range m.order {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.values = make(map[K]V)
	m.order = m.order[:0]
}
