package trackmap

// Entry is a single key-value pair, used for seeding, replacing, and
// merging map contents in a defined order.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Option configures a Map at construction time. The configured policy
// is fixed for the lifetime of the map.
type Option[K comparable, V any] func(*Map[K, V])

// WithDefault makes Get return value for absent keys. Reads of absent
// keys do not store the default and do not mark anything dirty.
func WithDefault[K comparable, V any](value V) Option[K, V] {
	return func(m *Map[K, V]) {
		m.defaultVal = value
		m.defaultFn = nil
	}
}

// WithDefaultFunc makes Get invoke fn for absent keys and return its
// result. fn receives the map itself and the missing key; it must not
// mutate the map. The no-mutation contract of WithDefault applies.
func WithDefaultFunc[K comparable, V any](fn func(m *Map[K, V], key K) V) Option[K, V] {
	return func(m *Map[K, V]) {
		m.defaultFn = fn
	}
}

// WithSeed pre-populates the map. Seeded entries represent a known
// clean starting state: they are NOT marked dirty.
func WithSeed[K comparable, V any](entries ...Entry[K, V]) Option[K, V] {
	return func(m *Map[K, V]) {
		for _, e := range entries {
			m.entries.Set(e.Key, e.Value)
		}
	}
}

// WithEqual replaces the value-equality predicate used for equality
// suppression. The default is reflect.DeepEqual.
func WithEqual[K comparable, V any](eq func(a, b V) bool) Option[K, V] {
	return func(m *Map[K, V]) {
		m.equal = eq
	}
}
