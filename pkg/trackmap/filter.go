package trackmap

// RemoveMatching removes every entry for which pred returns true,
// recording each removed key as deleted. It reports whether anything
// was removed; false means the predicate matched nothing and the map
// is untouched.
func (m *Map[K, V]) RemoveMatching(pred func(key K, value V) bool) bool {
	return m.filter(pred, false)
}

// RetainMatching removes every entry for which pred returns false,
// recording each removed key as deleted. It reports whether anything
// was removed.
func (m *Map[K, V]) RetainMatching(pred func(key K, value V) bool) bool {
	return m.filter(pred, true)
}

// filter keeps entries whose predicate result equals keep. Removed
// keys are the set of keys present before minus those present after;
// each is recorded as deleted and loses any pending changed-marker.
func (m *Map[K, V]) filter(pred func(key K, value V) bool, keep bool) bool {
	var removed []K
	m.entries.Range(func(k K, v V) bool {
		if pred(k, v) != keep {
			removed = append(removed, k)
		}
		return true
	})
	if len(removed) == 0 {
		return false
	}
	for _, k := range removed {
		m.entries.Delete(k)
		m.deleted = append(m.deleted, k)
		m.dirty = withoutKey(m.dirty, k)
	}
	return true
}
