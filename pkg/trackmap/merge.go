package trackmap

// Replace swaps the entire contents of the map for entries.
//
// The changed set becomes exactly the new keys — pending change
// history is discarded, not merged. Keys that were present before but
// are absent after are recorded as deleted. Returns the map itself so
// callers can inspect the new contents.
func (m *Map[K, V]) Replace(entries []Entry[K, V]) *Map[K, V] {
	oldKeys := m.entries.Keys()
	m.entries.Clear()
	m.dirty = m.dirty[:0]
	for _, e := range entries {
		m.entries.Set(e.Key, e.Value)
		m.dirty = append(m.dirty, e.Key)
	}
	for _, k := range oldKeys {
		if !m.entries.Has(k) {
			m.deleted = append(m.deleted, k)
		}
	}
	return m
}

// Merge folds entries into the map; on key collision the incoming
// value wins. Every merged key — brand-new or colliding — is marked
// changed, even when the colliding value is equal to the stored one.
// That asymmetry with MergeFunc is long-standing, documented behavior.
// Returns the map itself.
func (m *Map[K, V]) Merge(entries []Entry[K, V]) *Map[K, V] {
	for _, e := range entries {
		m.dirty = append(m.dirty, e.Key)
		m.entries.Set(e.Key, e.Value)
	}
	return m
}

// MergeFunc folds entries into the map, invoking resolve once per
// colliding key to pick the stored value. Brand-new keys are marked
// changed; colliding keys are marked changed only when the resolved
// value differs from the stored one (the same equality suppression as
// Set). A nil resolve falls back to Merge. Returns the map itself.
func (m *Map[K, V]) MergeFunc(entries []Entry[K, V], resolve func(key K, old, incoming V) V) *Map[K, V] {
	if resolve == nil {
		return m.Merge(entries)
	}
	for _, e := range entries {
		old, exists := m.entries.Get(e.Key)
		if !exists {
			m.dirty = append(m.dirty, e.Key)
			m.entries.Set(e.Key, e.Value)
			continue
		}
		resolved := resolve(e.Key, old, e.Value)
		if m.equal(old, resolved) {
			continue
		}
		m.dirty = append(m.dirty, e.Key)
		m.entries.Set(e.Key, resolved)
	}
	return m
}

// Update is a synonym for Merge.
func (m *Map[K, V]) Update(entries []Entry[K, V]) *Map[K, V] {
	return m.Merge(entries)
}
