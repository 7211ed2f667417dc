package trackmap

// Action classifies an entry in a compiled ChangeLog.
type Action int

const (
	// Changed marks a key that was added or whose value changed.
	Changed Action = iota
	// Deleted marks a key that was removed.
	Deleted
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Changed:
		return "changed"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is a single compiled change. Value carries the current value
// for Changed entries and the zero value for Deleted entries, where no
// value exists anymore.
type Change[V any] struct {
	Action Action
	Value  V
}

// ChangeLog is the result of draining a Map's change sets: a
// de-duplicated, ordered per-key record of what happened since the
// previous drain. Changed keys come first, in change order, followed
// by deleted keys; a key that was both changed and deleted in the same
// epoch appears once, as deleted.
type ChangeLog[K comparable, V any] struct {
	keys    []K
	changes map[K]Change[V]
}

// Len returns the number of compiled entries.
func (l *ChangeLog[K, V]) Len() int {
	return len(l.keys)
}

// Keys returns the compiled keys in log order.
func (l *ChangeLog[K, V]) Keys() []K {
	keys := make([]K, len(l.keys))
	copy(keys, l.keys)
	return keys
}

// Get returns the compiled change for key and whether key is in the
// log.
func (l *ChangeLog[K, V]) Get(key K) (Change[V], bool) {
	c, ok := l.changes[key]
	return c, ok
}

// IsChanged reports whether key was compiled as changed.
func (l *ChangeLog[K, V]) IsChanged(key K) bool {
	c, ok := l.changes[key]
	return ok && c.Action == Changed
}

// IsDeleted reports whether key was compiled as deleted.
func (l *ChangeLog[K, V]) IsDeleted(key K) bool {
	c, ok := l.changes[key]
	return ok && c.Action == Deleted
}

// Range calls fn for each compiled entry in log order until fn returns
// false.
func (l *ChangeLog[K, V]) Range(fn func(key K, change Change[V]) bool) {
	for _, k := range l.keys {
		if !fn(k, l.changes[k]) {
			return
		}
	}
}

func (l *ChangeLog[K, V]) add(key K, change Change[V]) {
	if _, exists := l.changes[key]; !exists {
		l.keys = append(l.keys, key)
	}
	l.changes[key] = change
}

// Dirty reports whether anything changed since the last drain: true
// iff either change set is non-empty.
func (m *Map[K, V]) Dirty() bool {
	return len(m.dirty) > 0 || len(m.deleted) > 0
}

// DirtyKeys returns every key with a pending change: de-duplicated
// changed keys in change order, followed by de-duplicated deleted keys.
// Deleted keys count as dirty — a key is dirty if it changed OR was
// removed.
func (m *Map[K, V]) DirtyKeys() []K {
	return dedup(append(dedup(m.dirty), dedup(m.deleted)...))
}

// DeletedKeys returns the de-duplicated keys removed since the last
// drain, in removal order.
func (m *Map[K, V]) DeletedKeys() []K {
	return dedup(m.deleted)
}

// KeyDirty reports whether key has a pending change or deletion.
// Unseen keys answer false.
func (m *Map[K, V]) KeyDirty(key K) bool {
	return containsKey(m.dirty, key) || containsKey(m.deleted, key)
}

// KeyDeleted reports whether key was removed since the last drain.
// Unseen keys answer false.
func (m *Map[K, V]) KeyDeleted(key K) bool {
	return containsKey(m.deleted, key)
}

// Drain compiles the pending change sets into a ChangeLog, clears
// them, and hands the log to consume exactly once. The clear is
// unconditional: it happens before consume runs, so a failing consumer
// does not resurrect the drained changes.
//
// When nothing is dirty the consumer is not invoked and Drain returns
// (false, nil). Otherwise it returns (true, consume's error).
func (m *Map[K, V]) Drain(consume func(log *ChangeLog[K, V]) error) (bool, error) {
	log, ok := m.TakeChanges()
	if !ok {
		return false, nil
	}
	return true, consume(log)
}

// TakeChanges compiles and clears the pending change sets, returning
// the log directly. It returns ok=false without compiling when nothing
// is dirty. This is the callback-free form of Drain.
func (m *Map[K, V]) TakeChanges() (*ChangeLog[K, V], bool) {
	if !m.Dirty() {
		return nil, false
	}

	log := &ChangeLog[K, V]{changes: make(map[K]Change[V])}
	deleted := dedup(m.deleted)
	for _, k := range dedup(m.dirty) {
		if containsKey(deleted, k) {
			continue // the deletion below wins
		}
		if v, ok := m.entries.Get(k); ok {
			log.add(k, Change[V]{Action: Changed, Value: v})
		}
	}
	for _, k := range deleted {
		log.add(k, Change[V]{Action: Deleted})
	}

	m.dirty = nil
	m.deleted = nil
	return log, true
}
