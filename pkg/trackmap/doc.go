/*
Package trackmap provides a change-tracked, insertion-ordered key-value
container.

Every mutating operation records which keys were added, modified, or
removed since the change log was last drained, letting callers diff
in-memory state against a persisted representation without an external
bookkeeping layer.

# Quick Start

	m := trackmap.New[string, any]()
	m.Set("name", "example")
	m.Set("retries", 5)
	m.Delete("stale")

	drained, err := m.Drain(func(log *trackmap.ChangeLog[string, any]) error {
	    log.Range(func(key string, c trackmap.Change[any]) bool {
	        // persist c.Action / c.Value for key
	        return true
	    })
	    return nil
	})

# Change Tracking Rules

  - Assigning a value equal to the stored one is invisible to tracking
    (equality suppression).
  - Deleting a key records a deletion event even when the key was never
    present.
  - Both change sets may hold a key several times between drains;
    queries and the compiled log de-duplicate, and a deletion wins over
    a pending change for the same key.
  - Draining clears both change sets before the consumer runs, even if
    the consumer fails.

# Concurrency

A Map has a single logical owner. It performs no internal locking and
is not safe for concurrent mutation; wrap access in external
synchronization if multiple goroutines share one.
*/
package trackmap
