package trackmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(pairs ...Entry[string, int]) []Entry[string, int] {
	return pairs
}

func TestReplace(t *testing.T) {
	m := New[string, int]()
	m.Set("old-a", 1)
	m.Set("old-b", 2)
	m.Set("shared", 3)
	_, _ = m.TakeChanges()

	out := m.Replace(entries(
		Entry[string, int]{Key: "shared", Value: 30},
		Entry[string, int]{Key: "new-c", Value: 4},
	))
	require.Same(t, m, out, "Replace returns the mutated map")

	assert.Equal(t, []string{"shared", "new-c"}, m.Keys())
	assert.Equal(t, 30, m.Get("shared"))

	// Changed set is exactly the new keys; deleted gains old minus new.
	assert.ElementsMatch(t, []string{"shared", "new-c", "old-a", "old-b"}, m.DirtyKeys())
	assert.Equal(t, []string{"old-a", "old-b"}, m.DeletedKeys())
}

func TestReplaceDiscardsPendingChangeHistory(t *testing.T) {
	m := New[string, int]()
	m.Set("pending", 1)

	m.Replace(entries(Entry[string, int]{Key: "pending", Value: 1}))

	log, ok := m.TakeChanges()
	require.True(t, ok)
	assert.Equal(t, []string{"pending"}, log.Keys())
	assert.True(t, log.IsChanged("pending"))
}

func TestMergeIncomingWins(t *testing.T) {
	m := New(WithSeed(
		Entry[string, int]{Key: "a", Value: 1},
		Entry[string, int]{Key: "b", Value: 2},
	))

	m.Merge(entries(
		Entry[string, int]{Key: "b", Value: 20},
		Entry[string, int]{Key: "c", Value: 3},
	))

	assert.Equal(t, 20, m.Get("b"))
	assert.Equal(t, 3, m.Get("c"))
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, []string{"b", "c"}, m.DirtyKeys())
}

func TestMergeMarksEqualCollisionsDirty(t *testing.T) {
	// Without a resolver, colliding keys are marked changed even when
	// the incoming value equals the stored one. MergeFunc below
	// suppresses that; the asymmetry is deliberate.
	m := New(WithSeed(Entry[string, int]{Key: "same", Value: 7}))
	m.Merge(entries(Entry[string, int]{Key: "same", Value: 7}))
	assert.True(t, m.Dirty())
	assert.Equal(t, []string{"same"}, m.DirtyKeys())
}

func TestMergeFuncResolvesCollisions(t *testing.T) {
	m := New(WithSeed(
		Entry[string, int]{Key: "sum", Value: 10},
		Entry[string, int]{Key: "keep", Value: 1},
	))

	m.MergeFunc(entries(
		Entry[string, int]{Key: "sum", Value: 5},
		Entry[string, int]{Key: "keep", Value: 99},
		Entry[string, int]{Key: "fresh", Value: 42},
	), func(_ string, old, incoming int) int {
		if old > incoming {
			return old + incoming
		}
		return old
	})

	assert.Equal(t, 15, m.Get("sum"))
	assert.Equal(t, 1, m.Get("keep"), "resolver kept the old value")
	assert.Equal(t, 42, m.Get("fresh"))

	// Only actually-changed collisions and brand-new keys are dirty.
	assert.Equal(t, []string{"sum", "fresh"}, m.DirtyKeys())
	assert.False(t, m.KeyDirty("keep"))
}

func TestMergeFuncEqualResolutionSuppressed(t *testing.T) {
	m := New(WithSeed(Entry[string, int]{Key: "same", Value: 7}))
	m.MergeFunc(entries(Entry[string, int]{Key: "same", Value: 7}),
		func(_ string, old, _ int) int { return old })
	assert.False(t, m.Dirty())
}

func TestMergeFuncNilResolverFallsBackToMerge(t *testing.T) {
	m := New(WithSeed(Entry[string, int]{Key: "same", Value: 7}))
	m.MergeFunc(entries(Entry[string, int]{Key: "same", Value: 7}), nil)
	assert.True(t, m.Dirty())
}

func TestUpdateIsMergeSynonym(t *testing.T) {
	m := New[string, int]()
	m.Update(entries(Entry[string, int]{Key: "k", Value: 1}))
	assert.Equal(t, 1, m.Get("k"))
	assert.Equal(t, []string{"k"}, m.DirtyKeys())
}
