package pq

import (
	"testing"

	"github.com/npillmayer/arbor/heap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscendingByDefault(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("b", 2)
	var got []string
	for !q.IsEmpty() {
		v, err := q.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDescendingOrder(t *testing.T) {
	q := New(Config[int, string]{Descending: true})
	q.Push("low", 1)
	q.Push("high", 9)
	q.Push("mid", 5)
	var got []string
	for !q.IsEmpty() {
		v, err := q.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"high", "mid", "low"}, got)
}

func TestEqualPrioritiesDequeueFIFO(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("x", 1)
	q.Push("y", 1)
	q.Push("z", 1)
	var got []string
	for !q.IsEmpty() {
		v, err := q.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"x", "y", "z"}, got,
		"equal priorities must keep insertion order")
}

func TestStabilityUnderInterleaving(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("a1", 1)
	q.Push("b1", 2)
	q.Push("a2", 1)
	q.Push("b2", 2)
	q.Push("a3", 1)
	var got []string
	for !q.IsEmpty() {
		v, err := q.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2"}, got)
}

func TestPopItemAndPeekItem(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("task", 7)
	item, err := q.PeekItem()
	require.NoError(t, err)
	assert.Equal(t, Pair[int, string]{Priority: 7, Value: "task"}, item)
	assert.Equal(t, 1, q.Len(), "peek must not consume")
	item, err = q.PopItem()
	require.NoError(t, err)
	assert.Equal(t, Pair[int, string]{Priority: 7, Value: "task"}, item)
	assert.True(t, q.IsEmpty())
}

func TestEmptyQueueErrors(t *testing.T) {
	q := New(Config[int, string]{})
	_, err := q.Pop()
	assert.ErrorIs(t, err, heap.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, heap.ErrEmpty)
	_, err = q.PopItem()
	assert.ErrorIs(t, err, heap.ErrEmpty)
}

func TestKeyFunctionDerivesPriority(t *testing.T) {
	q := New(Config[int, string]{Key: func(v string) int { return len(v) }})
	require.NoError(t, q.PushValue("lengthy"))
	require.NoError(t, q.PushValue("a"))
	require.NoError(t, q.PushValue("word"))
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	v, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "word", v)
}

func TestMissingKeyFunction(t *testing.T) {
	q := New(Config[int, string]{})
	assert.ErrorIs(t, q.PushValue("orphan"), ErrNoKey)
	assert.ErrorIs(t, q.ExtendValues("a", "b"), ErrNoKey)
	assert.Equal(t, 0, q.Len(), "failed bulk insert must not mutate the queue")
}

func TestExtendPairsAndOf(t *testing.T) {
	pairs := []Pair[int, string]{
		{Priority: 2, Value: "second"},
		{Priority: 1, Value: "first"},
	}
	q := Of(Config[int, string]{}, pairs...)
	assert.Equal(t, 2, q.Len())
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestMixedExplicitAndDerivedPriorities(t *testing.T) {
	q := New(Config[int, string]{Key: func(v string) int { return len(v) }})
	q.Push("explicit", 0)
	require.NoError(t, q.ExtendValues("xx", "y"))
	var got []string
	for !q.IsEmpty() {
		v, err := q.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []string{"explicit", "y", "xx"}, got)
}

func TestClearResetsQueue(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("a", 1)
	q.Push("b", 2)
	q.Clear()
	assert.True(t, q.IsEmpty())
	// the queue stays fully usable after Clear
	q.Push("y", 1)
	q.Push("z", 1)
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}

func TestQueueCloneIsIndependent(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("a", 1)
	q.Push("b", 2)
	clone := q.Clone()
	require.True(t, Equal(q, clone))
	_, err := clone.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, q.Len())
	assert.False(t, Equal(q, clone))
	// pushes after cloning continue the original's tie-break sequence
	clone.Push("c", 2)
	v, err := clone.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestContainsCountAndToPairs(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("a", 1)
	q.Push("b", 2)
	q.Push("a", 3)
	assert.True(t, Contains(q, "b"))
	assert.False(t, Contains(q, "zzz"))
	assert.Equal(t, 2, Count(q, "a"))
	assert.Len(t, q.ToPairs(), 3)
	assert.Len(t, q.ToSlice(), 3)
}

func TestQueueString(t *testing.T) {
	q := New(Config[int, string]{})
	q.Push("solo", 1)
	assert.Equal(t, "PriorityQueue([solo])", q.String())
}
