package pq

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/arbor/heap"
)

// Pair couples a priority with a value.
type Pair[P cmp.Ordered, V any] struct {
	Priority P
	Value    V
}

// Config configures a priority queue at construction time.
type Config[P cmp.Ordered, V any] struct {
	// Descending selects highest-priority-first dequeue order.
	// The default is ascending: lowest priority dequeues first.
	Descending bool
	// Key derives a value's priority when none is given explicitly.
	// Optional; without it, PushValue and ExtendValues fail.
	Key func(V) P
}

// entry is the heap element: the sequence number is a strictly increasing
// counter assigned at push time and serves only as the ordering tie-breaker,
// so equal priorities dequeue in push order.
type entry[P cmp.Ordered, V any] struct {
	priority P
	seq      uint64
	value    V
}

// Queue is a stable priority queue built atop the binary heap engine.
//
// Entries are ordered lexicographically by (priority, sequence number):
// priority dominates, and the always-ascending sequence number resolves ties,
// guaranteeing FIFO order among equal priorities regardless of the heap
// layout. Push and Pop are O(log n), Peek is O(1).
type Queue[P cmp.Ordered, V any] struct {
	heap    *heap.Heap[entry[P, V]]
	cfg     Config[P, V]
	counter uint64
}

// New creates an empty priority queue.
func New[P cmp.Ordered, V any](cfg Config[P, V]) *Queue[P, V] {
	before := func(a, b entry[P, V]) bool {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			if cfg.Descending {
				return c > 0
			}
			return c < 0
		}
		return a.seq < b.seq
	}
	return &Queue[P, V]{heap: heap.New(before), cfg: cfg}
}

// Of creates a priority queue bulk-loaded from (priority, value) pairs.
func Of[P cmp.Ordered, V any](cfg Config[P, V], pairs ...Pair[P, V]) *Queue[P, V] {
	q := New(cfg)
	q.Extend(pairs...)
	return q
}

// Push adds a value with the given priority. O(log n).
func (q *Queue[P, V]) Push(value V, priority P) {
	q.heap.Push(entry[P, V]{priority: priority, seq: q.counter, value: value})
	q.counter++
}

// PushValue adds a value whose priority is computed by the configured key
// function. It returns ErrNoKey if the queue has none. O(log n).
func (q *Queue[P, V]) PushValue(value V) error {
	if q.cfg.Key == nil {
		return ErrNoKey
	}
	q.Push(value, q.cfg.Key(value))
	return nil
}

// Pop removes and returns the value with the first priority in dequeue
// order. It returns heap.ErrEmpty for an empty queue. O(log n).
func (q *Queue[P, V]) Pop() (V, error) {
	e, err := q.heap.Pop()
	return e.value, err
}

// PopItem removes and returns the first (priority, value) pair.
// It returns heap.ErrEmpty for an empty queue. O(log n).
func (q *Queue[P, V]) PopItem() (Pair[P, V], error) {
	e, err := q.heap.Pop()
	return Pair[P, V]{Priority: e.priority, Value: e.value}, err
}

// Peek returns the first value without removing it.
// It returns heap.ErrEmpty for an empty queue. O(1).
func (q *Queue[P, V]) Peek() (V, error) {
	e, err := q.heap.Peek()
	return e.value, err
}

// PeekItem returns the first (priority, value) pair without removing it.
// It returns heap.ErrEmpty for an empty queue. O(1).
func (q *Queue[P, V]) PeekItem() (Pair[P, V], error) {
	e, err := q.heap.Peek()
	return Pair[P, V]{Priority: e.priority, Value: e.value}, err
}

// Extend adds all (priority, value) pairs. O(k log n).
func (q *Queue[P, V]) Extend(pairs ...Pair[P, V]) {
	for _, p := range pairs {
		q.Push(p.Value, p.Priority)
	}
}

// ExtendValues adds all values, deriving each priority via the configured
// key function. It returns ErrNoKey, before any mutation, if the queue has
// no key function. O(k log n).
func (q *Queue[P, V]) ExtendValues(values ...V) error {
	if q.cfg.Key == nil {
		return ErrNoKey
	}
	for _, v := range values {
		q.Push(v, q.cfg.Key(v))
	}
	return nil
}

// Len returns the number of queued values.
func (q *Queue[P, V]) Len() int {
	return q.heap.Len()
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[P, V]) IsEmpty() bool {
	return q.heap.IsEmpty()
}

// Clear removes all values and resets the sequence counter.
func (q *Queue[P, V]) Clear() {
	q.heap.Clear()
	q.counter = 0
}

// All returns an iterator over the queued values in internal heap order,
// which is not dequeue order.
func (q *Queue[P, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range q.heap.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// ToSlice returns a fresh slice of the queued values in internal heap order.
func (q *Queue[P, V]) ToSlice() []V {
	out := make([]V, 0, q.heap.Len())
	for e := range q.heap.All() {
		out = append(out, e.value)
	}
	return out
}

// ToPairs returns the queued (priority, value) pairs in internal heap order.
func (q *Queue[P, V]) ToPairs() []Pair[P, V] {
	out := make([]Pair[P, V], 0, q.heap.Len())
	for e := range q.heap.All() {
		out = append(out, Pair[P, V]{Priority: e.priority, Value: e.value})
	}
	return out
}

// Clone returns a structurally independent copy of the queue.
// Values are copied shallowly; configuration and counter carry over.
func (q *Queue[P, V]) Clone() *Queue[P, V] {
	return &Queue[P, V]{heap: q.heap.Clone(), cfg: q.cfg, counter: q.counter}
}

// CloneFunc returns an independent copy with every value passed through
// clone, for value types that need a deep copy.
func (q *Queue[P, V]) CloneFunc(clone func(V) V) *Queue[P, V] {
	copied := q.Clone()
	copied.heap = q.heap.CloneFunc(func(e entry[P, V]) entry[P, V] {
		e.value = clone(e.value)
		return e
	})
	return copied
}

// String returns a debug representation listing the values in internal heap
// order.
func (q *Queue[P, V]) String() string {
	var sb strings.Builder
	sb.WriteString("PriorityQueue([")
	first := true
	for e := range q.heap.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", e.value)
	}
	sb.WriteString("])")
	return sb.String()
}

// Contains reports whether value is queued. O(n).
func Contains[P cmp.Ordered, V comparable](q *Queue[P, V], value V) bool {
	for e := range q.heap.All() {
		if e.value == value {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of value. O(n).
func Count[P cmp.Ordered, V comparable](q *Queue[P, V], value V) int {
	cnt := 0
	for e := range q.heap.All() {
		if e.value == value {
			cnt++
		}
	}
	return cnt
}

// Equal compares two queues by their (priority, value) pairs in internal
// heap order. O(n).
func Equal[P cmp.Ordered, V comparable](a, b *Queue[P, V]) bool {
	if a.heap.Len() != b.heap.Len() {
		return false
	}
	pa, pb := a.ToPairs(), b.ToPairs()
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}
	return true
}
