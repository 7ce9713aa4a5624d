package heap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Heap is an array-backed binary heap.
//
// The ordering is a configuration-time strategy: a before-function decides
// which of two values belongs closer to the root. NewMin and NewMax select
// the standard orderings for ordered types; New accepts an arbitrary
// strategy. All heaps behave identically apart from the ordering.
//
// The backing sequence is dense, with index 0 the logical root and the
// children of index i at 2i+1 and 2i+2. The heap invariant holds after
// every exported operation: each parent compares as-good-or-better than its
// children under the before-function.
type Heap[T any] struct {
	data   []T
	before func(a, b T) bool
	label  string
}

// New creates an empty heap with an arbitrary ordering strategy.
// before must be a total pairwise comparison; before(a, b) reports whether
// a belongs closer to the root than b.
func New[T any](before func(a, b T) bool) *Heap[T] {
	assert(before != nil, "heap ordering strategy must not be nil")
	return &Heap[T]{before: before, label: "Heap"}
}

// NewMin creates an empty min-heap: the root is always the smallest element.
func NewMin[T cmp.Ordered]() *Heap[T] {
	h := New(func(a, b T) bool { return cmp.Less(a, b) })
	h.label = "MinHeap"
	return h
}

// NewMax creates an empty max-heap: the root is always the largest element.
func NewMax[T cmp.Ordered]() *Heap[T] {
	h := New(func(a, b T) bool { return cmp.Less(b, a) })
	h.label = "MaxHeap"
	return h
}

// MinOf creates a min-heap bulk-loaded from values. O(n).
func MinOf[T cmp.Ordered](values ...T) *Heap[T] {
	h := NewMin[T]()
	h.Heapify(values)
	return h
}

// MaxOf creates a max-heap bulk-loaded from values. O(n).
func MaxOf[T cmp.Ordered](values ...T) *Heap[T] {
	h := NewMax[T]()
	h.Heapify(values)
	return h
}

// Push adds a new value to the heap. O(log n).
func (h *Heap[T]) Push(value T) {
	h.data = append(h.data, value)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the root value (minimum or maximum, depending on
// the ordering). It returns ErrEmpty for an empty heap. O(log n).
func (h *Heap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	root := h.data[0]
	last := h.data[len(h.data)-1]
	h.data = h.data[:len(h.data)-1]
	if len(h.data) > 0 {
		h.data[0] = last
		h.siftDown(0)
	}
	return root, nil
}

// Peek returns the root value without removing it.
// It returns ErrEmpty for an empty heap. O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.data[0], nil
}

// Heapify replaces the heap's contents with values and establishes the heap
// invariant by sifting down all internal nodes, from the last non-leaf index
// to the root. The input slice is copied. O(n).
func (h *Heap[T]) Heapify(values []T) {
	h.data = slices.Clone(values)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Extend adds all values to the heap, one by one. O(k log n).
func (h *Heap[T]) Extend(values ...T) {
	for _, v := range values {
		h.Push(v)
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Clear removes all elements.
func (h *Heap[T]) Clear() {
	h.data = nil
}

// All returns an iterator over the heap's elements in backing-array order,
// which is not sorted order.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range h.data {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns a fresh copy of the backing sequence.
func (h *Heap[T]) ToSlice() []T {
	return slices.Clone(h.data)
}

// Clone returns a structurally independent copy of the heap.
// Values are copied shallowly; the ordering strategy is shared.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{data: slices.Clone(h.data), before: h.before, label: h.label}
}

// CloneFunc returns an independent copy with every value passed through
// clone, for element types that need a deep copy.
func (h *Heap[T]) CloneFunc(clone func(T) T) *Heap[T] {
	copied := h.Clone()
	for i, v := range copied.data {
		copied.data[i] = clone(v)
	}
	return copied
}

// String returns a debug representation listing the elements in
// backing-array order.
func (h *Heap[T]) String() string {
	var sb strings.Builder
	sb.WriteString(h.label)
	sb.WriteString("([")
	for i, v := range h.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("])")
	return sb.String()
}

func parent(index int) int { return (index - 1) / 2 }
func left(index int) int   { return 2*index + 1 }
func right(index int) int  { return 2*index + 2 }

// siftUp restores the heap invariant on the path from index to the root.
func (h *Heap[T]) siftUp(index int) {
	for index > 0 {
		p := parent(index)
		if !h.before(h.data[index], h.data[p]) {
			break
		}
		h.data[index], h.data[p] = h.data[p], h.data[index]
		index = p
	}
}

// siftDown restores the heap invariant on a path from index towards the
// leaves, always descending into the more favorable child.
func (h *Heap[T]) siftDown(index int) {
	n := len(h.data)
	for {
		best := index
		if l := left(index); l < n && h.before(h.data[l], h.data[best]) {
			best = l
		}
		if r := right(index); r < n && h.before(h.data[r], h.data[best]) {
			best = r
		}
		if best == index {
			return
		}
		h.data[index], h.data[best] = h.data[best], h.data[index]
		index = best
	}
}

// Contains reports whether value is in the heap. O(n).
func Contains[T comparable](h *Heap[T], value T) bool {
	return slices.Contains(h.data, value)
}

// Count returns the number of occurrences of value. O(n).
func Count[T comparable](h *Heap[T], value T) int {
	cnt := 0
	for _, v := range h.data {
		if v == value {
			cnt++
		}
	}
	return cnt
}

// Equal compares two heaps by their backing sequences, positionally. Two
// heaps holding the same multiset of values in different internal layouts
// are not equal.
func Equal[T comparable](a, b *Heap[T]) bool {
	return slices.Equal(a.data, b.data)
}
