package queue

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
)

// Queue is a FIFO container backed by singly linked nodes.
//
// Enqueue, Dequeue, Front and Rear are O(1). A Queue created by
//
//	queue.New[int]()
//
// is a valid, empty queue.
type Queue[T any] struct {
	front *node[T]
	rear  *node[T]
	size  int
}

type node[T any] struct {
	data T
	next *node[T]
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Of creates a queue from values. The first value becomes the front.
func Of[T any](values ...T) *Queue[T] {
	q := New[T]()
	q.Extend(values...)
	return q
}

// Enqueue adds a value at the rear of the queue.
func (q *Queue[T]) Enqueue(value T) {
	n := &node[T]{data: value}
	if q.front == nil {
		q.front = n
		q.rear = n
	} else {
		q.rear.next = n
		q.rear = n
	}
	q.size++
}

// Dequeue removes and returns the front value.
// It returns ErrEmpty for an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		q.rear = nil
	}
	q.size--
	return n.data, nil
}

// Front returns the front value without removing it.
// It returns ErrEmpty for an empty queue.
func (q *Queue[T]) Front() (T, error) {
	if q.front == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.front.data, nil
}

// Rear returns the rear value without removing it.
// It returns ErrEmpty for an empty queue.
func (q *Queue[T]) Rear() (T, error) {
	if q.rear == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.rear.data, nil
}

// Extend enqueues all values, left to right.
func (q *Queue[T]) Extend(values ...T) {
	for _, v := range values {
		q.Enqueue(v)
	}
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Clear removes all values.
func (q *Queue[T]) Clear() {
	q.front = nil
	q.rear = nil
	q.size = 0
}

// All returns an iterator over the queued values, front to rear.
// Iteration does not consume the queue.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.front; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// ToSlice returns a fresh slice of all values, front to rear.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.size)
	for n := q.front; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

// Clone returns a structurally independent copy of the queue.
// Values are copied shallowly.
func (q *Queue[T]) Clone() *Queue[T] {
	return Of(q.ToSlice()...)
}

// CloneFunc returns an independent copy with every value passed through clone.
func (q *Queue[T]) CloneFunc(clone func(T) T) *Queue[T] {
	copied := New[T]()
	for n := q.front; n != nil; n = n.next {
		copied.Enqueue(clone(n.data))
	}
	return copied
}

func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Queue([")
	for i, v := range q.ToSlice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("])")
	return sb.String()
}

// Contains reports whether value is queued.
func Contains[T comparable](q *Queue[T], value T) bool {
	for n := q.front; n != nil; n = n.next {
		if n.data == value {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of value.
func Count[T comparable](q *Queue[T], value T) int {
	cnt := 0
	for n := q.front; n != nil; n = n.next {
		if n.data == value {
			cnt++
		}
	}
	return cnt
}

// Equal compares two queues element-wise, front to rear.
func Equal[T comparable](a, b *Queue[T]) bool {
	if a.size != b.size {
		return false
	}
	na, nb := a.front, b.front
	for na != nil && nb != nil {
		if na.data != nb.data {
			return false
		}
		na = na.next
		nb = nb.next
	}
	return na == nil && nb == nil
}
