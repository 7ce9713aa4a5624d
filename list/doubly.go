package list

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

// Doubly is a classic doubly linked list with head and tail handles.
//
// Append, Prepend and tail removal are O(1); index-based access walks from
// the nearer end, so it is O(n) worst case.
type Doubly[T comparable] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

type dnode[T comparable] struct {
	data T
	prev *dnode[T]
	next *dnode[T]
}

// NewDoubly creates an empty doubly linked list.
func NewDoubly[T comparable]() *Doubly[T] {
	return &Doubly[T]{}
}

// DoublyOf creates a doubly linked list from values, appending left to right.
func DoublyOf[T comparable](values ...T) *Doubly[T] {
	l := NewDoubly[T]()
	l.Extend(values...)
	return l
}

// Append adds a value at the end of the list. O(1).
func (l *Doubly[T]) Append(value T) {
	n := &dnode[T]{data: value, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Prepend adds a value at the beginning of the list. O(1).
func (l *Doubly[T]) Prepend(value T) {
	n := &dnode[T]{data: value, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// nodeAt walks to the node at index from the nearer end.
// The index must be valid.
func (l *Doubly[T]) nodeAt(index int) *dnode[T] {
	if index <= l.size/2 {
		n := l.head
		for range index {
			n = n.next
		}
		return n
	}
	n := l.tail
	for range l.size - 1 - index {
		n = n.prev
	}
	return n
}

// Insert adds a value at the given index, shifting later elements back.
// Index l.Len() appends. It returns ErrIndexOutOfBounds for other indices
// outside [0, l.Len()]. O(n).
func (l *Doubly[T]) Insert(index int, value T) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	switch index {
	case 0:
		l.Prepend(value)
		return nil
	case l.size:
		l.Append(value)
		return nil
	}
	at := l.nodeAt(index)
	n := &dnode[T]{data: value, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++
	return nil
}

// Pop removes and returns the last element.
// It returns ErrEmpty for an empty list. O(1).
func (l *Doubly[T]) Pop() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.PopAt(l.size - 1)
}

// PopFront removes and returns the first element.
// It returns ErrEmpty for an empty list. O(1).
func (l *Doubly[T]) PopFront() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.PopAt(0)
}

// PopAt removes and returns the element at index.
// It returns ErrEmpty for an empty list and ErrIndexOutOfBounds for indices
// outside [0, l.Len()). O(n).
func (l *Doubly[T]) PopAt(index int) (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	n := l.nodeAt(index)
	l.unlink(n)
	return n.data, nil
}

func (l *Doubly[T]) unlink(n *dnode[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.size--
}

// Remove deletes the first occurrence of value.
// It returns ErrNotFound if no element matches. O(n).
func (l *Doubly[T]) Remove(value T) error {
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			l.unlink(n)
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrNotFound, value)
}

// Get returns the element at index.
// It returns ErrIndexOutOfBounds for indices outside [0, l.Len()). O(n).
func (l *Doubly[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	return l.nodeAt(index).data, nil
}

// Set overwrites the element at index.
// It returns ErrIndexOutOfBounds for indices outside [0, l.Len()). O(n).
func (l *Doubly[T]) Set(index int, value T) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	l.nodeAt(index).data = value
	return nil
}

// Find returns the index of the first occurrence of value, or -1. O(n).
func (l *Doubly[T]) Find(value T) int {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			return idx
		}
		idx++
	}
	return -1
}

// Contains reports whether value exists in the list. O(n).
func (l *Doubly[T]) Contains(value T) bool {
	return l.Find(value) != -1
}

// Count returns the number of occurrences of value. O(n).
func (l *Doubly[T]) Count(value T) int {
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			cnt++
		}
	}
	return cnt
}

// Clear removes all elements.
func (l *Doubly[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Reverse reverses the list in place. O(n).
func (l *Doubly[T]) Reverse() {
	curr := l.head
	l.head, l.tail = l.tail, l.head
	for curr != nil {
		curr.prev, curr.next = curr.next, curr.prev
		curr = curr.prev
	}
}

// Extend appends all values, left to right.
func (l *Doubly[T]) Extend(values ...T) {
	for _, v := range values {
		l.Append(v)
	}
}

// Len returns the number of elements.
func (l *Doubly[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *Doubly[T]) IsEmpty() bool {
	return l.size == 0
}

// All returns an iterator over the elements, front to back.
func (l *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements, back to front.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// ToSlice returns a fresh slice of all elements, front to back.
func (l *Doubly[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

// Clone returns a structurally independent copy of the list.
// Values are copied shallowly.
func (l *Doubly[T]) Clone() *Doubly[T] {
	return DoublyOf(l.ToSlice()...)
}

// CloneFunc returns an independent copy with every value passed through clone.
func (l *Doubly[T]) CloneFunc(clone func(T) T) *Doubly[T] {
	copied := NewDoubly[T]()
	for n := l.head; n != nil; n = n.next {
		copied.Append(clone(n.data))
	}
	return copied
}

// Equal compares two lists element-wise, front to back. O(n).
func (l *Doubly[T]) Equal(other *Doubly[T]) bool {
	if l.size != other.size {
		return false
	}
	a, b := l.head, other.head
	for a != nil && b != nil {
		if a.data != b.data {
			return false
		}
		a = a.next
		b = b.next
	}
	return a == nil && b == nil
}

func (l *Doubly[T]) String() string {
	var sb strings.Builder
	sb.WriteString("DoublyLinkedList([")
	first := true
	for n := l.head; n != nil; n = n.next {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", n.data)
	}
	sb.WriteString("])")
	return sb.String()
}
