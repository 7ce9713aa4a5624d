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

// Singly is a classic singly linked list with head and tail handles.
//
// Append and Prepend are O(1); index-based access and value-targeted removal
// are O(n).
type Singly[T comparable] struct {
	head *snode[T]
	tail *snode[T]
	size int
}

type snode[T comparable] struct {
	data T
	next *snode[T]
}

// NewSingly creates an empty singly linked list.
func NewSingly[T comparable]() *Singly[T] {
	return &Singly[T]{}
}

// SinglyOf creates a singly linked list from values, appending left to right.
func SinglyOf[T comparable](values ...T) *Singly[T] {
	l := NewSingly[T]()
	l.Extend(values...)
	return l
}

// Append adds a value at the end of the list. O(1).
func (l *Singly[T]) Append(value T) {
	n := &snode[T]{data: value}
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Prepend adds a value at the beginning of the list. O(1).
func (l *Singly[T]) Prepend(value T) {
	l.head = &snode[T]{data: value, next: l.head}
	if l.size == 0 {
		l.tail = l.head
	}
	l.size++
}

// Insert adds a value at the given index, shifting later elements back.
// Index l.Len() appends. It returns ErrIndexOutOfBounds for other indices
// outside [0, l.Len()]. O(n).
func (l *Singly[T]) Insert(index int, value T) error {
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
	prev := l.head
	for range index - 1 {
		prev = prev.next
	}
	prev.next = &snode[T]{data: value, next: prev.next}
	l.size++
	return nil
}

// Pop removes and returns the last element.
// It returns ErrEmpty for an empty list. O(n).
func (l *Singly[T]) Pop() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.PopAt(l.size - 1)
}

// PopAt removes and returns the element at index.
// It returns ErrEmpty for an empty list and ErrIndexOutOfBounds for indices
// outside [0, l.Len()). O(n).
func (l *Singly[T]) PopAt(index int) (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmpty
	}
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	if index == 0 {
		n := l.head
		l.head = n.next
		if l.size == 1 {
			l.tail = nil
		}
		l.size--
		return n.data, nil
	}
	prev := l.head
	for range index - 1 {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	l.size--
	return n.data, nil
}

// Remove deletes the first occurrence of value.
// It returns ErrNotFound if no element matches. O(n).
func (l *Singly[T]) Remove(value T) error {
	var prev *snode[T]
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.data == value {
			if prev == nil {
				l.head = curr.next
				if l.size == 1 {
					l.tail = nil
				}
			} else {
				prev.next = curr.next
				if curr == l.tail {
					l.tail = prev
				}
			}
			l.size--
			return nil
		}
		prev = curr
	}
	return fmt.Errorf("%w: %v", ErrNotFound, value)
}

// Get returns the element at index.
// It returns ErrIndexOutOfBounds for indices outside [0, l.Len()). O(n).
func (l *Singly[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	n := l.head
	for range index {
		n = n.next
	}
	return n.data, nil
}

// Set overwrites the element at index.
// It returns ErrIndexOutOfBounds for indices outside [0, l.Len()). O(n).
func (l *Singly[T]) Set(index int, value T) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	n := l.head
	for range index {
		n = n.next
	}
	n.data = value
	return nil
}

// Find returns the index of the first occurrence of value, or -1. O(n).
func (l *Singly[T]) Find(value T) int {
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
func (l *Singly[T]) Contains(value T) bool {
	return l.Find(value) != -1
}

// Count returns the number of occurrences of value. O(n).
func (l *Singly[T]) Count(value T) int {
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			cnt++
		}
	}
	return cnt
}

// Clear removes all elements.
func (l *Singly[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Reverse reverses the list in place. O(n).
func (l *Singly[T]) Reverse() {
	var prev *snode[T]
	curr := l.head
	l.tail = l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.head = prev
}

// Extend appends all values, left to right.
func (l *Singly[T]) Extend(values ...T) {
	for _, v := range values {
		l.Append(v)
	}
}

// Len returns the number of elements.
func (l *Singly[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *Singly[T]) IsEmpty() bool {
	return l.size == 0
}

// All returns an iterator over the elements, front to back.
func (l *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// ToSlice returns a fresh slice of all elements, front to back.
func (l *Singly[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

// Clone returns a structurally independent copy of the list.
// Values are copied shallowly.
func (l *Singly[T]) Clone() *Singly[T] {
	return SinglyOf(l.ToSlice()...)
}

// CloneFunc returns an independent copy with every value passed through clone.
func (l *Singly[T]) CloneFunc(clone func(T) T) *Singly[T] {
	copied := NewSingly[T]()
	for n := l.head; n != nil; n = n.next {
		copied.Append(clone(n.data))
	}
	return copied
}

// Equal compares two lists element-wise, front to back. O(n).
func (l *Singly[T]) Equal(other *Singly[T]) bool {
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

func (l *Singly[T]) String() string {
	var sb strings.Builder
	sb.WriteString("SinglyLinkedList([")
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
