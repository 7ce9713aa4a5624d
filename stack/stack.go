package stack

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

// Stack is a LIFO container backed by singly linked nodes.
//
// Push, Pop and Peek are O(1). A Stack created by
//
//	stack.New[int]()
//
// is a valid, empty stack.
type Stack[T any] struct {
	top  *node[T]
	size int
}

type node[T any] struct {
	data T
	next *node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Of creates a stack from values, pushing left to right.
// The last value becomes the top.
func Of[T any](values ...T) *Stack[T] {
	s := New[T]()
	s.Extend(values...)
	return s
}

// Push adds a value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.top = &node[T]{data: value, next: s.top}
	s.size++
}

// Pop removes and returns the top value.
// It returns ErrEmpty for an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := s.top
	s.top = n.next
	s.size--
	return n.data, nil
}

// Peek returns the top value without removing it.
// It returns ErrEmpty for an empty stack.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.top.data, nil
}

// Extend pushes all values, left to right.
func (s *Stack[T]) Extend(values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear removes all values.
func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}

// All returns an iterator over the stacked values, top to bottom.
// Iteration does not consume the stack.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// ToSlice returns a fresh slice of all values, top to bottom.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for n := s.top; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

// Clone returns a structurally independent copy of the stack.
// Values are copied shallowly.
func (s *Stack[T]) Clone() *Stack[T] {
	return s.CloneFunc(func(v T) T { return v })
}

// CloneFunc returns an independent copy with every value passed through clone.
func (s *Stack[T]) CloneFunc(clone func(T) T) *Stack[T] {
	// Walk bottom-up so the copy preserves stacking order.
	values := s.ToSlice()
	copied := New[T]()
	for i := len(values) - 1; i >= 0; i-- {
		copied.Push(clone(values[i]))
	}
	return copied
}

func (s *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Stack([")
	for i, v := range s.ToSlice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("])")
	return sb.String()
}

// Contains reports whether value is on the stack.
func Contains[T comparable](s *Stack[T], value T) bool {
	for n := s.top; n != nil; n = n.next {
		if n.data == value {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of value.
func Count[T comparable](s *Stack[T], value T) int {
	cnt := 0
	for n := s.top; n != nil; n = n.next {
		if n.data == value {
			cnt++
		}
	}
	return cnt
}

// Equal compares two stacks element-wise, top to bottom.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a.size != b.size {
		return false
	}
	na, nb := a.top, b.top
	for na != nil && nb != nil {
		if na.data != nb.data {
			return false
		}
		na = na.next
		nb = nb.next
	}
	return na == nil && nb == nil
}
