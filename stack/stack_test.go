package stack

import (
	"errors"
	"slices"
	"testing"
)

func TestEmptyStack(t *testing.T) {
	s := New[int]()
	if !s.IsEmpty() || s.Len() != 0 {
		t.Errorf("expected empty stack, got len=%d", s.Len())
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Pop, got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Peek, got %v", err)
	}
}

func TestLIFOOrder(t *testing.T) {
	s := Of("a", "b", "c")
	top, err := s.Peek()
	if err != nil || top != "c" {
		t.Fatalf("expected top 'c', got %q (%v)", top, err)
	}
	var got []string
	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("LIFO order violated: got %v", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := Of(1, 2)
	if _, err := s.Peek(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("Peek must not consume, len=%d", s.Len())
	}
}

func TestIterationTopToBottom(t *testing.T) {
	s := Of(1, 2, 3)
	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
	}
	if !slices.Equal(seen, []int{3, 2, 1}) {
		t.Errorf("iteration order: got %v", seen)
	}
	if s.Len() != 3 {
		t.Errorf("iteration must not consume the stack, len=%d", s.Len())
	}
}

func TestStackCloneAndEqual(t *testing.T) {
	s := Of(1, 2, 2, 3)
	clone := s.Clone()
	if !Equal(s, clone) {
		t.Fatalf("expected clone to be equal")
	}
	if _, err := clone.Pop(); err != nil {
		t.Fatal(err)
	}
	if Equal(s, clone) || s.Len() != 4 {
		t.Errorf("mutating the clone must not affect the original")
	}
	if !Contains(s, 3) || Contains(s, 9) {
		t.Errorf("Contains misbehaves")
	}
	if Count(s, 2) != 2 {
		t.Errorf("expected two occurrences of 2, got %d", Count(s, 2))
	}
}

func TestStackClearAndString(t *testing.T) {
	s := Of(1, 2)
	if str := s.String(); str != "Stack([2, 1])" {
		t.Errorf("unexpected string form: %s", str)
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Errorf("expected empty stack after Clear")
	}
	if str := s.String(); str != "Stack([])" {
		t.Errorf("unexpected empty string form: %s", str)
	}
}
