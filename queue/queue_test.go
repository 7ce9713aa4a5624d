package queue

import (
	"errors"
	"slices"
	"testing"
)

func TestEmptyQueue(t *testing.T) {
	q := New[int]()
	if !q.IsEmpty() || q.Len() != 0 {
		t.Errorf("expected empty queue, got len=%d", q.Len())
	}
	if _, err := q.Dequeue(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Dequeue, got %v", err)
	}
	if _, err := q.Front(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Front, got %v", err)
	}
	if _, err := q.Rear(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty from Rear, got %v", err)
	}
}

func TestFIFOOrder(t *testing.T) {
	q := Of("a", "b", "c")
	front, err := q.Front()
	if err != nil || front != "a" {
		t.Fatalf("expected front 'a', got %q (%v)", front, err)
	}
	rear, err := q.Rear()
	if err != nil || rear != "c" {
		t.Fatalf("expected rear 'c', got %q (%v)", rear, err)
	}
	var got []string
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("FIFO order violated: got %v", got)
	}
}

func TestDequeueToEmptyAndReuse(t *testing.T) {
	q := Of(1)
	if _, err := q.Dequeue(); err != nil {
		t.Fatal(err)
	}
	// rear handle must be reset, or the next enqueue corrupts the chain
	q.Enqueue(2)
	q.Enqueue(3)
	if !slices.Equal(q.ToSlice(), []int{2, 3}) {
		t.Errorf("queue corrupted after drain and refill: %v", q.ToSlice())
	}
}

func TestIterationDoesNotConsume(t *testing.T) {
	q := Of(1, 2, 3)
	var seen []int
	for v := range q.All() {
		seen = append(seen, v)
	}
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Errorf("iteration order: got %v", seen)
	}
	if q.Len() != 3 {
		t.Errorf("iteration must not consume the queue, len=%d", q.Len())
	}
}

func TestQueueCloneAndEqual(t *testing.T) {
	q := Of(1, 2, 2, 3)
	clone := q.Clone()
	if !Equal(q, clone) {
		t.Fatalf("expected clone to be equal")
	}
	if _, err := clone.Dequeue(); err != nil {
		t.Fatal(err)
	}
	if Equal(q, clone) || q.Len() != 4 {
		t.Errorf("mutating the clone must not affect the original")
	}
	if !Contains(q, 3) || Contains(q, 9) {
		t.Errorf("Contains misbehaves")
	}
	if Count(q, 2) != 2 {
		t.Errorf("expected two occurrences of 2, got %d", Count(q, 2))
	}
}

func TestQueueClearAndString(t *testing.T) {
	q := Of(1, 2)
	if s := q.String(); s != "Queue([1, 2])" {
		t.Errorf("unexpected string form: %s", s)
	}
	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("expected empty queue after Clear")
	}
	if s := q.String(); s != "Queue([])" {
		t.Errorf("unexpected empty string form: %s", s)
	}
}
