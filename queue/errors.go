package queue

import "errors"

var (
	// ErrEmpty signals access to an element of an empty queue.
	ErrEmpty = errors.New("queue: empty container")
)
