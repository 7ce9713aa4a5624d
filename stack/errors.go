package stack

import "errors"

var (
	// ErrEmpty signals access to an element of an empty stack.
	ErrEmpty = errors.New("stack: empty container")
)
