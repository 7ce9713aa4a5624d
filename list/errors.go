package list

import "errors"

var (
	// ErrEmpty signals removal from an empty list.
	ErrEmpty = errors.New("list: empty container")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("list: index out of bounds")
	// ErrNotFound signals that a value-targeted removal found no match.
	ErrNotFound = errors.New("list: value not found")
)
