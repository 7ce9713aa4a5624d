package heap

import "errors"

var (
	// ErrEmpty signals access to the root element of an empty heap.
	ErrEmpty = errors.New("heap: empty container")
)
