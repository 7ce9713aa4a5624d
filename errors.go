package arbor

import "errors"

var (
	// ErrNotFound signals that a value-targeted operation found no matching node.
	ErrNotFound = errors.New("arbor: value not found in tree")
	// ErrUnknownOrder signals an unrecognized traversal order name.
	ErrUnknownOrder = errors.New("arbor: unknown traversal order")
)
