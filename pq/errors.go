package pq

import "errors"

var (
	// ErrNoKey signals a push without an explicit priority on a queue that
	// has no key function configured.
	ErrNoKey = errors.New("pq: no priority given and no key function configured")
)
