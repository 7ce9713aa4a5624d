/*
Package heap provides an array-backed binary heap with a pluggable ordering.

The max/min distinction is a configuration-time strategy: both orderings
share the same sift-up/sift-down core and behave identically in every other
operation. Package pq builds a stable priority queue on top of this engine.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package heap

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
