/*
Package pq provides a stable priority queue.

The queue stores (priority, sequence number, value) triples in a binary heap
from package heap. The monotonically increasing sequence number breaks ties
between equal priorities, so values with the same priority dequeue in the
order they were pushed (FIFO stability).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package pq
