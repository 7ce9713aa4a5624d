/*
Package queue provides a classic FIFO container.

The queue stores values in linked nodes, giving O(1) enqueue, dequeue and
front/rear access with no reallocation. It is the breadth-first work list
used by the tree walks in the root package.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package queue
