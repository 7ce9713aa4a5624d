/*
Package stack provides a classic LIFO container.

The stack stores values in linked nodes, giving O(1) push, pop and peek.
The root package uses it to reverse breadth-first sequences.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stack
