/*
Package list provides classic singly and doubly linked lists.

Both lists keep head and tail handles for O(1) appends and prepends;
arbitrary-index insertion and removal are O(n) splice operations.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package list
