package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arbor/queue"
)

// Node is a single tree node. Each node exclusively owns its children; no
// parent link is stored. Clients obtain node references from Tree.Find or
// Tree.Root and hand them back to per-node insertion operations.
type Node[T comparable] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the payload stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Tree is a binary tree with no ordering constraint.
//
// A tree created by
//
//	arbor.New[int]()
//
// is a valid, empty tree. Bulk construction via FromLevelOrder produces a
// complete tree shape; Remove preserves that shape. The element count is
// cached: Len is O(1) and always equals the number of nodes reachable from
// the root.
type Tree[T comparable] struct {
	root *Node[T]
	size int
}

// New creates an empty tree.
func New[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// FromLevelOrder builds a complete binary tree from values in level order:
// values[i] becomes the node at breadth-first rank i, with children at ranks
// 2i+1 and 2i+2. Values are not compared. O(n).
func FromLevelOrder[T comparable](values ...T) *Tree[T] {
	if len(values) == 0 {
		return New[T]()
	}
	nodes := make([]*Node[T], len(values))
	for i, v := range values {
		nodes[i] = &Node[T]{value: v}
	}
	for i := range nodes {
		if left := 2*i + 1; left < len(nodes) {
			nodes[i].left = nodes[left]
		}
		if right := 2*i + 2; right < len(nodes) {
			nodes[i].right = nodes[right]
		}
	}
	return &Tree[T]{root: nodes[0], size: len(nodes)}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes all nodes.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// InsertLeft attaches a new leaf with the given value as the left child of
// parent and returns the new node. Any subtree previously occupying the slot
// is detached; avoiding unintended orphaning is the caller's responsibility.
// O(1) plus the size of a detached subtree.
func (t *Tree[T]) InsertLeft(parent *Node[T], value T) *Node[T] {
	assert(parent != nil, "InsertLeft requires a non-nil parent node")
	n := &Node[T]{value: value}
	t.size += 1 - subtreeSize(parent.left)
	parent.left = n
	return n
}

// InsertRight attaches a new leaf with the given value as the right child of
// parent and returns the new node. Any subtree previously occupying the slot
// is detached; avoiding unintended orphaning is the caller's responsibility.
// O(1) plus the size of a detached subtree.
func (t *Tree[T]) InsertRight(parent *Node[T], value T) *Node[T] {
	assert(parent != nil, "InsertRight requires a non-nil parent node")
	n := &Node[T]{value: value}
	t.size += 1 - subtreeSize(parent.right)
	parent.right = n
	return n
}

// subtreeSize counts the nodes of a detached subtree, so the cached element
// count stays equal to the number of reachable nodes.
func subtreeSize[T comparable](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + subtreeSize(n.left) + subtreeSize(n.right)
}

// Extend inserts each value at the first free child slot in breadth-first
// order, preserving a complete shape when the tree already has one.
// O(n) per inserted value.
func (t *Tree[T]) Extend(values ...T) {
	for _, v := range values {
		t.addLevelOrder(v)
		t.size++
	}
}

func (t *Tree[T]) addLevelOrder(value T) {
	n := &Node[T]{value: value}
	if t.root == nil {
		t.root = n
		return
	}
	fringe := queue.Of(t.root)
	for !fringe.IsEmpty() {
		curr, err := fringe.Dequeue()
		assert(err == nil, "addLevelOrder: dequeue from non-empty fringe failed")
		if curr.left == nil {
			curr.left = n
			return
		}
		fringe.Enqueue(curr.left)
		if curr.right == nil {
			curr.right = n
			return
		}
		fringe.Enqueue(curr.right)
	}
	assert(false, "addLevelOrder found no free slot in non-empty tree")
}

// Find returns the first node holding value in breadth-first order, or nil
// if no node matches. O(n).
func (t *Tree[T]) Find(value T) *Node[T] {
	node, _ := t.findBFS(value)
	return node
}

// FindIndex returns the breadth-first rank of the first node holding value,
// or -1 if no node matches. O(n).
func (t *Tree[T]) FindIndex(value T) int {
	_, idx := t.findBFS(value)
	return idx
}

func (t *Tree[T]) findBFS(value T) (*Node[T], int) {
	if t.root == nil {
		return nil, -1
	}
	fringe := queue.Of(t.root)
	idx := 0
	for !fringe.IsEmpty() {
		curr, err := fringe.Dequeue()
		assert(err == nil, "findBFS: dequeue from non-empty fringe failed")
		if curr.value == value {
			return curr, idx
		}
		idx++
		if curr.left != nil {
			fringe.Enqueue(curr.left)
		}
		if curr.right != nil {
			fringe.Enqueue(curr.right)
		}
	}
	return nil, -1
}

// Contains reports whether value exists in the tree. O(n).
func (t *Tree[T]) Contains(value T) bool {
	return t.Find(value) != nil
}

// Count returns the number of nodes holding value. O(n).
func (t *Tree[T]) Count(value T) int {
	cnt := 0
	for v := range t.rangeLevelOrder() {
		if v == value {
			cnt++
		}
	}
	return cnt
}

// Remove deletes the first node holding value in breadth-first order and
// returns ErrNotFound if no node matches.
//
// To keep the tree complete, the removed node is not detached directly:
// instead the value of the deepest, rightmost node (the last node in
// breadth-first order) overwrites the matched node in place, and that deepest
// node is detached from its parent. A single breadth-first pass records both
// the matched node and the deepest node along with their parents. O(n).
func (t *Tree[T]) Remove(value T) error {
	if t.root == nil {
		return fmt.Errorf("%w: %v", ErrNotFound, value)
	}
	type parented struct {
		node   *Node[T]
		parent *Node[T]
	}
	var target, deepest parented
	fringe := queue.Of(parented{node: t.root})
	for !fringe.IsEmpty() {
		curr, err := fringe.Dequeue()
		assert(err == nil, "Remove: dequeue from non-empty fringe failed")
		if target.node == nil && curr.node.value == value {
			target = curr
		}
		if curr.node.left != nil {
			fringe.Enqueue(parented{node: curr.node.left, parent: curr.node})
		}
		if curr.node.right != nil {
			fringe.Enqueue(parented{node: curr.node.right, parent: curr.node})
		}
		deepest = curr
	}
	if target.node == nil {
		return fmt.Errorf("%w: %v", ErrNotFound, value)
	}
	if deepest.node == target.node {
		if target.parent == nil {
			t.root = nil
		} else if target.parent.left == target.node {
			target.parent.left = nil
		} else {
			target.parent.right = nil
		}
		t.size--
		return nil
	}
	target.node.value = deepest.node.value
	assert(deepest.parent != nil, "Remove: non-root deepest node must have a parent")
	if deepest.parent.left == deepest.node {
		deepest.parent.left = nil
	} else {
		deepest.parent.right = nil
	}
	t.size--
	return nil
}

// Clone returns a structurally independent copy of the tree, rebuilt from the
// level-order sequence. Values are copied shallowly. O(n).
func (t *Tree[T]) Clone() *Tree[T] {
	return FromLevelOrder(t.levelOrderSlice()...)
}

// CloneFunc returns an independent copy with every value passed through
// clone, for payload types that need a deep copy. O(n).
func (t *Tree[T]) CloneFunc(clone func(T) T) *Tree[T] {
	values := t.levelOrderSlice()
	for i, v := range values {
		values[i] = clone(v)
	}
	return FromLevelOrder(values...)
}

// Equal compares two trees by their level-order value sequences. For trees
// built with the package's complete-shape construction rule, the level-order
// sequence fully determines shape and content. O(n).
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t.size != other.size {
		return false
	}
	a := t.levelOrderSlice()
	b := other.levelOrderSlice()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *Tree[T]) levelOrderSlice() []T {
	out := make([]T, 0, t.size)
	for v := range t.rangeLevelOrder() {
		out = append(out, v)
	}
	return out
}

// String returns a debug representation listing the values in inorder.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BinaryTree([")
	first := true
	for v := range t.rangeInOrder() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("])")
	return sb.String()
}
