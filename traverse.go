package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/arbor/queue"
	"github.com/npillmayer/arbor/stack"
)

// Order names a traversal strategy.
type Order string

// Traversal orders accepted by Traverse and ToSlice.
const (
	InOrder           Order = "inorder"
	PreOrder          Order = "preorder"
	PostOrder         Order = "postorder"
	LevelOrder        Order = "levelorder"
	ReverseLevelOrder Order = "reverselevelorder"
	Boundary          Order = "boundary"
	Diagonal          Order = "diagonal"
)

// Traverse returns a lazy sequence of the tree's values in the given order.
//
// The sequence is finite and freshly computed on every call; it is not a
// cursor shared across calls. Traversal never mutates the tree, but the
// sequence reflects live structure: do not mutate the tree while ranging
// over it. An unrecognized order yields ErrUnknownOrder.
func (t *Tree[T]) Traverse(order Order) (iter.Seq[T], error) {
	switch order {
	case InOrder:
		return t.rangeInOrder(), nil
	case PreOrder:
		return t.rangePreOrder(), nil
	case PostOrder:
		return t.rangePostOrder(), nil
	case LevelOrder:
		return t.rangeLevelOrder(), nil
	case ReverseLevelOrder:
		return t.rangeReverseLevelOrder(), nil
	case Boundary:
		return t.rangeBoundary(), nil
	case Diagonal:
		return t.rangeDiagonal(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
}

// All returns the default traversal sequence (inorder).
func (t *Tree[T]) All() iter.Seq[T] {
	return t.rangeInOrder()
}

// ToSlice returns a fresh snapshot of the tree's values in the given order.
func (t *Tree[T]) ToSlice(order Order) ([]T, error) {
	seq, err := t.Traverse(order)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func (t *Tree[T]) rangeInOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkInOrder(t.root, yield)
	}
}

func walkInOrder[T comparable](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	if !walkInOrder(n.left, yield) {
		return false
	}
	if !yield(n.value) {
		return false
	}
	return walkInOrder(n.right, yield)
}

func (t *Tree[T]) rangePreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkPreOrder(t.root, yield)
	}
}

func walkPreOrder[T comparable](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n.value) {
		return false
	}
	if !walkPreOrder(n.left, yield) {
		return false
	}
	return walkPreOrder(n.right, yield)
}

func (t *Tree[T]) rangePostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		walkPostOrder(t.root, yield)
	}
}

func walkPostOrder[T comparable](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	if !walkPostOrder(n.left, yield) {
		return false
	}
	if !walkPostOrder(n.right, yield) {
		return false
	}
	return yield(n.value)
}

func (t *Tree[T]) rangeLevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		fringe := queue.Of(t.root)
		for !fringe.IsEmpty() {
			curr, err := fringe.Dequeue()
			assert(err == nil, "levelorder: dequeue from non-empty fringe failed")
			if !yield(curr.value) {
				return
			}
			if curr.left != nil {
				fringe.Enqueue(curr.left)
			}
			if curr.right != nil {
				fringe.Enqueue(curr.right)
			}
		}
	}
}

// rangeReverseLevelOrder enumerates the level-order sequence of the mirrored
// tree and emits it back to front: deepest level first, left to right within
// a level.
func (t *Tree[T]) rangeReverseLevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		fringe := queue.Of(t.root)
		emitted := stack.New[T]()
		for !fringe.IsEmpty() {
			curr, err := fringe.Dequeue()
			assert(err == nil, "reverselevelorder: dequeue from non-empty fringe failed")
			emitted.Push(curr.value)
			if curr.right != nil {
				fringe.Enqueue(curr.right)
			}
			if curr.left != nil {
				fringe.Enqueue(curr.left)
			}
		}
		for !emitted.IsEmpty() {
			v, err := emitted.Pop()
			assert(err == nil, "reverselevelorder: pop from non-empty stack failed")
			if !yield(v) {
				return
			}
		}
	}
}

// rangeBoundary emits the outline of the tree counterclockwise: the root,
// the left spine top-down, all leaves left to right, then the right spine
// bottom-up. The root appears exactly once, and spine segments exclude
// leaves so that no corner is emitted twice.
func (t *Tree[T]) rangeBoundary() iter.Seq[T] {
	return func(yield func(T) bool) {
		root := t.root
		if root == nil {
			return
		}
		if !yield(root.value) {
			return
		}
		if root.IsLeaf() {
			return
		}
		for n := root.left; n != nil && !n.IsLeaf(); n = n.left {
			if !yield(n.value) {
				return
			}
		}
		if !walkLeaves(root.left, yield) {
			return
		}
		if !walkLeaves(root.right, yield) {
			return
		}
		var spine []T
		for n := root.right; n != nil && !n.IsLeaf(); n = n.right {
			spine = append(spine, n.value)
		}
		for i := len(spine) - 1; i >= 0; i-- {
			if !yield(spine[i]) {
				return
			}
		}
	}
}

func walkLeaves[T comparable](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	if n.IsLeaf() {
		return yield(n.value)
	}
	if !walkLeaves(n.left, yield) {
		return false
	}
	return walkLeaves(n.right, yield)
}

// rangeDiagonal groups nodes into diagonal bands: following a right child
// stays in the band, following a left child opens the next band. Bands are
// emitted starting with the root's band.
func (t *Tree[T]) rangeDiagonal() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		bands := queue.Of(t.root)
		for !bands.IsEmpty() {
			curr, err := bands.Dequeue()
			assert(err == nil, "diagonal: dequeue from non-empty band queue failed")
			for curr != nil {
				if !yield(curr.value) {
					return
				}
				if curr.left != nil {
					bands.Enqueue(curr.left)
				}
				curr = curr.right
			}
		}
	}
}
