package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/arbor/queue"

// IsFull reports whether every node has either zero or two children. O(n).
func (t *Tree[T]) IsFull() bool {
	return full(t.root)
}

func full[T comparable](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if (n.left == nil) != (n.right == nil) {
		return false
	}
	return full(n.left) && full(n.right)
}

// IsPerfect reports whether all leaves sit at the same depth and every
// internal node has two children. O(n).
func (t *Tree[T]) IsPerfect() bool {
	depth := 0
	for n := t.root; n != nil; n = n.left {
		depth++
	}
	return perfect(t.root, depth, 1)
}

func perfect[T comparable](n *Node[T], depth, level int) bool {
	if n == nil {
		return true
	}
	if n.IsLeaf() {
		return depth == level
	}
	if n.left == nil || n.right == nil {
		return false
	}
	return perfect(n.left, depth, level+1) && perfect(n.right, depth, level+1)
}

// IsComplete reports whether every level except possibly the last is full
// and the last level is filled left to right with no gaps. This is the
// standard array-shape check: in breadth-first order, no node may follow a
// missing child slot. O(n).
func (t *Tree[T]) IsComplete() bool {
	if t.root == nil {
		return true
	}
	fringe := queue.Of(t.root)
	gapSeen := false
	for !fringe.IsEmpty() {
		curr, err := fringe.Dequeue()
		assert(err == nil, "IsComplete: dequeue from non-empty fringe failed")
		if curr.left != nil {
			if gapSeen {
				return false
			}
			fringe.Enqueue(curr.left)
		} else {
			gapSeen = true
		}
		if curr.right != nil {
			if gapSeen {
				return false
			}
			fringe.Enqueue(curr.right)
		} else {
			gapSeen = true
		}
	}
	return true
}

// IsBalanced reports whether for every node the heights of its subtrees
// differ by at most one. The height of an empty subtree is -1. O(n).
func (t *Tree[T]) IsBalanced() bool {
	ok, _ := balanced(t.root)
	return ok
}

func balanced[T comparable](n *Node[T]) (bool, int) {
	if n == nil {
		return true, -1
	}
	leftOK, leftH := balanced(n.left)
	rightOK, rightH := balanced(n.right)
	ok := leftOK && rightOK && abs(leftH-rightH) <= 1
	return ok, 1 + max(leftH, rightH)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsDegenerate reports whether no node has two children, i.e. the tree is a
// pure chain. O(n).
func (t *Tree[T]) IsDegenerate() bool {
	return degenerate(t.root)
}

func degenerate[T comparable](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.left != nil && n.right != nil {
		return false
	}
	return degenerate(n.left) && degenerate(n.right)
}

// Height returns the number of edges on the longest root-to-leaf path.
// An empty tree has height -1. O(n).
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T comparable](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}

// Balance reshapes the tree in place into a height-balanced form: the
// inorder sequence is kept and the node graph is rebuilt by picking the
// middle element of each sub-sequence as local root. This is a structural
// reshuffle; it assumes no ordering among values. O(n).
func (t *Tree[T]) Balance() {
	values := make([]T, 0, t.size)
	for v := range t.rangeInOrder() {
		values = append(values, v)
	}
	t.root = buildBalanced(values)
}

func buildBalanced[T comparable](values []T) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	return &Node[T]{
		value: values[mid],
		left:  buildBalanced(values[:mid]),
		right: buildBalanced(values[mid+1:]),
	}
}
