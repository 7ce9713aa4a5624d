/*
Package arbor implements a classic binary tree with no ordering constraint.

Trees

A binary tree organizes values in nodes with up to two children each. Unlike
search trees, an arbor tree imposes no ordering on its values: clients decide
where values go, either explicitly (per-node insertion) or implicitly
(level-order bulk construction, which produces a complete tree shape).

The package focuses on the algorithmic surface that makes unordered binary
trees useful in practice:

  - level-order construction and level-order gap-filling insertion,
  - seven traversal strategies (inorder, preorder, postorder, levelorder,
    reverse levelorder, boundary and diagonal), produced as lazy sequences,
  - structural predicates (full, perfect, complete, balanced, degenerate),
  - a removal algorithm which preserves the complete-tree shape, and
  - a one-shot rebalancing operation.

Supporting containers live in subpackages: package heap provides the binary
heap engine, package pq a stable priority queue on top of it, and packages
list, stack and queue the linear peer containers. The tree's breadth-first
walks are driven by package queue.

All containers are single-threaded: no operation is safe for concurrent use
on the same instance without external synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
