// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import "github.com/gboirie/stroll/internal/slist"

// HPRNode is the intrusive link every node queued in an HPRHeap must
// embed. children[0] is the node's first child; children[1] is its next
// sibling in the half-tree's root-to-first-child-to-sibling encoding (a
// node's other siblings, and its own extraction, walk this single field).
//
// HPRNode carries no parent pointer: HPR trades the ability to remove an
// arbitrary already-queued node, or to decrease its key in place, for one
// fewer pointer per node than PPR.
type HPRNode[V any] struct {
	children [2]*HPRNode[V]
	Value    V
}

func (n *HPRNode[V]) Next() *HPRNode[V]     { return n.children[1] }
func (n *HPRNode[V]) SetNext(s *HPRNode[V]) { n.children[1] = s }

// HPRHeap is a half-tree pairing heap: insert, peek, merge and extract
// only. It is the cheapest of the five engines, both in per-node
// footprint and in code executed per operation, and is the right default
// when callers never need to touch a node once it is queued.
type HPRHeap[V any] struct {
	root *HPRNode[V]
	cmp  Comparator[HPRNode[V]]
}

// NewHPRHeap returns an empty heap ordered by cmp.
func NewHPRHeap[V any](cmp Comparator[HPRNode[V]]) *HPRHeap[V] {
	if cmp == nil {
		assert("hprheap", "nil comparator")
	}
	return &HPRHeap[V]{cmp: cmp}
}

// Empty reports whether the heap holds no node.
func (h *HPRHeap[V]) Empty() bool {
	return h.root == nil
}

// Peek returns the minimal node without removing it. Panics if the heap
// is empty.
func (h *HPRHeap[V]) Peek() *HPRNode[V] {
	if h.root == nil {
		assert("hprheap", "peek on empty heap")
	}
	return h.root
}

func hprAttach[V any](child, parent *HPRNode[V]) {
	child.children[1] = parent.children[0]
	parent.children[0] = child
}

// hprJoin links the two half-trees rooted at first and second into one,
// making the smaller root (per cmp) the parent. First-argument wins ties.
func hprJoin[V any](first, second *HPRNode[V], cmp Comparator[HPRNode[V]]) *HPRNode[V] {
	var parent, child *HPRNode[V]
	if cmp(first, second) <= 0 {
		parent, child = first, second
	} else {
		parent, child = second, first
	}
	hprAttach(child, parent)
	return parent
}

// Insert queues node. node must not already belong to h or any other
// heap.
func (h *HPRHeap[V]) Insert(node *HPRNode[V]) {
	if node == h.root {
		assert("hprheap", "node already queued")
	}

	node.children[0] = nil

	if h.root != nil {
		h.root = hprJoin(h.root, node, h.cmp)
	} else {
		h.root = node
	}
}

// Merge moves every node of source into h, leaving source empty. h and
// source must not be the same heap.
func (h *HPRHeap[V]) Merge(source *HPRHeap[V]) {
	if h == source {
		assert("hprheap", "cannot merge a heap with itself")
	}
	if source.root == nil {
		return
	}

	if h.root != nil {
		h.root = hprJoin(h.root, source.root, h.cmp)
	} else {
		h.root = source.root
	}
	source.root = nil
}

// hprMergeNodes runs the two-pass pairing reorganisation over a sibling
// chain threaded through HPRNode.children[1]: pass 1 pairs up adjacent
// siblings left to right, pushing each resulting sub-tree onto a stack;
// pass 2 folds the stack's contents into a single tree. The order of
// these two passes is what gives pairing heaps their amortised bound, so
// it must not be collapsed into a single left-to-right fold.
func hprMergeNodes[V any](nodes *HPRNode[V], cmp Comparator[HPRNode[V]]) *HPRNode[V] {
	if nodes == nil {
		return nil
	}

	var stack slist.List[HPRNode[V], *HPRNode[V]]

	var twin *HPRNode[V]
	for nodes != nil {
		next := nodes.Next()
		if twin != nil {
			stack.PushFront(hprJoin(twin, nodes, cmp))
			twin = nil
		} else {
			twin = nodes
		}
		nodes = next
	}
	if twin != nil {
		stack.PushFront(twin)
	}

	root := stack.PopFront()
	for !stack.Empty() {
		root = hprJoin(root, stack.PopFront(), cmp)
	}
	return root
}

// Extract removes and returns the minimal node. Panics if the heap is
// empty.
func (h *HPRHeap[V]) Extract() *HPRNode[V] {
	if h.root == nil {
		assert("hprheap", "extract on empty heap")
	}

	node := h.root
	h.root = hprMergeNodes(node.children[0], h.cmp)
	node.children[0], node.children[1] = nil, nil

	return node
}

// BoundedHPR layers count/capacity tracking over an HPRHeap, panicking
// rather than exceeding the capacity fixed at construction.
type BoundedHPR[V any] struct {
	capacity
	heap HPRHeap[V]
}

// NewBoundedHPR returns a heap that accepts at most nr nodes, and false
// if nr is zero.
func NewBoundedHPR[V any](nr uint, cmp Comparator[HPRNode[V]]) (*BoundedHPR[V], bool) {
	if nr == 0 {
		return nil, false
	}
	return &BoundedHPR[V]{capacity: capacity{nr: nr}, heap: *NewHPRHeap(cmp)}, true
}

func (h *BoundedHPR[V]) Empty() bool       { return h.heap.Empty() }
func (h *BoundedHPR[V]) Peek() *HPRNode[V] { return h.heap.Peek() }
func (h *BoundedHPR[V]) Count() uint       { return h.cnt }
func (h *BoundedHPR[V]) Capacity() uint    { return h.nr }

// Insert queues node, panicking if the heap is already at capacity.
func (h *BoundedHPR[V]) Insert(node *HPRNode[V]) {
	h.checkInsert("hprheap")
	h.heap.Insert(node)
	h.cnt++
}

// Merge moves every node of source into h, panicking if the combined
// count would exceed h's capacity.
func (h *BoundedHPR[V]) Merge(source *BoundedHPR[V]) {
	h.checkMerge("hprheap", source.capacity)
	h.heap.Merge(&source.heap)
	h.cnt += source.cnt
	source.cnt = 0
}

// Extract removes and returns the minimal node.
func (h *BoundedHPR[V]) Extract() *HPRNode[V] {
	node := h.heap.Extract()
	h.cnt--
	return node
}
