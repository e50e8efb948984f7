// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import "github.com/gboirie/stroll/internal/slist"

// PPRNode is the intrusive link a node queued in a PPRHeap must embed.
// Like HPRNode, children[0] is the first child and children[1] is the
// next sibling, but PPRNode additionally keeps a parent pointer, reused
// cleverly: only a node that is its parent's first child has parent
// pointing at its true parent. Every other sibling's parent field
// instead points at its immediate predecessor in the sibling chain. That
// "offset" encoding is what lets PPRHeap detach an arbitrary node from
// the middle of a sibling chain in O(1), at the cost of one pointer
// indirection HPR does not pay for.
//
// original_source terminates sibling chains with a process-wide sentinel
// node rather than nil, purely so the pairing loops never need a nil
// check. That only matters for a handful of branches per operation; this
// port terminates chains with nil instead, the same way HPR does, since
// a nil check costs nothing worth optimising away in Go and a shared
// mutable package-level sentinel would complicate merging two heaps
// (nodes moved by Merge would still reference the source heap's
// sentinel).
type PPRNode[V any] struct {
	children [2]*PPRNode[V]
	parent   *PPRNode[V]
	Value    V
}

func (n *PPRNode[V]) Next() *PPRNode[V]     { return n.children[1] }
func (n *PPRNode[V]) SetNext(s *PPRNode[V]) { n.children[1] = s }

// PPRHeap is a half-tree pairing heap with parent pointers: insert,
// peek, merge, extract, remove an arbitrary queued node, and promote/
// demote that node when its key changes.
type PPRHeap[V any] struct {
	root *PPRNode[V]
	cmp  Comparator[PPRNode[V]]
}

// NewPPRHeap returns an empty heap ordered by cmp.
func NewPPRHeap[V any](cmp Comparator[PPRNode[V]]) *PPRHeap[V] {
	if cmp == nil {
		assert("pprheap", "nil comparator")
	}
	return &PPRHeap[V]{cmp: cmp}
}

// Empty reports whether the heap holds no node.
func (h *PPRHeap[V]) Empty() bool {
	return h.root == nil
}

// Peek returns the minimal node without removing it. Panics if the heap
// is empty.
func (h *PPRHeap[V]) Peek() *PPRNode[V] {
	if h.root == nil {
		assert("pprheap", "peek on empty heap")
	}
	return h.root
}

func pprAttachChild[V any](node, parent *PPRNode[V]) {
	child := parent.children[0]
	node.children[1] = child
	node.parent = parent
	parent.children[0] = node
	if child != nil {
		child.parent = node
	}
}

func pprDetachNode[V any](node *PPRNode[V]) {
	parent := node.parent
	spine := 0
	if node == parent.children[1] {
		spine = 1
	}
	sibling := node.children[1]
	parent.children[spine] = sibling
	if sibling != nil {
		sibling.parent = parent
	}
}

func pprJoin[V any](first, second *PPRNode[V], cmp Comparator[PPRNode[V]]) *PPRNode[V] {
	var parent, child *PPRNode[V]
	if cmp(first, second) <= 0 {
		parent, child = first, second
	} else {
		parent, child = second, first
	}
	pprAttachChild(child, parent)
	return parent
}

// Insert queues node. node must not already belong to h or any other
// heap.
func (h *PPRHeap[V]) Insert(node *PPRNode[V]) {
	if node == h.root {
		assert("pprheap", "node already queued")
	}

	node.parent = nil
	node.children[0] = nil

	if h.root != nil {
		h.root = pprJoin(h.root, node, h.cmp)
	} else {
		h.root = node
	}
}

// Merge moves every node of source into h, leaving source empty. h and
// source must not be the same heap.
func (h *PPRHeap[V]) Merge(source *PPRHeap[V]) {
	if h == source {
		assert("pprheap", "cannot merge a heap with itself")
	}
	if source.root == nil {
		return
	}

	if h.root != nil {
		h.root = pprJoin(h.root, source.root, h.cmp)
	} else {
		h.root = source.root
	}
	source.root = nil
}

// pprMergeNodes runs the same two-pass pairing reorganisation as
// hprMergeNodes, over the same children[1]-threaded stack; only the
// caller-visible difference is that PPRNode also maintains parent
// pointers across the joins this performs.
func pprMergeNodes[V any](nodes *PPRNode[V], cmp Comparator[PPRNode[V]]) *PPRNode[V] {
	if nodes == nil {
		return nil
	}

	var stack slist.List[PPRNode[V], *PPRNode[V]]

	var twin *PPRNode[V]
	for nodes != nil {
		next := nodes.Next()
		if twin != nil {
			stack.PushFront(pprJoin(twin, nodes, cmp))
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
		root = pprJoin(root, stack.PopFront(), cmp)
	}
	return root
}

func pprRemoveRoot[V any](root *PPRNode[V], cmp Comparator[PPRNode[V]]) *PPRNode[V] {
	nevv := pprMergeNodes(root.children[0], cmp)
	if nevv != nil {
		nevv.children[1] = nil
		nevv.parent = nil
	}
	return nevv
}

// pprRemoveNode detaches node in O(1) from wherever it sits in its
// parent's sibling chain, re-merges its orphaned children into a single
// tree, then grafts that tree as a child of root with no comparison: see
// dprRemoveNode for why that is safe.
func pprRemoveNode[V any](root, node *PPRNode[V], cmp Comparator[PPRNode[V]]) {
	pprDetachNode(node)

	nevv := pprMergeNodes(node.children[0], cmp)
	if nevv != nil {
		pprAttachChild(nevv, root)
	}
}

// Extract removes and returns the minimal node. Panics if the heap is
// empty.
func (h *PPRHeap[V]) Extract() *PPRNode[V] {
	if h.root == nil {
		assert("pprheap", "extract on empty heap")
	}

	node := h.root
	h.root = pprRemoveRoot(node, h.cmp)

	return node
}

// Remove removes an arbitrary already-queued node. Panics if the heap is
// empty.
func (h *PPRHeap[V]) Remove(node *PPRNode[V]) {
	if h.root == nil {
		assert("pprheap", "remove on empty heap")
	}

	if node.parent == nil {
		if node != h.root {
			assert("pprheap", "node with no parent must be the heap's root")
		}
		h.root = pprRemoveRoot(node, h.cmp)
		return
	}

	pprRemoveNode(h.root, node, h.cmp)
}

func pprUpdateNode[V any](h *PPRHeap[V], node *PPRNode[V]) {
	pprRemoveNode(h.root, node, h.cmp)
	node.parent = nil
	node.children[0] = nil
	h.root = pprJoin(h.root, node, h.cmp)
}

// Promote must be called after node's key has decreased. A no-op if node
// is already the root, or if its parent is still no greater than node.
func (h *PPRHeap[V]) Promote(node *PPRNode[V]) {
	if h.root == nil {
		assert("pprheap", "promote on empty heap")
	}

	if node.parent == nil {
		if node != h.root {
			assert("pprheap", "node with no parent must be the heap's root")
		}
		return
	}
	if h.cmp(node.parent, node) <= 0 {
		return
	}

	pprUpdateNode(h, node)
}

// Demote must be called after node's key has increased.
func (h *PPRHeap[V]) Demote(node *PPRNode[V]) {
	if h.root == nil {
		assert("pprheap", "demote on empty heap")
	}

	if node.parent == nil {
		if node != h.root {
			assert("pprheap", "node with no parent must be the heap's root")
		}

		nevv := pprRemoveRoot(node, h.cmp)
		if nevv != nil {
			node.children[0] = nil
			h.root = pprJoin(nevv, node, h.cmp)
		}
		return
	}

	pprUpdateNode(h, node)
}

// BoundedPPR layers count/capacity tracking over a PPRHeap, panicking
// rather than exceeding the capacity fixed at construction.
type BoundedPPR[V any] struct {
	capacity
	heap PPRHeap[V]
}

// NewBoundedPPR returns a heap that accepts at most nr nodes, and false
// if nr is zero.
func NewBoundedPPR[V any](nr uint, cmp Comparator[PPRNode[V]]) (*BoundedPPR[V], bool) {
	if nr == 0 {
		return nil, false
	}
	return &BoundedPPR[V]{capacity: capacity{nr: nr}, heap: *NewPPRHeap(cmp)}, true
}

func (h *BoundedPPR[V]) Empty() bool       { return h.heap.Empty() }
func (h *BoundedPPR[V]) Peek() *PPRNode[V] { return h.heap.Peek() }
func (h *BoundedPPR[V]) Count() uint       { return h.cnt }
func (h *BoundedPPR[V]) Capacity() uint    { return h.nr }

// Insert queues node, panicking if the heap is already at capacity.
func (h *BoundedPPR[V]) Insert(node *PPRNode[V]) {
	h.checkInsert("pprheap")
	h.heap.Insert(node)
	h.cnt++
}

// Merge moves every node of source into h, panicking if the combined
// count would exceed h's capacity.
func (h *BoundedPPR[V]) Merge(source *BoundedPPR[V]) {
	h.checkMerge("pprheap", source.capacity)
	h.heap.Merge(&source.heap)
	h.cnt += source.cnt
	source.cnt = 0
}

// Extract removes and returns the minimal node.
func (h *BoundedPPR[V]) Extract() *PPRNode[V] {
	node := h.heap.Extract()
	h.cnt--
	return node
}

// Remove removes an arbitrary already-queued node.
func (h *BoundedPPR[V]) Remove(node *PPRNode[V]) {
	h.heap.Remove(node)
	h.cnt--
}

// Promote must be called after node's key has decreased.
func (h *BoundedPPR[V]) Promote(node *PPRNode[V]) { h.heap.Promote(node) }

// Demote must be called after node's key has increased.
func (h *BoundedPPR[V]) Demote(node *PPRNode[V]) { h.heap.Demote(node) }
