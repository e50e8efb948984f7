// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import "github.com/gboirie/stroll/internal/dlist"

// DPRNode is the intrusive link a node queued in a DPRHeap must embed.
// Unlike HPR, a DPRNode keeps a parent pointer and a doubly-linked
// children ring (rather than a single first-child pointer), which is
// what lets DPRHeap support Remove, Promote and Demote on an arbitrary
// already-queued node in addition to the HPR-style insert/peek/merge/
// extract.
type DPRNode[V any] struct {
	parent     *DPRNode[V]
	next, prev *DPRNode[V]
	children   dlist.List[DPRNode[V], *DPRNode[V]]
	Value      V
}

func (n *DPRNode[V]) Next() *DPRNode[V]     { return n.next }
func (n *DPRNode[V]) Prev() *DPRNode[V]     { return n.prev }
func (n *DPRNode[V]) SetNext(s *DPRNode[V]) { n.next = s }
func (n *DPRNode[V]) SetPrev(s *DPRNode[V]) { n.prev = s }

// DPRHeap is a pairing heap over doubly-linked children rings, offering
// the full mutable API: insert, peek, merge, extract, remove an arbitrary
// queued node, and promote/demote that node when its key changes.
type DPRHeap[V any] struct {
	root *DPRNode[V]
	cmp  Comparator[DPRNode[V]]
}

// NewDPRHeap returns an empty heap ordered by cmp.
func NewDPRHeap[V any](cmp Comparator[DPRNode[V]]) *DPRHeap[V] {
	if cmp == nil {
		assert("dprheap", "nil comparator")
	}
	return &DPRHeap[V]{cmp: cmp}
}

// Empty reports whether the heap holds no node.
func (h *DPRHeap[V]) Empty() bool {
	return h.root == nil
}

// Peek returns the minimal node without removing it. Panics if the heap
// is empty.
func (h *DPRHeap[V]) Peek() *DPRNode[V] {
	if h.root == nil {
		assert("dprheap", "peek on empty heap")
	}
	return h.root
}

func dprAttachChild[V any](child, parent *DPRNode[V]) {
	child.parent = parent
	parent.children.PushFront(child)
}

func dprDetachChild[V any](child *DPRNode[V]) {
	dlist.Remove[DPRNode[V]](child)
}

// dprJoin links the two trees rooted at first and second into one, making
// the smaller root (per cmp) the parent. First-argument wins ties.
func dprJoin[V any](first, second *DPRNode[V], cmp Comparator[DPRNode[V]]) *DPRNode[V] {
	var parent, child *DPRNode[V]
	if cmp(first, second) <= 0 {
		parent, child = first, second
	} else {
		parent, child = second, first
	}
	dprAttachChild(child, parent)
	return parent
}

// Insert queues node. node must not already belong to h or any other
// heap.
func (h *DPRHeap[V]) Insert(node *DPRNode[V]) {
	if node == h.root {
		assert("dprheap", "node already queued")
	}

	node.parent = nil
	node.children.Init()

	if h.root != nil {
		h.root = dprJoin(h.root, node, h.cmp)
	} else {
		h.root = node
	}
}

// Merge moves every node of source into h, leaving source empty. h and
// source must not be the same heap.
func (h *DPRHeap[V]) Merge(source *DPRHeap[V]) {
	if h == source {
		assert("dprheap", "cannot merge a heap with itself")
	}
	if source.root == nil {
		return
	}

	if h.root != nil {
		h.root = dprJoin(h.root, source.root, h.cmp)
	} else {
		h.root = source.root
	}
	source.root = nil
}

// dprMergeNodes drains children (a node's children ring, or nil for an
// empty set) and runs the two-pass pairing reorganisation over it: pass 1
// pairs up adjacent siblings left to right, pushing each resulting
// sub-tree onto a stack; pass 2 folds the stack right to left into a
// single tree. See hprMergeNodes for the same algorithm over a
// singly-linked chain; this is its doubly-linked-ring counterpart.
func dprMergeNodes[V any](children *dlist.List[DPRNode[V], *DPRNode[V]], cmp Comparator[DPRNode[V]]) *DPRNode[V] {
	if children.Empty() {
		return nil
	}

	var stack dlist.List[DPRNode[V], *DPRNode[V]]

	var twin *DPRNode[V]
	for !children.Empty() {
		node := children.PopFront()
		if twin != nil {
			stack.PushFront(dprJoin(twin, node, cmp))
			twin = nil
		} else {
			twin = node
		}
	}
	if twin != nil {
		stack.PushFront(twin)
	}

	root := stack.PopFront()
	for !stack.Empty() {
		root = dprJoin(root, stack.PopFront(), cmp)
	}
	return root
}

func dprRemoveRoot[V any](root *DPRNode[V], cmp Comparator[DPRNode[V]]) *DPRNode[V] {
	nevv := dprMergeNodes(&root.children, cmp)
	if nevv != nil {
		nevv.parent = nil
	}
	return nevv
}

// dprRemoveNode detaches node from its current parent and re-merges its
// orphaned children into a single tree, then grafts that tree as a child
// of root with no comparison: root is always the heap's global minimum,
// so anything pulled from deeper in the tree is already known to compare
// greater than or equal to it.
func dprRemoveNode[V any](root, node *DPRNode[V], cmp Comparator[DPRNode[V]]) {
	dprDetachChild(node)

	nevv := dprMergeNodes(&node.children, cmp)
	if nevv != nil {
		dprAttachChild(nevv, root)
	}
}

// Extract removes and returns the minimal node. Panics if the heap is
// empty.
func (h *DPRHeap[V]) Extract() *DPRNode[V] {
	if h.root == nil {
		assert("dprheap", "extract on empty heap")
	}

	node := h.root
	h.root = dprRemoveRoot(node, h.cmp)

	return node
}

// Remove removes an arbitrary already-queued node. Panics if the heap is
// empty.
func (h *DPRHeap[V]) Remove(node *DPRNode[V]) {
	if h.root == nil {
		assert("dprheap", "remove on empty heap")
	}

	if node.parent == nil {
		if node != h.root {
			assert("dprheap", "node with no parent must be the heap's root")
		}
		h.root = dprRemoveRoot(node, h.cmp)
		return
	}

	dprRemoveNode(h.root, node, h.cmp)
}

// dprUpdateNode relocates node after its key changed: detach it (folding
// its orphaned children back under the heap root), then re-insert the
// now-childless node by a proper comparison join against the heap root,
// since node's new key relative to the root is not otherwise known.
func dprUpdateNode[V any](h *DPRHeap[V], node *DPRNode[V]) {
	dprRemoveNode(h.root, node, h.cmp)
	node.parent = nil
	node.children.Init()
	h.root = dprJoin(h.root, node, h.cmp)
}

// Promote must be called after node's key has decreased. A no-op if node
// is already the root, or if its parent is still no greater than node.
func (h *DPRHeap[V]) Promote(node *DPRNode[V]) {
	if h.root == nil {
		assert("dprheap", "promote on empty heap")
	}

	if node.parent == nil {
		if node != h.root {
			assert("dprheap", "node with no parent must be the heap's root")
		}
		return
	}
	if h.cmp(node.parent, node) <= 0 {
		return
	}

	dprUpdateNode(h, node)
}

// Demote must be called after node's key has increased.
func (h *DPRHeap[V]) Demote(node *DPRNode[V]) {
	if h.root == nil {
		assert("dprheap", "demote on empty heap")
	}

	if node.parent == nil {
		if node != h.root {
			assert("dprheap", "node with no parent must be the heap's root")
		}

		nevv := dprRemoveRoot(node, h.cmp)
		if nevv != nil {
			node.children.Init()
			h.root = dprJoin(nevv, node, h.cmp)
		}
		return
	}

	dprUpdateNode(h, node)
}

// BoundedDPR layers count/capacity tracking over a DPRHeap, panicking
// rather than exceeding the capacity fixed at construction.
type BoundedDPR[V any] struct {
	capacity
	heap DPRHeap[V]
}

// NewBoundedDPR returns a heap that accepts at most nr nodes, and false
// if nr is zero.
func NewBoundedDPR[V any](nr uint, cmp Comparator[DPRNode[V]]) (*BoundedDPR[V], bool) {
	if nr == 0 {
		return nil, false
	}
	return &BoundedDPR[V]{capacity: capacity{nr: nr}, heap: *NewDPRHeap(cmp)}, true
}

func (h *BoundedDPR[V]) Empty() bool       { return h.heap.Empty() }
func (h *BoundedDPR[V]) Peek() *DPRNode[V] { return h.heap.Peek() }
func (h *BoundedDPR[V]) Count() uint       { return h.cnt }
func (h *BoundedDPR[V]) Capacity() uint    { return h.nr }

// Insert queues node, panicking if the heap is already at capacity.
func (h *BoundedDPR[V]) Insert(node *DPRNode[V]) {
	h.checkInsert("dprheap")
	h.heap.Insert(node)
	h.cnt++
}

// Merge moves every node of source into h, panicking if the combined
// count would exceed h's capacity.
func (h *BoundedDPR[V]) Merge(source *BoundedDPR[V]) {
	h.checkMerge("dprheap", source.capacity)
	h.heap.Merge(&source.heap)
	h.cnt += source.cnt
	source.cnt = 0
}

// Extract removes and returns the minimal node.
func (h *BoundedDPR[V]) Extract() *DPRNode[V] {
	node := h.heap.Extract()
	h.cnt--
	return node
}

// Remove removes an arbitrary already-queued node.
func (h *BoundedDPR[V]) Remove(node *DPRNode[V]) {
	h.heap.Remove(node)
	h.cnt--
}

// Promote must be called after node's key has decreased.
func (h *BoundedDPR[V]) Promote(node *DPRNode[V]) { h.heap.Promote(node) }

// Demote must be called after node's key has increased.
func (h *BoundedDPR[V]) Demote(node *DPRNode[V]) { h.heap.Demote(node) }
