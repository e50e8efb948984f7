// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import (
	"github.com/gboirie/stroll/internal/bitword"
	"github.com/gboirie/stroll/internal/dlist"
)

// DBNNode is the intrusive link a node queued in a DBNHeap must embed.
// order counts the node's children, same as a classic binomial tree's
// rank. next/prev thread the node into exactly one dlist ring at a
// time: either its parent's children ring, or the heap's root ring.
//
// Unlike the other four engines, DBNHeap does not keep its root ring
// sorted by key, only by order, so Peek must scan every root rather
// than read the first one.
type DBNNode[V any] struct {
	order    int
	parent   *DBNNode[V]
	next     *DBNNode[V]
	prev     *DBNNode[V]
	children dlist.List[DBNNode[V], *DBNNode[V]]
	Value    V
}

func (n *DBNNode[V]) Next() *DBNNode[V]     { return n.next }
func (n *DBNNode[V]) Prev() *DBNNode[V]     { return n.prev }
func (n *DBNNode[V]) SetNext(s *DBNNode[V]) { n.next = s }
func (n *DBNNode[V]) SetPrev(s *DBNNode[V]) { n.prev = s }

// DBNHeap is a binomial heap: a forest of at most one tree per order,
// merged two at a time the way two binary numbers are added digit by
// digit, with same-order trees carrying into the next order up.
type DBNHeap[V any] struct {
	roots dlist.List[DBNNode[V], *DBNNode[V]]
	cmp   Comparator[DBNNode[V]]
}

// NewDBNHeap returns an empty heap ordered by cmp.
func NewDBNHeap[V any](cmp Comparator[DBNNode[V]]) *DBNHeap[V] {
	if cmp == nil {
		assert("dbnheap", "nil comparator")
	}
	return &DBNHeap[V]{cmp: cmp}
}

// Empty reports whether the heap holds no node.
func (h *DBNHeap[V]) Empty() bool {
	return h.roots.Empty()
}

func dbnMin[V any](h *DBNHeap[V]) *DBNNode[V] {
	min := h.roots.First()
	h.roots.ForEach(func(n *DBNNode[V]) {
		if h.cmp(n, min) < 0 {
			min = n
		}
	})
	return min
}

// Peek returns the minimal node without removing it. Panics if the heap
// is empty. Runs in O(log n), since the root ring carries at most one
// tree per order and must be scanned in full.
func (h *DBNHeap[V]) Peek() *DBNNode[V] {
	if h.roots.Empty() {
		assert("dbnheap", "peek on empty heap")
	}
	return dbnMin(h)
}

func dbnJoin[V any](first, second *DBNNode[V], cmp Comparator[DBNNode[V]]) *DBNNode[V] {
	var parent, child *DBNNode[V]
	if cmp(first, second) <= 0 {
		parent, child = first, second
	} else {
		parent, child = second, first
	}
	child.parent = parent
	parent.order++
	parent.children.PushFront(child)
	return parent
}

// dbnMergeSingle inserts node into roots, which must already carry at
// most one tree per order, carrying same-order collisions forward
// exactly the way incrementing a binary counter carries a bit. node
// always ends up with an order no greater than anything left in roots,
// so pushing it to the front keeps the ring valid. Amortised O(1).
func dbnMergeSingle[V any](roots *dlist.List[DBNNode[V], *DBNNode[V]], node *DBNNode[V], cmp Comparator[DBNNode[V]]) {
	for !roots.Empty() && roots.First().order == node.order {
		node = dbnJoin(node, roots.PopFront(), cmp)
	}
	roots.PushFront(node)
}

// dbnSlots accumulates trees by order the same way drpSlots accumulates
// half-trees by rank: a collision at an order joins the two trees and
// carries the result one order up.
type dbnSlots[V any] struct {
	bmap    bitword.Word
	buckets [64]*DBNNode[V]
}

func (s *dbnSlots[V]) add(node *DBNNode[V], cmp Comparator[DBNNode[V]]) {
	order := uint(node.order)
	for s.bmap.Test(order) {
		node = dbnJoin(node, s.buckets[order], cmp)
		s.bmap.Clear(order)
		s.buckets[order] = nil
		order++
	}
	s.bmap.Set(order)
	s.buckets[order] = node
}

func dbnRebuildRoots[V any](h *DBNHeap[V], slots *dbnSlots[V]) {
	if slots.bmap.Empty() {
		return
	}

	order := slots.bmap.FindFirstSet() - 1
	for {
		node := slots.buckets[order]
		node.parent = nil
		h.roots.PushBack(node)

		next, ok := slots.bmap.NextSet(order + 1)
		if !ok {
			break
		}
		order = next
	}
}

// Insert queues node. node must not already belong to h or any other
// heap.
func (h *DBNHeap[V]) Insert(node *DBNNode[V]) {
	node.order = 0
	node.parent = nil
	node.children.Init()
	dbnMergeSingle(&h.roots, node, h.cmp)
}

// Merge moves every node of source into h, leaving source empty. h and
// source must not be the same heap.
func (h *DBNHeap[V]) Merge(source *DBNHeap[V]) {
	if h == source {
		assert("dbnheap", "cannot merge a heap with itself")
	}
	if source.roots.Empty() {
		return
	}

	var slots dbnSlots[V]
	for !h.roots.Empty() {
		slots.add(h.roots.PopFront(), h.cmp)
	}
	for !source.roots.Empty() {
		slots.add(source.roots.PopFront(), h.cmp)
	}
	dbnRebuildRoots(h, &slots)
}

// dbnRemoveRoot detaches a node that is already a root, folds its
// orphaned children and the remaining roots through a fresh carry-merge,
// then rebuilds the root ring.
func dbnRemoveRoot[V any](h *DBNHeap[V], node *DBNNode[V]) {
	dlist.Remove[DBNNode[V]](node)

	var slots dbnSlots[V]
	for !node.children.Empty() {
		child := node.children.PopFront()
		child.parent = nil
		slots.add(child, h.cmp)
	}
	for !h.roots.Empty() {
		slots.add(h.roots.PopFront(), h.cmp)
	}
	dbnRebuildRoots(h, &slots)
}

// dbnSiftUp exchanges node with its parent's position in the tree,
// preserving both nodes' identity (so callers holding either pointer
// keep pointing at the right payload) while moving node one level up.
// node takes over parent's order, ring position and parent pointer;
// parent becomes a child of node, spliced into node's new children ring
// at the exact slot node itself used to occupy there, so that the
// children of an order-k node keep their required descending orders
// k-1..0 in sibling order instead of just the right set of orders.
func dbnSiftUp[V any](node, parent *DBNNode[V]) {
	slot := node.Next()

	dlist.Remove[DBNNode[V]](node)

	dlist.InsertBefore[DBNNode[V]](parent, node)
	dlist.Remove[DBNNode[V]](parent)

	node.parent = parent.parent
	node.order, parent.order = parent.order, node.order

	pc, nc := parent.children, node.children

	node.children = pc
	node.children.ForEach(func(c *DBNNode[V]) { c.parent = node })
	dlist.InsertBefore[DBNNode[V]](slot, parent)
	parent.parent = node

	parent.children = nc
	parent.children.ForEach(func(c *DBNNode[V]) { c.parent = parent })
}

// Extract removes and returns the minimal node. Panics if the heap is
// empty.
func (h *DBNHeap[V]) Extract() *DBNNode[V] {
	if h.roots.Empty() {
		assert("dbnheap", "extract on empty heap")
	}

	node := dbnMin(h)
	dbnRemoveRoot(h, node)
	return node
}

// Remove removes an arbitrary already-queued node. Panics if the heap is
// empty.
func (h *DBNHeap[V]) Remove(node *DBNNode[V]) {
	if h.roots.Empty() {
		assert("dbnheap", "remove on empty heap")
	}

	for node.parent != nil {
		dbnSiftUp(node, node.parent)
	}
	dbnRemoveRoot(h, node)
}

// Promote must be called after node's key has decreased. Sifts node up
// one level at a time while it sorts before its parent.
func (h *DBNHeap[V]) Promote(node *DBNNode[V]) {
	if h.roots.Empty() {
		assert("dbnheap", "promote on empty heap")
	}

	for node.parent != nil && h.cmp(node, node.parent) < 0 {
		dbnSiftUp(node, node.parent)
	}
}

// Demote must be called after node's key has increased. Sifts node up to
// the root of its tree, removes it as a root along with the rest of that
// tree's structure, then reinserts node alone as a fresh order-0 tree.
func (h *DBNHeap[V]) Demote(node *DBNNode[V]) {
	if h.roots.Empty() {
		assert("dbnheap", "demote on empty heap")
	}

	for node.parent != nil {
		dbnSiftUp(node, node.parent)
	}
	dbnRemoveRoot(h, node)

	node.order = 0
	node.parent = nil
	node.children.Init()
	dbnMergeSingle(&h.roots, node, h.cmp)
}

// BoundedDBN layers count/capacity tracking over a DBNHeap, panicking
// rather than exceeding the capacity fixed at construction.
type BoundedDBN[V any] struct {
	capacity
	heap DBNHeap[V]
}

// NewBoundedDBN returns a heap that accepts at most nr nodes, and false
// if nr is zero.
func NewBoundedDBN[V any](nr uint, cmp Comparator[DBNNode[V]]) (*BoundedDBN[V], bool) {
	if nr == 0 {
		return nil, false
	}
	return &BoundedDBN[V]{capacity: capacity{nr: nr}, heap: *NewDBNHeap(cmp)}, true
}

func (h *BoundedDBN[V]) Empty() bool       { return h.heap.Empty() }
func (h *BoundedDBN[V]) Peek() *DBNNode[V] { return h.heap.Peek() }
func (h *BoundedDBN[V]) Count() uint       { return h.cnt }
func (h *BoundedDBN[V]) Capacity() uint    { return h.nr }

// Insert queues node, panicking if the heap is already at capacity.
func (h *BoundedDBN[V]) Insert(node *DBNNode[V]) {
	h.checkInsert("dbnheap")
	h.heap.Insert(node)
	h.cnt++
}

// Merge moves every node of source into h, panicking if the combined
// count would exceed h's capacity.
func (h *BoundedDBN[V]) Merge(source *BoundedDBN[V]) {
	h.checkMerge("dbnheap", source.capacity)
	h.heap.Merge(&source.heap)
	h.cnt += source.cnt
	source.cnt = 0
}

// Extract removes and returns the minimal node.
func (h *BoundedDBN[V]) Extract() *DBNNode[V] {
	node := h.heap.Extract()
	h.cnt--
	return node
}

// Remove removes an arbitrary already-queued node.
func (h *BoundedDBN[V]) Remove(node *DBNNode[V]) {
	h.heap.Remove(node)
	h.cnt--
}

// Promote must be called after node's key has decreased.
func (h *BoundedDBN[V]) Promote(node *DBNNode[V]) { h.heap.Promote(node) }

// Demote must be called after node's key has increased.
func (h *BoundedDBN[V]) Demote(node *DBNNode[V]) { h.heap.Demote(node) }
