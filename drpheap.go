// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import (
	"github.com/gboirie/stroll/internal/bitword"
	"github.com/gboirie/stroll/internal/dlist"
)

// DRPNode is the intrusive link a node queued in a DRPHeap must embed. A
// DRPNode is a half-tree: children hang off a doubly-linked ring (so an
// arbitrary child detaches in O(1), the same trick DPR uses), and rank
// approximates subtree size under the type-2 rank rule of a rank-pairing
// heap. The root and children rings share the same next/prev fields,
// since a node is only ever a member of one ring at a time; root
// distinguishes which ring that is.
//
// original_source packs "is this a root, or does this link hold a parent
// pointer" into the low bit of the link's back-pointer, relying on
// struct alignment to make a genuine parent pointer's low bit always
// zero. That bit-stealing trick saves nothing observable in Go, so this
// port spells it out as an explicit bool instead.
type DRPNode[V any] struct {
	rank     int
	parent   *DRPNode[V]
	next     *DRPNode[V]
	prev     *DRPNode[V]
	children dlist.List[DRPNode[V], *DRPNode[V]]
	root     bool
	Value    V
}

func (n *DRPNode[V]) Next() *DRPNode[V]     { return n.next }
func (n *DRPNode[V]) Prev() *DRPNode[V]     { return n.prev }
func (n *DRPNode[V]) SetNext(s *DRPNode[V]) { n.next = s }
func (n *DRPNode[V]) SetPrev(s *DRPNode[V]) { n.prev = s }

// DRPHeap is a rank-pairing heap: a ring of root half-trees kept with
// the minimum first, merged lazily and only fully reorganised — via a
// carry-merge over rank buckets, the same trick ripple-carry addition
// uses — on Extract, Remove and Demote. Insert and Merge are O(1);
// Promote is O(1) plus its rank walk; the others are O(log n) amortised.
type DRPHeap[V any] struct {
	roots dlist.List[DRPNode[V], *DRPNode[V]]
	cmp   Comparator[DRPNode[V]]
}

// NewDRPHeap returns an empty heap ordered by cmp.
func NewDRPHeap[V any](cmp Comparator[DRPNode[V]]) *DRPHeap[V] {
	if cmp == nil {
		assert("drpheap", "nil comparator")
	}
	return &DRPHeap[V]{cmp: cmp}
}

// Empty reports whether the heap holds no node.
func (h *DRPHeap[V]) Empty() bool {
	return h.roots.Empty()
}

// Peek returns the minimal node without removing it. Panics if the heap
// is empty.
func (h *DRPHeap[V]) Peek() *DRPNode[V] {
	if h.roots.Empty() {
		assert("drpheap", "peek on empty heap")
	}
	return h.roots.First()
}

// drpChildRank returns the rank of node's first (most recently attached)
// child, or -1 if node is a leaf. The type-2 rank rule treats a missing
// child as having rank -1.
func drpChildRank[V any](node *DRPNode[V]) int {
	if node.children.Empty() {
		return -1
	}
	return node.children.First().rank
}

// drpSiblingRank returns the rank of node's next sibling within its own
// parent's children ring, or -1 if node is its parent's last child.
func drpSiblingRank[V any](node *DRPNode[V]) int {
	if node.parent.children.Last() == node {
		return -1
	}
	return node.Next().rank
}

func drpAttachChild[V any](child, parent *DRPNode[V]) {
	child.parent = parent
	child.root = false
	parent.children.PushFront(child)
	parent.rank = child.rank + 1
}

// drpJoin links the two equal-rank half-trees rooted at first and second
// into one, making the smaller root (per cmp) the parent; its rank
// becomes one more than the loser's. First-argument wins ties.
func drpJoin[V any](first, second *DRPNode[V], cmp Comparator[DRPNode[V]]) *DRPNode[V] {
	var parent, child *DRPNode[V]
	if cmp(first, second) <= 0 {
		parent, child = first, second
	} else {
		parent, child = second, first
	}
	drpAttachChild(child, parent)
	return parent
}

// Insert queues node. node must not already belong to h or any other
// heap. Placed first in the root ring if it is the new minimum, second
// otherwise, which keeps Peek O(1) without fully ordering the ring.
func (h *DRPHeap[V]) Insert(node *DRPNode[V]) {
	node.rank = 0
	node.parent = nil
	node.root = true
	node.children.Init()

	first := h.roots.First()
	if first != nil && h.cmp(first, node) <= 0 {
		h.roots.InsertAfter(first, node)
	} else {
		h.roots.PushFront(node)
	}
}

// Merge moves every node of source into h in O(1), leaving source empty.
// h and source must not be the same heap. The combined ring keeps
// whichever of the two former minimums is smaller in front.
func (h *DRPHeap[V]) Merge(source *DRPHeap[V]) {
	if h == source {
		assert("drpheap", "cannot merge a heap with itself")
	}
	if source.roots.Empty() {
		return
	}
	if h.roots.Empty() {
		h.roots.PushAllBack(&source.roots)
		return
	}

	if h.cmp(h.roots.First(), source.roots.First()) < 0 {
		h.roots.PushAllBack(&source.roots)
	} else {
		h.roots.PushAllFront(&source.roots)
	}
}

// drpSlots is the rank-indexed carry-merge accumulator: bmap tracks
// which ranks currently hold a half-tree, so the occupied ranks can be
// walked lowest to highest via bitword.Word.FindFirstSet/NextSet, the
// same way a ripple-carry adder walks set bits.
type drpSlots[V any] struct {
	bmap    bitword.Word
	buckets [64]*DRPNode[V]
}

// merge adds node to its rank's bucket, carrying into higher ranks by
// joining with whatever already occupies them, until it lands on an
// empty bucket.
func (s *drpSlots[V]) merge(node *DRPNode[V], cmp Comparator[DRPNode[V]]) {
	rank := uint(node.rank)
	for s.bmap.Test(rank) {
		node = drpJoin(node, s.buckets[rank], cmp)
		s.bmap.Clear(rank)
		s.buckets[rank] = nil
		rank++
	}
	s.bmap.Set(rank)
	s.buckets[rank] = node
}

// drpMergeChildren drains children (the former children of a node being
// uprooted, or an empty ring), refreshing each one's rank from its own
// first child before feeding it into slots: a rank-pairing heap does not
// eagerly keep every node's rank current, only nodes about to become
// roots need a freshly derived one.
func drpMergeChildren[V any](slots *drpSlots[V], children *dlist.List[DRPNode[V], *DRPNode[V]], cmp Comparator[DRPNode[V]]) {
	for !children.Empty() {
		node := children.PopFront()
		node.rank = drpChildRank(node) + 1
		slots.merge(node, cmp)
	}
}

// drpMakeRoots rebuilds h's root ring (assumed already empty) from
// slots, in ascending rank order, keeping whichever bucket holds the
// overall minimum in front.
func drpMakeRoots[V any](h *DRPHeap[V], slots *drpSlots[V]) {
	if slots.bmap.Empty() {
		return
	}

	rank := slots.bmap.FindFirstSet() - 1
	first := slots.buckets[rank]
	first.parent = nil
	first.root = true

	for next, ok := slots.bmap.NextSet(rank + 1); ok; next, ok = slots.bmap.NextSet(rank + 1) {
		rank = next
		node := slots.buckets[rank]

		node.parent = nil
		node.root = true
		if h.cmp(node, first) < 0 {
			h.roots.PushBack(first)
			first = node
		} else {
			h.roots.PushBack(node)
		}
	}

	h.roots.PushFront(first)
}

// drpRebuildRoots empties h's remaining root ring into slots (already
// possibly seeded), then rebuilds h.roots from the result.
func drpRebuildRoots[V any](h *DRPHeap[V], slots *drpSlots[V]) {
	for !h.roots.Empty() {
		slots.merge(h.roots.PopFront(), h.cmp)
	}
	drpMakeRoots(h, slots)
}

// Extract removes and returns the minimal node. Panics if the heap is
// empty.
func (h *DRPHeap[V]) Extract() *DRPNode[V] {
	if h.roots.Empty() {
		assert("drpheap", "extract on empty heap")
	}

	lead := h.roots.PopFront()

	var slots drpSlots[V]
	drpMergeChildren(&slots, &lead.children, h.cmp)
	drpRebuildRoots(h, &slots)

	return lead
}

// drpRemoveNode detaches node from its parent's children ring, then
// walks up the half-tree restoring the type-2 rank rule, starting at the
// node whose first-child or next-sibling link node occupied (its previous
// sibling, or its parent if node was the first child). Each visited
// node's rank becomes max(its child's rank, its sibling's rank), plus one
// if those two are within 1 of each other, and the walk moves on to that
// node's own previous sibling or parent the same way. The walk stops as
// soon as a rank is unchanged, or once it reaches the root, which is
// simply set to one more than its own current child's rank with no
// sibling term.
func drpRemoveNode[V any](node *DRPNode[V]) {
	pnode := node.parent
	if pnode.children.First() != node {
		pnode = node.Prev()
	}
	dlist.Remove[DRPNode[V]](node)

	for !pnode.root {
		cnode, snode := drpChildRank(pnode), drpSiblingRank(pnode)
		rank := max(cnode, snode)
		if drpAbs(cnode-snode) <= 1 {
			rank++
		}
		if rank == pnode.rank {
			return
		}
		pnode.rank = rank
		if pnode.parent.children.First() == pnode {
			pnode = pnode.parent
		} else {
			pnode = pnode.Prev()
		}
	}
	pnode.rank = drpChildRank(pnode) + 1
}

func drpAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Remove removes an arbitrary already-queued node, rebuilding the root
// ring around its orphaned children (if any) via the same carry-merge
// Extract uses. Panics if the heap is empty.
func (h *DRPHeap[V]) Remove(node *DRPNode[V]) {
	if h.roots.Empty() {
		assert("drpheap", "remove on empty heap")
	}

	if node.root {
		dlist.Remove[DRPNode[V]](node)
	} else {
		drpRemoveNode(node)
	}

	var slots drpSlots[V]
	drpMergeChildren(&slots, &node.children, h.cmp)
	drpRebuildRoots(h, &slots)
}

// Promote must be called after node's key has decreased. If node is an
// interior node, its whole subtree is cut loose in O(1) (plus the O(log
// n) amortised rank walk) and becomes a new root; no carry-merge is
// needed since nothing about its children changes. If node is already a
// root, it is simply moved to the front of the ring when it becomes the
// new minimum.
func (h *DRPHeap[V]) Promote(node *DRPNode[V]) {
	if h.roots.Empty() {
		assert("drpheap", "promote on empty heap")
	}

	lead := h.roots.First()
	small := h.cmp(node, lead) < 0

	if !node.root {
		drpRemoveNode(node)
		node.parent = nil
		node.root = true
		node.rank = drpChildRank(node) + 1
		if small {
			h.roots.PushFront(node)
		} else {
			h.roots.InsertAfter(lead, node)
		}
		return
	}

	if node != lead && small {
		dlist.Remove[DRPNode[V]](node)
		h.roots.PushFront(node)
	}
}

// Demote must be called after node's key has increased. node is
// detached and reset to a bare, childless rank-0 half-tree, then fed
// back into the carry-merge alongside its own former children and the
// rest of the root ring, so it fuses with whatever else happens to land
// on rank 0 instead of always starting its own new bucket.
func (h *DRPHeap[V]) Demote(node *DRPNode[V]) {
	if h.roots.Empty() {
		assert("drpheap", "demote on empty heap")
	}

	var slots drpSlots[V]
	slots.bmap.Set(0)
	slots.buckets[0] = node

	if node.root {
		dlist.Remove[DRPNode[V]](node)
	} else {
		drpRemoveNode(node)
	}

	orphans := node.children
	node.rank = 0
	node.parent = nil
	node.children.Init()

	drpMergeChildren(&slots, &orphans, h.cmp)
	drpRebuildRoots(h, &slots)
}

// BoundedDRP layers count/capacity tracking over a DRPHeap, panicking
// rather than exceeding the capacity fixed at construction.
type BoundedDRP[V any] struct {
	capacity
	heap DRPHeap[V]
}

// NewBoundedDRP returns a heap that accepts at most nr nodes, and false
// if nr is zero.
func NewBoundedDRP[V any](nr uint, cmp Comparator[DRPNode[V]]) (*BoundedDRP[V], bool) {
	if nr == 0 {
		return nil, false
	}
	return &BoundedDRP[V]{capacity: capacity{nr: nr}, heap: *NewDRPHeap(cmp)}, true
}

func (h *BoundedDRP[V]) Empty() bool       { return h.heap.Empty() }
func (h *BoundedDRP[V]) Peek() *DRPNode[V] { return h.heap.Peek() }
func (h *BoundedDRP[V]) Count() uint       { return h.cnt }
func (h *BoundedDRP[V]) Capacity() uint    { return h.nr }

// Insert queues node, panicking if the heap is already at capacity.
func (h *BoundedDRP[V]) Insert(node *DRPNode[V]) {
	h.checkInsert("drpheap")
	h.heap.Insert(node)
	h.cnt++
}

// Merge moves every node of source into h, panicking if the combined
// count would exceed h's capacity.
func (h *BoundedDRP[V]) Merge(source *BoundedDRP[V]) {
	h.checkMerge("drpheap", source.capacity)
	h.heap.Merge(&source.heap)
	h.cnt += source.cnt
	source.cnt = 0
}

// Extract removes and returns the minimal node.
func (h *BoundedDRP[V]) Extract() *DRPNode[V] {
	node := h.heap.Extract()
	h.cnt--
	return node
}

// Remove removes an arbitrary already-queued node.
func (h *BoundedDRP[V]) Remove(node *DRPNode[V]) {
	h.heap.Remove(node)
	h.cnt--
}

// Promote must be called after node's key has decreased.
func (h *BoundedDRP[V]) Promote(node *DRPNode[V]) { h.heap.Promote(node) }

// Demote must be called after node's key has increased.
func (h *BoundedDRP[V]) Demote(node *DRPNode[V]) { h.heap.Demote(node) }
