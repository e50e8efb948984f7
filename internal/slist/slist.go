// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

// Package slist implements a singly-linked list substrate over an
// intrusive next-pointer field. Unlike a classical container, the chained
// element type N supplies its own next-pointer storage (typically a single
// struct field) through the Linker constraint below; this package never
// allocates a wrapper node.
//
// The HPR and PPR pairing-heap engines use it to thread a temporary stack
// of half-trees through their existing sibling-pointer field while
// reorganising a former root's children (see stroll's two-pass pairing
// procedure).
package slist

// Linker is satisfied by a pointer type *N that exposes its own
// next-pointer field through Next/SetNext. A node participates in at most
// one slist at a time.
type Linker[N any] interface {
	*N
	Next() *N
	SetNext(*N)
}

// List is a singly-linked list with an O(1) tail pointer, analogous to
// stroll_slist in the original C library.
type List[N any, P Linker[N]] struct {
	head P
	tail P
}

// Init resets list to empty.
func (l *List[N, P]) Init() {
	var zero P
	l.head = zero
	l.tail = zero
}

// Empty reports whether the list holds no nodes.
func (l *List[N, P]) Empty() bool {
	var zero P
	return l.head == zero
}

// First returns the first node, or the zero value if the list is empty.
func (l *List[N, P]) First() P {
	return l.head
}

// PushFront makes node the new first element of the list.
func (l *List[N, P]) PushFront(node P) {
	var zero P
	node.SetNext(l.head)
	l.head = node
	if l.tail == zero {
		l.tail = node
	}
}

// PopFront removes and returns the first element. The list must not be
// empty.
func (l *List[N, P]) PopFront() P {
	node := l.head
	l.head = node.Next()

	var zero P
	if l.head == zero {
		l.tail = zero
	}
	node.SetNext(zero)

	return node
}

// EnqueueBack appends node after the current tail.
func (l *List[N, P]) EnqueueBack(node P) {
	var zero P
	node.SetNext(zero)

	if l.tail == zero {
		l.head = node
	} else {
		l.tail.SetNext(node)
	}
	l.tail = node
}

// ForEach walks every node of the list from head to tail, invoking fn on
// each. fn must not mutate the chain.
func (l *List[N, P]) ForEach(fn func(P)) {
	for n := l.head; n != (*new(P)); n = n.Next() {
		fn(n)
	}
}
