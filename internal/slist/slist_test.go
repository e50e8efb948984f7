// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package slist

import "testing"

type elem struct {
	val  int
	next *elem
}

func (e *elem) Next() *elem     { return e.next }
func (e *elem) SetNext(n *elem) { e.next = n }

func collect(l *List[elem, *elem]) []int {
	var got []int
	l.ForEach(func(e *elem) { got = append(got, e.val) })
	return got
}

func TestListEmpty(t *testing.T) {
	var l List[elem, *elem]
	if !l.Empty() {
		t.Fatal("zero value list must be empty")
	}
	if l.First() != nil {
		t.Fatal("First() on empty list must be nil")
	}
}

func TestEnqueueBackOrder(t *testing.T) {
	var l List[elem, *elem]
	a, b, c := &elem{val: 1}, &elem{val: 2}, &elem{val: 3}

	l.EnqueueBack(a)
	l.EnqueueBack(b)
	l.EnqueueBack(c)

	if got, want := collect(&l), []int{1, 2, 3}; !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPushPopFrontIsLIFO(t *testing.T) {
	var l List[elem, *elem]
	a, b, c := &elem{val: 1}, &elem{val: 2}, &elem{val: 3}

	l.PushFront(a)
	l.PushFront(b)
	l.PushFront(c)

	if got, want := collect(&l), []int{3, 2, 1}; !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := l.PopFront(); got != c {
		t.Fatalf("PopFront() = %v, want %v", got, c)
	}
	if got := l.PopFront(); got != b {
		t.Fatalf("PopFront() = %v, want %v", got, b)
	}
	if got := l.PopFront(); got != a {
		t.Fatalf("PopFront() = %v, want %v", got, a)
	}
	if !l.Empty() {
		t.Fatal("list must be empty after draining")
	}
}

func TestPopFrontToEmptyClearsTail(t *testing.T) {
	var l List[elem, *elem]
	a := &elem{val: 1}
	l.EnqueueBack(a)
	l.PopFront()

	if !l.Empty() {
		t.Fatal("list must be empty")
	}

	b := &elem{val: 2}
	l.EnqueueBack(b)
	if got, want := collect(&l), []int{2}; !equal(got, want) {
		t.Fatalf("got %v, want %v; tail pointer was not reset", got, want)
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
