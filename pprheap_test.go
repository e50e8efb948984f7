// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import "testing"

func pprCmp(a, b *PPRNode[int]) int {
	return a.Value - b.Value
}

func TestPPRInsertExtractSorted(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	for _, v := range []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0} {
		h.Insert(&PPRNode[int]{Value: v})
	}

	for want := 0; want <= 9; want++ {
		if got := h.Extract().Value; got != want {
			t.Fatalf("Extract() = %d, want %d", got, want)
		}
	}
	if !h.Empty() {
		t.Fatal("heap must be empty after draining")
	}
}

func TestPPRPeekDoesNotRemove(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	h.Insert(&PPRNode[int]{Value: 3})
	h.Insert(&PPRNode[int]{Value: 1})

	if got := h.Peek().Value; got != 1 {
		t.Fatalf("Peek() = %d, want 1", got)
	}
	if got := h.Peek().Value; got != 1 {
		t.Fatalf("second Peek() = %d, want 1", got)
	}
}

func TestPPRMergeDrainsSource(t *testing.T) {
	a := NewPPRHeap(pprCmp)
	b := NewPPRHeap(pprCmp)
	a.Insert(&PPRNode[int]{Value: 4})
	a.Insert(&PPRNode[int]{Value: 2})
	b.Insert(&PPRNode[int]{Value: 3})
	b.Insert(&PPRNode[int]{Value: 1})

	a.Merge(b)
	if !b.Empty() {
		t.Fatal("source heap must be empty after merge")
	}
	for _, want := range []int{1, 2, 3, 4} {
		if got := a.Extract().Value; got != want {
			t.Fatalf("Extract() = %d, want %d", got, want)
		}
	}
}

func TestPPRMergeIntoEmpty(t *testing.T) {
	a := NewPPRHeap(pprCmp)
	b := NewPPRHeap(pprCmp)
	b.Insert(&PPRNode[int]{Value: 1})

	a.Merge(b)
	if got := a.Extract().Value; got != 1 {
		t.Fatalf("Extract() = %d, want 1", got)
	}
}

func TestPPRRemoveRoot(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	n1 := &PPRNode[int]{Value: 1}
	h.Insert(n1)
	h.Insert(&PPRNode[int]{Value: 5})
	h.Insert(&PPRNode[int]{Value: 3})

	h.Remove(n1)
	if got := h.Extract().Value; got != 3 {
		t.Fatalf("Extract() = %d, want 3", got)
	}
	if got := h.Extract().Value; got != 5 {
		t.Fatalf("Extract() = %d, want 5", got)
	}
}

func TestPPRRemoveArbitraryNode(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	nodes := make(map[int]*PPRNode[int])
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		n := &PPRNode[int]{Value: v}
		nodes[v] = n
		h.Insert(n)
	}

	h.Remove(nodes[8])
	h.Remove(nodes[2])

	var got []int
	for !h.Empty() {
		got = append(got, h.Extract().Value)
	}
	want := []int{1, 3, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPPRPromoteMovesNodeUp(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	nodes := make(map[int]*PPRNode[int])
	for _, v := range []int{10, 20, 30, 40, 50} {
		n := &PPRNode[int]{Value: v}
		nodes[v] = n
		h.Insert(n)
	}

	n := nodes[40]
	n.Value = 1
	h.Promote(n)

	if got := h.Peek().Value; got != 1 {
		t.Fatalf("Peek() = %d, want 1", got)
	}

	var got []int
	for !h.Empty() {
		got = append(got, h.Extract().Value)
	}
	want := []int{1, 10, 20, 30, 50}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPPRDemoteMovesRootDown(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	root := &PPRNode[int]{Value: 1}
	h.Insert(root)
	h.Insert(&PPRNode[int]{Value: 5})
	h.Insert(&PPRNode[int]{Value: 3})

	root.Value = 100
	h.Demote(root)

	if got := h.Peek().Value; got != 3 {
		t.Fatalf("Peek() = %d, want 3 after demoting former root", got)
	}

	var got []int
	for !h.Empty() {
		got = append(got, h.Extract().Value)
	}
	want := []int{3, 5, 100}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPPRPromoteOnRootIsNoop(t *testing.T) {
	h := NewPPRHeap(pprCmp)
	root := &PPRNode[int]{Value: 1}
	h.Insert(root)
	h.Promote(root)
	if h.Peek() != root {
		t.Fatal("promoting the root must be a no-op")
	}
}

func TestPPRExtractOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Extract on empty heap must panic")
		}
	}()
	NewPPRHeap(pprCmp).Extract()
}

func TestPPRMergeSelfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("merging a heap with itself must panic")
		}
	}()
	h := NewPPRHeap(pprCmp)
	h.Merge(h)
}

func TestBoundedPPRRejectsZeroCapacity(t *testing.T) {
	if _, ok := NewBoundedPPR[int](0, pprCmp); ok {
		t.Fatal("construction with zero capacity must fail")
	}
}

func TestBoundedPPREnforcesCapacity(t *testing.T) {
	h, ok := NewBoundedPPR[int](1, pprCmp)
	if !ok {
		t.Fatal("construction must succeed")
	}
	h.Insert(&PPRNode[int]{Value: 1})

	defer func() {
		if recover() == nil {
			t.Fatal("Insert beyond capacity must panic")
		}
	}()
	h.Insert(&PPRNode[int]{Value: 2})
}

func TestBoundedPPRMergeTracksCount(t *testing.T) {
	a, _ := NewBoundedPPR[int](4, pprCmp)
	b, _ := NewBoundedPPR[int](4, pprCmp)
	a.Insert(&PPRNode[int]{Value: 2})
	b.Insert(&PPRNode[int]{Value: 1})
	b.Insert(&PPRNode[int]{Value: 3})

	a.Merge(b)
	if got, want := a.Count(), uint(3); got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	if got, want := b.Count(), uint(0); got != want {
		t.Fatalf("source Count() = %d, want %d", got, want)
	}
}

func TestBoundedPPRMergeBeyondCapacityPanics(t *testing.T) {
	a, _ := NewBoundedPPR[int](2, pprCmp)
	b, _ := NewBoundedPPR[int](2, pprCmp)
	a.Insert(&PPRNode[int]{Value: 1})
	a.Insert(&PPRNode[int]{Value: 2})
	b.Insert(&PPRNode[int]{Value: 3})

	defer func() {
		if recover() == nil {
			t.Fatal("Merge beyond capacity must panic")
		}
	}()
	a.Merge(b)
}
