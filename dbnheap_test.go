// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package stroll

import "testing"

func dbnCmp(a, b *DBNNode[int]) int {
	return a.Value - b.Value
}

func drainDBN(h *DBNHeap[int]) []int {
	var got []int
	for !h.Empty() {
		got = append(got, h.Extract().Value)
	}
	return got
}

func TestDBNInsertExtractSorted(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	for _, v := range []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0} {
		h.Insert(&DBNNode[int]{Value: v})
	}

	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := drainDBN(h); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !h.Empty() {
		t.Fatal("heap must be empty after draining")
	}
}

func TestDBNInsertManyExtractSorted(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	n := 200
	for i := n - 1; i >= 0; i-- {
		h.Insert(&DBNNode[int]{Value: i})
	}

	var got []int
	for !h.Empty() {
		got = append(got, h.Extract().Value)
	}
	for i := 0; i < n; i++ {
		if got[i] != i {
			t.Fatalf("position %d: got %d, want %d", i, got[i], i)
		}
	}
}

func TestDBNPeekDoesNotRemove(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	h.Insert(&DBNNode[int]{Value: 3})
	h.Insert(&DBNNode[int]{Value: 1})

	if got := h.Peek().Value; got != 1 {
		t.Fatalf("Peek() = %d, want 1", got)
	}
	if got := h.Peek().Value; got != 1 {
		t.Fatalf("second Peek() = %d, want 1", got)
	}
}

func TestDBNMergeDrainsSource(t *testing.T) {
	a := NewDBNHeap(dbnCmp)
	b := NewDBNHeap(dbnCmp)
	a.Insert(&DBNNode[int]{Value: 4})
	a.Insert(&DBNNode[int]{Value: 2})
	b.Insert(&DBNNode[int]{Value: 3})
	b.Insert(&DBNNode[int]{Value: 1})

	a.Merge(b)
	if !b.Empty() {
		t.Fatal("source heap must be empty after merge")
	}
	want := []int{1, 2, 3, 4}
	if got := drainDBN(a); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNMergeIntoEmpty(t *testing.T) {
	a := NewDBNHeap(dbnCmp)
	b := NewDBNHeap(dbnCmp)
	b.Insert(&DBNNode[int]{Value: 1})
	b.Insert(&DBNNode[int]{Value: 5})

	a.Merge(b)
	want := []int{1, 5}
	if got := drainDBN(a); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNRemoveRoot(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	n1 := &DBNNode[int]{Value: 1}
	h.Insert(n1)
	h.Insert(&DBNNode[int]{Value: 5})
	h.Insert(&DBNNode[int]{Value: 3})

	h.Remove(n1)
	want := []int{3, 5}
	if got := drainDBN(h); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNRemoveArbitraryNode(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	nodes := make(map[int]*DBNNode[int])
	for _, v := range []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0} {
		n := &DBNNode[int]{Value: v}
		nodes[v] = n
		h.Insert(n)
	}

	h.Remove(nodes[8])
	h.Remove(nodes[2])
	h.Remove(nodes[0])

	want := []int{1, 3, 4, 5, 6, 7, 9}
	if got := drainDBN(h); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNPromoteMovesNodeUp(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	nodes := make(map[int]*DBNNode[int])
	for _, v := range []int{10, 20, 30, 40, 50, 60, 70, 80} {
		n := &DBNNode[int]{Value: v}
		nodes[v] = n
		h.Insert(n)
	}

	n := nodes[70]
	n.Value = 1
	h.Promote(n)

	if got := h.Peek().Value; got != 1 {
		t.Fatalf("Peek() = %d, want 1", got)
	}

	want := []int{1, 10, 20, 30, 40, 50, 60, 80}
	if got := drainDBN(h); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNPromoteOnRootIsNoop(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	root := &DBNNode[int]{Value: 1}
	h.Insert(root)
	h.Promote(root)
	if h.Peek() != root {
		t.Fatal("promoting the root must be a no-op")
	}
}

func TestDBNDemoteMovesRootDown(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	root := &DBNNode[int]{Value: 1}
	h.Insert(root)
	h.Insert(&DBNNode[int]{Value: 5})
	h.Insert(&DBNNode[int]{Value: 3})

	root.Value = 100
	h.Demote(root)

	if got := h.Peek().Value; got != 3 {
		t.Fatalf("Peek() = %d, want 3 after demoting former root", got)
	}
	want := []int{3, 5, 100}
	if got := drainDBN(h); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNDemoteOfInteriorNode(t *testing.T) {
	h := NewDBNHeap(dbnCmp)
	nodes := make(map[int]*DBNNode[int])
	for _, v := range []int{10, 20, 30, 40, 50, 60, 70, 80} {
		n := &DBNNode[int]{Value: v}
		nodes[v] = n
		h.Insert(n)
	}

	n := nodes[20]
	n.Value = 1000
	h.Demote(n)

	want := []int{10, 30, 40, 50, 60, 70, 80, 1000}
	if got := drainDBN(h); !intsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDBNExtractOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Extract on empty heap must panic")
		}
	}()
	NewDBNHeap(dbnCmp).Extract()
}

func TestDBNMergeSelfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("merging a heap with itself must panic")
		}
	}()
	h := NewDBNHeap(dbnCmp)
	h.Merge(h)
}

func TestBoundedDBNRejectsZeroCapacity(t *testing.T) {
	if _, ok := NewBoundedDBN[int](0, dbnCmp); ok {
		t.Fatal("construction with zero capacity must fail")
	}
}

func TestBoundedDBNEnforcesCapacity(t *testing.T) {
	h, ok := NewBoundedDBN[int](1, dbnCmp)
	if !ok {
		t.Fatal("construction must succeed")
	}
	h.Insert(&DBNNode[int]{Value: 1})

	defer func() {
		if recover() == nil {
			t.Fatal("Insert beyond capacity must panic")
		}
	}()
	h.Insert(&DBNNode[int]{Value: 2})
}

func TestBoundedDBNMergeBeyondCapacityPanics(t *testing.T) {
	a, _ := NewBoundedDBN[int](2, dbnCmp)
	b, _ := NewBoundedDBN[int](2, dbnCmp)
	a.Insert(&DBNNode[int]{Value: 1})
	a.Insert(&DBNNode[int]{Value: 2})
	b.Insert(&DBNNode[int]{Value: 3})

	defer func() {
		if recover() == nil {
			t.Fatal("Merge beyond capacity must panic")
		}
	}()
	a.Merge(b)
}
