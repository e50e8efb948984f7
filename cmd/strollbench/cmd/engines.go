// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/gboirie/stroll"
)

// engine is the common surface runRun drives. remove/promote/demote
// return false when there is no live node to operate on, or when the
// underlying heap (HPR) doesn't implement that operation at all.
type engine interface {
	insert(v int)
	empty() bool
	len() int
	extract() bool
	remove(r *rand.Rand) bool
	promote(r *rand.Rand) bool
	demote(r *rand.Rand) bool
	mergeScratch(r *rand.Rand, n int)
}

func newEngine(name string) (engine, error) {
	switch name {
	case "hpr":
		return newHPREngine(), nil
	case "dpr":
		return newDPREngine(), nil
	case "ppr":
		return newPPREngine(), nil
	case "drp":
		return newDRPEngine(), nil
	case "dbn":
		return newDBNEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want one of hpr, dpr, ppr, drp, dbn)", name)
	}
}

func hprCmp(a, b *stroll.HPRNode[int]) int { return a.Value - b.Value }
func dprCmp(a, b *stroll.DPRNode[int]) int { return a.Value - b.Value }
func pprCmp(a, b *stroll.PPRNode[int]) int { return a.Value - b.Value }
func drpCmp(a, b *stroll.DRPNode[int]) int { return a.Value - b.Value }
func dbnCmp(a, b *stroll.DBNNode[int]) int { return a.Value - b.Value }

// hprEngine drives stroll's insert/peek/merge/extract-only engine; it
// never supports remove/promote/demote.
type hprEngine struct {
	heap *stroll.HPRHeap[int]
	live []*stroll.HPRNode[int]
}

func newHPREngine() *hprEngine { return &hprEngine{heap: stroll.NewHPRHeap(hprCmp)} }

func (e *hprEngine) insert(v int) {
	n := &stroll.HPRNode[int]{Value: v}
	e.heap.Insert(n)
	e.live = append(e.live, n)
}
func (e *hprEngine) empty() bool { return e.heap.Empty() }
func (e *hprEngine) len() int    { return len(e.live) }
func (e *hprEngine) extract() bool {
	if e.heap.Empty() {
		return false
	}
	n := e.heap.Extract()
	for i, x := range e.live {
		if x == n {
			e.live[i] = e.live[len(e.live)-1]
			e.live = e.live[:len(e.live)-1]
			break
		}
	}
	return true
}
func (e *hprEngine) remove(r *rand.Rand) bool  { return false }
func (e *hprEngine) promote(r *rand.Rand) bool { return false }
func (e *hprEngine) demote(r *rand.Rand) bool  { return false }
func (e *hprEngine) mergeScratch(r *rand.Rand, n int) {
	scratch := stroll.NewHPRHeap(hprCmp)
	nodes := make([]*stroll.HPRNode[int], n)
	for i := range nodes {
		nodes[i] = &stroll.HPRNode[int]{Value: r.IntN(1 << 24)}
		scratch.Insert(nodes[i])
	}
	e.heap.Merge(scratch)
	e.live = append(e.live, nodes...)
}

// dprEngine drives stroll's full-API pairing heap over doubly-linked
// children rings.
type dprEngine struct {
	heap *stroll.DPRHeap[int]
	live []*stroll.DPRNode[int]
}

func newDPREngine() *dprEngine { return &dprEngine{heap: stroll.NewDPRHeap(dprCmp)} }

func (e *dprEngine) insert(v int) {
	n := &stroll.DPRNode[int]{Value: v}
	e.heap.Insert(n)
	e.live = append(e.live, n)
}
func (e *dprEngine) empty() bool { return e.heap.Empty() }
func (e *dprEngine) len() int    { return len(e.live) }
func (e *dprEngine) dropLive(n *stroll.DPRNode[int]) {
	for i, x := range e.live {
		if x == n {
			e.live[i] = e.live[len(e.live)-1]
			e.live = e.live[:len(e.live)-1]
			return
		}
	}
}
func (e *dprEngine) pick(r *rand.Rand) (*stroll.DPRNode[int], bool) {
	if len(e.live) == 0 {
		return nil, false
	}
	return e.live[r.IntN(len(e.live))], true
}
func (e *dprEngine) extract() bool {
	if e.heap.Empty() {
		return false
	}
	e.dropLive(e.heap.Extract())
	return true
}
func (e *dprEngine) remove(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	e.heap.Remove(n)
	e.dropLive(n)
	return true
}
func (e *dprEngine) promote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value -= 1 + r.IntN(1000)
	e.heap.Promote(n)
	return true
}
func (e *dprEngine) demote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value += 1 + r.IntN(1000)
	e.heap.Demote(n)
	return true
}
func (e *dprEngine) mergeScratch(r *rand.Rand, n int) {
	scratch := stroll.NewDPRHeap(dprCmp)
	nodes := make([]*stroll.DPRNode[int], n)
	for i := range nodes {
		nodes[i] = &stroll.DPRNode[int]{Value: r.IntN(1 << 24)}
		scratch.Insert(nodes[i])
	}
	e.heap.Merge(scratch)
	e.live = append(e.live, nodes...)
}

// pprEngine drives stroll's half-tree pairing heap with parent pointers.
type pprEngine struct {
	heap *stroll.PPRHeap[int]
	live []*stroll.PPRNode[int]
}

func newPPREngine() *pprEngine { return &pprEngine{heap: stroll.NewPPRHeap(pprCmp)} }

func (e *pprEngine) insert(v int) {
	n := &stroll.PPRNode[int]{Value: v}
	e.heap.Insert(n)
	e.live = append(e.live, n)
}
func (e *pprEngine) empty() bool { return e.heap.Empty() }
func (e *pprEngine) len() int    { return len(e.live) }
func (e *pprEngine) dropLive(n *stroll.PPRNode[int]) {
	for i, x := range e.live {
		if x == n {
			e.live[i] = e.live[len(e.live)-1]
			e.live = e.live[:len(e.live)-1]
			return
		}
	}
}
func (e *pprEngine) pick(r *rand.Rand) (*stroll.PPRNode[int], bool) {
	if len(e.live) == 0 {
		return nil, false
	}
	return e.live[r.IntN(len(e.live))], true
}
func (e *pprEngine) extract() bool {
	if e.heap.Empty() {
		return false
	}
	e.dropLive(e.heap.Extract())
	return true
}
func (e *pprEngine) remove(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	e.heap.Remove(n)
	e.dropLive(n)
	return true
}
func (e *pprEngine) promote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value -= 1 + r.IntN(1000)
	e.heap.Promote(n)
	return true
}
func (e *pprEngine) demote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value += 1 + r.IntN(1000)
	e.heap.Demote(n)
	return true
}
func (e *pprEngine) mergeScratch(r *rand.Rand, n int) {
	scratch := stroll.NewPPRHeap(pprCmp)
	nodes := make([]*stroll.PPRNode[int], n)
	for i := range nodes {
		nodes[i] = &stroll.PPRNode[int]{Value: r.IntN(1 << 24)}
		scratch.Insert(nodes[i])
	}
	e.heap.Merge(scratch)
	e.live = append(e.live, nodes...)
}

// drpEngine drives stroll's rank-pairing heap.
type drpEngine struct {
	heap *stroll.DRPHeap[int]
	live []*stroll.DRPNode[int]
}

func newDRPEngine() *drpEngine { return &drpEngine{heap: stroll.NewDRPHeap(drpCmp)} }

func (e *drpEngine) insert(v int) {
	n := &stroll.DRPNode[int]{Value: v}
	e.heap.Insert(n)
	e.live = append(e.live, n)
}
func (e *drpEngine) empty() bool { return e.heap.Empty() }
func (e *drpEngine) len() int    { return len(e.live) }
func (e *drpEngine) dropLive(n *stroll.DRPNode[int]) {
	for i, x := range e.live {
		if x == n {
			e.live[i] = e.live[len(e.live)-1]
			e.live = e.live[:len(e.live)-1]
			return
		}
	}
}
func (e *drpEngine) pick(r *rand.Rand) (*stroll.DRPNode[int], bool) {
	if len(e.live) == 0 {
		return nil, false
	}
	return e.live[r.IntN(len(e.live))], true
}
func (e *drpEngine) extract() bool {
	if e.heap.Empty() {
		return false
	}
	e.dropLive(e.heap.Extract())
	return true
}
func (e *drpEngine) remove(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	e.heap.Remove(n)
	e.dropLive(n)
	return true
}
func (e *drpEngine) promote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value -= 1 + r.IntN(1000)
	e.heap.Promote(n)
	return true
}
func (e *drpEngine) demote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value += 1 + r.IntN(1000)
	e.heap.Demote(n)
	return true
}
func (e *drpEngine) mergeScratch(r *rand.Rand, n int) {
	scratch := stroll.NewDRPHeap(drpCmp)
	nodes := make([]*stroll.DRPNode[int], n)
	for i := range nodes {
		nodes[i] = &stroll.DRPNode[int]{Value: r.IntN(1 << 24)}
		scratch.Insert(nodes[i])
	}
	e.heap.Merge(scratch)
	e.live = append(e.live, nodes...)
}

// dbnEngine drives stroll's binomial heap.
type dbnEngine struct {
	heap *stroll.DBNHeap[int]
	live []*stroll.DBNNode[int]
}

func newDBNEngine() *dbnEngine { return &dbnEngine{heap: stroll.NewDBNHeap(dbnCmp)} }

func (e *dbnEngine) insert(v int) {
	n := &stroll.DBNNode[int]{Value: v}
	e.heap.Insert(n)
	e.live = append(e.live, n)
}
func (e *dbnEngine) empty() bool { return e.heap.Empty() }
func (e *dbnEngine) len() int    { return len(e.live) }
func (e *dbnEngine) dropLive(n *stroll.DBNNode[int]) {
	for i, x := range e.live {
		if x == n {
			e.live[i] = e.live[len(e.live)-1]
			e.live = e.live[:len(e.live)-1]
			return
		}
	}
}
func (e *dbnEngine) pick(r *rand.Rand) (*stroll.DBNNode[int], bool) {
	if len(e.live) == 0 {
		return nil, false
	}
	return e.live[r.IntN(len(e.live))], true
}
func (e *dbnEngine) extract() bool {
	if e.heap.Empty() {
		return false
	}
	e.dropLive(e.heap.Extract())
	return true
}
func (e *dbnEngine) remove(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	e.heap.Remove(n)
	e.dropLive(n)
	return true
}
func (e *dbnEngine) promote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value -= 1 + r.IntN(1000)
	e.heap.Promote(n)
	return true
}
func (e *dbnEngine) demote(r *rand.Rand) bool {
	n, ok := e.pick(r)
	if !ok {
		return false
	}
	n.Value += 1 + r.IntN(1000)
	e.heap.Demote(n)
	return true
}
func (e *dbnEngine) mergeScratch(r *rand.Rand, n int) {
	scratch := stroll.NewDBNHeap(dbnCmp)
	nodes := make([]*stroll.DBNNode[int], n)
	for i := range nodes {
		nodes[i] = &stroll.DBNNode[int]{Value: r.IntN(1 << 24)}
		scratch.Insert(nodes[i])
	}
	e.heap.Merge(scratch)
	e.live = append(e.live, nodes...)
}
