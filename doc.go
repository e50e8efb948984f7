// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

// Package stroll provides intrusive priority-queue and heap primitives.
//
// "Intrusive" means a heap never allocates storage for the elements it
// orders: the caller's own node type carries whatever linkage the chosen
// engine needs, and the heap only ever follows pointers the caller already
// owns. This trades a few extra struct fields in the caller's node type for
// zero per-operation allocation and the ability to locate and remove an
// arbitrary, already-queued element from the structure without a separate
// index.
//
// Five engines are provided, all mergeable (meld) priority queues built
// around variants of the pairing-heap family plus one binomial heap:
//
//   - HPR: half-tree pairing heap, insert/peek/merge/extract only.
//   - DPR: pairing heap over doubly-linked children lists, full API
//     including arbitrary-node removal and key promotion/demotion.
//   - PPR: half-tree pairing heap with parent pointers, full API.
//   - DRP: rank-pairing heap with amortised O(log n) decrease-key via the
//     type-2 rank rule.
//   - DBN: binomial heap over doubly-linked children lists.
//
// Every engine is generic over a caller-supplied node type and orders
// nodes with a Comparator; none of them touch a key field directly, so the
// same engine works for an int priority, a timestamp, or any other total
// order the caller can express as a three-way comparison.
//
// None of the five engines are safe for concurrent use without external
// synchronisation.
package stroll
