// Package pqueue implements the two priority-queue variants used by every
// priority-search based algorithm: an unindexed scan-for-min queue
// suited to dense graphs, and an indexed binary heap that supports
// decrease-key-style rebuilds in O(log n) for sparse graphs. Both share the
// Queue interface so callers in package search are queue-agnostic.
//
// Correctness of either variant depends on the caller's comparator being a
// closure over an external label store (typically a search.TreeSearch): the
// queue never reads labels on its own except through that comparator, and it
// assumes the sequence of Rebuild calls exactly matches the sequence in which
// the external label was mutated.
package pqueue
