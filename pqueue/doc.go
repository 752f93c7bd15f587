// Package pqueue provides the priority-queue toolkit shared by the blossom
// matching engine: an indexed binary min-heap (IndexedPQ), a group-partitioned
// two-level priority queue (TwoLevelPQ), and a split/concat sequence queue
// (ConcatenableQueue) backed by an augmented implicit treap.
//
// None of these types are bipartite- or matching-specific; they are generic
// building blocks, the same way core provides Graph/Vertex/Edge for every
// algorithm package in this module.
//
// Determinism:
//
//	In IndexedPQ, and within one TwoLevelPQ group, equal-priority entries
//	break ties by insertion sequence (smaller sequence number wins), so
//	callers that insert in a fixed order (e.g. ascending edge id) get
//	reproducible extraction order. Across TwoLevelPQ groups, equal minima
//	are ordered by when each group's minimum entered the top-level heap;
//	ConcatenableQueue.Min does not order equal priorities by insertion
//	sequence. See each type's doc comment.
//
// Complexity:
//
//	IndexedPQ:        O(log n) per Insert/Delete/ChangePriority/PopMin; O(1) AddOffset.
//	TwoLevelPQ:        O(log n) per Insert/Delete/ChangePriority/GroupMin/GlobalMin;
//	                   Concat/Split amortised O(log n) per element moved (small-to-large).
//	ConcatenableQueue: O(log n) expected per Insert/Delete/Min/Split/Concat (treap).
package pqueue
