// Package cardinality computes a maximum-cardinality matching on a general
// (possibly non-bipartite) undirected graph.
//
// The engine works in phases. Each phase grows a level structure from every
// exposed vertex at once — even levels along unmatched edges, odd levels
// along matched ones — and records every edge that joins two same-parity
// levels as a bridge of odd tenacity. Bridges are resolved in non-decreasing
// tenacity order by a two-coloured double-DFS down the predecessor
// structure: a green walk claims one escape route to an exposed vertex, and
// a red walk hunts for a second, vertex-disjoint one, backing the green
// claim up step by step wherever the two collide. Two disjoint routes form
// an augmenting path with the bridge at its peak; a red walk that exhausts
// every alternative instead pins down the single bottleneck vertex all
// escapes run through, and everything behind it is contracted into a bloom
// under unionfind.DSU, with each trapped vertex receiving its missing level
// as the tenacity complement so later bridges can route through the bloom
// against its search direction.
//
// Augmenting paths that weave through bloom interiors are opened by an
// alternating-tree search with on-the-fly cycle contraction rather than
// replayed from the level structure, and the same search sweeps the
// remaining exposed vertices whenever a phase comes up empty, so the run
// only ever terminates with a certified maximum matching. Vertices consumed
// by an augmentation are erased for the rest of their phase, cascading
// through every successor that loses its last predecessor, which keeps the
// paths augmented within one phase vertex-disjoint.
package cardinality
