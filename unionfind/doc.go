// Package unionfind provides a generic disjoint-set (union-find) structure
// with path compression and union by rank.
//
// It has two in-tree consumers: the cardinality engine collapses bloom
// bases under a common representative, relying on Union's optional
// representative pinning to keep the bloom base as the surviving root
// regardless of rank, and prim_kruskal.Kruskal tracks MST components with
// the plain rank-based Union.
package unionfind
