// Package networkit is an in-memory graph toolkit, anchored by a
// maximum-weight / maximum-cardinality general-graph matching engine built
// on Edmonds' blossom algorithm and its descendants — from core primitives
// through blossom contraction to the TSP solvers built on top of them.
//
// 🚀 What's here?
//
//	A thread-safe library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• General-graph matching: Edmonds, Gabow and Galil–Micali–Gabow
//		  weighted blossom matching, plus a Micali–Vazirani-style unweighted
//		  cardinality matcher
//		• Matrix views: adjacency & incidence matrices + converters
//		• Graph builders: cycles, paths, complete & bipartite graphs,
//		  platonic solids, random fixtures, and more
//		• Minimum spanning trees: Prim, Kruskal
//		• TSP solvers: Held–Karp (exact), Christofides (approx, backed by
//		  the matching package's blossom matcher for its perfect-matching step)
//
// ✨ Why choose this over a bipartite-only matcher?
//
//   - General graphs – no bipartiteness assumption; blossom contraction
//     handles odd cycles directly
//   - Three weighted variants – Edmonds with plain scans, Gabow with
//     best-edge caches, Galil–Micali–Gabow with priority queues
//   - Pure Go – no cgo, structured logging via an optional hook
//     (package blossomlog), zap-backed or silent by default
//
// Under the hood, everything is organized under top-level subpackages:
//
//	matching/    — weighted blossom matching engine (Edmonds/Gabow/GMG)
//	cardinality/ — unweighted maximum-cardinality matching engine
//	pqueue/      — concatenable queue, two-level PQ, indexed PQ primitives
//	unionfind/   — disjoint-set with representative pinning
//	blossomlog/  — structured logging hook shared by matching/cardinality
//	core/        — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/     — deterministic graph constructors for apps, examples & tests
//	matrix/      — adjacency & incidence matrix representations + converters
//	prim_kruskal/ — minimum spanning trees over core graphs
//	tsp/         — exact and approximate traveling salesman solvers
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/rkilar/koala-networkit
package networkit
