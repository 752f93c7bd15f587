// Package matching computes maximum-weight matchings in general (non-
// bipartite) undirected graphs via the blossom-contraction family of
// primal-dual algorithms: Edmonds' original algorithm (O(n·m) per
// stage), Gabow's variant with per-blossom best-edge caches, and the
// Galil-Micali-Gabow variant built on the pqueue package's concatenable
// and two-level priority queues. Both refinements speed up computing
// the deltas but keep Edmonds' full rescan for the edges a delta2/delta3
// step makes tight, so neither lowers the O(n·m) per-stage worst case.
//
// The three variants share one driver (driver.go): a stage/substage
// control loop that labels blossoms even/odd/free, backtracks along
// alternating trees to find augmenting paths or new blossoms to
// contract, augments the matching, and adjusts the dual variables
// u (per node) and z (per blossom) by the minimum of four candidate
// step sizes delta1..delta4. Each variant (edmonds.go, gabow.go,
// galil.go) supplies only how it finds useful edges and computes those
// four deltas; forest.go holds the laminar blossom arena all three
// variants share.
//
// Construction validates the input graph (no self-loops, non-negative
// integer weights) and doubles every weight internally so that delta3's
// halving stays integral throughout; Matching() reports weights back in
// the caller's original units.
package matching
