package cardinality_test

// bruteForceEdge is a plain edge used by the brute-force reference solver
// below, independent of any package type so it can describe a test graph
// before a core.Graph is built from it.
type bruteForceEdge struct {
	u, v int
}

// bruteForceMaxCardinalityMatching tries every subset of edges forming a
// valid matching over n nodes and returns the size of the best one. Only
// used in tests, over graphs small enough (n <= 15) that this is fast.
func bruteForceMaxCardinalityMatching(n int, edges []bruteForceEdge) int {
	var best int
	var rec func(i int, used []bool, count int)
	rec = func(i int, used []bool, count int) {
		if count > best {
			best = count
		}
		if i == len(edges) {
			return
		}
		rec(i+1, used, count)
		e := edges[i]
		if !used[e.u] && !used[e.v] {
			used[e.u], used[e.v] = true, true
			rec(i+1, used, count+1)
			used[e.u], used[e.v] = false, false
		}
	}
	rec(0, make([]bool, n), 0)

	return best
}
