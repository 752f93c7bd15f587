package matching_test

// bruteForceEdge is a plain edge used by the brute-force reference
// solver below, independent of any package type so it can describe a
// test graph before a core.Graph is built from it.
type bruteForceEdge struct {
	u, v   int
	weight int64
}

// bruteForceMaxWeightMatching tries every subset of edges forming a
// valid matching over n nodes and returns the best total weight. Only
// used in tests, over graphs small enough (n <= 12) that this is fast.
func bruteForceMaxWeightMatching(n int, edges []bruteForceEdge) int64 {
	var best int64
	var rec func(i int, used []bool, total int64)
	rec = func(i int, used []bool, total int64) {
		if total > best {
			best = total
		}
		if i == len(edges) {
			return
		}
		// skip edges[i]
		rec(i+1, used, total)
		// take edges[i] if both endpoints are free
		e := edges[i]
		if !used[e.u] && !used[e.v] {
			used[e.u], used[e.v] = true, true
			rec(i+1, used, total+e.weight)
			used[e.u], used[e.v] = false, false
		}
	}
	rec(0, make([]bool, n), 0)

	return best
}

// bruteForceMaxCardinalityMatching returns the size of the largest
// matching over n nodes.
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
