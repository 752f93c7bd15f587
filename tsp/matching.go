package tsp

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rkilar/koala-networkit/core"
	"github.com/rkilar/koala-networkit/matching"
	"github.com/rkilar/koala-networkit/matrix"
)

// ErrMatchingNotImplemented is returned by blossomMatch when the underlying
// matching engine does not return a perfect matching over the odd-degree
// vertex set. On a complete subgraph with positive edge weights this
// cannot happen; TSPApprox treats it as a signal to fall back to
// GreedyMatch rather than propagate a partial result.
var ErrMatchingNotImplemented = errors.New("tsp: blossom matching did not return a perfect matching")

// TestHookGreedyMatch exposes greedyMatch to this package's external
// (_test) test files.
func TestHookGreedyMatch(odd []int, dist matrix.Matrix, adj [][]int) {
	greedyMatch(odd, dist, adj)
}

// TestHookBlossomMatch exposes blossomMatch to this package's external
// (_test) test files.
func TestHookBlossomMatch(odd []int, dist matrix.Matrix, adj [][]int) error {
	return blossomMatch(odd, dist, adj)
}

// greedyMatch performs a greedy perfect matching on the odd-degree vertex
// set. It repeatedly takes the first remaining odd vertex and pairs it
// with its nearest remaining neighbor (the earliest one on ties), adding
// that edge to the multigraph adjacency. The result is not necessarily a
// minimum-weight perfect matching.
//
// Complexity: O(k^2), where k = len(odd).
func greedyMatch(odd []int, dist matrix.Matrix, adj [][]int) {
	remaining := append([]int(nil), odd...)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		bestIdx, bestD := -1, math.Inf(1)
		for i, v := range remaining {
			d, _ := dist.At(u, v)
			if d < bestD {
				bestD, bestIdx = d, i
			}
		}

		v := remaining[bestIdx]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
}

// blossomMatch finds a minimum-weight perfect matching over the
// odd-degree vertex subset by running the matching package's weighted
// blossom engine over the complete subgraph on odd. The engine works on
// integer weights, so distances are rounded to the nearest integer; the
// matching is minimum for the rounded distances, which for non-integer
// distances can differ from the exact minimum.
//
// The engine maximizes total weight, but Christofides needs a minimum;
// this is bridged by edge weight w(u,v) = offset - round(dist(u,v)) for
// an offset large enough that every w stays positive. Maximizing the sum
// of positive weights over a complete graph always picks a perfect
// matching (any exposed pair could be added to strictly increase the
// total, so an optimal matching can never leave one exposed), and since
// the edge count of any perfect matching on the same vertex set is fixed
// at k/2, maximizing sum(offset-round(d)) is equivalent to minimizing
// sum(round(d)).
func blossomMatch(odd []int, dist matrix.Matrix, adj [][]int) error {
	k := len(odd)
	if k == 0 {
		return nil
	}
	if k%2 != 0 {
		return fmt.Errorf("tsp: %w: odd-degree vertex set has odd size %d", ErrMatchingNotImplemented, k)
	}

	var maxD float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := dist.At(odd[i], odd[j])
			if err != nil {
				return err
			}
			if d > maxD {
				maxD = d
			}
		}
	}
	offset := int64(math.Ceil(maxD)) + 1

	g := core.NewGraph(core.WithWeighted())
	for _, v := range odd {
		if err := g.AddVertex(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := dist.At(odd[i], odd[j])
			if err != nil {
				return err
			}
			w := offset - int64(math.Round(d))
			if _, err := g.AddEdge(strconv.Itoa(odd[i]), strconv.Itoa(odd[j]), w); err != nil {
				return err
			}
		}
	}

	adapted, err := matching.FromCoreGraph(g)
	if err != nil {
		return err
	}
	mm, err := matching.New(adapted, matching.WithVariant(matching.Gabow))
	if err != nil {
		return err
	}
	if err := mm.Run(); err != nil {
		return err
	}

	pairs, err := mm.MatchedEdges()
	if err != nil {
		return err
	}
	if len(pairs) != k/2 {
		return fmt.Errorf("tsp: %w: got %d pairs, want %d", ErrMatchingNotImplemented, len(pairs), k/2)
	}

	for _, p := range pairs {
		u, errU := strconv.Atoi(p[0])
		v, errV := strconv.Atoi(p[1])
		if errU != nil || errV != nil {
			return fmt.Errorf("tsp: %w: non-integer matched vertex id", ErrMatchingNotImplemented)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return nil
}
