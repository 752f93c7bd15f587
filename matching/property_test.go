package matching_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/rkilar/koala-networkit/builder"
	"github.com/rkilar/koala-networkit/core"
	"github.com/rkilar/koala-networkit/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeightedMatching_RandomAgainstBruteForce cross-checks all three
// variants against the exhaustive reference on a batch of small random
// graphs. The generator is seeded, so a failure here reproduces.
func TestWeightedMatching_RandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n := 2 + rng.Intn(9) // 2..10 vertices
		var edges []bruteForceEdge
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.45 {
					edges = append(edges, bruteForceEdge{u, v, int64(1 + rng.Intn(10))})
				}
			}
		}
		want := bruteForceMaxWeightMatching(n, edges)

		for _, variant := range allVariants {
			g := buildGraph(t, n, edges)
			mm := runMatching(t, g, variant)
			assertValidMatching(t, mm)
			got, err := mm.Weight()
			require.NoError(t, err)
			assert.Equal(t, want, got,
				fmt.Sprintf("trial %d (n=%d, m=%d), variant %s", trial, n, len(edges), variant))
		}
	}
}

// TestWeightedMatching_VariantsAgree runs all three variants over denser
// seeded random graphs than the brute-force comparison can afford and
// checks they agree with each other on the total weight.
func TestWeightedMatching_VariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		n := 10 + rng.Intn(11) // 10..20 vertices
		var edges []bruteForceEdge
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.3 {
					edges = append(edges, bruteForceEdge{u, v, int64(1 + rng.Intn(50))})
				}
			}
		}

		weights := map[matching.Variant]int64{}
		for _, variant := range allVariants {
			g := buildGraph(t, n, edges)
			mm := runMatching(t, g, variant)
			assertValidMatching(t, mm)
			w, err := mm.Weight()
			require.NoError(t, err)
			weights[variant] = w
		}
		assert.Equal(t, weights[matching.Edmonds], weights[matching.Gabow], "trial %d", trial)
		assert.Equal(t, weights[matching.Edmonds], weights[matching.GalilMicaliGabow], "trial %d", trial)
	}
}

// TestWeightedMatching_Idempotent runs the same graph twice per variant
// and expects identical matchings, not just identical weights: ties are
// broken deterministically.
func TestWeightedMatching_Idempotent(t *testing.T) {
	edges := []bruteForceEdge{
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}, {0, 2, 4}, {1, 3, 4},
	}
	for _, variant := range allVariants {
		first := runMatching(t, buildGraph(t, 4, edges), variant)
		second := runMatching(t, buildGraph(t, 4, edges), variant)

		m1, err := first.Matching()
		require.NoError(t, err)
		m2, err := second.Matching()
		require.NoError(t, err)
		assert.Equal(t, m1, m2, variant.String())
	}
}

func TestWeightedMatching_TwoNodesOneEdge(t *testing.T) {
	for _, variant := range allVariants {
		g := buildGraph(t, 2, []bruteForceEdge{{0, 1, 7}})
		mm := runMatching(t, g, variant)
		w, err := mm.Weight()
		require.NoError(t, err)
		assert.Equal(t, int64(7), w, variant.String())
		size, err := mm.Size()
		require.NoError(t, err)
		assert.Equal(t, 1, size, variant.String())
	}
}

// TestWeightedMatching_OddCycles checks C_{2k+1} with unit weights
// matches exactly k pairs, for a run of cycle lengths. The graphs come
// from the builder package's cycle constructor.
func TestWeightedMatching_OddCycles(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9, 11, 13} {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			nil,
			builder.Cycle(n),
		)
		require.NoError(t, err)

		for _, variant := range allVariants {
			mm := runMatching(t, g, variant)
			size, err := mm.Size()
			require.NoError(t, err)
			assert.Equal(t, n/2, size, fmt.Sprintf("C%d, variant %s", n, variant))
		}
	}
}

// TestWeightedMatching_CompleteBipartite checks K_{n,n} with unit weights
// admits a perfect matching.
func TestWeightedMatching_CompleteBipartite(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			nil,
			builder.CompleteBipartite(n, n),
		)
		require.NoError(t, err)

		for _, variant := range allVariants {
			mm := runMatching(t, g, variant)
			size, err := mm.Size()
			require.NoError(t, err)
			assert.Equal(t, n, size, fmt.Sprintf("K%d,%d variant %s", n, n, variant))
			w, err := mm.Weight()
			require.NoError(t, err)
			assert.Equal(t, int64(n), w)
		}
	}
}

// TestWeightedMatching_NestedBlossoms builds a graph whose optimum can
// only be reached by contracting a blossom inside another blossom: a
// triangle {1,2,3} hanging off a 5-cycle {0,1,4,5,6} sharing vertex 1,
// plus a tail from 0, weighted so the search forms the inner triangle
// first and must then wrap the outer cycle around it.
func TestWeightedMatching_NestedBlossoms(t *testing.T) {
	edges := []bruteForceEdge{
		{7, 0, 8},
		{0, 1, 6}, {1, 4, 6}, {4, 5, 6}, {5, 6, 6}, {6, 0, 6},
		{1, 2, 9}, {2, 3, 9}, {3, 1, 9},
	}
	want := bruteForceMaxWeightMatching(8, edges)
	for _, variant := range allVariants {
		g := buildGraph(t, 8, edges)
		mm := runMatching(t, g, variant)
		assertValidMatching(t, mm)
		got, err := mm.Weight()
		require.NoError(t, err)
		assert.Equal(t, want, got, variant.String())
	}
}

// TestWeightedMatching_ParallelEdges keeps two edges between the same
// endpoints with different weights; the heavier one must win.
func TestWeightedMatching_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 2; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	_, err := g.AddEdge("0", "1", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", 5)
	require.NoError(t, err)

	for _, variant := range allVariants {
		mm := runMatching(t, g, variant)
		w, err := mm.Weight()
		require.NoError(t, err)
		assert.Equal(t, int64(5), w, variant.String())
	}
}

func TestWeightedMatching_NegativeWeightRejected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	_, err := g.AddEdge("a", "b", -1)
	require.NoError(t, err)
	adapted, err := matching.FromCoreGraph(g)
	require.NoError(t, err)
	_, err = matching.New(adapted)
	assert.ErrorIs(t, err, matching.ErrNegativeWeight)
}
