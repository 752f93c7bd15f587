package matching

import (
	"fmt"

	"github.com/rkilar/koala-networkit/core"
)

// Graph is the collaborator interface the matching engine needs from a
// graph implementation: an enumerable, undirected vertex/edge set with
// integer, non-negative edge weights. FromCoreGraph adapts *core.Graph;
// callers with their own representation can implement Graph directly.
type Graph interface {
	// Vertices returns every vertex id, in a stable (caller-determined)
	// order. The matching engine assigns dense 0..n-1 indices to this
	// order and never reorders it.
	Vertices() []Node

	// ForEachEdge visits every undirected edge exactly once, regardless
	// of how the underlying representation stores it. Self-loops may be
	// visited; ForEachEdge's caller rejects a graph containing one with
	// ErrSelfLoop.
	ForEachEdge(func(id EdgeID, u, v Node, weight int64))
}

// FromCoreGraph adapts g so it can be passed to New. g must be
// undirected and unweighted-or-weighted with non-negative integer
// weights; directed or mixed-mode graphs are rejected since blossom
// matching is only defined over undirected graphs.
func FromCoreGraph(g *core.Graph) (Graph, error) {
	if g.Directed() || g.HasDirectedEdges() {
		return nil, fmt.Errorf("matching: %w", ErrDirectedGraph)
	}

	return coreAdapter{g: g}, nil
}

type coreAdapter struct {
	g *core.Graph
}

func (a coreAdapter) Vertices() []Node {
	return a.g.Vertices()
}

func (a coreAdapter) ForEachEdge(visit func(id EdgeID, u, v Node, weight int64)) {
	for _, e := range a.g.Edges() {
		visit(e.ID, e.From, e.To, e.Weight) // self-loops pass through; New rejects them as ErrSelfLoop
	}
}
