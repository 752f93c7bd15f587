package cardinality

import "errors"

var (
	// ErrSelfLoop is returned by New when the graph contains an edge from
	// a vertex to itself.
	ErrSelfLoop = errors.New("cardinality: graph contains a self-loop")

	// ErrDirectedGraph is returned when the graph is directed or carries
	// per-edge direction overrides; cardinality matching is defined over
	// undirected graphs only.
	ErrDirectedGraph = errors.New("cardinality: graph must be undirected")

	// ErrAlreadyRun is returned by Run when called more than once on the
	// same Matcher.
	ErrAlreadyRun = errors.New("cardinality: Run already called")

	// ErrNotRun is returned by accessors called before Run.
	ErrNotRun = errors.New("cardinality: Run has not been called")

	// ErrInvariantViolated is returned when consistency checks are
	// enabled (WithConsistencyChecks) and the resulting matching is not a
	// valid involution. Always indicates a defect in this package.
	ErrInvariantViolated = errors.New("cardinality: internal invariant violated")
)
