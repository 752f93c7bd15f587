package matching

import "errors"

var (
	// ErrSelfLoop is returned by New when the graph contains an edge from
	// a vertex to itself; blossom matching is undefined over self-loops.
	ErrSelfLoop = errors.New("matching: graph contains a self-loop")

	// ErrDirectedGraph is returned when the graph is directed or carries
	// per-edge direction overrides; matching is defined over undirected
	// graphs only.
	ErrDirectedGraph = errors.New("matching: graph must be undirected")

	// ErrNegativeWeight is returned when an edge carries a negative
	// weight; the dual variables this package maintains assume weights
	// are non-negative.
	ErrNegativeWeight = errors.New("matching: negative edge weight")

	// ErrWeightOverflow is returned when doubling an edge weight (the
	// internal representation used to keep delta3's halving integral)
	// would overflow int64.
	ErrWeightOverflow = errors.New("matching: edge weight too large to double")

	// ErrAlreadyRun is returned by Run when called more than once on the
	// same Matcher.
	ErrAlreadyRun = errors.New("matching: Run already called")

	// ErrNotRun is returned by Matching when called before Run.
	ErrNotRun = errors.New("matching: Run has not been called")

	// ErrInvariantViolated is returned by Run when consistency checks are
	// enabled (WithConsistencyChecks) and one of the algorithm's
	// structural invariants fails mid-run. It always indicates a defect
	// in this package, never bad caller input.
	ErrInvariantViolated = errors.New("matching: internal invariant violated")
)
