package matching

// Matcher computes a maximum-weight matching on construction's graph,
// once Run is called. It is not safe for concurrent use; build one
// Matcher per graph.
type Matcher struct {
	m *matcher
}

// New validates g and builds a Matcher for it. The algorithm used is
// selected with WithVariant (default Edmonds); nothing runs until Run
// is called.
func New(g Graph, opts ...Option) (*Matcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dm, err := newMatcher(g, cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.variant {
	case Gabow:
		dm.variant = newGabowVariant(dm)
	case GalilMicaliGabow:
		dm.variant = newGalilVariant(dm)
	default:
		dm.variant = newEdmondsVariant(dm)
	}

	return &Matcher{m: dm}, nil
}

// Run executes the blossom-contraction search to completion. It may be
// called only once per Matcher.
func (mm *Matcher) Run() error {
	if mm.m.ran {
		return ErrAlreadyRun
	}
	mm.m.ran = true

	return mm.m.run()
}

// Matching returns the computed matching as a symmetric map: every matched
// node is a key mapping to its partner (and vice versa), unmatched nodes
// are absent.
func (mm *Matcher) Matching() (map[Node]Node, error) {
	if !mm.m.ran {
		return nil, ErrNotRun
	}

	out := make(map[Node]Node, mm.m.n)
	for i := 0; i < mm.m.n; i++ {
		j := mm.m.matchedVertex[i]
		if j != -1 {
			out[mm.m.nodeIDs[i]] = mm.m.nodeIDs[j]
		}
	}

	return out, nil
}

// MatchedEdges returns every edge currently in the matching, as the
// caller's own vertex ids, each pair reported once.
func (mm *Matcher) MatchedEdges() ([][2]Node, error) {
	if !mm.m.ran {
		return nil, ErrNotRun
	}

	var out [][2]Node
	for i := 0; i < mm.m.n; i++ {
		j := mm.m.matchedVertex[i]
		if j > i {
			out = append(out, [2]Node{mm.m.nodeIDs[i], mm.m.nodeIDs[j]})
		}
	}

	return out, nil
}

// Mate returns the vertex matched to v, and whether v is matched at
// all.
func (mm *Matcher) Mate(v Node) (Node, bool, error) {
	if !mm.m.ran {
		return "", false, ErrNotRun
	}
	for i, id := range mm.m.nodeIDs {
		if id != v {
			continue
		}
		j := mm.m.matchedVertex[i]
		if j == -1 {
			return "", false, nil
		}

		return mm.m.nodeIDs[j], true, nil
	}

	return "", false, nil
}

// Weight returns the total weight of the computed matching, in the
// caller's original weight units.
func (mm *Matcher) Weight() (int64, error) {
	if !mm.m.ran {
		return 0, ErrNotRun
	}

	var total int64
	for i := 0; i < mm.m.n; i++ {
		j := mm.m.matchedVertex[i]
		if j > i {
			total += mm.m.weight[mm.m.matchedEdge[i]] / 2
		}
	}

	return total, nil
}

// Size returns the number of matched pairs.
func (mm *Matcher) Size() (int, error) {
	if !mm.m.ran {
		return 0, ErrNotRun
	}

	return mm.m.exposedToMatchedPairs(), nil
}

func (m *matcher) exposedToMatchedPairs() int {
	c := 0
	for i := 0; i < m.n; i++ {
		if m.matchedVertex[i] > i {
			c++
		}
	}

	return c
}
