package matching

import "fmt"

// checkConsistency re-derives a handful of the algorithm's structural
// invariants directly from matcher state and fails loudly (wrapping
// ErrInvariantViolated) the moment one doesn't hold. It is only ever
// invoked when WithConsistencyChecks(true) is set.
func (m *matcher) checkConsistency() error {
	// 1. Matching is a valid involution: matchedVertex/matchedEdge agree
	// with each other and with endpoints of the claimed edge.
	for i := 0; i < m.n; i++ {
		j := m.matchedVertex[i]
		if j == -1 {
			if m.matchedEdge[i] != -1 {
				return fmt.Errorf("matching: node %s has no mate but a matched edge: %w", m.nodeIDs[i], ErrInvariantViolated)
			}
			continue
		}
		if m.matchedVertex[j] != i {
			return fmt.Errorf("matching: match not symmetric at %s/%s: %w", m.nodeIDs[i], m.nodeIDs[j], ErrInvariantViolated)
		}
		ei := m.matchedEdge[i]
		if ei == -1 || m.matchedEdge[j] != ei {
			return fmt.Errorf("matching: matched edge mismatch at %s/%s: %w", m.nodeIDs[i], m.nodeIDs[j], ErrInvariantViolated)
		}
		ep := m.endpoints[ei]
		if (ep[0] != i || ep[1] != j) && (ep[0] != j || ep[1] != i) {
			return fmt.Errorf("matching: matched edge %s does not connect its claimed endpoints: %w", m.edgeIDs[ei], ErrInvariantViolated)
		}
	}

	// 2. Dual feasibility: every edge's slack is non-negative.
	for idx := range m.endpoints {
		if m.slack(idx) < 0 {
			return fmt.Errorf("matching: edge %s has negative slack: %w", m.edgeIDs[idx], ErrInvariantViolated)
		}
	}

	// 3. Complementary slackness: every matched edge is tight.
	for i := 0; i < m.n; i++ {
		if ei := m.matchedEdge[i]; ei != -1 && m.slack(ei) != 0 {
			return fmt.Errorf("matching: matched edge %s is not tight: %w", m.edgeIDs[ei], ErrInvariantViolated)
		}
	}

	// 4. Blossom forest is a laminar family: every non-root blossom's
	// parent actually lists it as a sub-blossom.
	for id := range m.forest.blossoms {
		b := blossomID(id)
		bl := m.forest.blossoms[b]
		if bl.parent == noBlossom {
			continue
		}
		found := false
		for _, s := range m.forest.blossoms[bl.parent].subBlossoms {
			if s.child == b {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("matching: blossom %d not listed among parent %d's sub-blossoms: %w", b, bl.parent, ErrInvariantViolated)
		}
	}

	return nil
}
