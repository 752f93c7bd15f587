package cardinality

import "fmt"

// checkConsistency verifies the matching computed by run is a valid
// involution: every matched vertex's partner points back to it, and no
// vertex is matched to itself.
func (m *matcher) checkConsistency() error {
	for i, vd := range m.vd {
		if vd.match == -1 {
			continue
		}
		if vd.match == i {
			return fmt.Errorf("cardinality: %w: vertex %d matched to itself", ErrInvariantViolated, i)
		}
		if vd.match < 0 || vd.match >= m.n {
			return fmt.Errorf("cardinality: %w: vertex %d has out-of-range mate %d", ErrInvariantViolated, i, vd.match)
		}
		if m.vd[vd.match].match != i {
			return fmt.Errorf("cardinality: %w: vertex %d and %d disagree on being mates", ErrInvariantViolated, i, vd.match)
		}
	}

	return nil
}
