package matching

// edmondsVariant implements Edmonds' original algorithm: useful edges
// are rediscovered by scanning every edge incident to an even blossom
// whenever the forest changes, and all four deltas are computed by a
// full O(n+m) scan. It is the reference implementation the other two
// variants are checked against.
type edmondsVariant struct {
	m      *matcher
	queue  []int // pending useful edge indices (FIFO)
	queued []bool
}

func newEdmondsVariant(m *matcher) *edmondsVariant {
	return &edmondsVariant{
		m:      m,
		queued: make([]bool, len(m.weight)),
	}
}

func (v *edmondsVariant) enqueueEven(b blossomID) {
	v.m.forest.forNodes(b, func(node int) {
		for _, idx := range v.m.adjacency[node] {
			if v.queued[idx] {
				continue
			}
			if v.m.slack(idx) != 0 {
				continue
			}
			v.queued[idx] = true
			v.queue = append(v.queue, idx)
		}
	})
}

func (v *edmondsVariant) initializeStage() {
	v.queue = v.queue[:0]
	for i := range v.queued {
		v.queued[i] = false
	}
	v.m.forest.forRoots(func(b blossomID) {
		if v.m.forest.blossoms[b].label == labelEven {
			v.enqueueEven(b)
		}
	})
}

func (v *edmondsVariant) hasUsefulEdges() bool { return len(v.queue) > 0 }

func (v *edmondsVariant) getUsefulEdge() edgeInfo {
	idx := v.queue[0]
	v.queue = v.queue[1:]
	v.queued[idx] = false

	return v.m.edgeInfoAt(idx)
}

func (v *edmondsVariant) labelEven(b blossomID)              { v.enqueueEven(b) }
func (v *edmondsVariant) labelOdd(blossomID)                 {}
func (v *edmondsVariant) handleNewBlossom(b blossomID)       { v.enqueueEven(b) }
func (v *edmondsVariant) handleSubblossomShift(_, _ blossomID) {}
func (v *edmondsVariant) handleOddBlossomExpansion(c blossomID) {
	if v.m.forest.blossoms[c].label == labelEven {
		v.enqueueEven(c)
	}
}

// calcDelta1 bounds delta by the smallest node dual inside any even
// root: those are exactly the u values an adjustment decreases.
func (v *edmondsVariant) calcDelta1() (int64, bool) {
	m := v.m
	var best int64
	found := false
	m.forest.forRoots(func(b blossomID) {
		if m.forest.blossoms[b].label != labelEven {
			return
		}
		m.forest.forNodes(b, func(node int) {
			if !found || m.u[node] < best {
				best, found = m.u[node], true
			}
		})
	})

	return best, found
}

func (v *edmondsVariant) calcDelta2() (int64, bool) {
	m := v.m
	var best int64
	found := false
	for idx := range m.endpoints {
		ep := m.endpoints[idx]
		lu := m.forest.blossoms[m.forest.rootOf(ep[0])].label
		lv := m.forest.blossoms[m.forest.rootOf(ep[1])].label
		if !((lu == labelEven && lv == labelFree) || (lu == labelFree && lv == labelEven)) {
			continue
		}
		s := m.slack(idx)
		if !found || s < best {
			best, found = s, true
		}
	}

	return best, found
}

func (v *edmondsVariant) calcDelta3() (int64, bool) {
	m := v.m
	var best int64
	found := false
	for idx := range m.endpoints {
		ep := m.endpoints[idx]
		bu := m.forest.rootOf(ep[0])
		bv := m.forest.rootOf(ep[1])
		if bu == bv {
			continue
		}
		if m.forest.blossoms[bu].label != labelEven || m.forest.blossoms[bv].label != labelEven {
			continue
		}
		s := m.slack(idx) / 2
		if !found || s < best {
			best, found = s, true
		}
	}

	return best, found
}

func (v *edmondsVariant) calcDelta4() (int64, bool) {
	m := v.m
	var best int64
	found := false
	m.forest.forRoots(func(b blossomID) {
		bl := m.forest.blossoms[b]
		if bl.label != labelOdd || m.forest.isTrivial(b) {
			return
		}
		s := bl.z / 2
		if !found || s < best {
			best, found = s, true
		}
	})

	return best, found
}

func (v *edmondsVariant) adjustByDelta(delta int64) { v.m.applyDeltaToRoots(delta) }

func (v *edmondsVariant) findDelta2UsefulEdges() { v.rescanTight() }
func (v *edmondsVariant) findDelta3UsefulEdges() { v.rescanTight() }

// rescanTight re-enqueues any edge incident to an even blossom that has
// just become tight. Simpler than computing exactly which edges
// delta2/delta3 just affected, at the cost of an O(m) scan; Edmonds'
// variant is the O(n*m) reference, not the optimized one.
func (v *edmondsVariant) rescanTight() {
	v.m.forest.forRoots(func(b blossomID) {
		if v.m.forest.blossoms[b].label == labelEven {
			v.enqueueEven(b)
		}
	})
}

func (v *edmondsVariant) getOddBlossomsToExpand() []blossomID {
	var out []blossomID
	v.m.forest.forRoots(func(b blossomID) {
		bl := v.m.forest.blossoms[b]
		if bl.label == labelOdd && !v.m.forest.isTrivial(b) && bl.z == 0 {
			out = append(out, b)
		}
	})

	return out
}
