package matching

// gabowData is the per-blossom best-edge cache Gabow's variant adds on
// top of Edmonds': the cheapest edge from this (even) blossom to a free
// blossom, and the cheapest to another even blossom, each recomputed
// once when the blossom becomes an even root rather than rescanned on
// every dual adjustment.
type gabowData struct {
	bestToFree int // edge index, -1 if none
	bestToEven int // edge index, -1 if none
}

// gabowVariant reuses Edmonds' useful-edge queue, delta1/delta4, dual
// adjustment, and the full rescan that finds the edges a delta2/delta3
// step makes tight, unchanged (embedding edmondsVariant), and replaces
// only the delta2/delta3 computations with O(#even blossoms) lookups
// into the best-edge cache. A blossom's cache is rebuilt by scanning its
// nodes' incident edges, not merged from its sub-blossoms' caches, and
// the inherited rescan still costs O(m) per delta2/delta3 step, so the
// worst case per stage is that of the Edmonds variant.
type gabowVariant struct {
	*edmondsVariant
}

func newGabowVariant(m *matcher) *gabowVariant {
	return &gabowVariant{edmondsVariant: newEdmondsVariant(m)}
}

func (v *gabowVariant) populateCache(b blossomID) {
	m := v.m
	bestFree, bestEven := -1, -1
	m.forest.forNodes(b, func(node int) {
		for _, idx := range m.adjacency[node] {
			other := m.otherEndpoint(idx, node)
			ob := m.forest.rootOf(other)
			if ob == b {
				continue
			}
			s := m.slack(idx)
			switch m.forest.blossoms[ob].label {
			case labelFree:
				if bestFree == -1 || s < m.slack(bestFree) {
					bestFree = idx
				}
			case labelEven:
				if bestEven == -1 || s < m.slack(bestEven) {
					bestEven = idx
				}
			}
		}
	})
	m.forest.blossoms[b].data = &gabowData{bestToFree: bestFree, bestToEven: bestEven}
}

// initializeStage rebuilds every even root's cache from scratch: labels
// were just reset, so a cache carried over from the previous stage may
// name an edge that is no longer the minimum for its target label.
func (v *gabowVariant) initializeStage() {
	v.edmondsVariant.initializeStage()
	v.m.forest.forRoots(func(b blossomID) {
		if v.m.forest.blossoms[b].label == labelEven {
			v.populateCache(b)
		}
	})
}

func (v *gabowVariant) labelEven(b blossomID) {
	v.edmondsVariant.labelEven(b)
	v.populateCache(b)
}

func (v *gabowVariant) handleNewBlossom(b blossomID) {
	v.edmondsVariant.handleNewBlossom(b)
	v.populateCache(b)
}

func (v *gabowVariant) handleOddBlossomExpansion(c blossomID) {
	v.edmondsVariant.handleOddBlossomExpansion(c)
	switch v.m.forest.blossoms[c].label {
	case labelEven:
		v.populateCache(c)
	case labelFree:
		v.offerFreeBlossom(c)
	}
}

// offerFreeBlossom re-offers a freshly freed blossom's edges to every
// even root adjacent to it. While c's old parent was odd, the slack of
// edges into it was frozen, so an even root's cached bestToFree can be
// strictly worse than an edge into c; without this pass delta2 would
// overshoot and break dual feasibility.
func (v *gabowVariant) offerFreeBlossom(c blossomID) {
	m := v.m
	m.forest.forNodes(c, func(node int) {
		for _, idx := range m.adjacency[node] {
			other := m.otherEndpoint(idx, node)
			ob := m.forest.rootOf(other)
			if ob == c || m.forest.blossoms[ob].label != labelEven {
				continue
			}
			data, _ := m.forest.blossoms[ob].data.(*gabowData)
			if data == nil {
				continue
			}
			if data.bestToFree == -1 || m.slack(idx) < m.slack(data.bestToFree) {
				data.bestToFree = idx
			}
		}
	})
}

// validCacheEdge reports whether a cached edge still connects b to a
// blossom of the expected label; labels can change between the cache
// being populated and being read (an odd blossom expanding into new
// free/even children, for instance), so every read is validated and
// falls back to a direct rescan of b's incident edges on a miss rather
// than risk silently using a stale edge.
func (v *gabowVariant) bestEdgeTo(b blossomID, want label) (int, bool) {
	bl := &v.m.forest.blossoms[b]
	data, _ := bl.data.(*gabowData)
	if data != nil {
		var cached int
		if want == labelFree {
			cached = data.bestToFree
		} else {
			cached = data.bestToEven
		}
		if cached != -1 {
			ep := v.m.endpoints[cached]
			other := ep[0]
			if v.m.forest.contains(b, ep[0]) {
				other = ep[1]
			}
			if v.m.forest.blossoms[v.m.forest.rootOf(other)].label == want {
				return cached, true
			}
		}
	}

	v.populateCache(b)
	data = bl.data.(*gabowData)
	if want == labelFree {
		if data.bestToFree != -1 {
			return data.bestToFree, true
		}
		return 0, false
	}
	if data.bestToEven != -1 {
		return data.bestToEven, true
	}

	return 0, false
}

func (v *gabowVariant) calcDelta2() (int64, bool) {
	m := v.m
	var best int64
	found := false
	m.forest.forRoots(func(b blossomID) {
		if m.forest.blossoms[b].label != labelEven {
			return
		}
		idx, ok := v.bestEdgeTo(b, labelFree)
		if !ok {
			return
		}
		s := m.slack(idx)
		if !found || s < best {
			best, found = s, true
		}
	})

	return best, found
}

func (v *gabowVariant) calcDelta3() (int64, bool) {
	m := v.m
	var best int64
	found := false
	m.forest.forRoots(func(b blossomID) {
		if m.forest.blossoms[b].label != labelEven {
			return
		}
		idx, ok := v.bestEdgeTo(b, labelEven)
		if !ok {
			return
		}
		s := m.slack(idx) / 2
		if !found || s < best {
			best, found = s, true
		}
	})

	return best, found
}
