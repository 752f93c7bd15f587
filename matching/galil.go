package matching

import "github.com/rkilar/koala-networkit/pqueue"

// galilData is the per-blossom state galilVariant keeps in blossom.data:
// nodes holds every member node in cyclic order inside a single
// ConcatenableQueue, built by concatenating its sub-blossoms' queues the
// instant they merge and split back apart the instant the parent
// expands, rather than re-deriving membership with a forest walk on
// every query. group is this blossom's partition in evenEdges while it
// is a free root (0 otherwise); parent is the not-yet-expanded blossom
// this one was most recently merged into, noBlossom if it's still a
// forest root.
type galilData struct {
	nodes     *pqueue.ConcatenableQueue[int, int]
	size      int
	firstNode int
	group     pqueue.GroupID
	parent    blossomID
}

// galilVariant implements the Galil-Micali-Gabow variant: even<->even
// edges ("good edges", priority = slack/2) sit in a flat pq3 IndexedPQ
// exactly as in the Gabow-style variants, but even<->free edges sit in
// evenEdges, a pqueue.TwoLevelPQ partitioned one group per free root
// blossom, so delta2 is one GlobalMin read and a blossom's whole group
// leaves delta2 contention in one O(log m) DropGroup the moment it stops
// being free — labeled odd, or labeled even as the mate of a fresh odd
// blossom. The slack of every entry in a live group keeps tracking the
// queue's offset exactly (its even endpoint stays even, its free
// endpoint stays free, for as long as the group lives), so nothing a
// GlobalMin returns can have drifted.
type galilVariant struct {
	*edmondsVariant
	evenEdges *pqueue.TwoLevelPQ[int]
	pq3       *pqueue.IndexedPQ[int]

	// uEven holds the u dual of every node currently inside an even
	// root, zOdd the z/2 dual of every odd compound root, so delta1 and
	// delta4 are O(log n) Min reads. Both are kept in sync with the u/z
	// arrays through the same additive-offset trick evenEdges and pq3
	// use: adjustByDelta shifts the whole queue once instead of
	// touching every entry.
	uEven *pqueue.IndexedPQ[int]
	zOdd  *pqueue.IndexedPQ[blossomID]

	nodeRef map[int]pqueue.ElementRef[int, int]
}

func newGalilVariant(m *matcher) *galilVariant {
	v := &galilVariant{
		edmondsVariant: newEdmondsVariant(m),
		evenEdges:      pqueue.NewTwoLevelPQ[int](),
		pq3:            pqueue.NewIndexedPQ[int](),
		uEven:          pqueue.NewIndexedPQ[int](),
		zOdd:           pqueue.NewIndexedPQ[blossomID](),
		nodeRef:        make(map[int]pqueue.ElementRef[int, int], len(m.forest.blossoms)),
	}
	for id := range m.forest.blossoms {
		node := id
		q := pqueue.NewConcatenableQueue[int, int]()
		v.nodeRef[node] = q.Append(node, node, 0)
		m.forest.blossoms[node].data = &galilData{nodes: q, size: 1, firstNode: node, parent: noBlossom}
	}

	return v
}

// mergeGalilData concatenates b's sub-blossoms' node queues into one
// queue for b, in the same cyclic order the forest already keeps them
// in. Children are even or odd tree blossoms, so none of them owns an
// evenEdges group (free roots do; an odd child's group was dropped when
// it was labeled).
func (v *galilVariant) mergeGalilData(b blossomID) {
	subs := v.m.forest.blossoms[b].subBlossoms
	var nodes *pqueue.ConcatenableQueue[int, int]
	size, first := 0, -1

	for i, s := range subs {
		cd := v.m.forest.blossoms[s.child].data.(*galilData)
		cd.parent = b
		if i == 0 {
			first = cd.firstNode
		}
		if nodes == nil {
			nodes = cd.nodes
		} else {
			nodes = pqueue.Concat(nodes, cd.nodes)
		}
		size += cd.size
	}

	v.m.forest.blossoms[b].data = &galilData{nodes: nodes, size: size, firstNode: first, parent: noBlossom}
}

// splitGalilData undoes mergeGalilData for every child of b in one pass,
// splitting b's combined node queue back at each child's boundary, found
// via the stable per-node ElementRef, which survives Concat/Split. Every
// child starts groupless; children that come out free are re-grouped
// with fresh slack by offerFreeBlossom.
func (v *galilVariant) splitGalilData(b blossomID) {
	bd := v.m.forest.blossoms[b].data.(*galilData)
	subs := v.m.forest.blossoms[b].subBlossoms
	remaining := bd.nodes

	for i, s := range subs {
		cd := v.m.forest.blossoms[s.child].data.(*galilData)
		if i == len(subs)-1 {
			cd.nodes = remaining
		} else {
			nextFirst := v.m.forest.blossoms[subs[i+1].child].data.(*galilData).firstNode
			left, right := remaining.Split(v.nodeRef[nextFirst])
			cd.nodes = left
			remaining = right
		}
		cd.parent = noBlossom
		cd.group = 0
	}
}

// registerEven enumerates b's member nodes through its ConcatenableQueue
// (maintained incrementally by merge/split, never re-walked via the
// forest tree) and files each incident edge into evenEdges — grouped
// under the far endpoint's free root, so the whole group can be dropped
// when that root's label changes — or into pq3 when the far endpoint is
// even too.
func (v *galilVariant) registerEven(b blossomID) {
	m := v.m
	bd := m.forest.blossoms[b].data.(*galilData)

	bd.nodes.ForEach(func(node, _ int) {
		for _, idx := range m.adjacency[node] {
			other := m.otherEndpoint(idx, node)
			ob := m.forest.rootOf(other)
			if ob == b {
				continue
			}
			switch m.forest.blossoms[ob].label {
			case labelFree:
				if _, ok := v.evenEdges.GroupOf(idx); !ok {
					od := m.forest.blossoms[ob].data.(*galilData)
					if od.group == 0 {
						od.group = v.evenEdges.CreateGroup()
					}
					_ = v.evenEdges.Insert(od.group, idx, m.slack(idx))
				}
			case labelEven:
				if !v.pq3.Contains(idx) {
					_ = v.pq3.Insert(idx, m.slack(idx)/2)
				}
			}
		}
	})
}

func (v *galilVariant) initializeStage() {
	v.edmondsVariant.initializeStage()
	v.evenEdges = pqueue.NewTwoLevelPQ[int]()
	v.pq3 = pqueue.NewIndexedPQ[int]()
	v.uEven = pqueue.NewIndexedPQ[int]()
	v.zOdd = pqueue.NewIndexedPQ[blossomID]()
	for id := range v.m.forest.blossoms {
		b := blossomID(id)
		bl := v.m.forest.blossoms[b]
		bd, ok := bl.data.(*galilData)
		if !ok {
			continue
		}
		bd.group = 0
		if !bl.dead && bl.parent == noBlossom && bl.label == labelEven {
			v.trackEvenNodes(b)
			v.registerEven(b)
		}
	}
}

// trackEvenNodes files every member node of b into uEven with its
// current u dual; nodes already present (absorbed from a blossom that
// was even before the merge) are left alone, since their entry is
// already tracking the same u through the shared offset.
func (v *galilVariant) trackEvenNodes(b blossomID) {
	bd := v.m.forest.blossoms[b].data.(*galilData)
	bd.nodes.ForEach(func(node, _ int) {
		if !v.uEven.Contains(node) {
			_ = v.uEven.Insert(node, v.m.u[node])
		}
	})
}

// labelEven registers a blossom that just became even: its group of
// incoming candidate edges (owned while it was free) leaves delta2
// contention in one DropGroup, its nodes join uEven, and its outgoing
// edges are filed fresh.
func (v *galilVariant) labelEven(b blossomID) {
	v.edmondsVariant.labelEven(b)
	v.dropGroup(b)
	v.trackEvenNodes(b)
	v.registerEven(b)
}

// labelOdd pulls b out of delta2 contention the moment it stops
// being free: its whole evenEdges group is extracted in one O(log m)
// DropGroup (the slack of an even-to-odd edge is frozen under dual
// adjustment, so entries left in contention would drift away from the
// true slack), and b's z joins zOdd if it is compound.
func (v *galilVariant) labelOdd(b blossomID) {
	v.edmondsVariant.labelOdd(b)
	v.dropGroup(b)
	bl := &v.m.forest.blossoms[b]
	if !v.m.forest.isTrivial(b) {
		_ = v.zOdd.Insert(b, bl.z/2)
	}
}

// dropGroup retires b's evenEdges group, if it owns one.
func (v *galilVariant) dropGroup(b blossomID) {
	bd := v.m.forest.blossoms[b].data.(*galilData)
	if bd.group != 0 {
		_ = v.evenEdges.DropGroup(bd.group)
		bd.group = 0
	}
}

func (v *galilVariant) handleNewBlossom(b blossomID) {
	v.edmondsVariant.handleNewBlossom(b)
	for _, s := range v.m.forest.blossoms[b].subBlossoms {
		if v.zOdd.Contains(s.child) {
			_ = v.zOdd.Delete(s.child) // odd child absorbed; its z is frozen inside b
		}
	}
	v.mergeGalilData(b)
	v.trackEvenNodes(b)
	v.registerEven(b)
}

func (v *galilVariant) handleOddBlossomExpansion(c blossomID) {
	v.edmondsVariant.handleOddBlossomExpansion(c)
	cd := v.m.forest.blossoms[c].data.(*galilData)
	if cd.parent != noBlossom {
		_ = v.zOdd.Delete(cd.parent)
		v.splitGalilData(cd.parent)
	}
	switch v.m.forest.blossoms[c].label {
	case labelEven:
		v.trackEvenNodes(c)
		v.registerEven(c)
	case labelOdd:
		if !v.m.forest.isTrivial(c) {
			_ = v.zOdd.Insert(c, v.m.forest.blossoms[c].z/2)
		}
	case labelFree:
		v.offerFreeBlossom(c)
	}
}

// offerFreeBlossom re-files the edges between a freshly freed blossom
// and the even roots around it: while c sat inside an odd blossom those
// edges were out of delta2 contention entirely, so c gets a fresh group
// and each edge enters it with its current slack.
func (v *galilVariant) offerFreeBlossom(c blossomID) {
	m := v.m
	cd := m.forest.blossoms[c].data.(*galilData)
	cd.nodes.ForEach(func(node, _ int) {
		for _, idx := range m.adjacency[node] {
			other := m.otherEndpoint(idx, node)
			ob := m.forest.rootOf(other)
			if ob == c || m.forest.blossoms[ob].label != labelEven {
				continue
			}
			if _, ok := v.evenEdges.GroupOf(idx); ok {
				continue
			}
			if cd.group == 0 {
				cd.group = v.evenEdges.CreateGroup()
			}
			_ = v.evenEdges.Insert(cd.group, idx, m.slack(idx))
		}
	})
}

func (v *galilVariant) adjustByDelta(delta int64) {
	v.m.applyDeltaToRoots(delta)
	v.evenEdges.AddOffset(-delta)
	v.pq3.AddOffset(-delta)
	v.uEven.AddOffset(-delta)
	v.zOdd.AddOffset(-delta)
}

func (v *galilVariant) validEven2(idx int) bool {
	ep := v.m.endpoints[idx]
	bu, bv := v.m.forest.rootOf(ep[0]), v.m.forest.rootOf(ep[1])
	if bu == bv {
		return false
	}
	lu, lv := v.m.forest.blossoms[bu].label, v.m.forest.blossoms[bv].label

	return (lu == labelEven && lv == labelFree) || (lu == labelFree && lv == labelEven)
}

func (v *galilVariant) validEven3(idx int) bool {
	ep := v.m.endpoints[idx]
	bu, bv := v.m.forest.rootOf(ep[0]), v.m.forest.rootOf(ep[1])
	if bu == bv {
		return false
	}

	return v.m.forest.blossoms[bu].label == labelEven && v.m.forest.blossoms[bv].label == labelEven
}

func (v *galilVariant) calcDelta2() (int64, bool) {
	for {
		idx, prio, ok := v.evenEdges.GlobalMin()
		if !ok {
			return 0, false
		}
		if v.validEven2(idx) {
			return prio, true
		}
		_ = v.evenEdges.Delete(idx)
	}
}

func (v *galilVariant) calcDelta3() (int64, bool) {
	for {
		idx, prio, ok := v.pq3.Min()
		if !ok {
			return 0, false
		}
		if v.validEven3(idx) {
			return prio, true
		}
		_ = v.pq3.Delete(idx)
	}
}

func (v *galilVariant) calcDelta1() (int64, bool) {
	_, prio, ok := v.uEven.Min()

	return prio, ok
}

func (v *galilVariant) calcDelta4() (int64, bool) {
	_, prio, ok := v.zOdd.Min()

	return prio, ok
}

func (v *galilVariant) getOddBlossomsToExpand() []blossomID {
	var out []blossomID
	for {
		b, prio, ok := v.zOdd.Min()
		if !ok || prio > 0 {
			return out
		}
		_ = v.zOdd.Delete(b)
		out = append(out, b)
	}
}
