package matching

import "github.com/rkilar/koala-networkit/blossomlog"

// matcher holds every piece of state shared by the three weighted
// variants: the dense node/edge arrays translated from the caller's
// Graph, the current matching, the blossom forest, and the node dual
// variables. A variant (edmonds.go, gabow.go, galil.go) is handed a
// pointer to this struct and drives it through driver.go's shared
// stage/substage loop.
type matcher struct {
	n int // number of nodes
	m int // number of edges

	nodeIDs []Node
	edgeIDs []EdgeID

	endpoints [][2]int // per edge index: node indices [u, v]
	weight    []int64  // per edge index: doubled caller weight

	adjacency [][]int // node index -> incident edge indices

	u []int64 // per-node dual variable

	matchedVertex []int // per-node: matched node index, or -1
	matchedEdge   []int // per-node: matching edge index, or -1

	forest *forest

	variant variant
	cfg     config
	log     blossomlog.Logger

	ran bool
}

func newMatcher(g Graph, cfg config) (*matcher, error) {
	ids := g.Vertices()
	n := len(ids)
	index := make(map[Node]int, n)
	for i, id := range ids {
		index[id] = i
	}

	m := &matcher{
		n:             n,
		nodeIDs:       ids,
		adjacency:     make([][]int, n),
		u:             make([]int64, n),
		matchedVertex: make([]int, n),
		matchedEdge:   make([]int, n),
		cfg:           cfg,
		log:           cfg.logger,
	}
	for i := range m.matchedVertex {
		m.matchedVertex[i] = -1
		m.matchedEdge[i] = -1
	}

	var walkErr error
	g.ForEachEdge(func(id EdgeID, uID, vID Node, weight int64) {
		if walkErr != nil {
			return
		}
		if uID == vID {
			walkErr = ErrSelfLoop
			return
		}
		if weight < 0 {
			walkErr = ErrNegativeWeight
			return
		}
		doubled := weight * 2
		if weight != 0 && doubled/2 != weight {
			walkErr = ErrWeightOverflow
			return
		}
		ui, ok1 := index[uID]
		vi, ok2 := index[vID]
		if !ok1 || !ok2 {
			return // edge touches a vertex outside Vertices(); ignore defensively
		}
		idx := len(m.endpoints)
		m.endpoints = append(m.endpoints, [2]int{ui, vi})
		m.weight = append(m.weight, doubled)
		m.edgeIDs = append(m.edgeIDs, id)
		m.adjacency[ui] = append(m.adjacency[ui], idx)
		m.adjacency[vi] = append(m.adjacency[vi], idx)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	m.m = len(m.endpoints)

	// Initial dual feasibility: every node's u starts at half the largest
	// edge weight in the graph so every edge has non-negative slack
	// u_u+u_v-w>=0.
	var maxW int64
	for _, w := range m.weight {
		if w > maxW {
			maxW = w
		}
	}
	half := maxW / 2
	for i := range m.u {
		m.u[i] = half
	}

	m.forest = newForest(n)

	return m, nil
}

func (m *matcher) edgeInfoAt(idx int) edgeInfo {
	ep := m.endpoints[idx]
	return edgeInfo{u: ep[0], v: ep[1], idx: idx, weight: m.weight[idx]}
}

// effectiveDual returns a node's total dual contribution: its own u
// plus the z of every non-trivial blossom currently containing it, at
// every nesting level.
func (m *matcher) effectiveDual(node int) int64 {
	total := m.u[node]
	b := m.forest.trivialOf[node]
	for m.forest.blossoms[b].parent != noBlossom {
		b = m.forest.blossoms[b].parent
		total += m.forest.blossoms[b].z
	}

	return total
}

// slack returns an edge's current reduced cost u_u + u_v - w, which the
// algorithm maintains as always >= 0; a tight (useful) edge has slack 0.
func (m *matcher) slack(idx int) int64 {
	ep := m.endpoints[idx]
	return m.effectiveDual(ep[0]) + m.effectiveDual(ep[1]) - m.weight[idx]
}

// applyDeltaToRoots is the shared dual-adjustment step every variant's
// adjustByDelta performs: every node inside an even root moves by
// -delta, every node inside an odd root by +delta, and each compound
// root's z moves by 2*delta in the opposite direction, so the slack of
// any edge strictly inside a root blossom stays unchanged while edges
// leaving an even root tighten by delta per even endpoint.
func (m *matcher) applyDeltaToRoots(delta int64) {
	m.forest.forRoots(func(b blossomID) {
		bl := &m.forest.blossoms[b]
		switch bl.label {
		case labelEven:
			m.forest.forNodes(b, func(node int) { m.u[node] -= delta })
			if !m.forest.isTrivial(b) {
				bl.z += 2 * delta
			}
		case labelOdd:
			m.forest.forNodes(b, func(node int) { m.u[node] += delta })
			if !m.forest.isTrivial(b) {
				bl.z -= 2 * delta
			}
		}
	})
}

func (m *matcher) otherEndpoint(edgeIdx, node int) int {
	ep := m.endpoints[edgeIdx]
	if ep[0] == node {
		return ep[1]
	}

	return ep[0]
}

// run executes the stage/substage control loop until no augmentation
// occurs in an entire stage, at which point the matching is maximum
// weight for the current dual variables (and therefore overall, by LP
// duality).
func (m *matcher) run() error {
	for stage := 0; stage < m.n; stage++ {
		if m.exposedCount() == 0 {
			break
		}
		done := m.runStage()
		if m.cfg.consistencyChecks {
			if err := m.checkConsistency(); err != nil {
				return err
			}
		}
		if done {
			break
		}
	}

	return nil
}

func (m *matcher) exposedCount() int {
	c := 0
	for _, mv := range m.matchedVertex {
		if mv == -1 {
			c++
		}
	}

	return c
}

// runStage runs one stage to completion and reports whether it was the
// terminal stage (no augmentation occurred even after the dual
// variables were fully saturated, i.e. delta1 was chosen as the minimum
// adjustment).
func (m *matcher) runStage() bool {
	m.initializeStageLabels()
	m.variant.initializeStage()

	for {
		for m.variant.hasUsefulEdges() {
			e := m.variant.getUsefulEdge()
			if m.considerEdge(e) {
				return false
			}
		}

		_, isDelta1 := m.adjustDualVariables()
		if isDelta1 {
			return true
		}
	}
}

func (m *matcher) initializeStageLabels() {
	m.forest.forRoots(func(b blossomID) {
		bl := &m.forest.blossoms[b]
		bl.backtrackEdge = -1
		if m.matchedVertex[bl.base] == -1 {
			bl.label = labelEven
		} else {
			bl.label = labelFree
		}
	})
}

// considerEdge implements one step of the primal search: examine a
// candidate edge between two distinct blossoms and either extend the
// alternating forest, contract a new blossom, or find an augmenting
// path. Returns true if the matching was augmented (ending the stage).
func (m *matcher) considerEdge(e edgeInfo) bool {
	bu := m.forest.rootOf(e.u)
	bv := m.forest.rootOf(e.v)
	if bu == bv {
		return false
	}
	lu := m.forest.blossoms[bu].label
	lv := m.forest.blossoms[bv].label

	switch {
	case lu == labelFree && lv == labelFree:
		return false
	case lu == labelEven && lv == labelFree:
		m.extendTree(bv, bu, e)
		return false
	case lu == labelFree && lv == labelEven:
		m.extendTree(bu, bv, e)
		return false
	case lu == labelEven && lv == labelEven:
		return m.handleEvenEven(e)
	default:
		return false
	}
}

// extendTree labels the free blossom odd (reached via e from the even
// blossom) and labels its mate's blossom even, growing the alternating
// tree by one matched pair.
func (m *matcher) extendTree(freeB, evenB blossomID, e edgeInfo) {
	fb := &m.forest.blossoms[freeB]
	fb.label = labelOdd
	fb.backtrackEdge = e.idx
	m.variant.labelOdd(freeB)

	mate := m.matchedVertex[fb.base]
	mateB := m.forest.rootOf(mate)
	mb := &m.forest.blossoms[mateB]
	mb.label = labelEven
	mb.backtrackEdge = m.matchedEdge[fb.base]
	m.variant.labelEven(mateB)
}

func (m *matcher) handleEvenEven(e edgeInfo) bool {
	bu := m.forest.rootOf(e.u)
	bv := m.forest.rootOf(e.v)

	aug, lca, uChain, vChain := m.backtrack(bu, bv)
	if aug {
		m.augment(e, uChain, vChain)
		return true
	}
	m.createBlossom(lca, e, uChain, vChain)

	return false
}

type pathStep struct {
	blossom blossomID
	edge    int // edge toward the next step (-1 at a tree root)
}

// walkToRoot returns the chain of blossoms from start up to its tree's
// root, each entry's edge field pointing to the next entry (the last
// entry's edge is -1).
func (m *matcher) walkToRoot(start blossomID) []pathStep {
	var path []pathStep
	cur := start
	for {
		step := pathStep{blossom: cur, edge: -1}
		be := m.forest.blossoms[cur].backtrackEdge
		if be == -1 {
			path = append(path, step)
			return path
		}
		step.edge = be
		path = append(path, step)
		cur = m.forest.rootOf(m.otherEndpoint(be, m.entryNodeOf(cur, be)))
	}
}

// entryNodeOf returns whichever endpoint of edgeIdx currently lies
// inside blossom b.
func (m *matcher) entryNodeOf(b blossomID, edgeIdx int) int {
	ep := m.endpoints[edgeIdx]
	if m.forest.contains(b, ep[0]) {
		return ep[0]
	}

	return ep[1]
}

// backtrack walks from bu toward its tree root, marking every visited
// blossom, then walks from bv toward its tree root checking for a
// collision with bu's path at every step. A collision means bu and bv
// are in the same tree (their least common ancestor is the collision
// point, and the edge closes a new blossom); no collision before vPath
// reaches its own exposed root means bu and bv are in different trees
// (the two paths plus the connecting edge form an augmenting path).
func (m *matcher) backtrack(bu, bv blossomID) (augmented bool, lca blossomID, uChain, vChain []pathStep) {
	uPath := m.walkToRoot(bu)
	seen := make(map[blossomID]int, len(uPath))
	for i, s := range uPath {
		seen[s.blossom] = i
	}

	cur := bv
	var vPath []pathStep
	for {
		step := pathStep{blossom: cur, edge: -1}
		if idx, ok := seen[cur]; ok {
			vPath = append(vPath, step)
			return false, cur, uPath[:idx+1], vPath
		}
		be := m.forest.blossoms[cur].backtrackEdge
		if be == -1 {
			vPath = append(vPath, step)
			return true, noBlossom, uPath, vPath
		}
		step.edge = be
		vPath = append(vPath, step)
		cur = m.forest.rootOf(m.otherEndpoint(be, m.entryNodeOf(cur, be)))
	}
}

// createBlossom contracts the cycle identified by backtrack (the two
// half-paths from bu/bv up to their common ancestor lca, joined by the
// edge that was just examined) into a single new even blossom.
func (m *matcher) createBlossom(lca blossomID, e edgeInfo, uChain, vChain []pathStep) {
	uc := uChain[:len(uChain)-1] // exclude lca itself
	vc := vChain[:len(vChain)-1]

	children := []blossomID{lca}
	connectEdge := []int{}

	for i := len(uc) - 1; i >= 0; i-- {
		connectEdge = append(connectEdge, uc[i].edge)
		children = append(children, uc[i].blossom)
	}
	connectEdge = append(connectEdge, e.idx)
	for i, s := range vc {
		children = append(children, s.blossom)
		if i < len(vc)-1 {
			connectEdge = append(connectEdge, s.edge)
		}
	}
	if len(vc) > 0 {
		connectEdge = append(connectEdge, vc[len(vc)-1].edge)
	}

	subs := make([]subEdge, len(children))
	for i, c := range children {
		subs[i] = subEdge{child: c, edge: connectEdge[i]}
	}

	base := m.forest.blossoms[lca].base
	id := m.forest.newBlossom(base, subs)
	nb := &m.forest.blossoms[id]
	nb.label = labelEven
	nb.z = 0
	nb.backtrackEdge = m.forest.blossoms[lca].backtrackEdge

	m.log.Debugf("matching: new blossom %d over %d sub-blossoms, base=%s", id, len(subs), m.nodeIDs[base])
	m.variant.handleNewBlossom(id)
}

// augment flips the matching along the augmenting path formed by e and
// the two tree paths leading from its endpoints to their exposed roots.
func (m *matcher) augment(e edgeInfo, uPath, vPath []pathStep) {
	m.augmentSide(uPath, e.u)
	m.augmentSide(vPath, e.v)
	m.setMatch(e.u, e.v, e.idx)
	m.log.Infof("matching: augmented via edge %s", m.edgeIDs[e.idx])
}

// augmentSide walks the tree path from the blossom adjacent to the
// augmenting edge up to the exposed root, flipping the matched status
// of every tree edge along the way. An even blossom is entered via a
// freshly matched edge (or the augmenting edge itself), so its base
// rotates to the entry node and its old matched edge up the tree
// becomes unmatched implicitly once both its endpoints are re-matched
// elsewhere. An odd blossom's labeling edge becomes matched: its base
// rotates to that edge's endpoint inside it, and the edge is recorded
// in the matching explicitly.
func (m *matcher) augmentSide(path []pathStep, entryNode int) {
	node := entryNode
	for i := 0; i < len(path); i++ {
		b := path[i].blossom
		ei := path[i].edge

		if m.forest.blossoms[b].label == labelOdd {
			w := m.entryNodeOf(b, ei)
			m.setBaseAndRematch(b, w)
			next := m.otherEndpoint(ei, w)
			m.setMatch(w, next, ei)
			node = next
			continue
		}

		m.setBaseAndRematch(b, node)
		if ei == -1 {
			return // exposed root reached
		}
		inside := m.entryNodeOf(b, ei)
		node = m.otherEndpoint(ei, inside)
	}
}

// setBaseAndRematch rotates blossom b (recursing into nested compound
// sub-blossoms) so newBase becomes its base, rewriting the matching
// among every other member along the way so the blossom's (2k+1)-cycle
// stays perfectly paired except at its (new) base.
func (m *matcher) setBaseAndRematch(b blossomID, newBase int) {
	bl := &m.forest.blossoms[b]
	if m.forest.isTrivial(b) {
		bl.base = newBase
		return
	}
	if bl.base == newBase {
		return
	}

	idx := m.forest.childIndexContaining(b, newBase)
	m.forest.rotateSubBlossoms(b, idx)
	subs := bl.subBlossoms

	m.setBaseAndRematch(subs[0].child, newBase)
	for i := 1; i+1 < len(subs); i += 2 {
		m.matchBlossomPair(subs[i].child, subs[i+1].child, subs[i].edge)
	}
	bl.base = newBase
	m.variant.handleSubblossomShift(b, subs[0].child)
}

func (m *matcher) matchBlossomPair(b1, b2 blossomID, edgeIdx int) {
	ep := m.endpoints[edgeIdx]
	n1, n2 := ep[0], ep[1]
	if !m.forest.contains(b1, n1) {
		n1, n2 = ep[1], ep[0]
	}
	m.setBaseAndRematch(b1, n1)
	m.setBaseAndRematch(b2, n2)
	m.setMatch(n1, n2, edgeIdx)
}

func (m *matcher) setMatch(a, b, edgeIdx int) {
	m.clearMatchAt(a)
	m.clearMatchAt(b)
	m.matchedVertex[a] = b
	m.matchedVertex[b] = a
	m.matchedEdge[a] = edgeIdx
	m.matchedEdge[b] = edgeIdx
}

func (m *matcher) clearMatchAt(node int) {
	m.matchedVertex[node] = -1
	m.matchedEdge[node] = -1
}

// adjustDualVariables computes delta = min(delta1..delta4), applies it
// via the variant, and triggers whatever follow-up the chosen delta
// calls for (pushing newly-tight edges, or expanding saturated odd
// blossoms). isDelta1 signals the stage (and, by the algorithm's
// standard termination argument, the whole run) is over.
func (m *matcher) adjustDualVariables() (delta int64, isDelta1 bool) {
	d1, ok1 := m.variant.calcDelta1()
	d2, ok2 := m.variant.calcDelta2()
	d3, ok3 := m.variant.calcDelta3()
	d4, ok4 := m.variant.calcDelta4()

	const unset = int64(1) << 62
	delta = unset
	which := 1
	pick := func(d int64, ok bool, w int) {
		if ok && d < delta {
			delta, which = d, w
		}
	}
	pick(d1, ok1, 1)
	pick(d2, ok2, 2)
	pick(d3, ok3, 3)
	pick(d4, ok4, 4)

	if delta == unset {
		return 0, true // nothing left to adjust; treat as converged
	}

	m.variant.adjustByDelta(delta)
	m.log.Debugf("matching: delta%d=%d applied", which, delta)

	switch which {
	case 1:
		return delta, true
	case 2:
		m.variant.findDelta2UsefulEdges()
	case 3:
		m.variant.findDelta3UsefulEdges()
	case 4:
		for _, b := range m.variant.getOddBlossomsToExpand() {
			m.expandOddBlossom(b)
		}
	}

	return delta, false
}

// expandOddBlossom dissolves an odd blossom whose z has reached 0 back
// into its cyclic children: the even-length arc from the child
// containing the entry point of backtrackEdge around to the base child
// keeps the tree alive, alternately labeled odd/even; the rest of the
// cycle becomes free. subBlossoms are kept base-first, and the matched
// in-cycle edges sit at odd positions, so the arc runs forward
// (wrapping past the end) when the entry child's index is odd and
// backward to index 0 when it is even — whichever direction leaves via
// a matched edge first.
func (m *matcher) expandOddBlossom(b blossomID) {
	bl := m.forest.blossoms[b]
	entry := m.entryNodeOf(b, bl.backtrackEdge)
	entryIdx := m.forest.childIndexContaining(b, entry)

	subs := bl.subBlossoms
	n := len(subs)

	var path []int
	backward := entryIdx != 0 && entryIdx%2 == 0
	if backward {
		for i := entryIdx; i >= 0; i-- {
			path = append(path, i)
		}
	} else {
		path = cyclicRange(entryIdx, 0, n)
	}
	inPath := make(map[int]bool, len(path))
	for _, idx := range path {
		inPath[idx] = true
	}

	for i, childIdx := range path {
		c := subs[childIdx].child
		cb := &m.forest.blossoms[c]
		cb.parent = noBlossom
		switch {
		case i == 0:
			cb.label = labelOdd
			cb.backtrackEdge = bl.backtrackEdge
		default:
			if i%2 == 1 {
				cb.label = labelEven
			} else {
				cb.label = labelOdd
			}
			if backward {
				cb.backtrackEdge = subs[childIdx].edge
			} else {
				cb.backtrackEdge = subs[path[i-1]].edge
			}
		}
		m.variant.handleOddBlossomExpansion(c)
	}
	for idx, s := range subs {
		if inPath[idx] {
			continue
		}
		c := s.child
		cb := &m.forest.blossoms[c]
		cb.parent = noBlossom
		cb.label = labelFree
		cb.backtrackEdge = -1
		m.variant.handleOddBlossomExpansion(c)
	}

	m.forest.blossoms[b].dead = true
	m.log.Debugf("matching: expanded odd blossom %d (%d children)", b, n)
}
