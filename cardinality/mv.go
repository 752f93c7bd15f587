package cardinality

import (
	"fmt"

	"github.com/rkilar/koala-networkit/blossomlog"
	"github.com/rkilar/koala-networkit/unionfind"
)

// matcher holds the dense-index working state of the cardinality engine.
// run executes phases: each phase grows a level structure from every
// exposed vertex at once, interleaving level propagation with bridge
// resolution in non-decreasing tenacity order. A bridge is resolved by a
// double-DFS that either certifies two vertex-disjoint escape paths (an
// augmenting path) or contracts everything trapped behind a single
// bottleneck vertex into a bloom. match/matchEdge persist across phases;
// everything else in vd/ed is reset at the start of each one.
type matcher struct {
	n       int
	nodeIDs []Node

	adjacency [][]int // adjacency[v] = neighbor vertex indices
	adjEdge   [][]int // adjEdge[v][k] = dense edge index for adjacency[v][k]

	vd []vertexData
	ed []edgeData

	dsu    *unionfind.DSU[int] // bloom-base union-find, rebuilt fresh every phase
	blooms []*bloom

	candidates [][]int // candidates[l] = vertices assigned level l, pending their scan
	bridges    [][]int // bridges[i] = bridge edges of tenacity 2i+1

	colorCounter int

	cfg config
	log blossomlog.Logger
	ran bool
}

func newMatcher(g Graph, cfg config) (*matcher, error) {
	nodeIDs := g.Vertices()
	n := len(nodeIDs)
	index := make(map[Node]int, n)
	for i, id := range nodeIDs {
		index[id] = i
	}

	adjacency := make([][]int, n)
	adjEdge := make([][]int, n)
	var ed []edgeData
	var buildErr error
	g.ForEachEdge(func(id EdgeID, u, v Node) {
		if buildErr != nil {
			return
		}
		ui, ok := index[u]
		if !ok {
			buildErr = fmt.Errorf("cardinality: edge %s references unknown vertex %s", id, u)
			return
		}
		vi, ok := index[v]
		if !ok {
			buildErr = fmt.Errorf("cardinality: edge %s references unknown vertex %s", id, v)
			return
		}
		if ui == vi {
			buildErr = ErrSelfLoop
			return
		}
		e := len(ed)
		ed = append(ed, edgeData{u: ui, v: vi})
		adjacency[ui] = append(adjacency[ui], vi)
		adjEdge[ui] = append(adjEdge[ui], e)
		adjacency[vi] = append(adjacency[vi], ui)
		adjEdge[vi] = append(adjEdge[vi], e)
	})
	if buildErr != nil {
		return nil, buildErr
	}

	vd := make([]vertexData, n)
	for i := range vd {
		vd[i] = vertexData{match: -1, matchEdge: -1}
	}

	return &matcher{
		n:         n,
		nodeIDs:   nodeIDs,
		adjacency: adjacency,
		adjEdge:   adjEdge,
		vd:        vd,
		ed:        ed,
		cfg:       cfg,
		log:       cfg.logger,
	}, nil
}

// run drives phases to completion. A phase that augments nothing is
// followed by one tree-growing sweep over the remaining exposed vertices;
// only when that sweep also finds no augmenting path is the matching
// certified maximum and the loop stopped.
func (m *matcher) run() error {
	for phase := 0; ; phase++ {
		augmented := m.phase()
		m.log.Debugf("cardinality: phase=%d augmented=%d", phase, augmented)
		if augmented > 0 {
			continue
		}
		if swept := m.certifyMaximal(); swept > 0 {
			m.log.Debugf("cardinality: certification sweep augmented %d more", swept)
			continue
		}
		break
	}
	m.log.Infof("cardinality: done, %d vertices matched", m.matchedCount())

	if m.cfg.consistencyChecks {
		return m.checkConsistency()
	}

	return nil
}

func (m *matcher) matchedCount() int {
	c := 0
	for i := range m.vd {
		if m.vd[i].match != -1 {
			c++
		}
	}

	return c
}

// phase resets per-phase state, then walks levels 0, 1, 2, ... from every
// exposed vertex at once: level l's vertices are scanned (extending the
// structure to level l+1 and recording bridges), then every bridge of
// tenacity 2l+1 is resolved. The phase stops at the first level whose
// bridges produced an augmentation, so every path augmented within one
// phase has the same tenacity and the erasure pass keeps them disjoint.
// Returns how many augmenting paths were applied.
func (m *matcher) phase() int {
	m.initPhase()

	augmented := 0
	for l := 0; l < len(m.candidates); l++ {
		for k := 0; k < len(m.candidates[l]); k++ {
			m.scanVertex(m.candidates[l][k], l)
		}
		if l < len(m.bridges) {
			for k := 0; k < len(m.bridges[l]); k++ {
				if m.blossAug(m.bridges[l][k], 2*l+1) {
					augmented++
				}
			}
		}
		if augmented > 0 {
			break
		}
	}

	return augmented
}

// initPhase resets every vertex's and edge's per-phase state and seeds
// the even level of every currently exposed vertex at 0.
func (m *matcher) initPhase() {
	m.dsu = unionfind.New[int]()
	m.blooms = nil
	m.colorCounter = 0

	// Levels run to at most 2n (tenacity complements included); bridge
	// tenacities between two complement levels can reach twice that.
	m.candidates = make([][]int, 2*m.n+2)
	m.bridges = make([][]int, 2*m.n+3)

	for i := range m.vd {
		m.dsu.Make(i)
		m.vd[i].evenLevel = infLevel
		m.vd[i].oddLevel = infLevel
		m.vd[i].bloom = nil
		m.vd[i].predecessors = nil
		m.vd[i].predEdges = nil
		m.vd[i].successors = nil
		m.vd[i].count = 0
		m.vd[i].color = 0
		m.vd[i].erased = false
		if m.vd[i].match == -1 {
			m.vd[i].evenLevel = 0
			m.candidates[0] = append(m.candidates[0], i)
		}
	}
	for i := range m.ed {
		m.ed[i].kind = edgeNone
	}
}

// scanVertex processes one vertex at level l. At an even level every
// unmatched incident edge either extends the structure (the far endpoint
// gets odd level l+1), joins an extra predecessor at l+1, or — when the
// far endpoint already carries an even level — is a bridge of odd
// tenacity. At an odd level only the matched edge is considered: it
// either assigns even level l+1 to the mate or, if the mate is already
// odd-levelled, is itself a bridge.
func (m *matcher) scanVertex(v, l int) {
	if m.vd[v].erased {
		return
	}

	if l%2 == 0 {
		if m.vd[v].evenLevel != l {
			return
		}
		for k, w := range m.adjacency[v] {
			e := m.adjEdge[v][k]
			if w == m.vd[v].match || m.vd[w].erased || m.ed[e].kind != edgeNone {
				continue
			}
			switch {
			case m.vd[w].evenLevel != infLevel:
				m.markBridge(e, m.vd[v].evenLevel+m.vd[w].evenLevel+1)
			case m.vd[w].oddLevel == infLevel:
				m.vd[w].oddLevel = l + 1
				m.ed[e].kind = edgeProp
				m.addPredecessor(w, v, e)
				m.candidates[l+1] = append(m.candidates[l+1], w)
			case m.vd[w].oddLevel == l+1:
				m.ed[e].kind = edgeProp
				m.addPredecessor(w, v, e)
			}
		}
		return
	}

	if m.vd[v].oddLevel != l || m.vd[v].match == -1 {
		return
	}
	w := m.vd[v].match
	e := m.vd[v].matchEdge
	if m.vd[w].erased || m.ed[e].kind != edgeNone {
		return
	}
	if m.vd[w].oddLevel != infLevel {
		m.markBridge(e, m.vd[v].oddLevel+m.vd[w].oddLevel+1)
		return
	}
	if m.vd[w].evenLevel == infLevel {
		m.vd[w].evenLevel = l + 1
		m.ed[e].kind = edgeProp
		m.addPredecessor(w, v, e)
		m.candidates[l+1] = append(m.candidates[l+1], w)
	}
}

func (m *matcher) markBridge(e, tenacity int) {
	i := (tenacity - 1) / 2
	if i >= len(m.bridges) {
		return
	}
	m.ed[e].kind = edgeBridge
	m.bridges[i] = append(m.bridges[i], e)
}

func (m *matcher) addPredecessor(w, v, e int) {
	m.vd[w].predecessors = append(m.vd[w].predecessors, v)
	m.vd[w].predEdges = append(m.vd[w].predEdges, e)
	m.vd[v].successors = append(m.vd[v].successors, w)
	m.vd[w].count++
}

// baseStar returns the representative vertex of v's outermost bloom, or v
// itself if it hasn't been absorbed into one this phase.
func (m *matcher) baseStar(v int) int {
	r, _ := m.dsu.Find(v)

	return r
}

// pathArc is one step of a bloom-contracted escape path: the walk stood at
// base `from`, consumed `from`'s predecessor `pred` via graph edge `edge`,
// and moved to `to` = baseStar(pred).
type pathArc struct {
	from, pred, edge, to int
}

// blossAug resolves one bridge: a green walk descends the predecessor
// structure from one endpoint's bloom base to an exposed vertex, then a
// red walk from the other endpoint searches for a second, vertex-disjoint
// descent — backing up along the green path (and releasing green's claim
// step by step) whenever its own progress stalls against it. Two disjoint
// descents form an augmenting path with the bridge at its peak; if the
// red walk exhausts every alternative instead, the deepest green vertex
// it touched is the one vertex all escapes run through, and everything
// either walk claimed is contracted into a bloom based there. Returns
// true if the matching was augmented.
func (m *matcher) blossAug(bridge, tenacity int) bool {
	s0, t0 := m.ed[bridge].u, m.ed[bridge].v
	gb, rb := m.baseStar(s0), m.baseStar(t0)
	if gb == rb || m.vd[gb].erased || m.vd[rb].erased {
		return false
	}

	m.colorCounter += 2
	green, red := m.colorCounter-1, m.colorCounter

	greenPath, ok := m.greenDescent(gb)
	if !ok {
		return false
	}
	m.vd[gb].color = green
	for _, a := range greenPath {
		m.vd[a.to].color = green
	}

	flow, members, bottleneck, found := m.redSearch(rb, gb, greenPath, red)
	if !found {
		if bottleneck < 0 {
			return false // red walk had no usable move at all; nothing to contract
		}
		m.formBloom(bridge, tenacity, s0, t0, green, red, members, bottleneck)
		return false
	}

	return m.realizeAndAugment(bridge, s0, t0, gb, chainFrom(gb, flow), chainFrom(rb, flow))
}

// greenDescent walks from base gb straight down to an exposed vertex,
// taking the first unerased predecessor at every step. Levels strictly
// decrease along predecessor edges, so the walk cannot cycle.
func (m *matcher) greenDescent(gb int) ([]pathArc, bool) {
	var path []pathArc
	cur := gb
	for m.vd[cur].match != -1 {
		advanced := false
		for i, u := range m.vd[cur].predecessors {
			ub := m.baseStar(u)
			if m.vd[ub].erased {
				continue
			}
			path = append(path, pathArc{from: cur, pred: u, edge: m.vd[cur].predEdges[i], to: ub})
			cur = ub
			advanced = true
			break
		}
		if !advanced {
			return nil, false // every escape is erased; nothing to resolve here
		}
	}

	return path, true
}

// redState is one double-DFS position: a bloom base, and whether the walk
// occupies it from below (climbing back up the green path) or from above
// (free to descend through alternative predecessors).
type redState struct {
	base int
	low  bool
}

type redMoveKind int

const (
	moveForward redMoveKind = iota // consumed a predecessor arc
	moveClimb                      // released a green arc and stepped up past it
	moveTakeover                   // claimed a green vertex outright, from above
)

type redMove struct {
	parent redState
	kind   redMoveKind
	arc    pathArc // set for moveForward
	gIdx   int     // for moveClimb: index of the green arc being released
}

// redSearch runs the red half of the double-DFS. On success it returns
// the net escape routes as a next-arc map (one outgoing arc per base;
// following it from either walk's start reads off that walk's final,
// possibly rerouted, escape chain). On failure it returns the set of
// bases either walk claimed and the bottleneck base — the deepest
// green-path vertex red managed to touch.
func (m *matcher) redSearch(rb, gb int, greenPath []pathArc, red int) (flow map[int]pathArc, members []int, bottleneck int, found bool) {
	greenIdx := map[int]int{gb: 0}
	for i, a := range greenPath {
		greenIdx[a.to] = i + 1
	}
	greenAt := func(i int) int {
		if i == 0 {
			return gb
		}
		return greenPath[i-1].to
	}

	visited := map[redState]bool{}
	from := map[redState]redMove{}
	var goal redState
	deepestLow := -1

	var stack []redState
	start := redState{base: rb, low: false}
	if _, onGreen := greenIdx[rb]; onGreen {
		start.low = true
	}
	stack = append(stack, start)
	visited[start] = true

	push := func(st redState, mv redMove) {
		if visited[st] {
			return
		}
		visited[st] = true
		from[st] = mv
		stack = append(stack, st)
	}

	for len(stack) > 0 && !found {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		gi, onGreen := greenIdx[st.base]

		if st.low {
			if gi > deepestLow {
				deepestLow = gi
			}
			// Occupying a green vertex from below: release the green arc
			// above it and climb.
			if gi > 0 {
				above := redState{base: greenAt(gi - 1), low: false}
				push(above, redMove{parent: st, kind: moveClimb, gIdx: gi - 1})
			}
			continue
		}

		if !onGreen && m.vd[st.base].match == -1 {
			goal = st
			found = true
			break
		}

		for i, u := range m.vd[st.base].predecessors {
			ub := m.baseStar(u)
			if m.vd[ub].erased {
				continue
			}
			arc := pathArc{from: st.base, pred: u, edge: m.vd[st.base].predEdges[i], to: ub}
			if onGreen && gi < len(greenPath) && greenPath[gi].edge == arc.edge {
				continue // the arc green still holds below this vertex
			}
			_, targetOnGreen := greenIdx[ub]
			push(redState{base: ub, low: targetOnGreen}, redMove{parent: st, kind: moveForward, arc: arc})
		}
		if onGreen {
			// A reclaimed green vertex can also hand its spot to red
			// outright, letting the walk back up yet another step.
			push(redState{base: st.base, low: true}, redMove{parent: st, kind: moveTakeover})
		}
	}

	if !found {
		if deepestLow < 0 {
			return nil, nil, -1, false
		}
		seen := map[int]bool{}
		for st := range visited {
			seen[st.base] = true
		}
		for i := 0; i <= deepestLow; i++ {
			seen[greenAt(i)] = true
		}
		for b := range seen {
			members = append(members, b)
		}
		for _, v := range members {
			m.vd[v].color = red
		}

		return nil, members, greenAt(deepestLow), false
	}

	// Replay the route to the goal, front to back.
	var route []redMove
	st := goal
	for st != start {
		mv := from[st]
		route = append(route, mv)
		st = mv.parent
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	// Net flow: green's arcs, minus the ones red released climbing, plus
	// red's own forward arcs. Every base keeps at most one outgoing arc,
	// so both chains read off by simply following next pointers.
	next := map[int]pathArc{}
	for _, a := range greenPath {
		next[a.from] = a
	}
	for _, mv := range route {
		switch mv.kind {
		case moveClimb:
			delete(next, greenAt(mv.gIdx))
		case moveForward:
			next[mv.arc.from] = mv.arc
		}
	}

	return next, nil, 0, true
}

func chainFrom(start int, next map[int]pathArc) []pathArc {
	var chain []pathArc
	seen := map[int]bool{start: true}
	cur := start
	for {
		a, ok := next[cur]
		if !ok || seen[a.to] {
			return chain
		}
		seen[a.to] = true
		chain = append(chain, a)
		cur = a.to
	}
}

// realizeAndAugment turns the two certified escape chains plus the bridge
// into a concrete alternating path and flips it. When neither chain ever
// touches a bloom, each vertex carries exactly one level, every arc steps
// onto its own predecessor, and the chains are the path verbatim. The
// moment a bloom is involved the in-bloom detour has to be opened
// explicitly, so the work is handed to openAugmentingPath instead, seeded
// at the green chain's exposed endpoint.
func (m *matcher) realizeAndAugment(bridge, s0, t0, gb int, greenChain, redChain []pathArc) bool {
	direct := m.vd[s0].bloom == nil && m.vd[t0].bloom == nil &&
		m.baseStar(s0) == s0 && m.baseStar(t0) == t0
	check := func(chain []pathArc) {
		for _, a := range chain {
			if a.pred != a.to || m.vd[a.from].bloom != nil || m.vd[a.to].bloom != nil {
				direct = false
			}
		}
	}
	check(greenChain)
	check(redChain)

	// path: green root ... s0, t0 ... red root
	var verts, edges []int
	for i := len(greenChain) - 1; i >= 0; i-- {
		verts = append(verts, greenChain[i].to)
		edges = append(edges, greenChain[i].edge)
	}
	verts = append(verts, s0, t0)
	edges = append(edges, bridge)
	for _, a := range redChain {
		edges = append(edges, a.edge)
		verts = append(verts, a.to)
	}

	if !direct || !m.validAlternating(verts, edges) {
		root := gb
		if len(greenChain) > 0 {
			root = greenChain[len(greenChain)-1].to
		}
		touched := m.openAugmentingPath(root)
		if touched == nil {
			return false
		}
		m.eraseAll(touched)
		return true
	}

	for i := 0; i+1 < len(verts); i += 2 {
		m.setPair(verts[i], verts[i+1], edges[i])
	}
	m.eraseAll(verts)

	return true
}

// validAlternating confirms verts/edges spell out a simple alternating
// path between two exposed vertices, unmatched edges at even positions.
// The level structure guarantees this shape for bloom-free chains; the
// check is what lets realizeAndAugment flip the path without appealing to
// that argument.
func (m *matcher) validAlternating(verts, edges []int) bool {
	if len(verts)%2 != 0 || len(edges) != len(verts)-1 {
		return false
	}
	if m.vd[verts[0]].match != -1 || m.vd[verts[len(verts)-1]].match != -1 {
		return false
	}
	seen := map[int]bool{}
	for _, v := range verts {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	for i, e := range edges {
		a, b := verts[i], verts[i+1]
		if !(m.ed[e].u == a && m.ed[e].v == b) && !(m.ed[e].u == b && m.ed[e].v == a) {
			return false
		}
		if i%2 == 0 {
			if m.vd[a].match == b {
				return false
			}
		} else if m.vd[a].match != b || m.vd[a].matchEdge != e {
			return false
		}
	}

	return true
}

func (m *matcher) setPair(a, b, e int) {
	m.vd[a].match, m.vd[a].matchEdge = b, e
	m.vd[b].match, m.vd[b].matchEdge = a, e
}

// formBloom contracts everything the failed double-DFS claimed into a
// bloom based at the bottleneck: each member's union-find representative
// becomes the base, and each member vertex receives its missing level as
// the tenacity complement, re-entering the level walk at that future
// level. That second level is what lets later bridges route through the
// bloom against its search direction.
func (m *matcher) formBloom(bridge, tenacity, s0, t0, green, red int, memberBases []int, base int) {
	bl := &bloom{
		base:       base,
		tenacity:   tenacity,
		bridge:     bridge,
		greenPeak:  s0,
		redPeak:    t0,
		greenColor: green,
		redColor:   red,
	}

	baseSet := map[int]bool{}
	for _, b := range memberBases {
		if b != base {
			baseSet[b] = true
		}
	}

	for v := 0; v < m.n; v++ {
		if !baseSet[m.baseStar(v)] {
			continue
		}
		if m.vd[v].bloom == nil {
			m.vd[v].bloom = bl
		}
		switch {
		case m.vd[v].evenLevel == infLevel && m.vd[v].oddLevel != infLevel:
			m.vd[v].evenLevel = tenacity - m.vd[v].oddLevel
			if m.vd[v].evenLevel < len(m.candidates) {
				m.candidates[m.vd[v].evenLevel] = append(m.candidates[m.vd[v].evenLevel], v)
			}
			// A complement even level can complete a bridge whose
			// tenacity step is already running; scan for those now
			// rather than waiting for v's own (later) scan.
			for k, w := range m.adjacency[v] {
				e := m.adjEdge[v][k]
				if w == m.vd[v].match || m.vd[w].erased || m.ed[e].kind != edgeNone {
					continue
				}
				if m.vd[w].evenLevel != infLevel {
					m.markBridge(e, m.vd[v].evenLevel+m.vd[w].evenLevel+1)
				}
			}
		case m.vd[v].oddLevel == infLevel && m.vd[v].evenLevel != infLevel:
			m.vd[v].oddLevel = tenacity - m.vd[v].evenLevel
			if m.vd[v].oddLevel < len(m.candidates) {
				m.candidates[m.vd[v].oddLevel] = append(m.candidates[m.vd[v].oddLevel], v)
			}
		}
	}
	for b := range baseSet {
		_ = m.dsu.Union(b, base, base)
	}
	m.blooms = append(m.blooms, bl)
	m.log.Debugf("cardinality: bloom at base %d, tenacity %d, %d clusters", base, tenacity, len(memberBases))
}

// eraseAll erases every vertex consumed by an augmentation, cascading
// through successors whose last unerased predecessor just disappeared.
func (m *matcher) eraseAll(verts []int) {
	for _, v := range verts {
		m.erase(v)
	}
}

func (m *matcher) erase(v int) {
	if m.vd[v].erased {
		return
	}
	m.vd[v].erased = true

	for _, s := range m.vd[v].successors {
		if m.vd[s].erased {
			continue
		}
		m.vd[s].count--
		if m.vd[s].count <= 0 {
			m.erase(s)
		}
	}
}

// certifyMaximal runs one alternating-tree sweep over every still-exposed
// vertex, augmenting along any path it finds. A sweep that finds nothing
// proves the matching maximum; the level-and-bridge phases do the bulk of
// the work, this closes the gap for paths whose bridge fell outside the
// structure a single phase builds.
func (m *matcher) certifyMaximal() int {
	for i := range m.vd {
		m.vd[i].erased = false
	}
	swept := 0
	for v := 0; v < m.n; v++ {
		if m.vd[v].match != -1 {
			continue
		}
		if touched := m.openAugmentingPath(v); touched != nil {
			swept++
		}
	}

	return swept
}
