package matching

const noBlossom blossomID = -1

// blossomID indexes into forest.blossoms. Every original node starts out
// as its own trivial blossom at construction; contraction allocates new
// (non-trivial) blossom records as the search proceeds, and expansion
// retires them by detaching their children, never by reusing the slot.
type blossomID int

// subEdge is one link in a blossom's cyclic list of sub-blossoms: child
// is the sub-blossom itself, edge is the graph edge connecting child to
// the NEXT element of the cycle (wrapping from the last element back to
// the first).
type subEdge struct {
	child blossomID
	edge  int // index into matcher.endpoints/weight, or -1 if unset
}

// blossom is one node of the laminar blossom forest. Trivial blossoms
// (len(subBlossoms) == 0) correspond 1:1 with original graph nodes;
// compound blossoms own a cyclic odd-length list of sub-blossoms.
type blossom struct {
	parent       blossomID // noBlossom if this blossom is a forest root
	initialBase  int       // the node this blossom's base was created with
	base         int       // current base (rotates during augmentation)
	subBlossoms  []subEdge // empty for trivial blossoms
	label        label
	backtrackEdge int // edge toward the tree parent; -1 at a tree root
	z            int64 // dual variable; always 0 for trivial blossoms
	dead         bool  // true once the blossom has been expanded; the slot is retired
	data         interface{} // variant-owned payload (best-edge cache, PQ handles, ...)
}

type forest struct {
	blossoms  []blossom
	trivialOf []blossomID // node index -> its trivial blossom's id
}

func newForest(n int) *forest {
	f := &forest{
		blossoms:  make([]blossom, n),
		trivialOf: make([]blossomID, n),
	}
	for i := 0; i < n; i++ {
		f.blossoms[i] = blossom{
			parent:        noBlossom,
			initialBase:   i,
			base:          i,
			backtrackEdge: -1,
			label:         labelFree,
		}
		f.trivialOf[i] = blossomID(i)
	}

	return f
}

func (f *forest) isTrivial(b blossomID) bool {
	return len(f.blossoms[b].subBlossoms) == 0
}

// forRoots visits every live forest root. Expanded (dead) blossom slots
// are skipped; they keep their subBlossoms list purely so that an
// expansion's variant hooks can still read the cyclic structure.
func (f *forest) forRoots(visit func(b blossomID)) {
	for id := range f.blossoms {
		b := blossomID(id)
		if f.blossoms[b].dead || f.blossoms[b].parent != noBlossom {
			continue
		}
		visit(b)
	}
}

// rootOf returns the forest root currently containing node.
func (f *forest) rootOf(node int) blossomID {
	b := f.trivialOf[node]
	for f.blossoms[b].parent != noBlossom {
		b = f.blossoms[b].parent
	}

	return b
}

// contains reports whether node currently lies within blossom b (b need
// not be a root; this walks node's ancestry up to find b).
func (f *forest) contains(b blossomID, node int) bool {
	cur := f.trivialOf[node]
	for {
		if cur == b {
			return true
		}
		if f.blossoms[cur].parent == noBlossom {
			return false
		}
		cur = f.blossoms[cur].parent
	}
}

// childIndexContaining returns the index within b's subBlossoms list of
// the child that currently contains node. b must be a compound blossom
// actually containing node.
func (f *forest) childIndexContaining(b blossomID, node int) int {
	subs := f.blossoms[b].subBlossoms
	for i, s := range subs {
		if f.contains(s.child, node) {
			return i
		}
	}

	return -1
}

// rotateSubBlossoms cyclically rotates b's sub-blossom list so that
// index idx becomes position 0, preserving each element's "edge to
// next" meaning.
func (f *forest) rotateSubBlossoms(b blossomID, idx int) {
	if idx == 0 {
		return
	}
	subs := f.blossoms[b].subBlossoms
	rotated := make([]subEdge, 0, len(subs))
	rotated = append(rotated, subs[idx:]...)
	rotated = append(rotated, subs[:idx]...)
	f.blossoms[b].subBlossoms = rotated
}

// newBlossom allocates a new compound blossom over subs (already in
// cyclic order, base-first) and reparents every child to it.
func (f *forest) newBlossom(base int, subs []subEdge) blossomID {
	id := blossomID(len(f.blossoms))
	f.blossoms = append(f.blossoms, blossom{
		parent:        noBlossom,
		initialBase:   base,
		base:          base,
		subBlossoms:   subs,
		backtrackEdge: -1,
		label:         labelFree,
	})
	for _, s := range subs {
		f.blossoms[s.child].parent = id
	}

	return id
}

// forNodes visits every original node contained in b, in no particular
// order.
func (f *forest) forNodes(b blossomID, visit func(node int)) {
	if f.isTrivial(b) {
		visit(int(b))
		return
	}
	for _, s := range f.blossoms[b].subBlossoms {
		f.forNodes(s.child, visit)
	}
}

// cyclicRange returns the indices from..to inclusive, walking forward
// through [0,n) with wraparound.
func cyclicRange(from, to, n int) []int {
	out := []int{from}
	i := from
	for i != to {
		i = (i + 1) % n
		out = append(out, i)
	}

	return out
}
