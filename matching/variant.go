package matching

// variant is the strategy each weighted-matching algorithm (Edmonds,
// Gabow, Galil-Micali-Gabow) implements. The driver (driver.go) owns the
// blossom forest, the alternating-tree labeling, backtracking,
// augmentation, and blossom creation/expansion; a variant owns only how
// useful edges are discovered and how the four dual-adjustment deltas
// are computed and applied.
//
// "Useful" edges are the ones consider_edge needs to look at: those
// between an even blossom and a free or different even blossom, with
// zero slack. Matched edges and edges inside a single blossom are never
// useful.
type variant interface {
	// initializeStage is called once per stage, after the driver has
	// labeled exposed-base roots even and everything else free. The
	// variant should (re)populate its useful-edge source from scratch.
	initializeStage()

	// hasUsefulEdges/getUsefulEdge drive the substage loop: while useful
	// edges remain, the driver pops one and calls considerEdge on it.
	hasUsefulEdges() bool
	getUsefulEdge() edgeInfo

	// labelEven/labelOdd are called whenever the driver assigns that
	// label to a (possibly new) blossom, so the variant can register any
	// newly-useful edges incident to it.
	labelEven(b blossomID)
	labelOdd(b blossomID)

	// handleNewBlossom is called right after a compound blossom is
	// created, handleSubblossomShift whenever a blossom's base rotates
	// to a different child (so cached/queued state keyed by "current
	// base" can be refreshed), and handleOddBlossomExpansion once per
	// child right after an odd blossom dissolves back into its cycle.
	handleNewBlossom(b blossomID)
	handleSubblossomShift(b, newBaseChild blossomID)
	handleOddBlossomExpansion(child blossomID)

	// calcDeltaN returns the Nth candidate dual-adjustment step and
	// whether it is bounded (false means "no constraint of this kind
	// exists right now", e.g. no odd blossoms for delta4).
	calcDelta1() (int64, bool)
	calcDelta2() (int64, bool)
	calcDelta3() (int64, bool)
	calcDelta4() (int64, bool)

	// adjustByDelta applies delta to every node/blossom dual variable
	// according to its current label (even: u -= delta, z += 2*delta;
	// odd: u += delta, z -= 2*delta; free: unchanged).
	adjustByDelta(delta int64)

	// findDelta2UsefulEdges/findDelta3UsefulEdges are called right after
	// adjustByDelta when delta2 (resp. delta3) was the chosen minimum,
	// so the variant can push the edges that just became tight.
	findDelta2UsefulEdges()
	findDelta3UsefulEdges()

	// getOddBlossomsToExpand is called right after adjustByDelta when
	// delta4 was the chosen minimum; it returns every non-trivial odd
	// blossom whose z has just reached 0.
	getOddBlossomsToExpand() []blossomID
}
