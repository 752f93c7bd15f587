package cardinality

// Node is an opaque vertex identifier, as seen by callers of this package.
type Node = string

// EdgeID is an opaque edge identifier, as seen by callers of this package.
type EdgeID = string

// infLevel marks a vertex level not yet assigned by the current phase's
// search.
const infLevel = int(1 << 30)

// bloom is an odd structure discovered mid-phase by a failed double-DFS
// and contracted into a single unit for the remainder of the phase: every
// vertex absorbed into it is unioned under base in the bloom-base
// union-find, so later bridges treat the whole bloom as one vertex.
type bloom struct {
	base     int // the one vertex every escape to an exposed vertex runs through
	tenacity int // tenacity of the bridge whose double-DFS discovered the bloom
	bridge   int // dense index of that bridge edge

	greenPeak  int // bridge endpoint the green walk started from
	redPeak    int // bridge endpoint the red walk started from
	greenColor int // colour stamped on vertices the green walk claimed
	redColor   int // colour stamped on vertices the red walk claimed
}

// vertexData is one vertex's state for the lifetime of a single phase,
// except match and matchEdge, which persist across phases.
type vertexData struct {
	match     int // matched vertex index, -1 if exposed
	matchEdge int // dense edge index backing match, -1 if exposed

	// The level search assigns at most one of the two levels (whichever
	// parity reaches the vertex first); the other only ever arrives as a
	// tenacity complement when a bloom forms around the vertex.
	evenLevel int
	oddLevel  int

	bloom *bloom // the first bloom that absorbed this vertex this phase, nil if none

	predecessors []int // vertices one level closer to an exposed vertex that reached this one
	predEdges    []int // dense edge indices parallel to predecessors
	successors   []int // vertices this one helped reach, one level further out

	count int // unerased predecessors remaining; reaching 0 cascades the erasure

	color  int  // double-DFS colour stamped during the current blossAug call, 0 = none
	erased bool // consumed by an augmentation; out of the phase for good
}

// edgeKind classifies an edge's role in the current phase's search forest.
type edgeKind int

const (
	edgeNone   edgeKind = iota
	edgeProp            // propagation edge: extended the level structure one level out
	edgeBridge          // both endpoints levelled with the same parity; odd tenacity
)

// edgeData is one edge's state: u and v are fixed at construction, kind is
// reset every phase.
type edgeData struct {
	kind edgeKind
	u, v int
}
