package pqueue

// GroupID names a group within a TwoLevelPQ. The zero value is never issued
// by CreateGroup, so an unset GroupID reliably means "no group".
type GroupID int64

// TwoLevelPQ partitions keys into groups and supports querying the minimum
// within one group or across all groups. The Galil variant uses it to track
// even-to-free edges grouped by the free root blossom they lead into (not by
// the blossom of their even endpoint), so a whole blossom's edges can be
// pulled out of delta2 contention in one GlobalMin-maintaining operation
// when the blossom stops being free.
//
// Each group is its own IndexedPQ; a top-level IndexedPQ[GroupID] tracks
// every group's current minimum so GlobalMin is a single O(log n) read
// instead of a scan over groups.
type TwoLevelPQ[K comparable] struct {
	groups    map[GroupID]*IndexedPQ[K]
	groupOf   map[K]GroupID
	groupMins *IndexedPQ[GroupID]
	nextGroup GroupID
}

// NewTwoLevelPQ constructs an empty TwoLevelPQ.
func NewTwoLevelPQ[K comparable]() *TwoLevelPQ[K] {
	return &TwoLevelPQ[K]{
		groups:    make(map[GroupID]*IndexedPQ[K]),
		groupOf:   make(map[K]GroupID),
		groupMins: NewIndexedPQ[GroupID](),
	}
}

// CreateGroup allocates and returns a new, empty group.
func (t *TwoLevelPQ[K]) CreateGroup() GroupID {
	t.nextGroup++
	g := t.nextGroup
	t.groups[g] = NewIndexedPQ[K]()

	return g
}

// DeleteGroup removes an empty group. It is an error to delete a non-empty
// group; callers must Delete or move out its members first.
func (t *TwoLevelPQ[K]) DeleteGroup(g GroupID) error {
	pq, ok := t.groups[g]
	if !ok {
		return ErrGroupNotFound
	}
	if pq.Len() != 0 {
		return ErrKeyExists // group still populated; refuse rather than leak members
	}
	delete(t.groups, g)
	_ = t.groupMins.Delete(g)

	return nil
}

// DropGroup pulls an entire group out of min contention in O(log n),
// members and all: the group leaves the top-level heap and the groups
// table immediately, while its keys' group mappings are reclaimed lazily
// the next time each key is looked up (GroupOf/Insert/Delete/
// ChangePriority treat a key whose group has been dropped as absent).
// This is the bulk-extraction primitive behind "a blossom's whole edge
// group leaves delta2 contention when its label changes".
func (t *TwoLevelPQ[K]) DropGroup(g GroupID) error {
	if _, ok := t.groups[g]; !ok {
		return ErrGroupNotFound
	}
	delete(t.groups, g)
	_ = t.groupMins.Delete(g)

	return nil
}

// liveGroupOf resolves key's group, lazily discarding a mapping that
// points at a dropped group.
func (t *TwoLevelPQ[K]) liveGroupOf(key K) (GroupID, bool) {
	g, ok := t.groupOf[key]
	if !ok {
		return 0, false
	}
	if _, live := t.groups[g]; !live {
		delete(t.groupOf, key)
		return 0, false
	}

	return g, true
}

// Insert adds key with the given priority to group g. A key already held
// by a live group is rejected with ErrKeyExists; a mapping left behind by
// a DropGroup does not count.
func (t *TwoLevelPQ[K]) Insert(g GroupID, key K, priority int64) error {
	pq, ok := t.groups[g]
	if !ok {
		return ErrGroupNotFound
	}
	if cur, held := t.liveGroupOf(key); held && cur != g {
		return ErrKeyExists
	}
	if err := pq.Insert(key, priority); err != nil {
		return err
	}
	t.groupOf[key] = g
	t.syncGroupMin(g)

	return nil
}

// Delete removes key from whichever group holds it.
func (t *TwoLevelPQ[K]) Delete(key K) error {
	g, ok := t.liveGroupOf(key)
	if !ok {
		return ErrKeyNotFound
	}
	if err := t.groups[g].Delete(key); err != nil {
		return err
	}
	delete(t.groupOf, key)
	t.syncGroupMin(g)

	return nil
}

// ChangePriority updates key's priority in place.
func (t *TwoLevelPQ[K]) ChangePriority(key K, priority int64) error {
	g, ok := t.liveGroupOf(key)
	if !ok {
		return ErrKeyNotFound
	}
	if err := t.groups[g].ChangePriority(key, priority); err != nil {
		return err
	}
	t.syncGroupMin(g)

	return nil
}

// GroupOf reports which group currently holds key. Keys left behind by a
// DropGroup report as absent.
func (t *TwoLevelPQ[K]) GroupOf(key K) (GroupID, bool) {
	return t.liveGroupOf(key)
}

// GroupMin returns the minimum-priority key within group g.
func (t *TwoLevelPQ[K]) GroupMin(g GroupID) (K, int64, bool) {
	pq, ok := t.groups[g]
	if !ok {
		var zero K
		return zero, 0, false
	}

	return pq.Min()
}

// GlobalMin returns the minimum-priority key across every group.
func (t *TwoLevelPQ[K]) GlobalMin() (K, int64, bool) {
	g, _, ok := t.groupMins.Min()
	if !ok {
		var zero K
		return zero, 0, false
	}

	return t.groups[g].Min()
}

// Concat merges group b into group a and returns a, moving every member of
// the smaller group into the larger one (small-to-large merging) so that,
// amortised over the whole run, no element changes groups more than
// O(log n) times. b is deleted.
func (t *TwoLevelPQ[K]) Concat(a, b GroupID) (GroupID, error) {
	pa, ok := t.groups[a]
	if !ok {
		return a, ErrGroupNotFound
	}
	pb, ok := t.groups[b]
	if !ok {
		return a, ErrGroupNotFound
	}
	if pa.Len() < pb.Len() {
		a, b = b, a
		pa, pb = pb, pa
	}
	for pb.Len() > 0 {
		k, p, _ := pb.PopMin()
		_ = pa.Insert(k, p)
		t.groupOf[k] = a
	}
	delete(t.groups, b)
	_ = t.groupMins.Delete(b)
	t.syncGroupMin(a)

	return a, nil
}

// Split moves the given keys (which must all belong to g) out of g into a
// freshly created group, and returns that group's id — the operation the
// driver uses to peel a sub-blossom's edges off during expansion.
func (t *TwoLevelPQ[K]) Split(g GroupID, keys []K) (GroupID, error) {
	src, ok := t.groups[g]
	if !ok {
		return 0, ErrGroupNotFound
	}
	dst := t.CreateGroup()
	for _, k := range keys {
		if t.groupOf[k] != g {
			continue // not a member of g; ignore rather than partially fail
		}
		p, _ := src.Priority(k)
		_ = src.Delete(k)
		_ = t.groups[dst].Insert(k, p)
		t.groupOf[k] = dst
	}
	t.syncGroupMin(g)
	t.syncGroupMin(dst)

	return dst, nil
}

// AddOffset shifts every entry's externally visible priority by delta,
// applied once per group rather than once per key: it forwards to each
// group's own IndexedPQ offset, then to groupMins, which mirrors each
// group's current minimum and must shift by the same amount to stay
// consistent with it.
func (t *TwoLevelPQ[K]) AddOffset(delta int64) {
	for _, pq := range t.groups {
		pq.AddOffset(delta)
	}
	t.groupMins.AddOffset(delta)
}

func (t *TwoLevelPQ[K]) syncGroupMin(g GroupID) {
	pq, ok := t.groups[g]
	if !ok {
		return
	}
	if pq.Len() == 0 {
		_ = t.groupMins.Delete(g)
		return
	}
	_, p, _ := pq.Min()
	if t.groupMins.Contains(g) {
		_ = t.groupMins.ChangePriority(g, p)
	} else {
		_ = t.groupMins.Insert(g, p)
	}
}
