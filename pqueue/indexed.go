package pqueue

// IndexedPQ is a binary min-heap over int64 priorities, indexed so that an
// existing key's priority can be looked up and changed in O(log n) without a
// linear scan. The Galil variant uses it to hold the duals of nodes in even
// blossoms (uEven), the duals of odd compound blossoms (zOdd), and the
// even-to-even edges keyed by half-slack (pq3).
//
// A single additive baseline offset is tracked separately from the stored
// priorities (AddOffset), so a bulk dual-variable adjustment that touches
// every entry in a PQ can be applied in O(1): every Priority/Min/PopMin read
// adds the current offset before returning, and ChangePriority subtracts it
// before storing, so the heap's internal ordering — which only ever compares
// two stored priorities against each other — is completely unaffected by the
// offset (it shifts every entry by the same constant).
type IndexedPQ[K comparable] struct {
	items  []pqItem[K]
	index  map[K]int
	offset int64
	seq    int64
}

type pqItem[K comparable] struct {
	key      K
	priority int64 // stored priority, i.e. before offset
	seq      int64 // insertion order, used to break priority ties deterministically
}

// NewIndexedPQ constructs an empty IndexedPQ.
func NewIndexedPQ[K comparable]() *IndexedPQ[K] {
	return &IndexedPQ[K]{index: make(map[K]int)}
}

// Len returns the number of keys currently held.
func (pq *IndexedPQ[K]) Len() int { return len(pq.items) }

// Contains reports whether key is present.
func (pq *IndexedPQ[K]) Contains(key K) bool {
	_, ok := pq.index[key]
	return ok
}

// Priority returns the externally visible priority (stored + offset) for key.
func (pq *IndexedPQ[K]) Priority(key K) (int64, bool) {
	i, ok := pq.index[key]
	if !ok {
		return 0, false
	}
	return pq.items[i].priority + pq.offset, true
}

// Insert adds key with the given externally visible priority.
// Inserting an already-present key is a no-op error (ErrKeyExists) rather
// than a silent ChangePriority — callers that want that must say so.
func (pq *IndexedPQ[K]) Insert(key K, priority int64) error {
	if _, ok := pq.index[key]; ok {
		return ErrKeyExists
	}
	pq.seq++
	it := pqItem[K]{key: key, priority: priority - pq.offset, seq: pq.seq}
	pq.items = append(pq.items, it)
	i := len(pq.items) - 1
	pq.index[key] = i
	pq.siftUp(i)

	return nil
}

// ChangePriority sets key's externally visible priority, restoring the heap
// invariant in either direction (the new priority may be higher or lower).
func (pq *IndexedPQ[K]) ChangePriority(key K, priority int64) error {
	i, ok := pq.index[key]
	if !ok {
		return ErrKeyNotFound
	}
	old := pq.items[i].priority
	pq.items[i].priority = priority - pq.offset
	if pq.items[i].priority < old {
		pq.siftUp(i)
	} else if pq.items[i].priority > old {
		pq.siftDown(i)
	}

	return nil
}

// DecreaseKey lowers key's priority only if the new value is strictly
// smaller than the current one; returns false (no-op) otherwise.
func (pq *IndexedPQ[K]) DecreaseKey(key K, priority int64) (bool, error) {
	cur, ok := pq.Priority(key)
	if !ok {
		return false, ErrKeyNotFound
	}
	if priority >= cur {
		return false, nil
	}

	return true, pq.ChangePriority(key, priority)
}

// Delete removes key from the queue.
func (pq *IndexedPQ[K]) Delete(key K) error {
	i, ok := pq.index[key]
	if !ok {
		return ErrKeyNotFound
	}
	last := len(pq.items) - 1
	pq.swap(i, last)
	pq.items = pq.items[:last]
	delete(pq.index, key)
	if i < len(pq.items) {
		pq.siftUp(i)
		pq.siftDown(i)
	}

	return nil
}

// Min returns the key with smallest externally visible priority without
// removing it.
func (pq *IndexedPQ[K]) Min() (K, int64, bool) {
	if len(pq.items) == 0 {
		var zero K
		return zero, 0, false
	}

	return pq.items[0].key, pq.items[0].priority + pq.offset, true
}

// PopMin removes and returns the minimum entry.
func (pq *IndexedPQ[K]) PopMin() (K, int64, bool) {
	k, p, ok := pq.Min()
	if !ok {
		return k, p, ok
	}
	_ = pq.Delete(k)

	return k, p, true
}

// AddOffset shifts every entry's externally visible priority by delta in
// O(1), without touching the heap array — the "priority-queue offset trick"
// the Galil variant uses to shift a whole queue on a dual adjustment instead
// of rewriting each entry.
func (pq *IndexedPQ[K]) AddOffset(delta int64) {
	pq.offset += delta
}

func (pq *IndexedPQ[K]) less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq // deterministic tie-break: earlier insertion wins
}

func (pq *IndexedPQ[K]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.index[pq.items[i].key] = i
	pq.index[pq.items[j].key] = j
}

func (pq *IndexedPQ[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

func (pq *IndexedPQ[K]) siftDown(i int) {
	n := len(pq.items)
	for {
		left, right, smallest := 2*i+1, 2*i+2, i
		if left < n && pq.less(left, smallest) {
			smallest = left
		}
		if right < n && pq.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq.swap(i, smallest)
		i = smallest
	}
}
