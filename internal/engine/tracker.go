package engine

// PairKey identifies an unordered pair of entities. A is always the smaller ID.
type PairKey struct {
	A, B EntityID
}

// MakePairKey builds the canonical key for two entity IDs.
func MakePairKey(a, b EntityID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// CollisionTracker remembers which pairs are currently overlapping so that
// enter notifications fire once per contact instead of every frame.
type CollisionTracker struct {
	active map[PairKey]struct{}
}

// NewCollisionTracker creates an empty tracker.
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{active: make(map[PairKey]struct{})}
}

// Begin records an overlap. It returns true only when the pair was not
// already overlapping.
func (t *CollisionTracker) Begin(k PairKey) bool {
	if _, ok := t.active[k]; ok {
		return false
	}
	t.active[k] = struct{}{}
	return true
}

// IsColliding reports whether the pair is currently overlapping.
func (t *CollisionTracker) IsColliding(k PairKey) bool {
	_, ok := t.active[k]
	return ok
}

// End forgets a pair. Ending an unknown pair is harmless.
func (t *CollisionTracker) End(k PairKey) {
	delete(t.active, k)
}

// Retain drops every pair not present in seen.
func (t *CollisionTracker) Retain(seen map[PairKey]struct{}) {
	for k := range t.active {
		if _, ok := seen[k]; !ok {
			delete(t.active, k)
		}
	}
}

// Len returns the number of active pairs.
func (t *CollisionTracker) Len() int {
	return len(t.active)
}

// Reset forgets every pair.
func (t *CollisionTracker) Reset() {
	clear(t.active)
}
