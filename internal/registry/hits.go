package registry

// HitSet records obstacles struck by a projectile that their owning task has
// not yet reaped. The projectile marks, the falling obstacle checks and clears.
type HitSet struct {
	marked map[ID]struct{}
}

// NewHitSet creates an empty hit set.
func NewHitSet() *HitSet {
	return &HitSet{marked: make(map[ID]struct{})}
}

// Mark records a hit on the obstacle.
func (h *HitSet) Mark(id ID) {
	h.marked[id] = struct{}{}
}

// Has reports whether the obstacle has been hit.
func (h *HitSet) Has(id ID) bool {
	_, ok := h.marked[id]
	return ok
}

// Clear forgets a hit once the owner has handled it.
func (h *HitSet) Clear(id ID) {
	delete(h.marked, id)
}

// Len returns the number of unreaped hits.
func (h *HitSet) Len() int {
	return len(h.marked)
}
