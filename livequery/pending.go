package livequery

// PendingTracker decides when a refetched order list warrants a new-order
// alert. It diffs the observed set of pending-order IDs against the
// previously seen set; comparing counts would miss a new arrival that
// coincides with another order leaving pending.
type PendingTracker struct {
	seen   map[uint]struct{}
	primed bool
}

func NewPendingTracker() *PendingTracker {
	return &PendingTracker{seen: make(map[uint]struct{})}
}

// Observe records the current pending IDs and returns the ones not seen
// before. The first observation establishes the baseline and never alerts:
// orders that were already pending when the screen opened are not "new".
func (t *PendingTracker) Observe(pendingIDs []uint) []uint {
	var fresh []uint
	for _, id := range pendingIDs {
		if _, ok := t.seen[id]; !ok {
			if t.primed {
				fresh = append(fresh, id)
			}
			t.seen[id] = struct{}{}
		}
	}
	t.primed = true
	return fresh
}
