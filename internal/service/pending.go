package service

import "sync"

// PendingSet tracks item ids with an in-flight remote persistence call.
// Membership excludes any second concurrent transition for that id.
type PendingSet struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

// NewPendingSet returns an empty set.
func NewPendingSet() *PendingSet {
	return &PendingSet{ids: make(map[int64]struct{})}
}

// TryAcquire inserts id and reports whether it was absent. A false return
// means another transition for the same item is still in flight.
func (p *PendingSet) TryAcquire(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.ids[id]; busy {
		return false
	}
	p.ids[id] = struct{}{}
	return true
}

// Release removes id from the set.
func (p *PendingSet) Release(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ids, id)
}

// Has reports whether id has a transition in flight.
func (p *PendingSet) Has(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ids[id]
	return ok
}

// Empty reports whether no transition is in flight.
func (p *PendingSet) Empty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ids) == 0
}
