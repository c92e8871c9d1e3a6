package streaming

import (
	"sync"

	"tracker/internal/core/domain/model/kernel"
)

// Registry tracks which subscribers are watching which order.
// Safe for concurrent registration, deregistration, and snapshot reads
// from unrelated request and simulation contexts.
type Registry struct {
	mu   sync.RWMutex
	subs map[kernel.UUID]map[*Subscriber]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[kernel.UUID]map[*Subscriber]struct{}),
	}
}

// Register adds a subscriber for an order, creating the order's entry
// if it is the first one.
func (r *Registry) Register(orderID kernel.UUID, sub *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[orderID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		r.subs[orderID] = set
	}
	set[sub] = struct{}{}
}

// Deregister removes a subscriber. When the order's set becomes empty
// the whole entry is dropped so departed orders do not accumulate.
func (r *Registry) Deregister(orderID kernel.UUID, sub *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[orderID]
	if !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(r.subs, orderID)
	}
}

// SubscribersFor returns a snapshot of the order's current subscribers.
// The slice is owned by the caller; later registry mutations do not
// affect an in-flight broadcast iterating over it.
func (r *Registry) SubscribersFor(orderID kernel.UUID) []*Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.subs[orderID]
	if len(set) == 0 {
		return nil
	}
	snapshot := make([]*Subscriber, 0, len(set))
	for sub := range set {
		snapshot = append(snapshot, sub)
	}
	return snapshot
}

// CountAll returns the total number of live subscribers across all
// orders. Used for observability only.
func (r *Registry) CountAll() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, set := range r.subs {
		total += len(set)
	}
	return total
}

// CountFor returns the number of live subscribers for one order.
func (r *Registry) CountFor(orderID kernel.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[orderID])
}
