package streaming

import (
	"math/rand/v2"
	"time"

	"tracker/internal/core/domain/model/order"
)

// TimingPolicy decides how long the simulator waits before advancing an
// order out of the given status.
type TimingPolicy interface {
	Delay(status order.Status) time.Duration
}

// delayRange is an inclusive [Min, Max] wait interval.
type delayRange struct {
	Min time.Duration
	Max time.Duration
}

// RandomRangePolicy draws each delay uniformly from a per-status range.
// This is the production policy: progression is slow enough to watch.
type RandomRangePolicy struct {
	ranges   map[order.Status]delayRange
	fallback delayRange
}

// NewRandomRangePolicy creates the default randomized timing policy.
func NewRandomRangePolicy() RandomRangePolicy {
	return RandomRangePolicy{
		ranges: map[order.Status]delayRange{
			order.Pending:    {Min: 3 * time.Second, Max: 5 * time.Second},
			order.Processing: {Min: 5 * time.Second, Max: 7 * time.Second},
			order.Shipped:    {Min: 5 * time.Second, Max: 7 * time.Second},
		},
		fallback: delayRange{Min: 5 * time.Second, Max: 7 * time.Second},
	}
}

// Delay returns a uniformly random duration from the status's range.
func (p RandomRangePolicy) Delay(status order.Status) time.Duration {
	r, ok := p.ranges[status]
	if !ok {
		r = p.fallback
	}
	return r.Min + rand.N(r.Max-r.Min+1)
}

// FixedDelayPolicy waits the same short interval between every step.
// Used in deterministic mode so a full progression is observable in
// well under a second.
type FixedDelayPolicy struct {
	interval time.Duration
}

// NewFixedDelayPolicy creates a fixed-interval timing policy.
func NewFixedDelayPolicy(interval time.Duration) FixedDelayPolicy {
	return FixedDelayPolicy{interval: interval}
}

// Delay returns the fixed interval regardless of status.
func (p FixedDelayPolicy) Delay(order.Status) time.Duration {
	return p.interval
}
