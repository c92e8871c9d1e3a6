package streaming

import "sync"

// defaultSubscriberBuffer holds enough events for a full lifecycle pass
// plus an error, so a reader that keeps up is never dropped.
const defaultSubscriberBuffer = 8

// Subscriber is one live connection's event sink.
// The dispatcher writes to it without blocking; the transport drains
// Events until the stream ends or Done is closed.
type Subscriber struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// NewSubscriber creates a subscriber with the default event buffer.
func NewSubscriber() *Subscriber {
	return &Subscriber{
		events: make(chan Event, defaultSubscriberBuffer),
		done:   make(chan struct{}),
	}
}

// Events returns the channel the transport reads delivered events from.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Done is closed when the subscriber has been dropped by the dispatcher.
// The transport must stop reading Events once Done is closed.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// Close marks the subscriber dead. Idempotent and safe to call
// concurrently with in-flight broadcasts.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// trySend delivers an event without blocking.
// Returns false when the subscriber is closed or its buffer is full,
// which the dispatcher treats as a write failure for this sink only.
func (s *Subscriber) trySend(event Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}
