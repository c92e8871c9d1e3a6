package streaming

import (
	"sync/atomic"
	"time"
)

// EventKind names the event taxonomy on the wire.
type EventKind string

const (
	// KindStatus marks a snapshot or transition event.
	KindStatus EventKind = "status"
	// KindError marks a terminal error event. The stream ends after it.
	KindError EventKind = "error"
)

// Sequence issues monotonically increasing event identifiers.
// One instance is shared by every event producer in the process so that
// identifiers are unique across orders and a client can detect gaps.
type Sequence struct {
	n atomic.Int64
}

// NewSequence creates a sequence starting at one.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier. Safe for concurrent use.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// StatusPayload is the JSON body of a status event.
// Carrier and EstimatedDelivery are null until the order has them set.
type StatusPayload struct {
	OrderID           string     `json:"orderId"`
	Status            string     `json:"status"`
	Carrier           *string    `json:"carrier"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	EventID           int64      `json:"eventId"`
}

// ErrorPayload is the JSON body of an error event.
type ErrorPayload struct {
	Message string `json:"message"`
}

// Event is one message destined for an order's subscribers.
// Data holds either a StatusPayload or an ErrorPayload; the transport
// serializes it when writing the stream frame.
type Event struct {
	ID   int64
	Kind EventKind
	Data any
}

// NewStatusEvent builds a status event from an order snapshot.
// The identifier is stamped once here, so every subscriber of the same
// broadcast observes the same eventId.
func NewStatusEvent(seq *Sequence, snap OrderSnapshot) Event {
	id := seq.Next()
	return Event{
		ID:   id,
		Kind: KindStatus,
		Data: StatusPayload{
			OrderID:           snap.OrderID.String(),
			Status:            snap.Status.String(),
			Carrier:           snap.Carrier,
			EstimatedDelivery: snap.EstimatedDelivery,
			UpdatedAt:         snap.UpdatedAt,
			EventID:           id,
		},
	}
}

// NewErrorEvent builds a terminal error event.
func NewErrorEvent(seq *Sequence, message string) Event {
	return Event{
		ID:   seq.Next(),
		Kind: KindError,
		Data: ErrorPayload{Message: message},
	}
}
