package order

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed, forward-only progression to
// ensure orders follow the fulfillment workflow.
//
// State transitions:
//
//	PENDING ──> PROCESSING ──> SHIPPED ──> DELIVERED
//
// The status only ever moves forward through this sequence, one step at a
// time. It never moves backward and never skips a step. DELIVERED is the
// terminal state with no further transitions allowed.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the event stream wire format.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to enter fulfillment.
	Pending

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order has been handed to a carrier.
	Shipped

	// Delivered indicates the order has reached the customer.
	// This is the terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the wire-format values carried by status events.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
	}
}

// StatusFromString parses a wire-format status string back into a Status.
// Returns an error for strings that do not name a valid lifecycle state.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Delivered.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
//
// Returns:
//   - "PENDING", "PROCESSING", "SHIPPED", or "DELIVERED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is the final lifecycle state.
// A simulation run that observes a terminal status stops scheduling
// further ticks for its order.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateAdvance checks if the status allows a forward transition without
// performing it.
//
// Valid statuses for advancing:
//   - Pending (advances to Processing)
//   - Processing (advances to Shipped)
//   - Shipped (advances to Delivered)
//
// Invalid statuses for advancing:
//   - Delivered (terminal, no further transitions)
//   - Unknown (invalid status)
//
// Returns:
//   - nil if a forward transition is allowed from the current status
//   - error with details if the status cannot advance
func (s Status) ValidateAdvance() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a terminal status and cannot advance", s.String()),
		)
	}
	return nil
}

// Next transitions the status forward by exactly one lifecycle step.
//
// Valid transitions:
//   - Pending -> Processing
//   - Processing -> Shipped
//   - Shipped -> Delivered
//
// Invalid transitions:
//   - Delivered -> anything (terminal state)
//   - Unknown -> anything (invalid initial state)
//
// Returns:
//   - (next status, nil) on a valid transition
//   - (0, error) if the status cannot advance
//
// This method is used by Order.Advance() to enforce the forward-only,
// no-skips lifecycle invariant.
func (s Status) Next() (Status, error) {
	if err := s.ValidateAdvance(); err != nil {
		return 0, err
	}

	return s + 1, nil
}
