package order

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCarrierAlreadySet is returned when attempting to overwrite carrier metadata.
	// Carrier and estimated delivery are display metadata, immutable once set.
	ErrCarrierAlreadySet = errors.New("carrier is immutable once set")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from PENDING through fulfillment to DELIVERED.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Status only moves forward through the fixed lifecycle, one step at a time
//   - Carrier and estimated delivery are immutable once set
//   - updatedAt is stamped on every status advance
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer the order belongs to
	customerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// carrier is optional display metadata, immutable once set
	carrier *string

	// estimatedDelivery is optional display metadata, immutable once set
	estimatedDelivery *time.Time

	// createdAt is the creation timestamp
	createdAt time.Time

	// updatedAt is stamped on every status advance
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Pending status with creation and update timestamps set to the current time.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the owning customer (must be a valid UUID)
//   - carrier: Optional carrier name shown to the customer (nil if unknown)
//   - estimatedDelivery: Optional delivery estimate (nil if unknown)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	customerID := kernel.NewUUID()
//	order, err := NewOrder(orderID, customerID, nil, nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, customerID kernel.UUID, carrier *string, estimatedDelivery *time.Time) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:            Pending,
		carrier:           carrier,
		estimatedDelivery: estimatedDelivery,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from its persisted state.
// Unlike NewOrder it accepts an arbitrary point in the lifecycle, allowing
// repositories to rehydrate aggregates without replaying transitions.
//
// Returns a validation error if the identifiers or status are invalid.
func RestoreOrder(
	id, customerID kernel.UUID,
	status Status,
	carrier *string,
	estimatedDelivery *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		carrier:           carrier,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer owning the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Carrier returns the carrier display metadata.
// Returns nil if no carrier has been set.
func (o *Order) Carrier() *string {
	return o.carrier
}

// EstimatedDelivery returns the estimated delivery display metadata.
// Returns nil if no estimate has been set.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status advance.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order forward by exactly one lifecycle step and stamps
// updatedAt with the current time.
//
// This method enforces the following business rules:
//   - The status progression is PENDING -> PROCESSING -> SHIPPED -> DELIVERED
//   - A DELIVERED order cannot advance further
//   - Steps are never skipped and the status never moves backward
//
// Returns:
//   - nil on a successful advance
//   - error if the order is in a terminal or invalid status
//
// Example:
//
//	if err := order.Advance(); err != nil {
//	    // Order was already DELIVERED
//	}
func (o *Order) Advance() error {
	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignCarrier sets the carrier display metadata exactly once.
// Returns ErrCarrierAlreadySet if a carrier is already recorded.
func (o *Order) AssignCarrier(carrier string) error {
	if o.carrier != nil {
		return ErrCarrierAlreadySet
	}
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	o.carrier = &carrier
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

// setStatus validates and sets the order's lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
