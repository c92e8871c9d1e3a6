package commands

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCarrierIsEmpty = errors.New("carrier must not be empty when provided")
)

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the order identity, the owning customer, and optional
// carrier/estimated-delivery display metadata.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerID        kernel.UUID
	carrier           *string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both identifiers are valid and that a provided carrier
// is not blank. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	carrier *string,
	estimatedDelivery *time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setCarrier(carrier),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer the order belongs to.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Carrier returns the optional carrier display metadata.
func (c CreateOrderCommand) Carrier() *string {
	return c.carrier
}

// EstimatedDelivery returns the optional delivery estimate.
func (c CreateOrderCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCarrier(carrier *string) error {
	if carrier != nil && *carrier == "" {
		return ErrCarrierIsEmpty
	}

	c.carrier = carrier
	return nil
}
