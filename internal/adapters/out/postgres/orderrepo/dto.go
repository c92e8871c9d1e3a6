// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with status indexed
// for efficient querying of undelivered orders.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	Status            int        `gorm:"index"`
	Carrier           *string    `gorm:"type:text"`
	EstimatedDelivery *time.Time `gorm:"type:timestamptz"`
	CreatedAt         time.Time  `gorm:"type:timestamptz"`
	UpdatedAt         time.Time  `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional carrier metadata.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:                order.ID().Bytes(),
		CustomerID:        order.CustomerID().Bytes(),
		Status:            int(order.Status()),
		Carrier:           order.Carrier(),
		EstimatedDelivery: order.EstimatedDelivery(),
		CreatedAt:         order.CreatedAt(),
		UpdatedAt:         order.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate at its persisted lifecycle point using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Status(dto.Status),
		dto.Carrier,
		dto.EstimatedDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
