// Package order provides domain entities and business logic for order tracking.
// It implements the Order aggregate root with lifecycle management and state
// transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces the forward-only order lifecycle
//
// Key business rules:
//   - Orders must have a valid unique identifier and customer identifier
//   - Order status follows a fixed workflow: PENDING -> PROCESSING -> SHIPPED -> DELIVERED
//   - The status moves forward one step at a time, never backward, never skipping
//   - DELIVERED is terminal: no further transitions are possible
//   - Carrier and estimated delivery are display metadata, immutable once set
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
