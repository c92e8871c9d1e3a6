// Package kernel provides core domain primitives for the order tracking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// Order identifiers arriving from the transport layer are parsed through
// UUIDFromString, which doubles as the syntactic validity check for stream
// subscription requests: an id that does not parse is rejected before any
// registry or simulator state is touched.
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
