// Package kernel provides core domain primitives for the delivery tracking
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for a validated latitude/longitude pair
//
// These primitives enforce domain invariants, are immutable, and are safe for
// concurrent use.
package kernel
