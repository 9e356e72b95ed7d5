// Package order provides domain entities and business logic for order
// lifecycle management in the delivery tracking system. It implements the
// Order aggregate root with its status state machine and location merging.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, lifecycle, and the
//     last known delivery location
//   - Status: a state machine enforcing the fixed status sequence
//   - Item: a value object for one order line
//
// Key business rules:
//   - status moves monotonically along Pending -> Assigned -> OutForDelivery
//     -> Delivered; Delivered is terminal
//   - only the owning vendor assigns a partner; only the assigned partner
//     starts delivery, reports location, and marks delivered
//   - location samples are merged last-write-wins with no ordering enforcement
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
