// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	// Items are persisted separately via AddItems, so an order may exist
	// without its item rows after a partial failure.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddItems persists the item rows for an already stored order,
	// preserving their original insertion order.
	AddItems(ctx context.Context, orderID kernel.UUID, items []order.Item) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllForVendor retrieves every order created by the given vendor,
	// newest first.
	GetAllForVendor(ctx context.Context, vendorID kernel.UUID) ([]*order.Order, error)

	// GetAllForPartner retrieves every order assigned to the given delivery
	// partner, newest first.
	GetAllForPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)
}
