package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
)

// VendorRepository defines the persistence contract for vendor entities.
type VendorRepository interface {
	// Add persists a new vendor to storage.
	Add(ctx context.Context, vendor *account.Vendor) error

	// Get retrieves a vendor by its unique identifier.
	// Returns an ObjectNotFoundError when no vendor has the given id.
	Get(ctx context.Context, id kernel.UUID) (*account.Vendor, error)
}

// PartnerRepository defines the persistence contract for delivery partners.
type PartnerRepository interface {
	// Add persists a new delivery partner to storage.
	Add(ctx context.Context, partner *account.DeliveryPartner) error

	// Get retrieves a delivery partner by its unique identifier.
	// Returns an ObjectNotFoundError when no partner has the given id.
	Get(ctx context.Context, id kernel.UUID) (*account.DeliveryPartner, error)
}
