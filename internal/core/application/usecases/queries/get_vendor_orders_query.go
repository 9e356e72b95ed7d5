package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves every order a vendor has created,
// newest first, with items embedded.
type GetVendorOrdersQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for a vendor's order list.
func NewGetVendorOrdersQuery(vendorID kernel.UUID) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}

	return GetVendorOrdersQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor whose orders are listed.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}
