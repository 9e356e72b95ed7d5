package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrGetStaleDeliveriesQueryIsNotConstructed = errors.New(
	"GetStaleDeliveriesQuery must be created via NewGetStaleDeliveriesQuery constructor",
)

// GetStaleDeliveriesQuery finds orders that are out for delivery but have not
// received a location sample since the cutoff. Used by the stale tracker job
// to flag deliveries whose reporter likely died.
type GetStaleDeliveriesQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleDeliveriesQuery creates a query for stale in-flight deliveries.
// The cutoff must be non-zero.
func NewGetStaleDeliveriesQuery(cutoff time.Time) (GetStaleDeliveriesQuery, error) {
	if cutoff.IsZero() {
		return GetStaleDeliveriesQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStaleDeliveriesQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleDeliveriesQueryIsNotConstructed)
}

// Cutoff returns the staleness threshold.
func (q GetStaleDeliveriesQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStaleDeliveriesQueryResponse identifies one stale delivery.
type GetStaleDeliveriesQueryResponse struct {
	OrderID   kernel.UUID
	PartnerID kernel.UUID
	UpdatedAt time.Time
}
