package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery retrieves every order assigned to a delivery partner,
// newest first, with items embedded.
type GetPartnerOrdersQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a query for a partner's assignment list.
func NewGetPartnerOrdersQuery(partnerID kernel.UUID) (GetPartnerOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerOrdersQuery{}, err
	}

	return GetPartnerOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the identifier of the partner whose orders are listed.
func (q GetPartnerOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
