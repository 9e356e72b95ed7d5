package account

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

// Domain errors for delivery partner operations.
var (
	// ErrPartnerNameIsRequired is returned when creating a partner without a name.
	ErrPartnerNameIsRequired = errs.NewValueIsRequiredError("partner name")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")
)

// DeliveryPartner is the business entity that carries orders to customers.
// A partner is linked 1:1 to an authenticated account at signup and is
// referenced by orders through their assigned partner id. The entity itself
// carries no mutable delivery state; live position lives on the order.
type DeliveryPartner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// accountID links the partner to its authenticated account (1:1)
	accountID kernel.UUID
	// name is the partner's display name
	name string
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a partner record for a freshly signed-up account.
// All identifiers must be valid and the name non-empty.
func NewDeliveryPartner(id kernel.UUID, accountID kernel.UUID, name string) (*DeliveryPartner, error) {
	if err := errors.Join(id.Validate(), accountID.Validate()); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrPartnerNameIsRequired
	}

	return &DeliveryPartner{
		id:        id,
		accountID: accountID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the partner was created through the constructor.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// AccountID returns the linked authenticated account's identifier.
func (p *DeliveryPartner) AccountID() kernel.UUID {
	return p.accountID
}

// Name returns the partner's display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}
