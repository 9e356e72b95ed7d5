package account

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

// Domain errors for vendor operations.
var (
	// ErrVendorNameIsRequired is returned when creating a vendor without a name.
	ErrVendorNameIsRequired = errs.NewValueIsRequiredError("vendor name")
	// ErrVendorIsNotConstructed is returned when using an improperly initialized Vendor.
	ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor constructor")
)

// Vendor is the business entity that creates orders and assigns delivery
// partners. A vendor is linked 1:1 to an authenticated account at signup and
// is never mutated by the order lifecycle afterwards; it owns zero or more
// orders through the orders' vendor id.
type Vendor struct {
	// id uniquely identifies the vendor
	id kernel.UUID
	// accountID links the vendor to its authenticated account (1:1)
	accountID kernel.UUID
	// name is the vendor's display name
	name string
	// guard ensures the vendor was properly constructed
	guard guard.ConstructorGuard
}

// NewVendor creates a vendor record for a freshly signed-up account.
// All identifiers must be valid and the name non-empty.
func NewVendor(id kernel.UUID, accountID kernel.UUID, name string) (*Vendor, error) {
	if err := errors.Join(id.Validate(), accountID.Validate()); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrVendorNameIsRequired
	}

	return &Vendor{
		id:        id,
		accountID: accountID,
		name:      name,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the vendor was created through the constructor.
func (v *Vendor) Validate() error {
	if v == nil {
		return ErrVendorIsNotConstructed
	}
	return v.guard.Validate(ErrVendorIsNotConstructed)
}

// ID returns the vendor's unique identifier.
func (v *Vendor) ID() kernel.UUID {
	return v.id
}

// AccountID returns the linked authenticated account's identifier.
func (v *Vendor) AccountID() kernel.UUID {
	return v.accountID
}

// Name returns the vendor's display name.
func (v *Vendor) Name() string {
	return v.name
}
