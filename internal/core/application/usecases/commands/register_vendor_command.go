package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrRegisterVendorCommandIsNotConstructed = errors.New(
	"RegisterVendorCommand must be created via NewRegisterVendorCommand constructor",
)

// RegisterVendorCommand represents a request to register a vendor profile
// for an authenticated account.
type RegisterVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID  kernel.UUID
	accountID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewRegisterVendorCommand creates a command to register a vendor.
func NewRegisterVendorCommand(vendorID kernel.UUID, accountID kernel.UUID, name string) (RegisterVendorCommand, error) {
	command := RegisterVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVendorID(vendorID),
		command.setAccountID(accountID),
		command.setName(name),
	); err != nil {
		return RegisterVendorCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVendorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVendorCommandIsNotConstructed)
}

// VendorID returns the identifier for the new vendor profile.
func (c RegisterVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// AccountID returns the identifier of the owning account.
func (c RegisterVendorCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the vendor's display name.
func (c RegisterVendorCommand) Name() string {
	return c.name
}

func (c *RegisterVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *RegisterVendorCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterVendorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
