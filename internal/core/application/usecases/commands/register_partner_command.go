package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrRegisterPartnerCommandIsNotConstructed = errors.New(
	"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
)

// RegisterPartnerCommand represents a request to register a delivery partner
// profile for an authenticated account.
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	accountID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand creates a command to register a delivery partner.
func NewRegisterPartnerCommand(partnerID kernel.UUID, accountID kernel.UUID, name string) (RegisterPartnerCommand, error) {
	command := RegisterPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setAccountID(accountID),
		command.setName(name),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new partner profile.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// AccountID returns the identifier of the owning account.
func (c RegisterPartnerCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the partner's display name.
func (c RegisterPartnerCommand) Name() string {
	return c.name
}

func (c *RegisterPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *RegisterPartnerCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterPartnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
