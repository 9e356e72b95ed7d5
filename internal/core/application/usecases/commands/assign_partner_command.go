package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a vendor's request to assign a delivery
// partner to one of their pending orders.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	vendorID  kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign a partner to an order.
// All three identifiers must be valid UUIDs.
func NewAssignPartnerCommand(orderID kernel.UUID, vendorID kernel.UUID, partnerID kernel.UUID) (AssignPartnerCommand, error) {
	command := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setVendorID(vendorID),
		command.setPartnerID(partnerID),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the identifier of the requesting vendor.
func (c AssignPartnerCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// PartnerID returns the identifier of the delivery partner to assign.
func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *AssignPartnerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignPartnerCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *AssignPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
