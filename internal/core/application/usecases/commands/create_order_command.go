package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput carries one raw order line as received from the caller.
// Validation happens when the command converts it to a domain item.
type ItemInput struct {
	Name     string
	Quantity int
}

// CreateOrderCommand represents a vendor's request to create a new order.
// Encapsulates customer details, the delivery address and at least one item.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), vendorID,
//	    "Alice", "alice@example.com", "12 Oak Avenue",
//	    []ItemInput{{Name: "Margherita", Quantity: 2}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	vendorID        kernel.UUID
	customerName    string
	customerEmail   string
	deliveryAddress string
	items           []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, customer name, delivery address and every item.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	customerName string,
	customerEmail string,
	deliveryAddress string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the identifier of the vendor creating the order.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the recipient's email, possibly empty.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(input.Name, input.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
