package order

import (
	"errors"
	"fmt"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one line of an order: a product name and a
// positive quantity. Items keep their insertion order, which is also the
// display order.
type Item struct { //nolint:recvcheck //using for validation
	name     string
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a validated order item.
// The name must be non-empty and the quantity at least 1.
func NewItem(name string, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setName(name), item.setQuantity(quantity)); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	i.quantity = quantity
	return nil
}
