package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// ErrOrderItemsIncomplete signals that an order was committed but some or all
// of its item rows were not. The order itself is valid and trackable.
var ErrOrderItemsIncomplete = errors.New("order was created but its items are incomplete")

// OrderItemsIncompleteError carries the id of the items-incomplete order and
// the storage failure that caused it.
type OrderItemsIncompleteError struct {
	OrderID string
	Cause   error
}

// NewOrderItemsIncompleteError creates an OrderItemsIncompleteError.
func NewOrderItemsIncompleteError(orderID string, cause error) *OrderItemsIncompleteError {
	return &OrderItemsIncompleteError{OrderID: orderID, Cause: cause}
}

func (e *OrderItemsIncompleteError) Error() string {
	s := fmt.Sprintf("%s: %s", ErrOrderItemsIncomplete, e.OrderID)
	if e.Cause != nil {
		s += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return s
}

func (e *OrderItemsIncompleteError) Unwrap() error {
	return ErrOrderItemsIncomplete
}

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Pending status with no partner and no location.
//
// The order row and its item rows are committed in separate transactions.
// When the item insert fails after the order committed, the handler returns
// an OrderItemsIncompleteError instead of rolling the order back: items are
// additive and the order remains valid without them.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
	clock      func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for realtime notifications.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      time.Now,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.VendorID(),
		cmd.CustomerName(),
		cmd.CustomerEmail(),
		cmd.DeliveryAddress(),
		cmd.Items(),
		h.clock().UTC(),
	)
	if err != nil {
		return err
	}

	if err = h.commitOrder(ctx, aggregate); err != nil {
		return err
	}

	if err = h.commitItems(ctx, aggregate); err != nil {
		return NewOrderItemsIncompleteError(aggregate.ID().String(), err)
	}

	// Realtime push is best effort.
	_ = h.publisher.Publish(ctx, ports.EventOrderCreated, aggregate)

	return nil
}

func (h *CreateOrderCommandHandler) commitOrder(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) commitItems(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().AddItems(ctx, aggregate.ID(), aggregate.Items()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
