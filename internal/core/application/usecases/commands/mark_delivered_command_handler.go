package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/ports"
)

// MarkDeliveredCommandHandler finalizes an order. Delivered is terminal, so a
// repeated delivery attempt fails on the status transition.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
	clock      func() time.Time
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderPublisher) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      time.Now,
	}
}

// Handle processes the mark delivered command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(cmd.PartnerID(), h.clock().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Realtime push is best effort.
	_ = h.publisher.Publish(ctx, ports.EventOrderDelivered, aggregate)

	return nil
}
