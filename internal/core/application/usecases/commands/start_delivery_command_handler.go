package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/ports"
)

// StartDeliveryCommandHandler moves an Assigned order to OutForDelivery on
// behalf of its delivery partner.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
	clock      func() time.Time
}

// NewStartDeliveryCommandHandler creates a handler for delivery starts.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderPublisher) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      time.Now,
	}
}

// Handle processes the start delivery command.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	if err = aggregate.StartDelivery(cmd.PartnerID(), h.clock().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Realtime push is best effort.
	_ = h.publisher.Publish(ctx, ports.EventOrderOutForDeliv, aggregate)

	return nil
}
