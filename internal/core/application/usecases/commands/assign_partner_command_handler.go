package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/ports"
)

// AssignPartnerCommandHandler handles partner assignment.
//
// The partner must exist, the order must belong to the requesting vendor and
// the order must still be Pending. All checks run inside one transaction so a
// concurrent assignment of the same order fails on the status transition.
type AssignPartnerCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.OrderPublisher
	clock      func() time.Time
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment.
func NewAssignPartnerCommandHandler(uowFactory AssignmentUoWFactory, publisher ports.OrderPublisher) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      time.Now,
	}
}

// Handle processes the assignment command.
func (h *AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
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

	partner, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(cmd.VendorID(), partner.ID(), h.clock().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Realtime push is best effort.
	_ = h.publisher.Publish(ctx, ports.EventOrderAssigned, aggregate)

	return nil
}
