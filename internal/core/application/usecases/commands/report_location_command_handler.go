package commands

import (
	"context"

	"ordertrack/internal/core/ports"
)

// ReportLocationCommandHandler applies a location sample to an order.
//
// Samples are last write wins: whichever sample commits later overwrites the
// stored location, regardless of its sampledAt timestamp.
type ReportLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
}

// NewReportLocationCommandHandler creates a handler for location reporting.
func NewReportLocationCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderPublisher) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the location report command.
func (h *ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
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

	if err = aggregate.ReportLocation(cmd.PartnerID(), cmd.Point(), cmd.SampledAt()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Realtime push is best effort.
	_ = h.publisher.Publish(ctx, ports.EventOrderLocation, aggregate)

	return nil
}
