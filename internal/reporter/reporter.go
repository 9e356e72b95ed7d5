// Package reporter implements the delivery partner's location sampling loop.
// It acquires device fixes from a GeolocationSource and forwards them to the
// order use cases at a bounded cadence while a delivery is in progress.
package reporter

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// DefaultMinInterval bounds how often samples are forwarded. Fixes arriving
// faster than this are dropped, never queued.
const DefaultMinInterval = 3 * time.Second

// Use case contracts consumed by the reporter.
type (
	StartDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.StartDeliveryCommand) error
	}
	ReportLocationHandler interface {
		Handle(ctx context.Context, cmd commands.ReportLocationCommand) error
	}
)

// Reporter drives position sampling for one order and one partner. Start
// acquires an immediate fix, moves the order out for delivery and then
// watches for further fixes until Stop is called or acquisition fails.
// A Reporter never runs two overlapping watches.
type Reporter struct {
	source         GeolocationSource
	startDelivery  StartDeliveryHandler
	reportLocation ReportLocationHandler
	logger         *slog.Logger

	orderID     kernel.UUID
	partnerID   kernel.UUID
	minInterval time.Duration
	onError     func(error)
	clock       func() time.Time

	mu       sync.Mutex
	active   bool
	handle   WatchHandle
	lastSent time.Time
}

// NewReporter creates a reporter for the given order and partner. onError
// receives categorized acquisition failures after the watch has been
// cancelled; pass nil to only log them.
func NewReporter(
	source GeolocationSource,
	startDelivery StartDeliveryHandler,
	reportLocation ReportLocationHandler,
	logger *slog.Logger,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	onError func(error),
) (*Reporter, error) {
	if source == nil {
		return nil, errs.NewValueIsRequiredError("source")
	}
	if startDelivery == nil {
		return nil, errs.NewValueIsRequiredError("startDelivery")
	}
	if reportLocation == nil {
		return nil, errs.NewValueIsRequiredError("reportLocation")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Reporter{
		source:         source,
		startDelivery:  startDelivery,
		reportLocation: reportLocation,
		logger:         logger.With("component", "location_reporter", "order_id", orderID.String()),
		orderID:        orderID,
		partnerID:      partnerID,
		minInterval:    DefaultMinInterval,
		onError:        onError,
		clock:          time.Now,
	}, nil
}

// Start acquires one immediate fix, starts the delivery if it has not been
// started yet, forwards the fix and begins watching. Starting an already
// active reporter is a no-op.
func (r *Reporter) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	position, err := r.source.GetCurrentPosition(ctx)
	if err != nil {
		return err
	}

	if err = r.beginDelivery(ctx); err != nil {
		return err
	}

	if err = r.forward(ctx, position); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		// Lost a race against a concurrent Start.
		return nil
	}

	handle, err := r.source.WatchPosition(r.handleSample, r.handleAcquisitionError)
	if err != nil {
		return err
	}

	r.active = true
	r.handle = handle
	return nil
}

// Stop cancels the watch. Samples already dispatched are not recalled.
// Stopping an inactive reporter is a no-op.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}

	r.source.ClearWatch(r.handle)
	r.active = false
}

// Active reports whether a watch is currently running.
func (r *Reporter) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// beginDelivery moves the order to OutForDelivery. The order may already be
// out for delivery when the reporter restarts after a pause, so an invalid
// transition is not a failure here.
func (r *Reporter) beginDelivery(ctx context.Context) error {
	cmd, err := commands.NewStartDeliveryCommand(r.orderID, r.partnerID)
	if err != nil {
		return err
	}

	if err = r.startDelivery.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return nil
		}
		return err
	}
	return nil
}

// forward sends one position sample to the lifecycle engine.
func (r *Reporter) forward(ctx context.Context, position Position) error {
	sampledAt := position.SampledAt
	if sampledAt.IsZero() {
		sampledAt = r.clock().UTC()
	}

	cmd, err := commands.NewReportLocationCommand(
		r.orderID, r.partnerID, position.Latitude, position.Longitude, sampledAt,
	)
	if err != nil {
		return err
	}

	return r.reportLocation.Handle(ctx, cmd)
}

// handleSample throttles and forwards watched fixes. Fixes inside the
// minimum interval are dropped. A delivered order rejects further samples;
// that shuts the watch down instead of looping on rejected sends.
func (r *Reporter) handleSample(position Position) {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return
	}

	now := r.clock()
	if !r.lastSent.IsZero() && now.Sub(r.lastSent) < r.minInterval {
		r.mu.Unlock()
		return
	}
	r.lastSent = now
	r.mu.Unlock()

	if err := r.forward(context.Background(), position); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			r.logger.Info("order no longer accepts samples, stopping watch")
			r.Stop()
			return
		}
		r.logger.Warn("failed to forward location sample", "error", err)
	}
}

// handleAcquisitionError cancels the watch and surfaces the failure.
func (r *Reporter) handleAcquisitionError(err error) {
	r.Stop()
	r.logger.Warn("position acquisition failed", "error", err)
	if r.onError != nil {
		r.onError(err)
	}
}
