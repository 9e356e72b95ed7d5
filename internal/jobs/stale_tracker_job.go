package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordertrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleTrackerJob periodically flags deliveries that are out for delivery but
// have stopped sending location samples. Runs every minute; a delivery whose
// last update is older than the threshold likely lost its reporter.
type StaleTrackerJob struct {
	handler   queries.GetStaleDeliveriesQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleTrackerJob creates the job. threshold is how long a delivery may go
// without a sample before it is flagged.
func NewStaleTrackerJob(
	handler queries.GetStaleDeliveriesQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleTrackerJob {
	return &StaleTrackerJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_tracker_job"),
	}
}

// Start schedules the job to run every minute.
func (j *StaleTrackerJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale tracker job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the job.
func (j *StaleTrackerJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale tracker job stopped")
}

func (j *StaleTrackerJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStaleDeliveriesQuery(time.Now().UTC().Add(-j.threshold))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale tracker job failed to build query", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale tracker job failed", "error", err)
		return
	}

	for _, delivery := range stale {
		j.logger.WarnContext(ctx, "Delivery has gone quiet",
			"order_id", delivery.OrderID.String(),
			"partner_id", delivery.PartnerID.String(),
			"last_update", delivery.UpdatedAt)
	}
}
