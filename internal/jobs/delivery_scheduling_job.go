package jobs

import (
	"context"
	"errors"
	"log/slog"

	"launderly/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliverySchedulingJob manages the scheduled creation of delivery errands.
// Runs every five seconds to sweep completed orders that have no delivery yet.
type DeliverySchedulingJob struct {
	handler commands.ScheduleDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliverySchedulingJob creates a new job for scheduling deliveries.
// Uses ScheduleDeliveriesCommandHandler to open delivery errands every five seconds.
func NewDeliverySchedulingJob(handler commands.ScheduleDeliveriesCommandHandler, logger *slog.Logger) *DeliverySchedulingJob {
	return &DeliverySchedulingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_scheduling_job"),
	}
}

// Start begins the delivery scheduling job to run every five seconds.
func (j *DeliverySchedulingJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewScheduleDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal case, not a failure
			if !errors.Is(err, commands.ErrNoCompletedOrdersFound) {
				j.logger.ErrorContext(ctx, "Delivery scheduling job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery scheduling job started (running every five seconds)")
	return nil
}

// Stop stops the delivery scheduling job.
func (j *DeliverySchedulingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery scheduling job stopped")
}
