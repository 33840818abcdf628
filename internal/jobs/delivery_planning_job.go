package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryPlanningJob manages the scheduled planning of requested deliveries.
// Runs every second to turn pending requests into planned deliveries with
// transport instructions.
type DeliveryPlanningJob struct {
	handler commands.PlanDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryPlanningJob creates a new job for planning deliveries.
// Uses PlanDeliveriesCommandHandler to process pending requests every second.
func NewDeliveryPlanningJob(handler commands.PlanDeliveriesCommandHandler, logger *slog.Logger) *DeliveryPlanningJob {
	return &DeliveryPlanningJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_planning_job"),
	}
}

// Start begins the delivery planning job to run every second.
func (j *DeliveryPlanningJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPlanDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery planning job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery planning job started (running every second)")
	return nil
}

// Stop stops the delivery planning job.
func (j *DeliveryPlanningJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery planning job stopped")
}
