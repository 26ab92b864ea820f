package jobs

import (
	"context"
	"log/slog"

	"docflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryBatchJob periodically picks up Finalising orders and runs delivery
// for each of them. Per-order isolation lives in the command handler: one
// failed delivery moves that order to DeliveryFailed and the batch carries on.
type DeliveryBatchJob struct {
	handler commands.ProcessPendingDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryBatchJob creates a new job for processing pending deliveries.
func NewDeliveryBatchJob(
	handler commands.ProcessPendingDeliveriesCommandHandler,
	logger *slog.Logger,
) *DeliveryBatchJob {
	return &DeliveryBatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_batch_job"),
	}
}

// Start begins the delivery batch job, running every minute.
func (j *DeliveryBatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessPendingDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery batch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery batch job started (running every minute)")
	return nil
}

// Stop stops the delivery batch job.
func (j *DeliveryBatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery batch job stopped")
}
