package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	generationTimeoutJob *GenerationTimeoutJob
	deliveryBatchJob     *DeliveryBatchJob
	pipelineSnapshotJob  *PipelineSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	failGenerationHandler commands.FailGenerationCommandHandler,
	processDeliveriesHandler commands.ProcessPendingDeliveriesCommandHandler,
	snapshot *queries.PipelineSnapshot,
	generationTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		generationTimeoutJob: NewGenerationTimeoutJob(uowFactory, failGenerationHandler, generationTimeout, logger),
		deliveryBatchJob:     NewDeliveryBatchJob(processDeliveriesHandler, logger),
		pipelineSnapshotJob:  NewPipelineSnapshotJob(snapshot, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.generationTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start generation timeout job: %w", err)
	}

	if err := jm.deliveryBatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.generationTimeoutJob.Stop()
		return fmt.Errorf("failed to start delivery batch job: %w", err)
	}

	if err := jm.pipelineSnapshotJob.Start(); err != nil {
		jm.deliveryBatchJob.Stop()
		jm.generationTimeoutJob.Stop()
		return fmt.Errorf("failed to start pipeline snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pipelineSnapshotJob.Stop()
	jm.deliveryBatchJob.Stop()
	jm.generationTimeoutJob.Stop()
}
