// Package jobs provides scheduled background tasks for the document workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order pipeline.
//
// # Available Jobs
//
// 1. GenerationTimeoutJob - Sweeps orders stuck in InProgress or Regenerating past the render timeout and fails them
// 2. DeliveryBatchJob - Picks up Finalising orders and runs delivery for each
// 3. PipelineSnapshotJob - Refreshes the cached per-status pipeline counts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(failGenerationHandler, processDeliveriesHandler, snapshot, timeout, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The timeout sweep and delivery batch run every minute; the pipeline
// snapshot refreshes every 30 seconds. Sweeps are idempotent: an order
// already moved on by a late callback or a concurrent admin action is
// skipped, not failed twice.
//
// # Error Handling
//
// - The timeout sweep isolates orders: one failing order never stops the rest of the sweep
// - The delivery batch delegates per-order isolation to its command handler
// - Failed job starts will stop any already running jobs
package jobs
