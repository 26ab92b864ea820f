package jobs

import (
	"context"
	"log/slog"

	"docflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PipelineSnapshotJob keeps the cached per-status pipeline counts fresh so
// the dashboard query never touches the database on the request path.
type PipelineSnapshotJob struct {
	snapshot *queries.PipelineSnapshot
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPipelineSnapshotJob creates a new job refreshing the pipeline snapshot.
func NewPipelineSnapshotJob(snapshot *queries.PipelineSnapshot, logger *slog.Logger) *PipelineSnapshotJob {
	return &PipelineSnapshotJob{
		snapshot: snapshot,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pipeline_snapshot_job"),
	}
}

// Start begins the snapshot refresh, running every 30 seconds.
func (j *PipelineSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.snapshot.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pipeline snapshot refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pipeline snapshot job started (running every 30 seconds)")
	return nil
}

// Stop stops the snapshot refresh.
func (j *PipelineSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pipeline snapshot job stopped")
}
