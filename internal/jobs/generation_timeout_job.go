package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// GenerationTimeoutJob sweeps orders whose render has been running past the
// timeout and fails them through the regular failure command, so the sweep
// produces the same audited transition a failure callback would.
type GenerationTimeoutJob struct {
	uowFactory  commands.OrderUoWFactory
	failHandler commands.FailGenerationCommandHandler
	timeout     time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewGenerationTimeoutJob creates a sweep over InProgress and Regenerating
// orders older than the given timeout.
func NewGenerationTimeoutJob(
	uowFactory commands.OrderUoWFactory,
	failHandler commands.FailGenerationCommandHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *GenerationTimeoutJob {
	return &GenerationTimeoutJob{
		uowFactory:  uowFactory,
		failHandler: failHandler,
		timeout:     timeout,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "generation_timeout_job"),
	}
}

// Start begins the timeout sweep, running every minute.
func (j *GenerationTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Generation timeout sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Generation timeout job started (running every minute)")
	return nil
}

// Stop stops the timeout sweep.
func (j *GenerationTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Generation timeout job stopped")
}

func (j *GenerationTimeoutJob) sweep(ctx context.Context) error {
	stuck, err := j.listStuck(ctx)
	if err != nil {
		return err
	}

	reason := fmt.Sprintf("generation timed out after %s", j.timeout)
	for _, stuckOrder := range stuck {
		cmd, cmdErr := commands.NewFailGenerationCommand(stuckOrder.ID(), reason)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Could not build failure command",
				"order_id", stuckOrder.ID().String(), "error", cmdErr)
			continue
		}

		// The handler re-checks the status inside its own transaction, so a
		// late callback racing the sweep results in a no-op, not a double fail.
		if handleErr := j.failHandler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Could not fail timed-out order",
				"order_id", stuckOrder.ID().String(), "error", handleErr)
			continue
		}

		j.logger.WarnContext(ctx, "Order failed by generation timeout sweep",
			"order_id", stuckOrder.ID().String(), "status", stuckOrder.Status().String())
	}

	return nil
}

func (j *GenerationTimeoutJob) listStuck(ctx context.Context) ([]*order.Order, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-j.timeout)

	inProgress, err := uow.OrderRepository().GetStuckInStatus(ctx, order.InProgress, cutoff)
	if err != nil {
		return nil, err
	}

	regenerating, err := uow.OrderRepository().GetStuckInStatus(ctx, order.Regenerating, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return append(inProgress, regenerating...), nil
}
