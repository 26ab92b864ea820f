// Package workers contains the background generation worker. Rendering is
// slow relative to the request path, so the start-generation and
// request-regeneration commands only enqueue work here; workers call the
// rendering engine and report back through the completion commands.
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/ports"
	"docflow/internal/metrics"
)

// GenerationWorker pulls render requests off an in-process queue, invokes
// the rendering engine, and feeds the outcome back into the workflow through
// the complete/fail generation commands. It implements ports.GenerationQueue.
type GenerationWorker struct {
	requests chan ports.GenerationRequest

	generator       ports.DocumentGenerator
	artifacts       ports.ArtifactStore
	completeHandler commands.CompleteGenerationCommandHandler
	failHandler     commands.FailGenerationCommandHandler
	logger          *slog.Logger

	workers int
	wg      sync.WaitGroup
}

// NewGenerationWorker creates a worker pool of the given size with a
// buffered request queue.
func NewGenerationWorker(
	generator ports.DocumentGenerator,
	artifacts ports.ArtifactStore,
	completeHandler commands.CompleteGenerationCommandHandler,
	failHandler commands.FailGenerationCommandHandler,
	logger *slog.Logger,
	workers, queueSize int,
) *GenerationWorker {
	return &GenerationWorker{
		requests:        make(chan ports.GenerationRequest, queueSize),
		generator:       generator,
		artifacts:       artifacts,
		completeHandler: completeHandler,
		failHandler:     failHandler,
		logger:          logger,
		workers:         workers,
	}
}

// Enqueue hands a render request to the pool. Blocks while the queue is
// full; callers invoke it after their transaction commits, so a slow queue
// delays dispatch but never a workflow write.
func (w *GenerationWorker) Enqueue(ctx context.Context, req ports.GenerationRequest) error {
	select {
	case w.requests <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts the pool and blocks until the context is cancelled and all
// in-flight renders have reported back.
func (w *GenerationWorker) Run(ctx context.Context) {
	w.logger.Info("generation worker pool started", "workers", w.workers)

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx)
		}()
	}

	w.wg.Wait()
	w.logger.Info("generation worker pool stopped")
}

func (w *GenerationWorker) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.requests:
			w.render(ctx, req)
		}
	}
}

func (w *GenerationWorker) render(ctx context.Context, req ports.GenerationRequest) {
	w.logger.Info("rendering document version",
		"order_id", req.OrderID.String(), "version", req.VersionNumber)

	result, err := w.generator.Generate(ctx, req)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("failed").Inc()
		w.logger.Error("generation failed",
			"order_id", req.OrderID.String(), "version", req.VersionNumber, "error", err)
		w.reportFailure(ctx, req, err)
		return
	}

	files, err := w.storeArtifacts(ctx, req, result.Files)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("failed").Inc()
		w.logger.Error("could not store rendered artifacts",
			"order_id", req.OrderID.String(), "version", req.VersionNumber, "error", err)
		w.reportFailure(ctx, req, err)
		return
	}

	metrics.GenerationsTotal.WithLabelValues("completed").Inc()

	cmd, err := commands.NewCompleteGenerationCommand(req.OrderID, files)
	if err != nil {
		w.logger.Error("could not build completion command",
			"order_id", req.OrderID.String(), "error", err)
		return
	}

	if err = w.completeHandler.Handle(ctx, cmd); err != nil {
		w.logger.Error("could not record completed generation",
			"order_id", req.OrderID.String(), "version", req.VersionNumber, "error", err)
		return
	}

	w.logger.Info("document version rendered",
		"order_id", req.OrderID.String(), "version", req.VersionNumber)
}

// storeArtifacts uploads the rendered files and returns the references the
// domain keeps. Object keys are deterministic per (order, version, name),
// so a retried render overwrites rather than duplicates.
func (w *GenerationWorker) storeArtifacts(
	ctx context.Context,
	req ports.GenerationRequest,
	rendered []ports.RenderedFile,
) ([]document.FileRef, error) {
	files := make([]document.FileRef, 0, len(rendered))
	for _, f := range rendered {
		objectKey := fmt.Sprintf("orders/%s/v%d/%s", req.OrderID.String(), req.VersionNumber, f.Name)

		if err := w.artifacts.Put(ctx, objectKey, f.ContentType, f.Content); err != nil {
			return nil, fmt.Errorf("store artifact %q: %w", objectKey, err)
		}

		files = append(files, document.FileRef{
			Name:        f.Name,
			ObjectKey:   objectKey,
			ContentType: f.ContentType,
			SizeBytes:   int64(len(f.Content)),
		})
	}
	return files, nil
}

func (w *GenerationWorker) reportFailure(ctx context.Context, req ports.GenerationRequest, cause error) {
	cmd, err := commands.NewFailGenerationCommand(req.OrderID, cause.Error())
	if err != nil {
		w.logger.Error("could not build failure command",
			"order_id", req.OrderID.String(), "error", err)
		return
	}

	if err = w.failHandler.Handle(ctx, cmd); err != nil {
		w.logger.Error("could not record failed generation",
			"order_id", req.OrderID.String(), "error", err)
	}
}
