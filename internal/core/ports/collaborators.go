package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
)

// GenerationRequest carries everything the engine needs to render one
// document version of an order.
type GenerationRequest struct {
	OrderID       kernel.UUID
	ServiceCode   string
	VersionNumber int

	// Correction context; zero values for the first draft.
	RegenerationNotes string
	AffectedSections  []string
	Guardrails        []string
	ClientResponses   []map[string]any
}

// RenderedFile is one artifact produced by the engine: descriptive metadata
// plus the raw content. The worker stores the content in the artifact store
// and only the resulting FileRef enters the domain.
type RenderedFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// GenerationResult is the engine's output for a successful render.
type GenerationResult struct {
	Files []RenderedFile
}

// DocumentGenerator is the external document rendering engine. Generate is
// synchronous from the caller's point of view; the generation worker runs it
// off the request path and reports back through the completion commands.
type DocumentGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (GenerationResult, error)
}

// GenerationQueue hands rendering work to the background generation worker.
// Enqueue returns as soon as the request is accepted; the outcome arrives
// later through the completion or failure command.
type GenerationQueue interface {
	Enqueue(ctx context.Context, req GenerationRequest) error
}

// Notifier publishes lifecycle notifications to interested consumers
// (client-facing messaging, back-office dashboards).
type Notifier interface {
	// NotifyStatusChanged publishes an order status change.
	NotifyStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) error

	// NotifyClientInputRequested tells the client which fields are needed
	// and by when (deadlineDays from the request moment).
	NotifyClientInputRequested(ctx context.Context, orderID kernel.UUID, fields []string, deadlineDays int) error
}

// ArtifactStore persists rendered document files in object storage and
// hands out short-lived download links for delivery.
type ArtifactStore interface {
	// Put stores a rendered artifact under the given object key.
	Put(ctx context.Context, objectKey, contentType string, payload []byte) error

	// PresignedURL returns a time-limited download link for an artifact.
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}
