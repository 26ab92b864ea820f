package queries

import (
	"context"
	"time"
)

// GetPipelineQueryHandler serves the pipeline overview from the snapshot.
// The request path never touches the database.
type GetPipelineQueryHandler struct {
	snapshot *PipelineSnapshot
}

// NewGetPipelineQueryHandler creates a handler over the shared snapshot.
func NewGetPipelineQueryHandler(snapshot *PipelineSnapshot) GetPipelineQueryHandler {
	return GetPipelineQueryHandler{snapshot: snapshot}
}

// Handle returns the per-status counts and the instant they were computed.
func (h GetPipelineQueryHandler) Handle(
	_ context.Context,
	query GetPipelineQuery,
) ([]GetPipelineQueryResponse, time.Time, error) {
	if err := query.Validate(); err != nil {
		return nil, time.Time{}, err
	}

	counts, refreshedAt := h.snapshot.Counts()
	return counts, refreshedAt, nil
}
