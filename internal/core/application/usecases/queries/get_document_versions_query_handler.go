package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"docflow/internal/core/ports"

	"gorm.io/gorm"
)

// GetDocumentVersionsQueryHandler retrieves an order's version history,
// oldest first, resolving a presigned download link per artifact. A link
// that cannot be resolved is logged and left empty rather than failing the
// whole history.
type GetDocumentVersionsQueryHandler struct {
	db        *gorm.DB
	artifacts ports.ArtifactStore
	logger    *slog.Logger
}

// NewGetDocumentVersionsQueryHandler creates a handler for version history queries.
func NewGetDocumentVersionsQueryHandler(
	db *gorm.DB,
	artifacts ports.ArtifactStore,
	logger *slog.Logger,
) GetDocumentVersionsQueryHandler {
	return GetDocumentVersionsQueryHandler{
		db:        db,
		artifacts: artifacts,
		logger:    logger,
	}
}

// Handle executes the query.
func (h GetDocumentVersionsQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentVersionsQuery,
) ([]GetDocumentVersionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	versions := make([]GetDocumentVersionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			status,
			approved,
			regeneration_notes,
			generated_at,
			files
		FROM document_versions
		WHERE order_id = ?
		ORDER BY number
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var version GetDocumentVersionsQueryResponse
		var files []byte

		err = rows.Scan(
			&version.Number,
			&version.Status,
			&version.Approved,
			&version.RegenerationNotes,
			&version.GeneratedAt,
			&files,
		)
		if err != nil {
			return nil, err
		}

		if len(files) > 0 {
			if err = json.Unmarshal(files, &version.Files); err != nil {
				return nil, err
			}
		}

		for i := range version.Files {
			url, urlErr := h.artifacts.PresignedURL(ctx, version.Files[i].ObjectKey)
			if urlErr != nil {
				h.logger.Warn("could not resolve artifact link",
					"object_key", version.Files[i].ObjectKey, "error", urlErr)
				continue
			}
			version.Files[i].URL = url
		}

		versions = append(versions, version)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return versions, nil
}
