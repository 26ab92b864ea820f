package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrGetDocumentVersionsQueryIsNotConstructed = errors.New(
	"GetDocumentVersionsQuery must be created via NewGetDocumentVersionsQuery constructor",
)

// GetDocumentVersionsQuery retrieves an order's full version history with
// download links resolved for each rendered artifact.
type GetDocumentVersionsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDocumentVersionsQuery creates a query for an order's version history.
func NewGetDocumentVersionsQuery(orderID kernel.UUID) (GetDocumentVersionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDocumentVersionsQuery{}, err
	}

	return GetDocumentVersionsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentVersionsQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentVersionsQueryIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (q GetDocumentVersionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// FileReadModel is one rendered artifact with its resolved download link.
type FileReadModel struct {
	Name        string `json:"name"`
	ObjectKey   string `json:"object_key"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`

	URL string `json:"-"`
}

// GetDocumentVersionsQueryResponse is one document version in the history.
type GetDocumentVersionsQueryResponse struct {
	Number            int
	Status            string
	Approved          bool
	RegenerationNotes string
	GeneratedAt       time.Time
	Files             []FileReadModel
}
