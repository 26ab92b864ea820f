package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of one order, including the open
// client-input request and the postal sub-record when present.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ClientInputReadModel is the read-side projection of an information request.
type ClientInputReadModel struct {
	RequestNotes    string              `json:"request_notes"`
	RequestedFields []string            `json:"requested_fields"`
	DeadlineDays    int                 `json:"deadline_days"`
	RequestedAt     time.Time           `json:"requested_at"`
	RequestedBy     string              `json:"requested_by"`
	Responses       []ResponseReadModel `json:"responses"`
}

// ResponseReadModel is one version-tagged response in the read model.
type ResponseReadModel struct {
	Version     int            `json:"version"`
	Payload     map[string]any `json:"payload"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// PostalReadModel is the read-side projection of the postal sub-record.
type PostalReadModel struct {
	Recipient      string `json:"recipient"`
	Address        string `json:"address"`
	TrackingNumber string `json:"tracking_number"`
}

// GetOrderQueryResponse is the full order detail read model.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	ServiceCode       string
	PriceAmount       int64
	PriceCurrency     string
	Status            string
	Priority          bool
	FastTrack         bool
	VersionLocked     bool
	Archived          bool
	SLAHours          int
	RegenerationCount int
	StateEnteredAt    time.Time
	PausedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	SLALabel  string
	Remaining time.Duration

	ClientInput *ClientInputReadModel
	Postal      *PostalReadModel
}
