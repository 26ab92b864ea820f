// Package kafka provides the Kafka-backed notification publisher.
// Notifications are advisory fan-out for client-facing messaging and
// back-office dashboards; command handlers publish them after commit and
// ignore the outcome, so a broker outage never rolls back a workflow step.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/metrics"

	"github.com/segmentio/kafka-go"
)

const (
	eventStatusChanged        = "order.status_changed"
	eventClientInputRequested = "order.client_input_requested"
)

// statusChangedMessage is the wire payload for a status change notification.
type statusChangedMessage struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// clientInputRequestedMessage is the wire payload for an information request.
type clientInputRequestedMessage struct {
	Event           string    `json:"event"`
	OrderID         string    `json:"order_id"`
	RequestedFields []string  `json:"requested_fields"`
	DeadlineDays    int       `json:"deadline_days"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Notifier publishes lifecycle notifications to a Kafka topic, keyed by
// order ID so per-order ordering is preserved within a partition.
type Notifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewNotifier creates a notifier publishing to the given topic.
func NewNotifier(brokers []string, topic string, logger *slog.Logger) *Notifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Notifier{
		writer: writer,
		logger: logger,
	}
}

// NotifyStatusChanged publishes an order status change.
func (n *Notifier) NotifyStatusChanged(
	ctx context.Context,
	orderID kernel.UUID,
	from, to order.Status,
) error {
	metrics.TransitionsTotal.WithLabelValues(from.String(), to.String()).Inc()

	message := statusChangedMessage{
		Event:      eventStatusChanged,
		OrderID:    orderID.String(),
		FromStatus: from.String(),
		ToStatus:   to.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := n.publish(ctx, orderID, message); err != nil {
		n.logger.Error("could not publish status change notification",
			"order_id", orderID.String(), "from", from.String(), "to", to.String(), "error", err)
		return err
	}

	n.logger.Info("published status change notification",
		"order_id", orderID.String(), "from", from.String(), "to", to.String())
	return nil
}

// NotifyClientInputRequested tells the client which fields are needed and by when.
func (n *Notifier) NotifyClientInputRequested(
	ctx context.Context,
	orderID kernel.UUID,
	fields []string,
	deadlineDays int,
) error {
	message := clientInputRequestedMessage{
		Event:           eventClientInputRequested,
		OrderID:         orderID.String(),
		RequestedFields: fields,
		DeadlineDays:    deadlineDays,
		OccurredAt:      time.Now().UTC(),
	}

	if err := n.publish(ctx, orderID, message); err != nil {
		n.logger.Error("could not publish client input notification",
			"order_id", orderID.String(), "error", err)
		return err
	}

	n.logger.Info("published client input notification",
		"order_id", orderID.String(), "fields", fields, "deadline_days", deadlineDays)
	return nil
}

func (n *Notifier) publish(ctx context.Context, orderID kernel.UUID, message any) error {
	value, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
