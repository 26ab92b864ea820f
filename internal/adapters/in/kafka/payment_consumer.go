// Package kafka provides the inbound payment confirmation consumer. Payment
// signals are the entry point of the pipeline: each message creates an order
// at Paid and moves it to Queued through the confirm-payment command.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// paymentConfirmedMessage is the wire payload of a payment confirmation.
type paymentConfirmedMessage struct {
	OrderID       string `json:"order_id"`
	ServiceCode   string `json:"service_code"`
	PriceAmount   int64  `json:"price_amount"`
	PriceCurrency string `json:"price_currency"`
	SLAHours      int    `json:"sla_hours"`
}

// PaymentConsumer reads payment confirmations from Kafka and dispatches the
// confirm-payment command per message. Malformed or invalid messages are
// logged and skipped; they never block the partition.
type PaymentConsumer struct {
	reader         *kafka.Reader
	confirmHandler commands.ConfirmPaymentCommandHandler
	logger         *slog.Logger
}

// NewPaymentConsumer creates a consumer on the given topic and group.
func NewPaymentConsumer(
	brokers []string,
	topic, groupID string,
	confirmHandler commands.ConfirmPaymentCommandHandler,
	logger *slog.Logger,
) *PaymentConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})

	return &PaymentConsumer{
		reader:         reader,
		confirmHandler: confirmHandler,
		logger:         logger,
	}
}

// Run consumes messages until the context is cancelled.
func (c *PaymentConsumer) Run(ctx context.Context) {
	c.logger.Info("payment consumer started", "topic", c.reader.Config().Topic)

	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("payment consumer stopping")
				return
			}
			c.logger.Error("could not read payment message", "error", err)
			time.Sleep(5 * time.Second)
			continue
		}

		c.process(ctx, message)
	}
}

func (c *PaymentConsumer) process(ctx context.Context, message kafka.Message) {
	var payload paymentConfirmedMessage
	if err := json.Unmarshal(message.Value, &payload); err != nil {
		c.logger.Error("malformed payment message skipped",
			"offset", message.Offset, "error", err)
		return
	}

	orderID, err := kernel.UUIDFromString(payload.OrderID)
	if err != nil {
		c.logger.Error("payment message with invalid order id skipped",
			"order_id", payload.OrderID, "error", err)
		return
	}

	cmd, err := commands.NewConfirmPaymentCommand(
		orderID,
		payload.ServiceCode,
		payload.PriceAmount,
		payload.PriceCurrency,
		payload.SLAHours,
	)
	if err != nil {
		c.logger.Error("invalid payment confirmation skipped",
			"order_id", payload.OrderID, "error", err)
		return
	}

	if err = c.confirmHandler.Handle(ctx, cmd); err != nil {
		c.logger.Error("could not confirm payment",
			"order_id", payload.OrderID, "error", err)
		return
	}

	c.logger.Info("payment confirmed", "order_id", payload.OrderID)
}

// Close releases the underlying reader.
func (c *PaymentConsumer) Close() error {
	return c.reader.Close()
}
