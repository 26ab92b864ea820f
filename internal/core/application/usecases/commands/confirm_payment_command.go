package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a payment confirmation signal for an
// order. It registers the order in the pipeline and advances it to the
// generation queue.
//
// Example:
//
//	cmd, err := NewConfirmPaymentCommand(orderID, "incorporation-pack", 19900, "EUR", 48)
//	if err != nil {
//	    return fmt.Errorf("invalid payment signal: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	serviceCode   string
	priceAmount   int64
	priceCurrency string
	slaHours      int

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command from a payment confirmation.
// Validates the order ID, service code, price snapshot and SLA budget.
func NewConfirmPaymentCommand(
	orderID kernel.UUID,
	serviceCode string,
	priceAmount int64,
	priceCurrency string,
	slaHours int,
) (ConfirmPaymentCommand, error) {
	command := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setServiceCode(serviceCode),
		command.setPrice(priceAmount, priceCurrency),
		command.setSLAHours(slaHours),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceCode returns the purchased service reference.
func (c ConfirmPaymentCommand) ServiceCode() string {
	return c.serviceCode
}

// PriceAmount returns the confirmed price in minor currency units.
func (c ConfirmPaymentCommand) PriceAmount() int64 {
	return c.priceAmount
}

// PriceCurrency returns the price currency code.
func (c ConfirmPaymentCommand) PriceCurrency() string {
	return c.priceCurrency
}

// SLAHours returns the SLA budget for the order.
func (c ConfirmPaymentCommand) SLAHours() int {
	return c.slaHours
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setServiceCode(serviceCode string) error {
	if serviceCode == "" {
		return errs.NewValueIsRequiredError("serviceCode")
	}

	c.serviceCode = serviceCode
	return nil
}

func (c *ConfirmPaymentCommand) setPrice(amount int64, currency string) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("priceAmount")
	}
	if currency == "" {
		return errs.NewValueIsRequiredError("priceCurrency")
	}

	c.priceAmount = amount
	c.priceCurrency = currency
	return nil
}

func (c *ConfirmPaymentCommand) setSLAHours(slaHours int) error {
	if slaHours <= 0 {
		return errs.NewValueIsInvalidError("slaHours")
	}

	c.slaHours = slaHours
	return nil
}
