package commands

import (
	"errors"
	"fmt"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"
	"freshdispatch/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand applies a payment gateway outcome to an order.
// Outcome is paid or failed.
type ConfirmPaymentCommand struct {
	orderID kernel.UUID
	outcome order.PaymentStatus

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID kernel.UUID, outcome order.PaymentStatus) (ConfirmPaymentCommand, error) {
	var outcomeErr error
	if outcome != order.PaymentPaid && outcome != order.PaymentFailed {
		outcomeErr = errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%s is not a payment outcome", outcome))
	}
	if err := errors.Join(orderID.Validate(), outcomeErr); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{orderID: orderID, outcome: outcome, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID         { return c.orderID }
func (c ConfirmPaymentCommand) Outcome() order.PaymentStatus { return c.outcome }
