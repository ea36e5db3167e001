package commands

import (
	"context"
	"log/slog"

	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler records payment outcomes and queues
// payment_success or payment_failed for the owner.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
	logger     *slog.Logger
}

func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderNotifier,
	logger *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "ConfirmPaymentCommandHandler"),
	}
}

func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.RecordPayment(cmd.Outcome()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	kind := notification.PaymentSuccess
	if cmd.Outcome() == order.PaymentFailed {
		kind = notification.PaymentFailed
	}
	if err = h.notifier.NotifyOwner(ctx, o, kind, nil); err != nil {
		h.logger.ErrorContext(ctx, "failed to queue payment notification",
			"order_id", o.ID().String(), "type", kind.String(), "error", err)
	}

	h.logger.InfoContext(ctx, "payment recorded",
		"order_id", o.ID().String(), "payment_status", o.PaymentStatus().String())

	return o, nil
}
