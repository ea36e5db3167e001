package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/metrics"
)

// MarkOrderDeliveredCommandHandler completes an out-for-delivery order on
// behalf of its courier. A rejected hand-over writes nothing.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
	logger     *slog.Logger
}

func NewMarkOrderDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderNotifier,
	logger *slog.Logger,
) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "MarkOrderDeliveredCommandHandler"),
	}
}

func (h MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) (*order.Order, error) {
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

	now := time.Now().UTC()
	if err = o.MarkDelivered(cmd.CourierID(), now); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	courierID := cmd.CourierID()
	event, err := order.NewStatusEvent(o.ID(), order.Delivered, defaultEventMessage(order.Delivered), &courierID, cmd.Point(), now)
	if err != nil {
		return nil, err
	}
	if err = uow.StatusEventRepository().Append(ctx, event); err != nil {
		return nil, fmt.Errorf("append status event: %w", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(order.OutForDelivery.String(), order.Delivered.String()).Inc()
	h.logger.InfoContext(ctx, "order delivered", "order_id", o.ID().String(), "courier_id", courierID.String())

	if err = h.notifier.NotifyOwner(ctx, o, notification.OrderDelivered, nil); err != nil {
		h.logger.ErrorContext(ctx, "failed to queue delivered notification", "order_id", o.ID().String(), "error", err)
	}

	return o, nil
}
