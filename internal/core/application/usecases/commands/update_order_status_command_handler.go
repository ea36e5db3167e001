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

// UpdateOrderStatusCommandHandler runs a lifecycle transition.
//
// The status change and its status event commit together. Owner notification
// and the courier broadcast happen after the commit; their failures are
// logged and never undo the transition.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    OrderNotifier
	broadcaster CourierBroadcaster
	logger      *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier OrderNotifier,
	broadcaster CourierBroadcaster,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger.With("component", "UpdateOrderStatusCommandHandler"),
	}
}

// Handle returns the order after the transition.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, from, changed, err := h.commit(ctx, cmd)
	if err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(from.String(), o.Status().String()).Inc()
	h.logger.InfoContext(ctx, "order status updated",
		"order_id", o.ID().String(), "from", from.String(), "to", o.Status().String(), "changed", changed)

	extra := map[string]any{notification.PayloadStatus: o.Status().String()}
	if cmd.Message() != "" {
		extra["note"] = cmd.Message()
	}
	kind := ownerNotificationType(cmd.Target(), changed)
	if err = h.notifier.NotifyOwner(ctx, o, kind, extra); err != nil {
		h.logger.ErrorContext(ctx, "failed to queue owner notification",
			"order_id", o.ID().String(), "type", kind.String(), "error", err)
	}

	if changed && cmd.Target() == order.Ready && o.DeliveryType() == order.DoorDelivery {
		h.broadcast(ctx, o)
	}

	return o, nil
}

func (h UpdateOrderStatusCommandHandler) commit(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, order.Status, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Unknown, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.Unknown, false, err
	}

	now := time.Now().UTC()
	from := o.Status()
	changed, err := o.TransitionTo(cmd.Target(), now)
	if err != nil {
		return nil, from, false, err
	}

	if changed {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, from, false, fmt.Errorf("update order: %w", err)
		}
	}

	message := cmd.Message()
	if message == "" {
		message = defaultEventMessage(cmd.Target())
	}
	event, err := order.NewStatusEvent(o.ID(), o.Status(), message, cmd.ActorID(), cmd.Point(), now)
	if err != nil {
		return nil, from, false, err
	}
	if err = uow.StatusEventRepository().Append(ctx, event); err != nil {
		return nil, from, false, fmt.Errorf("append status event: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, from, false, err
	}
	return o, from, changed, nil
}

func (h UpdateOrderStatusCommandHandler) broadcast(ctx context.Context, o *order.Order) {
	cmd, err := NewNotifyNearbyCouriersCommand(o.ID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build courier broadcast", "order_id", o.ID().String(), "error", err)
		return
	}

	notified, err := h.broadcaster.Handle(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to notify nearby couriers", "order_id", o.ID().String(), "error", err)
		return
	}
	h.logger.InfoContext(ctx, "nearby couriers notified", "order_id", o.ID().String(), "couriers", notified)
}
