package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/ports"
)

// CreateOrderCommandHandler places orders: it resolves the pickup location,
// prices the delivery, stores the order with its first status event and
// queues the order_placed notification.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pickups    ports.PickupLocationRepository
	notifier   OrderNotifier
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pickups ports.PickupLocationRepository,
	notifier OrderNotifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pickups:    pickups,
		notifier:   notifier,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle returns the stored pending order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pickup, err := h.pickups.Get(ctx, cmd.PickupLocationID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:      cmd.CustomerID(),
		DeliveryType:    cmd.DeliveryType(),
		Pickup:          pickup,
		DeliveryPoint:   cmd.DeliveryPoint(),
		DeliveryAddress: cmd.DeliveryAddress(),
		Items:           cmd.Items(),
		Extras:          cmd.Extras(),
		Discount:        cmd.Discount(),
	}, now)
	if err != nil {
		return nil, err
	}

	event, err := order.NewStatusEvent(created.ID(), order.Pending, "Order placed", nil, nil, now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, fmt.Errorf("add order: %w", err)
	}
	if err = uow.StatusEventRepository().Append(ctx, event); err != nil {
		return nil, fmt.Errorf("append status event: %w", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyOwner(ctx, created, notification.OrderPlaced, nil); err != nil {
		h.logger.ErrorContext(ctx, "failed to queue order placed notification",
			"order_id", created.ID().String(), "error", err)
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_id", created.ID().String(),
		"number", created.Number(),
		"delivery_type", created.DeliveryType().String(),
		"total", created.Breakdown().Total.String())

	return created, nil
}
