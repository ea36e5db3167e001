package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/metrics"
	"freshdispatch/internal/pkg/errs"
)

// AssignCourierCommandHandler is the only path that binds a courier to an order.
//
// The courier's status and workload are checked first; the binding itself is a
// single conditional write. When that write matches no row the order is
// re-read to report exactly why: already assigned, not ready or not a door
// delivery. There are no locks: of two concurrent accepts exactly one write
// matches.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewAssignCourierCommand(orderID, courierID, courierID)
//	_, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyAssigned):
//	    // conflict, refresh the list
//	case errors.Is(err, courier.ErrMaxOrdersReached):
//	    // deliver something first
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   OrderNotifier
	logger     *slog.Logger
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory, notifier OrderNotifier, logger *slog.Logger) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "AssignCourierCommandHandler"),
	}
}

// Handle returns the assigned order.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	rider, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	active, err := courierRepo.CountActiveOrders(ctx, rider.ID())
	if err != nil {
		return nil, fmt.Errorf("count active orders: %w", err)
	}
	if err = rider.CanAccept(active); err != nil {
		metrics.CourierAssignmentsTotal.WithLabelValues(metrics.AssignmentRejected).Inc()
		return nil, err
	}

	now := time.Now().UTC()
	bound, err := orderRepo.AssignCourier(ctx, cmd.OrderID(), order.Assignment{
		CourierID:  rider.ID(),
		AssignedAt: now,
		AssignedBy: cmd.ActorID(),
	})
	if err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}
	if !bound {
		return nil, h.explain(ctx, orderRepo, cmd)
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	courierID := rider.ID()
	event, err := order.NewStatusEvent(o.ID(), order.Ready, "Rider assigned", &courierID, nil, now)
	if err != nil {
		return nil, err
	}
	if err = uow.StatusEventRepository().Append(ctx, event); err != nil {
		return nil, fmt.Errorf("append status event: %w", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.CourierAssignmentsTotal.WithLabelValues(metrics.AssignmentAssigned).Inc()
	h.logger.InfoContext(ctx, "courier assigned",
		"order_id", o.ID().String(), "courier_id", courierID.String(), "active_orders", active+1)

	extra := map[string]any{
		notification.PayloadCourierID:   courierID.String(),
		notification.PayloadCourierName: rider.Name(),
	}
	if err = h.notifier.NotifyOwner(ctx, o, notification.RiderAssigned, extra); err != nil {
		h.logger.ErrorContext(ctx, "failed to queue rider assigned notification", "order_id", o.ID().String(), "error", err)
	}

	return o, nil
}

type orderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

func (h AssignCourierCommandHandler) explain(ctx context.Context, orders orderReader, cmd AssignCourierCommand) error {
	current, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	reason := current.ExplainAssignFailure()
	if reason == nil {
		// the row changed between the write and the read
		reason = errs.NewConflictError(order.ErrOrderAlreadyAssigned)
	}

	outcome := metrics.AssignmentRejected
	if errors.Is(reason, order.ErrOrderAlreadyAssigned) {
		outcome = metrics.AssignmentLostRace
	}
	metrics.CourierAssignmentsTotal.WithLabelValues(outcome).Inc()

	h.logger.InfoContext(ctx, "courier assignment rejected",
		"order_id", cmd.OrderID().String(), "courier_id", cmd.CourierID().String(), "reason", reason.Error())
	return reason
}
