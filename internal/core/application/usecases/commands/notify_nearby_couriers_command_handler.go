package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/domain/services"
	"freshdispatch/internal/core/ports"
	"freshdispatch/internal/metrics"

	"golang.org/x/sync/errgroup"
)

// OrderReadyEvent is the realtime event name couriers receive for a ready order.
const OrderReadyEvent = "order_ready"

// DefaultCourierSendTimeout bounds one realtime send to one courier.
const DefaultCourierSendTimeout = 3 * time.Second

// NotifyNearbyCouriersCommandHandler emits the order ready event to every
// active courier of the pickup region within reach of both trip ends.
//
// Sends run concurrently, each under its own timeout. A failed or timed out
// send is logged and counted; it never stops the others.
type NotifyNearbyCouriersCommandHandler struct {
	orders      ports.OrderRepository
	pickups     ports.PickupLocationRepository
	couriers    ports.CourierRepository
	emitter     ports.RealtimeEmitter
	matcher     services.DispatchMatcher
	sendTimeout time.Duration
	logger      *slog.Logger
}

func NewNotifyNearbyCouriersCommandHandler(
	orders ports.OrderRepository,
	pickups ports.PickupLocationRepository,
	couriers ports.CourierRepository,
	emitter ports.RealtimeEmitter,
	sendTimeout time.Duration,
	logger *slog.Logger,
) NotifyNearbyCouriersCommandHandler {
	if sendTimeout <= 0 {
		sendTimeout = DefaultCourierSendTimeout
	}
	return NotifyNearbyCouriersCommandHandler{
		orders:      orders,
		pickups:     pickups,
		couriers:    couriers,
		emitter:     emitter,
		matcher:     services.NewDispatchMatcher(),
		sendTimeout: sendTimeout,
		logger:      logger.With("component", "NotifyNearbyCouriersCommandHandler"),
	}
}

// Handle returns how many couriers received the event.
func (h NotifyNearbyCouriersCommandHandler) Handle(ctx context.Context, cmd NotifyNearbyCouriersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if !o.NeedsDispatch() {
		h.logger.InfoContext(ctx, "order no longer needs dispatch",
			"order_id", o.ID().String(), "status", o.Status().String())
		return 0, nil
	}

	pickup, err := h.pickups.Get(ctx, o.PickupLocationID())
	if err != nil {
		return 0, err
	}

	candidates, err := h.candidates(ctx, pickup.RegionID())
	if err != nil {
		return 0, err
	}

	matched, err := h.matcher.MatchCouriers(pickup.Point(), *o.DeliveryPoint(), candidates)
	if err != nil {
		return 0, err
	}

	notified := h.fanOut(ctx, o, pickup, matched)
	h.logger.InfoContext(ctx, "ready order broadcast",
		"order_id", o.ID().String(),
		"candidates", len(candidates),
		"matched", len(matched),
		"notified", notified)
	return notified, nil
}

func (h NotifyNearbyCouriersCommandHandler) candidates(ctx context.Context, regionID kernel.UUID) ([]services.Candidate, error) {
	active, err := h.couriers.ListActiveInRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("list active couriers: %w", err)
	}
	if len(active) == 0 {
		return nil, nil
	}

	ids := make([]kernel.UUID, 0, len(active))
	for _, c := range active {
		ids = append(ids, c.ID())
	}
	locations, err := h.couriers.ListLocations(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list courier locations: %w", err)
	}

	candidates := make([]services.Candidate, 0, len(active))
	for _, c := range active {
		loc, ok := locations[c.ID()]
		if !ok {
			continue
		}
		candidates = append(candidates, services.Candidate{Courier: c, Location: loc})
	}
	return candidates, nil
}

func (h NotifyNearbyCouriersCommandHandler) fanOut(
	ctx context.Context,
	o *order.Order,
	pickup order.PickupLocation,
	matched []services.Candidate,
) int {
	payload := readyOrderPayload(o, pickup)

	var (
		g        errgroup.Group
		notified atomic.Int64
	)
	for _, c := range matched {
		g.Go(func() error {
			if h.notifyOne(ctx, c.Courier, payload) {
				notified.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(notified.Load())
}

func (h NotifyNearbyCouriersCommandHandler) notifyOne(ctx context.Context, c *courier.Courier, payload map[string]any) bool {
	sendCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
	defer cancel()

	delivered, err := h.emitter.Emit(sendCtx, c.ID(), OrderReadyEvent, payload)
	switch {
	case err != nil:
		metrics.DispatchCouriersFailedTotal.Inc()
		h.logger.WarnContext(ctx, "failed to notify courier", "courier_id", c.ID().String(), "error", err)
		return false
	case delivered == 0:
		metrics.DispatchCouriersFailedTotal.Inc()
		h.logger.InfoContext(ctx, "courier not connected", "courier_id", c.ID().String())
		return false
	}
	metrics.DispatchCouriersNotifiedTotal.Inc()
	return true
}

func readyOrderPayload(o *order.Order, pickup order.PickupLocation) map[string]any {
	payload := map[string]any{
		"orderId":         o.ID().String(),
		"orderNumber":     o.Number(),
		"pickupName":      pickup.Name(),
		"pickupLat":       pickup.Point().Lat(),
		"pickupLon":       pickup.Point().Lon(),
		"deliveryAddress": o.DeliveryAddress(),
		"deliveryFee":     int64(o.Breakdown().DeliveryFee),
		"itemCount":       o.ItemCount(),
	}
	if p := o.DeliveryPoint(); p != nil {
		payload["deliveryLat"] = p.Lat()
		payload["deliveryLon"] = p.Lon()
	}
	return payload
}
