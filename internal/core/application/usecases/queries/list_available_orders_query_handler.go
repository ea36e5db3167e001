package queries

import (
	"context"
	"errors"
	"fmt"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/domain/services"
	"freshdispatch/internal/core/ports"
	"freshdispatch/internal/pkg/errs"
)

// ListAvailableOrdersQueryHandler lists the dispatchable orders of the
// courier's region that are within reach of its last known location.
//
// It over-fetches FetchLimit rows, applies the dual radius filter and then
// paginates the filtered set.
type ListAvailableOrdersQueryHandler struct {
	couriers ports.CourierRepository
	orders   ports.OrderRepository
	pickups  ports.PickupLocationRepository
	matcher  services.DispatchMatcher
}

func NewListAvailableOrdersQueryHandler(
	couriers ports.CourierRepository,
	orders ports.OrderRepository,
	pickups ports.PickupLocationRepository,
) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{
		couriers: couriers,
		orders:   orders,
		pickups:  pickups,
		matcher:  services.NewDispatchMatcher(),
	}
}

func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) (ListAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAvailableOrdersQueryResponse{}, err
	}

	rider, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return ListAvailableOrdersQueryResponse{}, err
	}
	if !rider.IsActive() {
		return ListAvailableOrdersQueryResponse{}, errs.NewPreconditionFailedErrorWithDetail(
			courier.ErrRiderNotActive, "courier is "+rider.Status().String())
	}

	loc, err := h.couriers.GetLocation(ctx, rider.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ListAvailableOrdersQueryResponse{}, errs.NewPreconditionFailedError(courier.ErrLocationUnknown)
		}
		return ListAvailableOrdersQueryResponse{}, err
	}

	raw, err := h.orders.ListDispatchableInRegion(ctx, rider.RegionID(), services.FetchLimit(query.Page(), query.Limit()))
	if err != nil {
		return ListAvailableOrdersQueryResponse{}, fmt.Errorf("list dispatchable orders: %w", err)
	}

	candidates, err := h.resolvePickups(ctx, raw)
	if err != nil {
		return ListAvailableOrdersQueryResponse{}, err
	}

	eligible, err := h.matcher.FilterOrders(loc.Point(), candidates)
	if err != nil {
		return ListAvailableOrdersQueryResponse{}, err
	}

	page := services.Paginate(eligible, query.Page(), query.Limit())
	result := ListAvailableOrdersQueryResponse{
		Orders: make([]AvailableOrder, 0, len(page)),
		Page:   query.Page(),
		Limit:  query.Limit(),
	}
	for _, oc := range page {
		result.Orders = append(result.Orders, toAvailableOrder(oc, loc.Point()))
	}
	return result, nil
}

func (h ListAvailableOrdersQueryHandler) resolvePickups(
	ctx context.Context,
	raw []*order.Order,
) ([]services.OrderCandidate, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	seen := make(map[kernel.UUID]struct{}, len(raw))
	ids := make([]kernel.UUID, 0, len(raw))
	for _, o := range raw {
		if _, ok := seen[o.PickupLocationID()]; ok {
			continue
		}
		seen[o.PickupLocationID()] = struct{}{}
		ids = append(ids, o.PickupLocationID())
	}

	pickups, err := h.pickups.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve pickup locations: %w", err)
	}

	candidates := make([]services.OrderCandidate, 0, len(raw))
	for _, o := range raw {
		p, ok := pickups[o.PickupLocationID()]
		if !ok {
			continue
		}
		candidates = append(candidates, services.OrderCandidate{Order: o, Pickup: p})
	}
	return candidates, nil
}

func toAvailableOrder(oc services.OrderCandidate, from kernel.GeoPoint) AvailableOrder {
	o, p := oc.Order, oc.Pickup
	dest := *o.DeliveryPoint()
	distance, _ := from.DistanceTo(p.Point())

	return AvailableOrder{
		OrderID:            o.ID(),
		Number:             o.Number(),
		PickupName:         p.Name(),
		PickupLat:          p.Point().Lat(),
		PickupLon:          p.Point().Lon(),
		DeliveryAddress:    o.DeliveryAddress(),
		DeliveryLat:        dest.Lat(),
		DeliveryLon:        dest.Lon(),
		DeliveryFee:        o.Breakdown().DeliveryFee,
		ItemCount:          o.ItemCount(),
		DistanceToPickupKm: distance,
		CreatedAt:          o.CreatedAt(),
	}
}
