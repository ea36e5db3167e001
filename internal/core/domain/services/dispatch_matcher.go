package services

import (
	"errors"
	"math"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
)

const (
	// MaxDispatchRadiusKm bounds the distance between a courier and both ends of a trip.
	MaxDispatchRadiusKm = 15.0

	// OverFetchMultiplier scales the raw region fetch so a page stays populated
	// after proximity filtering. Sparse regions still return short pages.
	OverFetchMultiplier = 3

	// MaxFetchLimit caps a single raw region read.
	MaxFetchLimit = math.MaxInt32
)

// Candidate is a courier with its last known location.
type Candidate struct {
	Courier  *courier.Courier
	Location courier.Location
}

// OrderCandidate is a ready order resolved with its pickup location.
type OrderCandidate struct {
	Order  *order.Order
	Pickup order.PickupLocation
}

// DispatchMatcher decides which couriers may take which door-delivery orders.
// It is first-come proximity filtering, not an optimizer: every courier within
// reach qualifies and the first to accept wins.
//
// Example usage:
//
//	matcher := services.NewDispatchMatcher()
//	nearby, err := matcher.MatchCouriers(pickup.Point(), *o.DeliveryPoint(), candidates)
//	if err != nil {
//	    return err
//	}
//	// notify every courier in nearby
type DispatchMatcher struct {
	radiusKm float64
}

// NewDispatchMatcher returns a matcher using MaxDispatchRadiusKm.
func NewDispatchMatcher() DispatchMatcher {
	return DispatchMatcher{radiusKm: MaxDispatchRadiusKm}
}

// RadiusKm returns the dispatch radius.
func (m DispatchMatcher) RadiusKm() float64 {
	if m.radiusKm == 0 {
		return MaxDispatchRadiusKm
	}
	return m.radiusKm
}

// WithinReach reports whether point lies within the dispatch radius of both
// the pickup and the delivery point.
func (m DispatchMatcher) WithinReach(point, pickup, delivery kernel.GeoPoint) (bool, error) {
	nearPickup, err := point.WithinRadius(pickup, m.RadiusKm())
	if err != nil {
		return false, err
	}
	if !nearPickup {
		return false, nil
	}
	return point.WithinRadius(delivery, m.RadiusKm())
}

// MatchCouriers keeps the active candidates within reach of the trip,
// preserving input order.
//
// Returns:
//   - []Candidate: couriers to notify, possibly empty
//   - error: validation error if a point was not constructed
func (m DispatchMatcher) MatchCouriers(pickup, delivery kernel.GeoPoint, candidates []Candidate) ([]Candidate, error) {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return nil, err
	}

	matched := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Courier.Validate(); err != nil {
			return nil, err
		}
		if !c.Courier.IsActive() {
			continue
		}

		ok, err := m.WithinReach(c.Location.Point(), pickup, delivery)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// FilterOrders keeps the orders a courier at point can serve: dispatchable
// door-delivery orders whose pickup and delivery points are both within reach.
func (m DispatchMatcher) FilterOrders(point kernel.GeoPoint, orders []OrderCandidate) ([]OrderCandidate, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	eligible := make([]OrderCandidate, 0, len(orders))
	for _, oc := range orders {
		if !oc.Order.NeedsDispatch() || oc.Order.PaymentStatus() != order.PaymentPaid || oc.Order.DeliveryPoint() == nil {
			continue
		}

		ok, err := m.WithinReach(point, oc.Pickup.Point(), *oc.Order.DeliveryPoint())
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, oc)
		}
	}
	return eligible, nil
}

// FetchLimit is how many raw rows to read to fill the given 1-based page.
// Non-positive inputs fetch nothing and the result never exceeds MaxFetchLimit.
func FetchLimit(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if limit > MaxFetchLimit/OverFetchMultiplier || page > MaxFetchLimit/(limit*OverFetchMultiplier) {
		return MaxFetchLimit
	}
	return page * limit * OverFetchMultiplier
}

// Paginate slices the 1-based page out of items. Out of range pages are empty.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	if len(items) == 0 || page-1 > (len(items)-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	end := start + min(limit, len(items)-start)
	return items[start:end]
}
