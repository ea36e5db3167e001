// Package ports defines the contracts between the core and its adapters:
// persistence, the notification queue and the delivery channels.
package ports

import (
	"context"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
)

// OrderRepository is the order store.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, payment status and timestamps. It is last writer
	// wins and never touches the courier assignment.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignCourier binds a courier in one conditional write whose predicate is
	// status = ready AND courier unset AND delivery type = door-delivery.
	// It reports false when no row matched; the caller re-reads to explain why.
	AssignCourier(ctx context.Context, orderID kernel.UUID, assignment order.Assignment) (bool, error)

	// ListDispatchableInRegion returns up to limit paid, ready, unassigned
	// door-delivery orders whose pickup location lies in regionID, oldest first.
	ListDispatchableInRegion(ctx context.Context, regionID kernel.UUID, limit int) ([]*order.Order, error)

	// ListDispatchableBefore returns up to limit paid, ready, unassigned
	// door-delivery orders last updated before the cutoff, oldest first.
	ListDispatchableBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error)
}

// StatusEventRepository is the append-only tracking log.
type StatusEventRepository interface {
	Append(ctx context.Context, event order.StatusEvent) error

	// ListByOrder returns the order's events sorted by creation time.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusEvent, error)
}

// PickupLocationRepository resolves pickup location references.
type PickupLocationRepository interface {
	// Get returns the resolved location or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (order.PickupLocation, error)

	// GetMany resolves several ids at once; unknown ids are absent from the map.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]order.PickupLocation, error)
}
