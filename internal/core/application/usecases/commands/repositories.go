// Package commands contains the operations that change order and courier state.
// Every command is built through a validating constructor and executed by a
// handler that owns the transaction boundary.
package commands

import (
	"context"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StatusEventRepoFactory interface {
		StatusEventRepository() ports.StatusEventRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW covers commands that change an order and record its status event.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusEventRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW covers commands that touch only courier data.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW spans orders, status events and couriers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   n, _ := uow.CourierRepository().CountActiveOrders(ctx, courierID)
	//   ok, _ := uow.OrderRepository().AssignCourier(ctx, orderID, assignment)
	//   // ... append the status event
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StatusEventRepoFactory
		CourierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// OrderNotifier queues the owner notification describing an order event.
// Implementations persist the notification record before enqueueing.
type OrderNotifier interface {
	NotifyOwner(ctx context.Context, o *order.Order, kind notification.Type, extra map[string]any) error
}

// CourierBroadcaster tells nearby couriers that an order is ready for pickup.
// It returns how many couriers were reached.
type CourierBroadcaster interface {
	Handle(ctx context.Context, cmd NotifyNearbyCouriersCommand) (int, error)
}

func optionalPoint(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, errPartialPoint
	}
	p, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
