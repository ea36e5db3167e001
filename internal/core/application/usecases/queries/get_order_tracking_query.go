package queries

import (
	"errors"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery reads the customer's view of one order.
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}
	return GetOrderTrackingQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

func (q GetOrderTrackingQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderTrackingQueryResponse is the order summary with its event timeline.
// Courier is set once a rider is bound; its position is only exposed while
// the order is out for delivery.
type GetOrderTrackingQueryResponse struct {
	OrderID             kernel.UUID
	Number              string
	Status              string
	PaymentStatus       string
	DeliveryType        string
	DeliveryAddress     string
	DeliveryFee         kernel.Money
	Total               kernel.Money
	PickupName          string
	EstimatedDeliveryAt time.Time
	CreatedAt           time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
	Courier             *TrackingCourier
	Events              []TrackingEvent
}

type TrackingCourier struct {
	ID        kernel.UUID
	Name      string
	Lat       *float64
	Lon       *float64
	UpdatedAt *time.Time
}

type TrackingEvent struct {
	Status    string
	Message   string
	Lat       *float64
	Lon       *float64
	CreatedAt time.Time
}
