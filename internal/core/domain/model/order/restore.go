package order

import (
	"errors"
	"fmt"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
)

// State is the persisted shape of an Order, used only by repositories.
type State struct {
	ID                  kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	Status              Status
	PaymentStatus       PaymentStatus
	DeliveryType        DeliveryType
	Breakdown           Breakdown
	Items               []Item
	ItemCount           int
	DeliveryPoint       *kernel.GeoPoint
	DeliveryAddress     string
	PickupLocationID    kernel.UUID
	Assignment          *Assignment
	EstimatedDeliveryAt time.Time
	CreatedAt           time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
}

// RestoreOrder rehydrates an order from storage. Enum values and the
// assignment invariant are re-checked so a corrupt row surfaces as an error.
func RestoreOrder(s State) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.PickupLocationID.Validate(),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		s.DeliveryType.Validate(),
		validateAssignment(s),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                  s.ID,
		number:              s.Number,
		customerID:          s.CustomerID,
		status:              s.Status,
		paymentStatus:       s.PaymentStatus,
		deliveryType:        s.DeliveryType,
		breakdown:           s.Breakdown,
		items:               append([]Item(nil), s.Items...),
		itemCount:           s.ItemCount,
		deliveryPoint:       s.DeliveryPoint,
		deliveryAddress:     s.DeliveryAddress,
		pickupLocationID:    s.PickupLocationID,
		assignment:          s.Assignment,
		estimatedDeliveryAt: s.EstimatedDeliveryAt,
		createdAt:           s.CreatedAt,
		deliveredAt:         s.DeliveredAt,
		cancelledAt:         s.CancelledAt,
		isConstructed:       true,
	}, nil
}

// Snapshot exports the order for persistence.
func (o *Order) Snapshot() State {
	return State{
		ID:                  o.id,
		Number:              o.number,
		CustomerID:          o.customerID,
		Status:              o.status,
		PaymentStatus:       o.paymentStatus,
		DeliveryType:        o.deliveryType,
		Breakdown:           o.breakdown,
		Items:               o.Items(),
		ItemCount:           o.itemCount,
		DeliveryPoint:       o.deliveryPoint,
		DeliveryAddress:     o.deliveryAddress,
		PickupLocationID:    o.pickupLocationID,
		Assignment:          o.Assignment(),
		EstimatedDeliveryAt: o.estimatedDeliveryAt,
		CreatedAt:           o.createdAt,
		DeliveredAt:         o.deliveredAt,
		CancelledAt:         o.cancelledAt,
	}
}

func validateAssignment(s State) error {
	if s.Assignment == nil {
		return nil
	}
	if s.DeliveryType != DoorDelivery {
		return errs.NewValueIsInvalidErrorWithCause("assignment",
			fmt.Errorf("%s orders cannot have a courier", s.DeliveryType))
	}
	switch s.Status { //nolint:exhaustive // only these statuses may carry a courier
	case Ready, OutForDelivery, Delivered:
	default:
		return errs.NewValueIsInvalidErrorWithCause("assignment",
			fmt.Errorf("%s orders cannot have a courier", s.Status))
	}
	return s.Assignment.CourierID.Validate()
}
