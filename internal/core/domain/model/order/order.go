package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")

// Assignment binds a courier to a door-delivery order. It is set exactly once.
type Assignment struct {
	CourierID  kernel.UUID
	AssignedAt time.Time
	AssignedBy kernel.UUID
}

// Draft carries everything the customer supplies when placing an order.
type Draft struct {
	CustomerID      kernel.UUID
	DeliveryType    DeliveryType
	Pickup          PickupLocation
	DeliveryPoint   *kernel.GeoPoint
	DeliveryAddress string
	Items           []Item
	Extras          kernel.Money
	Discount        kernel.Money
}

// Order is the aggregate root of the delivery lifecycle.
//
// Order follows these invariants:
//   - Status changes only along the edge table of Status
//   - Statuses past pending (except cancelled) are reached only by paid orders
//   - A courier assignment exists only for door delivery in ready, out-for-delivery or delivered
//   - Terminal orders are never mutated again
//
// Fields are private; the only ways in are NewOrder for new orders and
// RestoreOrder for hydration from storage.
type Order struct {
	id               kernel.UUID
	number           string
	customerID       kernel.UUID
	status           Status
	paymentStatus    PaymentStatus
	deliveryType     DeliveryType
	breakdown        Breakdown
	items            []Item
	itemCount        int
	deliveryPoint    *kernel.GeoPoint
	deliveryAddress  string
	pickupLocationID kernel.UUID
	assignment       *Assignment

	estimatedDeliveryAt time.Time
	createdAt           time.Time
	deliveredAt         *time.Time
	cancelledAt         *time.Time

	isConstructed bool
}

// NewOrder places an order in pending with payment pending. The delivery fee
// and the estimated delivery time are computed from the haversine distance
// between the pickup location and the delivery point.
//
// Parameters:
//   - id: the new order identifier
//   - d: the customer's draft; door delivery requires DeliveryPoint and DeliveryAddress
//   - now: the creation instant
//
// Returns:
//   - *Order: the pending order
//   - error: joined validation errors
func NewOrder(id kernel.UUID, d Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(d.CustomerID),
		o.setDeliveryType(d.DeliveryType),
		o.setPickup(d.Pickup),
		o.setItems(d.Items),
		o.setDestination(d.DeliveryType, d.DeliveryPoint, d.DeliveryAddress),
		validateAmount("extras", d.Extras),
		validateAmount("discount", d.Discount),
	); err != nil {
		return nil, err
	}

	distanceKm := 0.0
	if o.deliveryType == DoorDelivery {
		km, err := d.Pickup.Point().DistanceTo(*o.deliveryPoint)
		if err != nil {
			return nil, err
		}
		distanceKm = km
	}

	o.number = NewOrderNumber(id, now)
	o.breakdown = NewBreakdown(subtotal(o.items), d.Extras, CalculateDeliveryFee(distanceKm, o.itemCount), d.Discount)
	o.estimatedDeliveryAt = now.Add(time.Duration(CalculateETA(o.items, distanceKm, o.deliveryType)) * time.Minute)

	return o, nil
}

// NewOrderNumber formats the human-readable number ORD-YYYYMMDD-XXXXXX, the
// suffix being the first six hex digits of the id.
func NewOrderNumber(id kernel.UUID, at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), suffix)
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) Number() string                  { return o.number }
func (o *Order) CustomerID() kernel.UUID         { return o.customerID }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) PaymentStatus() PaymentStatus    { return o.paymentStatus }
func (o *Order) DeliveryType() DeliveryType      { return o.deliveryType }
func (o *Order) Breakdown() Breakdown            { return o.breakdown }
func (o *Order) ItemCount() int                  { return o.itemCount }
func (o *Order) DeliveryPoint() *kernel.GeoPoint { return o.deliveryPoint }
func (o *Order) DeliveryAddress() string         { return o.deliveryAddress }
func (o *Order) PickupLocationID() kernel.UUID   { return o.pickupLocationID }
func (o *Order) EstimatedDeliveryAt() time.Time  { return o.estimatedDeliveryAt }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) DeliveredAt() *time.Time         { return o.deliveredAt }
func (o *Order) CancelledAt() *time.Time         { return o.cancelledAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Assignment returns the courier binding, nil while unassigned.
func (o *Order) Assignment() *Assignment {
	if o.assignment == nil {
		return nil
	}
	a := *o.assignment
	return &a
}

// CourierID returns the assigned courier, nil while unassigned.
func (o *Order) CourierID() *kernel.UUID {
	if o.assignment == nil {
		return nil
	}
	id := o.assignment.CourierID
	return &id
}

// IsAssignedTo reports whether courierID is the bound courier.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.assignment != nil && o.assignment.CourierID.IsEqual(courierID)
}

// NeedsDispatch reports whether couriers should be told about the order:
// a door-delivery order that is ready and still unassigned.
func (o *Order) NeedsDispatch() bool {
	return o.deliveryType == DoorDelivery && o.status == Ready && o.assignment == nil
}

// TransitionTo moves the order to target.
//
// Rules, checked in order:
//   - cancelling a cancelled order is ErrOrderAlreadyCancelled (conflict)
//   - the edge must exist in the table, else ErrInvalidStatusTransition
//   - cancelling requires payment pending, else ErrCancellationNotAllowed
//   - any other target past pending requires payment paid, else ErrOrderNotPaid
//   - door delivery must pass through out-for-delivery and needs a courier for it
//     (ErrInvalidStatusTransition, ErrCourierNotAssigned); pickup orders never go
//     out for delivery (ErrInvalidOrderType)
//
// Returns:
//   - bool: whether the status field actually changed (false for self-transitions)
//   - error: the violated rule; the order is left untouched
func (o *Order) TransitionTo(target Status, now time.Time) (bool, error) {
	if o.status == Cancelled && target == Cancelled {
		return false, errs.NewConflictError(ErrOrderAlreadyCancelled)
	}
	if err := o.status.CanTransitionTo(target); err != nil {
		return false, err
	}

	switch {
	case target == Cancelled:
		if o.paymentStatus != PaymentPending {
			return false, errs.NewPreconditionFailedErrorWithDetail(ErrCancellationNotAllowed,
				"payment is "+o.paymentStatus.String())
		}
	case target.RequiresPayment() && o.paymentStatus != PaymentPaid:
		return false, errs.NewPreconditionFailedErrorWithDetail(ErrOrderNotPaid, "payment is "+o.paymentStatus.String())
	}

	if o.status == Ready {
		if err := o.validateLeavingReady(target); err != nil {
			return false, err
		}
	}

	if target == o.status {
		return false, nil
	}

	o.status = target
	switch target { //nolint:exhaustive // only terminal states carry timestamps
	case Delivered:
		o.deliveredAt = &now
	case Cancelled:
		o.cancelledAt = &now
	}
	return true, nil
}

func (o *Order) validateLeavingReady(target Status) error {
	switch {
	case target == OutForDelivery && o.deliveryType == Pickup:
		return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidOrderType, "pickup orders are collected, not delivered")
	case target == OutForDelivery && o.assignment == nil:
		return errs.NewPreconditionFailedError(ErrCourierNotAssigned)
	case target == Delivered && o.deliveryType == DoorDelivery:
		return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidStatusTransition,
			"door delivery must go out for delivery first: ready -> delivered")
	}
	return nil
}

// MarkDelivered is the courier's hand-over: only the assigned courier may
// complete an order, and only while it is out for delivery.
func (o *Order) MarkDelivered(courierID kernel.UUID, now time.Time) error {
	if o.status != OutForDelivery {
		return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidOrderStatus,
			fmt.Sprintf("order is %s, expected %s", o.status, OutForDelivery))
	}
	if !o.IsAssignedTo(courierID) {
		return errs.NewPreconditionFailedError(ErrNotAssignedCourier)
	}
	_, err := o.TransitionTo(Delivered, now)
	return err
}

// RecordPayment applies a payment gateway outcome.
func (o *Order) RecordPayment(outcome PaymentStatus) error {
	if o.status.IsTerminal() {
		return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidOrderStatus, "order is "+o.status.String())
	}
	if err := o.paymentStatus.CanTransitionTo(outcome); err != nil {
		return err
	}
	o.paymentStatus = outcome
	return nil
}

// ExplainAssignFailure returns the precise reason a conditional assignment
// write matched no row, judged from a fresh read of the order. It returns nil
// when the order would in fact accept a courier.
func (o *Order) ExplainAssignFailure() error {
	switch {
	case o.assignment != nil:
		return errs.NewConflictError(ErrOrderAlreadyAssigned)
	case o.deliveryType != DoorDelivery:
		return errs.NewPreconditionFailedErrorWithDetail(ErrInvalidOrderType, "order is "+o.deliveryType.String())
	case o.status != Ready:
		return errs.NewPreconditionFailedErrorWithDetail(ErrOrderNotReady, "order is "+o.status.String())
	}
	return nil
}

// Assign binds courierID to the order in memory. Persistence must use the
// repository's conditional write; this method mirrors its predicate for
// stores that hold aggregates directly.
func (o *Order) Assign(courierID, actorID kernel.UUID, now time.Time) error {
	if err := errors.Join(courierID.Validate(), actorID.Validate()); err != nil {
		return err
	}
	if err := o.ExplainAssignFailure(); err != nil {
		return err
	}
	o.assignment = &Assignment{CourierID: courierID, AssignedAt: now, AssignedBy: actorID}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setDeliveryType(t DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.deliveryType = t
	return nil
}

func (o *Order) setPickup(p PickupLocation) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pickupLocationID = p.ID()
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	o.itemCount = countItems(items)
	return nil
}

func (o *Order) setDestination(t DeliveryType, point *kernel.GeoPoint, address string) error {
	address = strings.TrimSpace(address)
	if t != DoorDelivery {
		if point != nil && point.Validate() == nil {
			p := *point
			o.deliveryPoint = &p
		}
		o.deliveryAddress = address
		return nil
	}

	var errList []error
	if point == nil {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryPoint"))
	} else if err := point.Validate(); err != nil {
		errList = append(errList, err)
	}
	if address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryAddress"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	p := *point
	o.deliveryPoint = &p
	o.deliveryAddress = address
	return nil
}

func validateAmount(name string, m kernel.Money) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", m))
	}
	return nil
}
