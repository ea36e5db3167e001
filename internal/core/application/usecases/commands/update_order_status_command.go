package commands

import (
	"errors"
	"strings"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a lifecycle transition. Message, actor and
// point are optional and are copied onto the status event.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Ready, "Packed and sealed", &kitchenStaffID, nil, nil)
type UpdateOrderStatusCommand struct {
	orderID kernel.UUID
	target  order.Status
	message string
	actorID *kernel.UUID
	point   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	message string,
	actorID *kernel.UUID,
	lat, lon *float64,
) (UpdateOrderStatusCommand, error) {
	point, pointErr := optionalPoint(lat, lon)

	var actorErr error
	if actorID != nil {
		actorErr = actorID.Validate()
	}

	if err := errors.Join(orderID.Validate(), target.Validate(), actorErr, pointErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		target:  target,
		message: strings.TrimSpace(message),
		actorID: actorID,
		point:   point,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateOrderStatusCommand) Target() order.Status    { return c.target }
func (c UpdateOrderStatusCommand) Message() string         { return c.message }
func (c UpdateOrderStatusCommand) ActorID() *kernel.UUID   { return c.actorID }
func (c UpdateOrderStatusCommand) Point() *kernel.GeoPoint { return c.point }
