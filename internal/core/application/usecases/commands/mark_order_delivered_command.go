package commands

import (
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand is the assigned courier handing the order over.
// The optional point is where the hand-over happened.
type MarkOrderDeliveredCommand struct {
	orderID   kernel.UUID
	courierID kernel.UUID
	point     *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewMarkOrderDeliveredCommand(orderID, courierID kernel.UUID, lat, lon *float64) (MarkOrderDeliveredCommand, error) {
	point, pointErr := optionalPoint(lat, lon)
	if err := errors.Join(orderID.Validate(), courierID.Validate(), pointErr); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return MarkOrderDeliveredCommand{
		orderID:   orderID,
		courierID: courierID,
		point:     point,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID    { return c.orderID }
func (c MarkOrderDeliveredCommand) CourierID() kernel.UUID  { return c.courierID }
func (c MarkOrderDeliveredCommand) Point() *kernel.GeoPoint { return c.point }
