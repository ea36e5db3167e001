package commands

import (
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand is a courier reporting where it is.
type UpdateCourierLocationCommand struct {
	courierID kernel.UUID
	point     kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateCourierLocationCommand(courierID kernel.UUID, lat, lon float64) (UpdateCourierLocationCommand, error) {
	point, pointErr := kernel.NewGeoPoint(lat, lon)
	if err := errors.Join(courierID.Validate(), pointErr); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return UpdateCourierLocationCommand{courierID: courierID, point: point, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

func (c UpdateCourierLocationCommand) CourierID() kernel.UUID { return c.courierID }
func (c UpdateCourierLocationCommand) Point() kernel.GeoPoint { return c.point }
