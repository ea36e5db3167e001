package order

import (
	"errors"
	"strings"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
	"freshdispatch/internal/pkg/guard"
)

var ErrPickupLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"pickup location must be created via NewPickupLocation constructor")

// PickupLocation is a kitchen or store where orders are prepared and collected.
// Orders reference it by id; repositories hand out the resolved value.
type PickupLocation struct {
	id       kernel.UUID
	name     string
	regionID kernel.UUID
	point    kernel.GeoPoint
	guard    guard.ConstructorGuard
}

func NewPickupLocation(id kernel.UUID, name string, regionID kernel.UUID, point kernel.GeoPoint) (PickupLocation, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("pickup location name")
	}
	if err := errors.Join(id.Validate(), nameErr, regionID.Validate(), point.Validate()); err != nil {
		return PickupLocation{}, err
	}

	return PickupLocation{
		id:       id,
		name:     strings.TrimSpace(name),
		regionID: regionID,
		point:    point,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (p PickupLocation) Validate() error {
	return p.guard.Validate(ErrPickupLocationIsNotConstructed)
}

func (p PickupLocation) ID() kernel.UUID       { return p.id }
func (p PickupLocation) Name() string          { return p.name }
func (p PickupLocation) RegionID() kernel.UUID { return p.regionID }
func (p PickupLocation) Point() kernel.GeoPoint {
	return p.point
}
