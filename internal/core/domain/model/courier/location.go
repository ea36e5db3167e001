package courier

import (
	"errors"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
)

// Location is the last point a courier reported. Staleness is not judged here.
type Location struct {
	courierID kernel.UUID
	point     kernel.GeoPoint
	updatedAt time.Time
}

func NewLocation(courierID kernel.UUID, point kernel.GeoPoint, updatedAt time.Time) (Location, error) {
	if err := errors.Join(courierID.Validate(), point.Validate()); err != nil {
		return Location{}, err
	}
	return Location{courierID: courierID, point: point, updatedAt: updatedAt}, nil
}

func (l Location) CourierID() kernel.UUID { return l.courierID }
func (l Location) Point() kernel.GeoPoint { return l.point }
func (l Location) UpdatedAt() time.Time   { return l.updatedAt }
