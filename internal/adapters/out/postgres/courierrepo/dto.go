// Package courierrepo persists courier profiles and last known locations.
// Workload is never stored: it is counted from the orders table.
package courierrepo

import (
	"time"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is one row of the couriers table.
type CourierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:text;not null"`
	Status   string    `gorm:"type:text;not null"`
	RegionID uuid.UUID `gorm:"type:uuid;not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO is one row of courier_locations, keyed by courier.
type LocationDTO struct {
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat       float64
	Lon       float64
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (LocationDTO) TableName() string {
	return "courier_locations"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:       c.ID().Bytes(),
		Name:     c.Name(),
		Status:   c.Status().String(),
		RegionID: c.RegionID().Bytes(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	regionID, err := kernel.UUIDFromGoogle(dto.RegionID)
	if err != nil {
		return nil, err
	}
	status, err := courier.ParseOperatingStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return courier.NewCourier(id, dto.Name, status, regionID)
}

func locationFromDomain(l courier.Location) LocationDTO {
	return LocationDTO{
		CourierID: l.CourierID().Bytes(),
		Lat:       l.Point().Lat(),
		Lon:       l.Point().Lon(),
		UpdatedAt: l.UpdatedAt(),
	}
}

func locationToDomain(dto LocationDTO) (courier.Location, error) {
	id, err := kernel.UUIDFromGoogle(dto.CourierID)
	if err != nil {
		return courier.Location{}, err
	}
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return courier.Location{}, err
	}
	return courier.NewLocation(id, point, dto.UpdatedAt)
}
