package ports

import (
	"context"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
)

// CourierRepository is the courier directory: profiles, workload and locations.
type CourierRepository interface {
	// Get returns the profile or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// ListActiveInRegion returns every active courier of the region.
	ListActiveInRegion(ctx context.Context, regionID kernel.UUID) ([]*courier.Courier, error)

	// CountActiveOrders counts the ready or out-for-delivery orders assigned to the courier.
	CountActiveOrders(ctx context.Context, courierID kernel.UUID) (int, error)

	// GetLocation returns the last reported location or errs.ObjectNotFoundError.
	GetLocation(ctx context.Context, courierID kernel.UUID) (courier.Location, error)

	// ListLocations returns the known locations of the given couriers.
	// Couriers that never reported are absent from the map.
	ListLocations(ctx context.Context, courierIDs []kernel.UUID) (map[kernel.UUID]courier.Location, error)

	// SaveLocation upserts the courier's location.
	SaveLocation(ctx context.Context, location courier.Location) error
}
