package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

const kmPerDegreeLat = 111.19493

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func newPickup(t *testing.T, regionID kernel.UUID) order.PickupLocation {
	t.Helper()
	p, err := order.NewPickupLocation(kernel.NewUUID(), "Surulere kitchen", regionID, geoPoint(t, 0, 0))
	require.NoError(t, err)
	return p
}

// newOrder builds a door-delivery order 10 km north of pickup, walked to status.
func newOrder(t *testing.T, pickup order.PickupLocation, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("Smoked catfish", 2, 300000, 15)
	require.NoError(t, err)
	dest := geoPoint(t, 10/kmPerDegreeLat, 0)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:      kernel.NewUUID(),
		DeliveryType:    order.DoorDelivery,
		Pickup:          pickup,
		DeliveryPoint:   &dest,
		DeliveryAddress: "3 Bode Thomas Street",
		Items:           []order.Item{item},
	}, time.Now())
	require.NoError(t, err)

	if status == order.Pending {
		return o
	}
	require.NoError(t, o.RecordPayment(order.PaymentPaid))
	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		_, err = o.TransitionTo(s, time.Now())
		require.NoError(t, err)
		if s == status {
			return o
		}
	}
	if status == order.OutForDelivery {
		require.NoError(t, o.Assign(kernel.NewUUID(), kernel.NewUUID(), time.Now()))
		_, err = o.TransitionTo(order.OutForDelivery, time.Now())
		require.NoError(t, err)
	}
	return o
}

func newCourier(t *testing.T, status courier.OperatingStatus, regionID kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Emeka", status, regionID)
	require.NoError(t, err)
	return c
}
