package notifications_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newOrder returns a pending door-delivery order worth 2 x NGN 1500.00 plus fees.
func newOrder(t *testing.T) *order.Order {
	t.Helper()

	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	pickup, err := order.NewPickupLocation(kernel.NewUUID(), "Oyingbo market", kernel.NewUUID(), origin)
	require.NoError(t, err)
	dest, err := kernel.NewGeoPoint(0.02, 0)
	require.NoError(t, err)
	item, err := order.NewItem("Fresh tilapia", 2, 150000, 10)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:      kernel.NewUUID(),
		DeliveryType:    order.DoorDelivery,
		Pickup:          pickup,
		DeliveryPoint:   &dest,
		DeliveryAddress: "3 Herbert Macaulay Way",
		Items:           []order.Item{item},
	}, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}
