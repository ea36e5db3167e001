package services_test

import (
	"math"
	"testing"
	"time"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kmPerDegreeLat is the haversine length of one degree of latitude.
const kmPerDegreeLat = 111.19493

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func candidate(t *testing.T, status courier.OperatingStatus, at kernel.GeoPoint) services.Candidate {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Rider", status, kernel.NewUUID())
	require.NoError(t, err)
	loc, err := courier.NewLocation(c.ID(), at, time.Now())
	require.NoError(t, err)
	return services.Candidate{Courier: c, Location: loc}
}

func TestDispatchMatcher_MatchCouriers(t *testing.T) {
	matcher := services.NewDispatchMatcher()
	pickup := point(t, 0, 0)
	// delivery 10 km north of pickup
	delivery := point(t, 10/kmPerDegreeLat, 0)

	t.Run("should keep courier within reach of both points", func(t *testing.T) {
		near := candidate(t, courier.Active, point(t, 5/kmPerDegreeLat, 0))

		matched, err := matcher.MatchCouriers(pickup, delivery, []services.Candidate{near})

		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.True(t, matched[0].Courier.IsEqual(near.Courier))
	})

	t.Run("should exclude courier 16 km from pickup even if near delivery", func(t *testing.T) {
		// 16 km north of pickup, 6 km from delivery
		far := candidate(t, courier.Active, point(t, 16/kmPerDegreeLat, 0))

		matched, err := matcher.MatchCouriers(pickup, delivery, []services.Candidate{far})

		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("should exclude courier too far from delivery", func(t *testing.T) {
		// 6 km south of pickup, 16 km from delivery
		south := candidate(t, courier.Active, point(t, -6/kmPerDegreeLat, 0))

		matched, err := matcher.MatchCouriers(pickup, delivery, []services.Candidate{south})

		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("should skip inactive couriers", func(t *testing.T) {
		at := point(t, 5/kmPerDegreeLat, 0)
		inactive := candidate(t, courier.Inactive, at)
		suspended := candidate(t, courier.Suspended, at)
		active := candidate(t, courier.Active, at)

		matched, err := matcher.MatchCouriers(pickup, delivery, []services.Candidate{inactive, active, suspended})

		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.True(t, matched[0].Courier.IsEqual(active.Courier))
	})

	t.Run("should fail on invalid trip points", func(t *testing.T) {
		_, err := matcher.MatchCouriers(kernel.GeoPoint{}, delivery, nil)

		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func readyOrder(t *testing.T, pickup order.PickupLocation, dest kernel.GeoPoint, paid bool) *order.Order {
	t.Helper()
	item, err := order.NewItem("Fresh fish", 1, 700000, 15)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:      kernel.NewUUID(),
		DeliveryType:    order.DoorDelivery,
		Pickup:          pickup,
		DeliveryPoint:   &dest,
		DeliveryAddress: "Somewhere",
		Items:           []order.Item{item},
	}, time.Now())
	require.NoError(t, err)
	if !paid {
		return o
	}
	require.NoError(t, o.RecordPayment(order.PaymentPaid))
	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		_, err = o.TransitionTo(s, time.Now())
		require.NoError(t, err)
	}
	return o
}

func TestDispatchMatcher_FilterOrders(t *testing.T) {
	matcher := services.NewDispatchMatcher()
	pickup, err := order.NewPickupLocation(kernel.NewUUID(), "Kitchen", kernel.NewUUID(), point(t, 0, 0))
	require.NoError(t, err)

	reachable := readyOrder(t, pickup, point(t, 4/kmPerDegreeLat, 0), true)
	tooFar := readyOrder(t, pickup, point(t, 30/kmPerDegreeLat, 0), true)
	unpaid := readyOrder(t, pickup, point(t, 4/kmPerDegreeLat, 0), false)

	orders := []services.OrderCandidate{
		{Order: reachable, Pickup: pickup},
		{Order: tooFar, Pickup: pickup},
		{Order: unpaid, Pickup: pickup},
	}

	eligible, err := matcher.FilterOrders(point(t, 2/kmPerDegreeLat, 0), orders)

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.True(t, eligible[0].Order.IsEqual(reachable))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, services.Paginate(items, 1, 3))
	assert.Equal(t, []int{7}, services.Paginate(items, 3, 3))
	assert.Empty(t, services.Paginate(items, 4, 3))
	assert.Empty(t, services.Paginate(items, 0, 3))
	assert.Equal(t, 18, services.FetchLimit(2, 3))
}

func TestPaginate_HugePageDoesNotOverflow(t *testing.T) {
	items := []int{1, 2, 3}
	huge := math.MaxInt/4 + 2

	assert.NotPanics(t, func() {
		assert.Empty(t, services.Paginate(items, huge, 4))
		assert.Empty(t, services.Paginate(items, math.MaxInt, math.MaxInt))
	})
	assert.Equal(t, items, services.Paginate(items, 1, math.MaxInt))
	assert.Empty(t, services.Paginate([]int{}, 1, 4))
}

func TestFetchLimit_Bounded(t *testing.T) {
	assert.Equal(t, services.MaxFetchLimit, services.FetchLimit(math.MaxInt/4+2, 4))
	assert.Equal(t, services.MaxFetchLimit, services.FetchLimit(1, math.MaxInt))
	assert.Zero(t, services.FetchLimit(0, 4))
	assert.Zero(t, services.FetchLimit(1, -1))
	assert.Equal(t, 1000*50*services.OverFetchMultiplier, services.FetchLimit(1000, 50))
}
