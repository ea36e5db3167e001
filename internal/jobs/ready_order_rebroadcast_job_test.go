package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockLister struct{ mock.Mock }

func (m *MockLister) ListDispatchableBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBroadcaster struct{ mock.Mock }

func (m *MockBroadcaster) Handle(ctx context.Context, cmd commands.NotifyNearbyCouriersCommand) (int, error) {
	args := m.Called(ctx, cmd.OrderID())
	return args.Int(0), args.Error(1)
}

func readyOrder(t *testing.T) *order.Order {
	t.Helper()

	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	pickup, err := order.NewPickupLocation(kernel.NewUUID(), "Mile 12 market", kernel.NewUUID(), origin)
	require.NoError(t, err)
	dest, err := kernel.NewGeoPoint(0.03, 0)
	require.NoError(t, err)
	item, err := order.NewItem("Frozen prawns", 1, 800000, 5)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:      kernel.NewUUID(),
		DeliveryType:    order.DoorDelivery,
		Pickup:          pickup,
		DeliveryPoint:   &dest,
		DeliveryAddress: "21 Ikorodu Road",
		Items:           []order.Item{item},
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.RecordPayment(order.PaymentPaid))
	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		_, err = o.TransitionTo(s, time.Now())
		require.NoError(t, err)
	}
	return o
}

func TestReadyOrderRebroadcastJob_Run(t *testing.T) {
	t.Run("should rebroadcast every stale order", func(t *testing.T) {
		lister := &MockLister{}
		broadcaster := &MockBroadcaster{}
		first, second := readyOrder(t), readyOrder(t)

		before := time.Now()
		lister.On("ListDispatchableBefore", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.After(before.Add(-10*time.Minute).Add(time.Second)) &&
				cutoff.After(before.Add(-10*time.Minute).Add(-time.Second))
		}), 25).Return([]*order.Order{first, second}, nil)
		broadcaster.On("Handle", mock.Anything, first.ID()).Return(2, nil)
		broadcaster.On("Handle", mock.Anything, second.ID()).Return(0, nil)

		job := jobs.NewReadyOrderRebroadcastJob(lister, broadcaster, jobs.RebroadcastConfig{
			Age:   10 * time.Minute,
			Batch: 25,
		}, discardLogger())
		n, err := job.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		lister.AssertExpectations(t)
		broadcaster.AssertExpectations(t)
	})

	t.Run("should keep going after a failed order", func(t *testing.T) {
		lister := &MockLister{}
		broadcaster := &MockBroadcaster{}
		failing, ok := readyOrder(t), readyOrder(t)

		lister.On("ListDispatchableBefore", mock.Anything, mock.Anything, jobs.DefaultRebroadcastBatch).
			Return([]*order.Order{failing, ok}, nil)
		broadcaster.On("Handle", mock.Anything, failing.ID()).Return(0, errors.New("pickup not found"))
		broadcaster.On("Handle", mock.Anything, ok.ID()).Return(1, nil)

		job := jobs.NewReadyOrderRebroadcastJob(lister, broadcaster, jobs.RebroadcastConfig{}, discardLogger())
		n, err := job.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("should return the listing error", func(t *testing.T) {
		lister := &MockLister{}
		broadcaster := &MockBroadcaster{}
		lister.On("ListDispatchableBefore", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		job := jobs.NewReadyOrderRebroadcastJob(lister, broadcaster, jobs.RebroadcastConfig{}, discardLogger())
		_, err := job.Run(context.Background())

		require.EqualError(t, err, "db down")
		broadcaster.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestReadyOrderRebroadcastJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewReadyOrderRebroadcastJob(&MockLister{}, &MockBroadcaster{},
			jobs.RebroadcastConfig{Schedule: "every now and then"}, discardLogger())

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		job := jobs.NewReadyOrderRebroadcastJob(&MockLister{}, &MockBroadcaster{},
			jobs.RebroadcastConfig{Schedule: "0 0 3 * * *"}, discardLogger())

		require.NoError(t, job.Start())
		job.Stop()
	})
}
