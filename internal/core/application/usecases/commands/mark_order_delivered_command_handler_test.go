package commands_test

import (
	"testing"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderDeliveredCommandHandler_Handle(t *testing.T) {
	pickup := newPickup(t, kernel.NewUUID())

	setup := func() (*MockUoW, *MockOrderRepository, *MockStatusEventRepository, *MockOrderNotifier, commands.MarkOrderDeliveredCommandHandler) {
		uow, orders, events, notifier := &MockUoW{}, &MockOrderRepository{}, &MockStatusEventRepository{}, &MockOrderNotifier{}
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orders)
		uow.On("StatusEventRepository").Return(events)
		return uow, orders, events, notifier,
			commands.NewMarkOrderDeliveredCommandHandler(orderUoWFactory{uow}, notifier, discardLogger())
	}

	t.Run("should fail with invalid order status and write no event unless out for delivery", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Ready} {
			ctx := t.Context()
			uow, orders, events, notifier, handler := setup()
			o := newOrder(t, pickup, status)
			orders.On("Get", ctx, o.ID()).Return(o, nil)

			cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID(), kernel.NewUUID(), nil, nil)
			require.NoError(t, err)

			_, err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, order.ErrInvalidOrderStatus, status.String())
			events.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
			orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			notifier.AssertNotCalled(t, "NotifyOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("should reject a courier that is not assigned", func(t *testing.T) {
		ctx := t.Context()
		_, orders, events, _, handler := setup()
		o := newOrder(t, pickup, order.OutForDelivery)
		orders.On("Get", ctx, o.ID()).Return(o, nil)

		cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID(), kernel.NewUUID(), nil, nil)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrNotAssignedCourier)
		events.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("should deliver and record the hand-over point", func(t *testing.T) {
		ctx := t.Context()
		uow, orders, events, notifier, handler := setup()
		o := newOrder(t, pickup, order.OutForDelivery)
		courierID := *o.CourierID()
		lat, lon := 0.09, 0.0

		orders.On("Get", ctx, o.ID()).Return(o, nil)
		orders.On("Update", ctx, o).Return(nil)
		events.On("Append", ctx, mock.MatchedBy(func(e order.StatusEvent) bool {
			return e.Status() == order.Delivered && e.ActorID().IsEqual(courierID) && e.Point() != nil
		})).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		notifier.On("NotifyOwner", ctx, o, notification.OrderDelivered, mock.Anything).Return(nil)

		cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID(), courierID, &lat, &lon)
		require.NoError(t, err)

		delivered, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered.Status())
		assert.NotNil(t, delivered.DeliveredAt())
		mock.AssertExpectationsForObjects(t, uow, orders, events, notifier)
	})
}
