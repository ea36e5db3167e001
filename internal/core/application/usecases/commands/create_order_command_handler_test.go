package commands_test

import (
	"errors"
	"testing"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	pickup := newPickup(t, kernel.NewUUID())
	item, err := order.NewItem("Frozen prawns", 6, 150000, 20)
	require.NoError(t, err)

	newCmd := func(t *testing.T, pickupID kernel.UUID) commands.CreateOrderCommand {
		t.Helper()
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.DoorDelivery, pickupID,
			ptr(8.5/kmPerDegreeLat), ptr(0.0), "7 Adeniran Ogunsanya Street", []order.Item{item}, 0, 0)
		require.NoError(t, err)
		return cmd
	}

	t.Run("should price, store and announce the order", func(t *testing.T) {
		ctx := t.Context()
		uow, orders, events := &MockUoW{}, &MockOrderRepository{}, &MockStatusEventRepository{}
		pickups, notifier := &MockPickupLocationRepository{}, &MockOrderNotifier{}
		cmd := newCmd(t, pickup.ID())

		pickups.On("Get", ctx, pickup.ID()).Return(pickup, nil)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("OrderRepository").Return(orders)
		uow.On("StatusEventRepository").Return(events)
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
		events.On("Append", ctx, mock.MatchedBy(func(e order.StatusEvent) bool {
			return e.Status() == order.Pending && e.Message() == "Order placed"
		})).Return(nil)
		notifier.On("NotifyOwner", ctx, mock.AnythingOfType("*order.Order"), notification.OrderPlaced, mock.Anything).
			Return(nil)

		handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow}, pickups, notifier, discardLogger())
		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, created.Status())
		assert.Equal(t, order.PaymentPending, created.PaymentStatus())
		assert.Equal(t, cmd.CustomerID(), created.CustomerID())
		// 8.5 km and six items: three 3 km blocks plus the extra items fee.
		assert.Equal(t, kernel.Money(180000), created.Breakdown().DeliveryFee)
		assert.Equal(t, kernel.Money(900000), created.Breakdown().Subtotal)
		assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{6}$`, created.Number())
		mock.AssertExpectationsForObjects(t, uow, orders, events, pickups, notifier)
	})

	t.Run("should fail for unknown pickup location without opening a transaction", func(t *testing.T) {
		ctx := t.Context()
		uow, pickups, notifier := &MockUoW{}, &MockPickupLocationRepository{}, &MockOrderNotifier{}
		cmd := newCmd(t, kernel.NewUUID())

		pickups.On("Get", ctx, cmd.PickupLocationID()).
			Return(order.PickupLocation{}, errs.NewObjectNotFoundError("pickupLocation", cmd.PickupLocationID()))

		handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow}, pickups, notifier, discardLogger())
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should not announce when the store fails", func(t *testing.T) {
		ctx := t.Context()
		uow, orders := &MockUoW{}, &MockOrderRepository{}
		pickups, notifier := &MockPickupLocationRepository{}, &MockOrderNotifier{}
		cmd := newCmd(t, pickup.ID())

		pickups.On("Get", ctx, pickup.ID()).Return(pickup, nil)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.On("OrderRepository").Return(orders)
		orders.On("Add", ctx, mock.Anything).Return(errors.New("connection reset"))

		handler := commands.NewCreateOrderCommandHandler(orderUoWFactory{uow}, pickups, notifier, discardLogger())
		_, err := handler.Handle(ctx, cmd)

		require.ErrorContains(t, err, "add order")
		notifier.AssertNotCalled(t, "NotifyOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
