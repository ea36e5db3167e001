package commands_test

import (
	"testing"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewCreateOrderCommand(t *testing.T) {
	item, err := order.NewItem("Fresh tilapia", 1, 250000, 10)
	require.NoError(t, err)

	t.Run("valid door delivery", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.DoorDelivery, kernel.NewUUID(),
			ptr(6.45), ptr(3.39), "12 Marina Road", []order.Item{item}, 0, 0)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NotNil(t, cmd.DeliveryPoint())
		assert.InDelta(t, 6.45, cmd.DeliveryPoint().Lat(), 1e-9)
	})

	t.Run("pickup needs no point", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Pickup, kernel.NewUUID(),
			nil, nil, "", []order.Item{item}, 0, 0)

		require.NoError(t, err)
		assert.Nil(t, cmd.DeliveryPoint())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, order.DeliveryTypeUnknown, kernel.UUID{},
			ptr(6.45), nil, "", nil, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, "customerId")
		assert.ErrorContains(t, err, "pickupLocationId")
		assert.ErrorContains(t, err, "items")
		assert.ErrorContains(t, err, "lat and lon")
	})

	t.Run("rejects out of range point", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.DoorDelivery, kernel.NewUUID(),
			ptr(91.0), ptr(3.39), "somewhere", []order.Item{item}, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewConfirmPaymentCommand(t *testing.T) {
	for _, outcome := range []order.PaymentStatus{order.PaymentPaid, order.PaymentFailed} {
		cmd, err := commands.NewConfirmPaymentCommand(kernel.NewUUID(), outcome)
		require.NoError(t, err)
		assert.Equal(t, outcome, cmd.Outcome())
	}

	_, err := commands.NewConfirmPaymentCommand(kernel.NewUUID(), order.PaymentPending)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewConfirmPaymentCommand(kernel.UUID{}, order.PaymentPaid)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Ready, "  packed  ", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "packed", cmd.Message())
	assert.Nil(t, cmd.ActorID())

	_, err = commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown, "", nil, nil, nil)
	require.Error(t, err)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Ready, "", &kernel.UUID{}, nil, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Ready, "", nil, nil, ptr(3.0))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignCourierCommand(t *testing.T) {
	_, err := commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateCourierLocationCommand(t *testing.T) {
	_, err := commands.NewUpdateCourierLocationCommand(kernel.NewUUID(), 0, 181)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewUpdateCourierLocationCommand(kernel.NewUUID(), 6.6, 3.3)
	require.NoError(t, err)
	assert.InDelta(t, 3.3, cmd.Point().Lon(), 1e-9)
}
