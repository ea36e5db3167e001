package commands_test

import (
	"testing"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCourierLocationCommandHandler_Handle(t *testing.T) {
	t.Run("should save the reported point", func(t *testing.T) {
		ctx := t.Context()
		uow, couriers := &MockUoW{}, &MockCourierRepository{}
		rider := newCourier(t, courier.Active, kernel.NewUUID())

		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("CourierRepository").Return(couriers)
		couriers.On("Get", ctx, rider.ID()).Return(rider, nil)
		couriers.On("SaveLocation", ctx, mock.MatchedBy(func(l courier.Location) bool {
			return l.CourierID().IsEqual(rider.ID()) && l.Point().Lat() == 6.5244
		})).Return(nil)

		cmd, err := commands.NewUpdateCourierLocationCommand(rider.ID(), 6.5244, 3.3792)
		require.NoError(t, err)

		loc, err := commands.NewUpdateCourierLocationCommandHandler(courierUoWFactory{uow}).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.InDelta(t, 3.3792, loc.Point().Lon(), 1e-9)
		assert.False(t, loc.UpdatedAt().IsZero())
		mock.AssertExpectationsForObjects(t, uow, couriers)
	})

	t.Run("should fail for unknown courier", func(t *testing.T) {
		ctx := t.Context()
		uow, couriers := &MockUoW{}, &MockCourierRepository{}
		id := kernel.NewUUID()

		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.On("CourierRepository").Return(couriers)
		couriers.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("courier", id))

		cmd, err := commands.NewUpdateCourierLocationCommand(id, 6.5, 3.3)
		require.NoError(t, err)

		_, err = commands.NewUpdateCourierLocationCommandHandler(courierUoWFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		couriers.AssertNotCalled(t, "SaveLocation", mock.Anything, mock.Anything)
	})
}
