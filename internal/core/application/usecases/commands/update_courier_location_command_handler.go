package commands

import (
	"context"
	"time"

	"freshdispatch/internal/core/domain/model/courier"
)

// UpdateCourierLocationCommandHandler stores the courier's own location.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) (courier.Location, error) {
	if err := cmd.Validate(); err != nil {
		return courier.Location{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return courier.Location{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	if _, err := courierRepo.Get(ctx, cmd.CourierID()); err != nil {
		return courier.Location{}, err
	}

	loc, err := courier.NewLocation(cmd.CourierID(), cmd.Point(), time.Now().UTC())
	if err != nil {
		return courier.Location{}, err
	}
	if err = courierRepo.SaveLocation(ctx, loc); err != nil {
		return courier.Location{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return courier.Location{}, err
	}

	return loc, nil
}
