package http_test

import (
	"context"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/application/usecases/queries"
	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type orderHandlerMock[C any] struct {
	mock.Mock
}

func (m *orderHandlerMock[C]) Handle(ctx context.Context, cmd C) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type locationHandlerMock struct {
	mock.Mock
}

func (m *locationHandlerMock) Handle(ctx context.Context, cmd commands.UpdateCourierLocationCommand) (courier.Location, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(courier.Location), args.Error(1)
}

type trackingHandlerMock struct {
	mock.Mock
}

func (m *trackingHandlerMock) Handle(
	ctx context.Context,
	q queries.GetOrderTrackingQuery,
) (*queries.GetOrderTrackingQueryResponse, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).(*queries.GetOrderTrackingQueryResponse)
	return v, args.Error(1)
}

type availableOrdersHandlerMock struct {
	mock.Mock
}

func (m *availableOrdersHandlerMock) Handle(
	ctx context.Context,
	q queries.ListAvailableOrdersQuery,
) (queries.ListAvailableOrdersQueryResponse, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).(queries.ListAvailableOrdersQueryResponse)
	return v, args.Error(1)
}
