package queries_test

import (
	"context"
	"time"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) ListActiveInRegion(ctx context.Context, regionID kernel.UUID) ([]*courier.Courier, error) {
	args := m.Called(ctx, regionID)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) CountActiveOrders(ctx context.Context, id kernel.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCourierRepository) GetLocation(ctx context.Context, id kernel.UUID) (courier.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(courier.Location), args.Error(1)
}

func (m *MockCourierRepository) ListLocations(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]courier.Location, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[kernel.UUID]courier.Location), args.Error(1)
}

func (m *MockCourierRepository) SaveLocation(ctx context.Context, l courier.Location) error {
	return m.Called(ctx, l).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignCourier(ctx context.Context, id kernel.UUID, a order.Assignment) (bool, error) {
	args := m.Called(ctx, id, a)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListDispatchableInRegion(
	ctx context.Context, regionID kernel.UUID, limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, regionID, limit)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListDispatchableBefore(
	ctx context.Context, cutoff time.Time, limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPickupLocationRepository struct{ mock.Mock }

func (m *MockPickupLocationRepository) Get(ctx context.Context, id kernel.UUID) (order.PickupLocation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.PickupLocation), args.Error(1)
}

func (m *MockPickupLocationRepository) GetMany(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]order.PickupLocation, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[kernel.UUID]order.PickupLocation), args.Error(1)
}
