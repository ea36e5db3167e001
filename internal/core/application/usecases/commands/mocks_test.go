package commands_test

import (
	"context"
	"time"

	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListDispatchableBefore(
	ctx context.Context, cutoff time.Time, limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStatusEventRepository struct{ mock.Mock }

func (m *MockStatusEventRepository) Append(ctx context.Context, e order.StatusEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockStatusEventRepository) ListByOrder(ctx context.Context, id kernel.UUID) ([]order.StatusEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusEvent), args.Error(1)
}

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]courier.Location), args.Error(1)
}

func (m *MockCourierRepository) SaveLocation(ctx context.Context, l courier.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]order.PickupLocation), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusEventRepository() ports.StatusEventRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusEventRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type courierUoWFactory struct{ uow *MockUoW }

func (f courierUoWFactory) Create() commands.CourierUoW { return f.uow }

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) NotifyOwner(
	ctx context.Context, o *order.Order, kind notification.Type, extra map[string]any,
) error {
	args := m.Called(ctx, o, kind, extra)
	return args.Error(0)
}

type MockCourierBroadcaster struct{ mock.Mock }

func (m *MockCourierBroadcaster) Handle(ctx context.Context, cmd commands.NotifyNearbyCouriersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockRealtimeEmitter struct{ mock.Mock }

func (m *MockRealtimeEmitter) Emit(ctx context.Context, userID kernel.UUID, event string, data any) (int, error) {
	args := m.Called(ctx, userID, event, data)
	return args.Int(0), args.Error(1)
}
