package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"freshdispatch/internal/adapters/out/postgres"
	"freshdispatch/internal/adapters/out/postgres/orderrepo"
	"freshdispatch/internal/adapters/out/postgres/pgtest"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres.GormUnitOfWorkFactory
	pickup  order.PickupLocation
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration suite")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	point, err := kernel.NewGeoPoint(6.5, 3.35)
	suite.Require().NoError(err)
	suite.pickup, err = order.NewPickupLocation(kernel.NewUUID(), "Yaba hub", kernel.NewUUID(), point)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormPickupLocationRepository(suite.pg.DB).Save(context.Background(), suite.pickup))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndEventTogether() {
	ctx := context.Background()
	o, event := suite.newOrderWithEvent()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.StatusEventRepository().Append(ctx, event))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := orderrepo.NewGormOrderRepository(suite.pg.DB).Get(ctx, o.ID())
	suite.Require().NoError(err)
	events, err := orderrepo.NewGormStatusEventRepository(suite.pg.DB).ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(events, 1)

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	o, event := suite.newOrderWithEvent()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.StatusEventRepository().Append(ctx, event))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := orderrepo.NewGormOrderRepository(suite.pg.DB).Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	events, err := orderrepo.NewGormStatusEventRepository(suite.pg.DB).ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedWritesAreInvisibleOutside() {
	ctx := context.Background()
	o, _ := suite.newOrderWithEvent()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err := orderrepo.NewGormOrderRepository(suite.pg.DB).Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.True(errors.Is(err, gorm.ErrInvalidTransaction))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrderWithEvent() (*order.Order, order.StatusEvent) {
	item, err := order.NewItem("Titus mackerel", 3, 220000, 10)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:   kernel.NewUUID(),
		DeliveryType: order.Pickup,
		Pickup:       suite.pickup,
		Items:        []order.Item{item},
	}, time.Now())
	suite.Require().NoError(err)
	event, err := order.NewStatusEvent(o.ID(), order.Pending, "Order placed", nil, nil, time.Now())
	suite.Require().NoError(err)
	return o, event
}
