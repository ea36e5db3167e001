package cmd

import (
	"log/slog"
	"net/http"

	httpadapter "freshdispatch/internal/adapters/in/http"
	"freshdispatch/internal/adapters/out/channels"
	"freshdispatch/internal/adapters/out/postgres"
	"freshdispatch/internal/adapters/out/postgres/courierrepo"
	"freshdispatch/internal/adapters/out/postgres/notificationrepo"
	"freshdispatch/internal/adapters/out/postgres/orderrepo"
	"freshdispatch/internal/core/application/notifications"
	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/application/usecases/queries"
	"freshdispatch/internal/core/ports"
	"freshdispatch/internal/jobs"
	"freshdispatch/internal/realtime"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      ports.NotificationQueue
	registry   *realtime.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, queue ports.NotificationQueue, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
		registry:   realtime.NewRegistry(config.RealtimeSendTimeout, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) Registry() *realtime.Registry {
	return c.registry
}

func (c *CompositionRoot) CreatePublisher() *notifications.Publisher {
	return notifications.NewPublisher(notificationrepo.NewGormNotificationRepository(c.gormDB), c.queue, c.logger)
}

func (c *CompositionRoot) CreateDispatcher() *notifications.Dispatcher {
	httpClient := &http.Client{Timeout: c.config.ChannelHTTPTimeout}
	return notifications.NewDispatcher(notifications.DispatcherDeps{
		Contacts:      notificationrepo.NewGormContactRepository(c.gormDB),
		Orders:        orderrepo.NewGormOrderRepository(c.gormDB),
		Notifications: notificationrepo.NewGormNotificationRepository(c.gormDB),
		Realtime:      c.registry,
		Push:          channels.NewPushClient(c.config.PushEndpoint, c.config.PushAPIKey, httpClient),
		SMS:           channels.NewSMSClient(c.config.SMSEndpoint, c.config.SMSAPIKey, c.config.SMSSender, httpClient),
		Email:         channels.NewEmailClient(c.config.EmailEndpoint, c.config.EmailAPIKey, c.config.EmailFrom, httpClient),
	}, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		orderrepo.NewGormPickupLocationRepository(c.gormDB),
		c.CreatePublisher(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.CreatePublisher(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(),
		c.CreatePublisher(),
		c.CreateNotifyNearbyCouriersCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.CreatePublisher(), c.logger)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	return commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory(), c.CreatePublisher(), c.logger)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyNearbyCouriersCommandHandler() commands.NotifyNearbyCouriersCommandHandler {
	return commands.NewNotifyNearbyCouriersCommandHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		orderrepo.NewGormPickupLocationRepository(c.gormDB),
		courierrepo.NewGormCourierRepository(c.gormDB),
		c.registry,
		c.config.DispatchSendTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableOrdersQueryHandler() queries.ListAvailableOrdersQueryHandler {
	return queries.NewListAvailableOrdersQueryHandler(
		courierrepo.NewGormCourierRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
		orderrepo.NewGormPickupLocationRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ConfirmPayment:        c.CreateConfirmPaymentCommandHandler(),
		UpdateOrderStatus:     c.CreateUpdateOrderStatusCommandHandler(),
		AssignCourier:         c.CreateAssignCourierCommandHandler(),
		MarkOrderDelivered:    c.CreateMarkOrderDeliveredCommandHandler(),
		UpdateCourierLocation: c.CreateUpdateCourierLocationCommandHandler(),
		GetOrderTracking:      c.CreateGetOrderTrackingQueryHandler(),
		ListAvailableOrders:   c.CreateListAvailableOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateRealtimeHandler() http.Handler {
	return realtime.Handler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	rebroadcast := jobs.NewReadyOrderRebroadcastJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.CreateNotifyNearbyCouriersCommandHandler(),
		jobs.RebroadcastConfig{
			Schedule: c.config.RebroadcastSchedule,
			Age:      c.config.RebroadcastAge,
			Batch:    c.config.RebroadcastBatch,
		},
		c.logger,
	)
	return jobs.NewJobManager(c.logger, rebroadcast)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
