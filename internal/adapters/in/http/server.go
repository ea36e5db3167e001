package http

import (
	"context"
	"log/slog"
	"net/http"

	"freshdispatch/internal/adapters/in/http/api"
	"freshdispatch/internal/core/application/usecases/commands"
	"freshdispatch/internal/core/application/usecases/queries"
	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type ConfirmPaymentHandler interface {
	Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error)
}

type UpdateOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

type AssignCourierHandler interface {
	Handle(ctx context.Context, cmd commands.AssignCourierCommand) (*order.Order, error)
}

type MarkOrderDeliveredHandler interface {
	Handle(ctx context.Context, cmd commands.MarkOrderDeliveredCommand) (*order.Order, error)
}

type UpdateCourierLocationHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateCourierLocationCommand) (courier.Location, error)
}

type GetOrderTrackingHandler interface {
	Handle(ctx context.Context, q queries.GetOrderTrackingQuery) (*queries.GetOrderTrackingQueryResponse, error)
}

type ListAvailableOrdersHandler interface {
	Handle(ctx context.Context, q queries.ListAvailableOrdersQuery) (queries.ListAvailableOrdersQueryResponse, error)
}

var (
	_ CreateOrderHandler           = commands.CreateOrderCommandHandler{}
	_ ConfirmPaymentHandler        = commands.ConfirmPaymentCommandHandler{}
	_ UpdateOrderStatusHandler     = commands.UpdateOrderStatusCommandHandler{}
	_ AssignCourierHandler         = commands.AssignCourierCommandHandler{}
	_ MarkOrderDeliveredHandler    = commands.MarkOrderDeliveredCommandHandler{}
	_ UpdateCourierLocationHandler = commands.UpdateCourierLocationCommandHandler{}
	_ GetOrderTrackingHandler      = queries.GetOrderTrackingQueryHandler{}
	_ ListAvailableOrdersHandler   = queries.ListAvailableOrdersQueryHandler{}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder           CreateOrderHandler
	ConfirmPayment        ConfirmPaymentHandler
	UpdateOrderStatus     UpdateOrderStatusHandler
	AssignCourier         AssignCourierHandler
	MarkOrderDelivered    MarkOrderDeliveredHandler
	UpdateCourierLocation UpdateCourierLocationHandler
	GetOrderTracking      GetOrderTrackingHandler
	ListAvailableOrders   ListAvailableOrdersHandler
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http.Server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body api.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromGoogle(body.CustomerId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}
	pickupID, err := kernel.UUIDFromGoogle(body.PickupLocationId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("pickupLocationId", err))
	}
	deliveryType, err := order.ParseDeliveryType(string(body.DeliveryType))
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, it := range body.Items {
		item, itemErr := order.NewItem(it.Name, it.Quantity, kernel.Money(it.UnitPrice), deref(it.PrepMinutes))
		if itemErr != nil {
			return s.fail(ctx, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		deliveryType,
		pickupID,
		body.DeliveryLat,
		body.DeliveryLon,
		deref(body.DeliveryAddress),
		items,
		kernel.Money(deref(body.Extras)),
		kernel.Money(deref(body.Discount)),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTracking(view))
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) ConfirmPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.PaymentOutcome
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	outcome, err := order.ParsePaymentStatus(body.Outcome)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, outcome)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.ConfirmPayment.Handle(c, cmd)
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	var actorID *kernel.UUID
	if body.ActorId != nil {
		id, idErr := kernel.UUIDFromGoogle(*body.ActorId)
		if idErr != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("actorId", idErr))
		}
		actorID = &id
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, deref(body.Message), actorID, body.Lat, body.Lon)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.UpdateOrderStatus.Handle(c, cmd)
	})
}

// AssignCourier handles POST /api/v1/orders/{orderId}/assign. The actor
// defaults to the courier accepting the order.
func (s *Server) AssignCourier(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.Assignment
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	courierID, err := kernel.UUIDFromGoogle(body.CourierId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", err))
	}
	actorID := courierID
	if body.ActorId != nil {
		if actorID, err = kernel.UUIDFromGoogle(*body.ActorId); err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("actorId", err))
		}
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.AssignCourier.Handle(c, cmd)
	})
}

// MarkOrderDelivered handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) MarkOrderDelivered(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.Delivery
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	courierID, err := kernel.UUIDFromGoogle(body.CourierId)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", err))
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID, courierID, body.Lat, body.Lon)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.MarkOrderDelivered.Handle(c, cmd)
	})
}

// ListAvailableOrders handles GET /api/v1/couriers/{courierId}/available-orders.
func (s *Server) ListAvailableOrders(
	ctx echo.Context,
	courierId openapi_types.UUID,
	params api.ListAvailableOrdersParams,
) error {
	courierID, err := kernel.UUIDFromGoogle(courierId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListAvailableOrdersQuery(courierID, deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.handlers.ListAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := api.AvailableOrdersPage{
		Orders: make([]api.AvailableOrder, len(page.Orders)),
		Page:   page.Page,
		Limit:  page.Limit,
	}
	for i, o := range page.Orders {
		response.Orders[i] = api.AvailableOrder{
			OrderId:            o.OrderID.Bytes(),
			Number:             o.Number,
			PickupName:         o.PickupName,
			PickupLat:          o.PickupLat,
			PickupLon:          o.PickupLon,
			DeliveryAddress:    o.DeliveryAddress,
			DeliveryLat:        o.DeliveryLat,
			DeliveryLon:        o.DeliveryLon,
			DeliveryFee:        int64(o.DeliveryFee),
			ItemCount:          o.ItemCount,
			DistanceToPickupKm: o.DistanceToPickupKm,
			CreatedAt:          o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCourierLocation handles PUT /api/v1/couriers/{courierId}/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context, courierId openapi_types.UUID) error {
	var body api.Point
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromGoogle(courierId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, body.Lat, body.Lon)
	if err != nil {
		return s.fail(ctx, err)
	}

	loc, err := s.handlers.UpdateCourierLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.CourierLocation{
		CourierId: loc.CourierID().Bytes(),
		Lat:       loc.Point().Lat(),
		Lon:       loc.Point().Lon(),
		UpdatedAt: loc.UpdatedAt(),
	})
}

func (s *Server) respondOrder(ctx echo.Context, run func(context.Context) (*order.Order, error)) error {
	o, err := run(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

func toOrder(o *order.Order) api.Order {
	b := o.Breakdown()
	out := api.Order{
		Id:                  o.ID().Bytes(),
		Number:              o.Number(),
		CustomerId:          o.CustomerID().Bytes(),
		Status:              api.OrderStatus(o.Status().String()),
		PaymentStatus:       api.PaymentStatus(o.PaymentStatus().String()),
		DeliveryType:        api.DeliveryType(o.DeliveryType().String()),
		PickupLocationId:    o.PickupLocationID().Bytes(),
		ItemCount:           o.ItemCount(),
		Subtotal:            int64(b.Subtotal),
		Extras:              int64(b.Extras),
		DeliveryFee:         int64(b.DeliveryFee),
		Discount:            int64(b.Discount),
		Total:               int64(b.Total),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
		CreatedAt:           o.CreatedAt(),
		DeliveredAt:         o.DeliveredAt(),
		CancelledAt:         o.CancelledAt(),
	}
	if addr := o.DeliveryAddress(); addr != "" {
		out.DeliveryAddress = &addr
	}
	if p := o.DeliveryPoint(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		out.DeliveryLat, out.DeliveryLon = &lat, &lon
	}
	if a := o.Assignment(); a != nil {
		courierID := a.CourierID.Bytes()
		assignedAt := a.AssignedAt
		out.CourierId, out.AssignedAt = &courierID, &assignedAt
	}
	return out
}

func toTracking(v *queries.GetOrderTrackingQueryResponse) api.Tracking {
	out := api.Tracking{
		OrderId:             v.OrderID.Bytes(),
		Number:              v.Number,
		Status:              api.OrderStatus(v.Status),
		PaymentStatus:       api.PaymentStatus(v.PaymentStatus),
		DeliveryType:        api.DeliveryType(v.DeliveryType),
		DeliveryFee:         int64(v.DeliveryFee),
		Total:               int64(v.Total),
		PickupName:          v.PickupName,
		EstimatedDeliveryAt: v.EstimatedDeliveryAt,
		CreatedAt:           v.CreatedAt,
		DeliveredAt:         v.DeliveredAt,
		CancelledAt:         v.CancelledAt,
		Events:              make([]api.TrackingEvent, len(v.Events)),
	}
	if v.DeliveryAddress != "" {
		addr := v.DeliveryAddress
		out.DeliveryAddress = &addr
	}
	if c := v.Courier; c != nil {
		out.Courier = &api.TrackingCourier{
			Id:        c.ID.Bytes(),
			Name:      c.Name,
			Lat:       c.Lat,
			Lon:       c.Lon,
			UpdatedAt: c.UpdatedAt,
		}
	}
	for i, e := range v.Events {
		out.Events[i] = api.TrackingEvent{
			Status:    api.OrderStatus(e.Status),
			Message:   e.Message,
			Lat:       e.Lat,
			Lon:       e.Lon,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
