package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Order summary with its status timeline
	// (GET /api/v1/orders/{orderId}/tracking)
	GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error
	// Record the payment gateway outcome
	// (POST /api/v1/orders/{orderId}/payment)
	ConfirmPayment(ctx echo.Context, orderId openapi_types.UUID) error
	// Move the order along its lifecycle
	// (PATCH /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// A courier accepts a ready order
	// (POST /api/v1/orders/{orderId}/assign)
	AssignCourier(ctx echo.Context, orderId openapi_types.UUID) error
	// The assigned courier hands the order over
	// (POST /api/v1/orders/{orderId}/deliver)
	MarkOrderDelivered(ctx echo.Context, orderId openapi_types.UUID) error
	// Ready orders within reach of the courier
	// (GET /api/v1/couriers/{courierId}/available-orders)
	ListAvailableOrders(ctx echo.Context, courierId openapi_types.UUID, params ListAvailableOrdersParams) error
	// Report the courier's current position
	// (PUT /api/v1/couriers/{courierId}/location)
	UpdateCourierLocation(ctx echo.Context, courierId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrderTracking converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderTracking(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderTracking(ctx, orderId)
}

// ConfirmPayment converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmPayment(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmPayment(ctx, orderId)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

// AssignCourier converts echo context to params.
func (w *ServerInterfaceWrapper) AssignCourier(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AssignCourier(ctx, orderId)
}

// MarkOrderDelivered converts echo context to params.
func (w *ServerInterfaceWrapper) MarkOrderDelivered(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.MarkOrderDelivered(ctx, orderId)
}

// ListAvailableOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableOrders(ctx echo.Context) error {
	courierId, err := bindPathUUID(ctx, "courierId")
	if err != nil {
		return err
	}

	var params ListAvailableOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListAvailableOrders(ctx, courierId, params)
}

// UpdateCourierLocation converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCourierLocation(ctx echo.Context) error {
	courierId, err := bindPathUUID(ctx, "courierId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateCourierLocation(ctx, courierId)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to mount handlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/tracking", wrapper.GetOrderTracking)
	router.POST(baseURL+"/api/v1/orders/:orderId/payment", wrapper.ConfirmPayment)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/assign", wrapper.AssignCourier)
	router.POST(baseURL+"/api/v1/orders/:orderId/deliver", wrapper.MarkOrderDelivered)
	router.GET(baseURL+"/api/v1/couriers/:courierId/available-orders", wrapper.ListAvailableOrders)
	router.PUT(baseURL+"/api/v1/couriers/:courierId/location", wrapper.UpdateCourierLocation)
}
