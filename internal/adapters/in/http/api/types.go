package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DeliveryType defines model for DeliveryType.
type DeliveryType string

const (
	DeliveryTypePickup       DeliveryType = "pickup"
	DeliveryTypeDoorDelivery DeliveryType = "door-delivery"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PaymentStatus defines model for PaymentStatus.
type PaymentStatus string

// NewItem defines model for NewItem.
type NewItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	PrepMinutes *int   `json:"prepMinutes,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId       openapi_types.UUID `json:"customerId"`
	DeliveryType     DeliveryType       `json:"deliveryType"`
	PickupLocationId openapi_types.UUID `json:"pickupLocationId"`
	DeliveryLat      *float64           `json:"deliveryLat,omitempty"`
	DeliveryLon      *float64           `json:"deliveryLon,omitempty"`
	DeliveryAddress  *string            `json:"deliveryAddress,omitempty"`
	Items            []NewItem          `json:"items"`
	Extras           *int64             `json:"extras,omitempty"`
	Discount         *int64             `json:"discount,omitempty"`
}

// PaymentOutcome defines model for PaymentOutcome.
type PaymentOutcome struct {
	Outcome string `json:"outcome"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status  OrderStatus         `json:"status"`
	Message *string             `json:"message,omitempty"`
	ActorId *openapi_types.UUID `json:"actorId,omitempty"`
	Lat     *float64            `json:"lat,omitempty"`
	Lon     *float64            `json:"lon,omitempty"`
}

// Assignment defines model for Assignment.
type Assignment struct {
	CourierId openapi_types.UUID  `json:"courierId"`
	ActorId   *openapi_types.UUID `json:"actorId,omitempty"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	CourierId openapi_types.UUID `json:"courierId"`
	Lat       *float64           `json:"lat,omitempty"`
	Lon       *float64           `json:"lon,omitempty"`
}

// Point defines model for Point.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Order defines model for Order.
type Order struct {
	Id                  openapi_types.UUID  `json:"id"`
	Number              string              `json:"number"`
	CustomerId          openapi_types.UUID  `json:"customerId"`
	Status              OrderStatus         `json:"status"`
	PaymentStatus       PaymentStatus       `json:"paymentStatus"`
	DeliveryType        DeliveryType        `json:"deliveryType"`
	PickupLocationId    openapi_types.UUID  `json:"pickupLocationId"`
	DeliveryAddress     *string             `json:"deliveryAddress,omitempty"`
	DeliveryLat         *float64            `json:"deliveryLat,omitempty"`
	DeliveryLon         *float64            `json:"deliveryLon,omitempty"`
	ItemCount           int                 `json:"itemCount"`
	Subtotal            int64               `json:"subtotal"`
	Extras              int64               `json:"extras"`
	DeliveryFee         int64               `json:"deliveryFee"`
	Discount            int64               `json:"discount"`
	Total               int64               `json:"total"`
	CourierId           *openapi_types.UUID `json:"courierId,omitempty"`
	AssignedAt          *time.Time          `json:"assignedAt,omitempty"`
	EstimatedDeliveryAt time.Time           `json:"estimatedDeliveryAt"`
	CreatedAt           time.Time           `json:"createdAt"`
	DeliveredAt         *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt         *time.Time          `json:"cancelledAt,omitempty"`
}

// TrackingCourier defines model for TrackingCourier.
type TrackingCourier struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Lat       *float64           `json:"lat,omitempty"`
	Lon       *float64           `json:"lon,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

// TrackingEvent defines model for TrackingEvent.
type TrackingEvent struct {
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message"`
	Lat       *float64    `json:"lat,omitempty"`
	Lon       *float64    `json:"lon,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	OrderId             openapi_types.UUID `json:"orderId"`
	Number              string             `json:"number"`
	Status              OrderStatus        `json:"status"`
	PaymentStatus       PaymentStatus      `json:"paymentStatus"`
	DeliveryType        DeliveryType       `json:"deliveryType"`
	DeliveryAddress     *string            `json:"deliveryAddress,omitempty"`
	DeliveryFee         int64              `json:"deliveryFee"`
	Total               int64              `json:"total"`
	PickupName          string             `json:"pickupName"`
	EstimatedDeliveryAt time.Time          `json:"estimatedDeliveryAt"`
	CreatedAt           time.Time          `json:"createdAt"`
	DeliveredAt         *time.Time         `json:"deliveredAt,omitempty"`
	CancelledAt         *time.Time         `json:"cancelledAt,omitempty"`
	Courier             *TrackingCourier   `json:"courier,omitempty"`
	Events              []TrackingEvent    `json:"events"`
}

// AvailableOrder defines model for AvailableOrder.
type AvailableOrder struct {
	OrderId            openapi_types.UUID `json:"orderId"`
	Number             string             `json:"number"`
	PickupName         string             `json:"pickupName"`
	PickupLat          float64            `json:"pickupLat"`
	PickupLon          float64            `json:"pickupLon"`
	DeliveryAddress    string             `json:"deliveryAddress"`
	DeliveryLat        float64            `json:"deliveryLat"`
	DeliveryLon        float64            `json:"deliveryLon"`
	DeliveryFee        int64              `json:"deliveryFee"`
	ItemCount          int                `json:"itemCount"`
	DistanceToPickupKm float64            `json:"distanceToPickupKm"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// AvailableOrdersPage defines model for AvailableOrdersPage.
type AvailableOrdersPage struct {
	Orders []AvailableOrder `json:"orders"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
}

// CourierLocation defines model for CourierLocation.
type CourierLocation struct {
	CourierId openapi_types.UUID `json:"courierId"`
	Lat       float64            `json:"lat"`
	Lon       float64            `json:"lon"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ListAvailableOrdersParams defines parameters for ListAvailableOrders.
type ListAvailableOrdersParams struct {
	Page  *int `form:"page,omitempty" json:"page,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}
