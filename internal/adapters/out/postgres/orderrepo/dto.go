// Package orderrepo persists orders, their items, status events and pickup
// locations. Enums are stored by name so rows stay readable in psql.
package orderrepo

import (
	"errors"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number              string
	CustomerID          uuid.UUID `gorm:"type:uuid"`
	Status              string
	PaymentStatus       string
	DeliveryType        string
	PickupLocationID    uuid.UUID `gorm:"type:uuid"`
	DeliveryLat         *float64
	DeliveryLon         *float64
	DeliveryAddress     string
	ItemCount           int
	Subtotal            int64
	Extras              int64
	DeliveryFee         int64
	Discount            int64
	Total               int64
	CourierID           *uuid.UUID `gorm:"type:uuid"`
	AssignedAt          *time.Time
	AssignedBy          *uuid.UUID `gorm:"type:uuid"`
	EstimatedDeliveryAt time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order; Position keeps the customer's order.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	Name        string
	Quantity    int
	UnitPrice   int64
	PrepMinutes int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusEventDTO is one row of the tracking log.
type StatusEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid"`
	Status    string
	Message   string
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	Lat       *float64
	Lon       *float64
	CreatedAt time.Time
}

func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

// PickupLocationDTO is one row of the pickup_locations table.
type PickupLocationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	RegionID uuid.UUID `gorm:"type:uuid"`
	Lat      float64
	Lon      float64
}

func (PickupLocationDTO) TableName() string {
	return "pickup_locations"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	dto := OrderDTO{
		ID:                  s.ID.Bytes(),
		Number:              s.Number,
		CustomerID:          s.CustomerID.Bytes(),
		Status:              s.Status.String(),
		PaymentStatus:       s.PaymentStatus.String(),
		DeliveryType:        s.DeliveryType.String(),
		PickupLocationID:    s.PickupLocationID.Bytes(),
		DeliveryAddress:     s.DeliveryAddress,
		ItemCount:           s.ItemCount,
		Subtotal:            int64(s.Breakdown.Subtotal),
		Extras:              int64(s.Breakdown.Extras),
		DeliveryFee:         int64(s.Breakdown.DeliveryFee),
		Discount:            int64(s.Breakdown.Discount),
		Total:               int64(s.Breakdown.Total),
		EstimatedDeliveryAt: s.EstimatedDeliveryAt,
		CreatedAt:           s.CreatedAt,
		DeliveredAt:         s.DeliveredAt,
		CancelledAt:         s.CancelledAt,
		Items:               make([]OrderItemDTO, 0, len(s.Items)),
	}

	if p := s.DeliveryPoint; p != nil {
		lat, lon := p.Lat(), p.Lon()
		dto.DeliveryLat, dto.DeliveryLon = &lat, &lon
	}
	if a := s.Assignment; a != nil {
		courierID, assignedBy, assignedAt := a.CourierID.Bytes(), a.AssignedBy.Bytes(), a.AssignedAt
		dto.CourierID, dto.AssignedBy, dto.AssignedAt = &courierID, &assignedBy, &assignedAt
	}
	for i, item := range s.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:     dto.ID,
			Position:    i,
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   int64(item.UnitPrice()),
			PrepMinutes: item.PrepMinutes(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids, err := parseUUIDs(dto.ID, dto.CustomerID, dto.PickupLocationID)
	if err != nil {
		return nil, err
	}
	status, statusErr := order.ParseStatus(dto.Status)
	payment, paymentErr := order.ParsePaymentStatus(dto.PaymentStatus)
	deliveryType, typeErr := order.ParseDeliveryType(dto.DeliveryType)
	if err = errors.Join(statusErr, paymentErr, typeErr); err != nil {
		return nil, err
	}

	s := order.State{
		ID:               ids[0],
		Number:           dto.Number,
		CustomerID:       ids[1],
		Status:           status,
		PaymentStatus:    payment,
		DeliveryType:     deliveryType,
		PickupLocationID: ids[2],
		DeliveryAddress:  dto.DeliveryAddress,
		ItemCount:        dto.ItemCount,
		Breakdown: order.Breakdown{
			Subtotal:    kernel.Money(dto.Subtotal),
			Extras:      kernel.Money(dto.Extras),
			DeliveryFee: kernel.Money(dto.DeliveryFee),
			Discount:    kernel.Money(dto.Discount),
			Total:       kernel.Money(dto.Total),
		},
		EstimatedDeliveryAt: dto.EstimatedDeliveryAt,
		CreatedAt:           dto.CreatedAt,
		DeliveredAt:         dto.DeliveredAt,
		CancelledAt:         dto.CancelledAt,
	}

	if dto.DeliveryLat != nil && dto.DeliveryLon != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLon)
		if pointErr != nil {
			return nil, pointErr
		}
		s.DeliveryPoint = &p
	}

	if dto.CourierID != nil {
		assignment, assignErr := toAssignment(dto)
		if assignErr != nil {
			return nil, assignErr
		}
		s.Assignment = assignment
	}

	s.Items = make([]order.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		item, itemErr := order.NewItem(row.Name, row.Quantity, kernel.Money(row.UnitPrice), row.PrepMinutes)
		if itemErr != nil {
			return nil, itemErr
		}
		s.Items = append(s.Items, item)
	}

	return order.RestoreOrder(s)
}

func toAssignment(dto OrderDTO) (*order.Assignment, error) {
	courierID, err := kernel.UUIDFromGoogle(*dto.CourierID)
	if err != nil {
		return nil, err
	}
	a := &order.Assignment{CourierID: courierID}
	if dto.AssignedBy != nil {
		if a.AssignedBy, err = kernel.UUIDFromGoogle(*dto.AssignedBy); err != nil {
			return nil, err
		}
	}
	if dto.AssignedAt != nil {
		a.AssignedAt = *dto.AssignedAt
	}
	return a, nil
}

func eventFromDomain(e order.StatusEvent) StatusEventDTO {
	dto := StatusEventDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Bytes(),
		Status:    e.Status().String(),
		Message:   e.Message(),
		CreatedAt: e.CreatedAt(),
	}
	if a := e.ActorID(); a != nil {
		raw := a.Bytes()
		dto.ActorID = &raw
	}
	if p := e.Point(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		dto.Lat, dto.Lon = &lat, &lon
	}
	return dto
}

func eventToDomain(dto StatusEventDTO) (order.StatusEvent, error) {
	ids, err := parseUUIDs(dto.ID, dto.OrderID)
	if err != nil {
		return order.StatusEvent{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.StatusEvent{}, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		id, idErr := kernel.UUIDFromGoogle(*dto.ActorID)
		if idErr != nil {
			return order.StatusEvent{}, idErr
		}
		actorID = &id
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if pointErr != nil {
			return order.StatusEvent{}, pointErr
		}
		point = &p
	}

	return order.RestoreStatusEvent(ids[0], ids[1], status, dto.Message, actorID, point, dto.CreatedAt)
}

func pickupFromDomain(p order.PickupLocation) PickupLocationDTO {
	return PickupLocationDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		RegionID: p.RegionID().Bytes(),
		Lat:      p.Point().Lat(),
		Lon:      p.Point().Lon(),
	}
}

func pickupToDomain(dto PickupLocationDTO) (order.PickupLocation, error) {
	ids, err := parseUUIDs(dto.ID, dto.RegionID)
	if err != nil {
		return order.PickupLocation{}, err
	}
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return order.PickupLocation{}, err
	}
	return order.NewPickupLocation(ids[0], dto.Name, ids[1], point)
}

func parseUUIDs(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromGoogle(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
