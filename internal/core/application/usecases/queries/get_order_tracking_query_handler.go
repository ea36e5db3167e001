package queries

import (
	"context"
	"database/sql"
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads tracking data straight from Postgres.
//
// Example:
//
//	handler := NewGetOrderTrackingQueryHandler(db)
//	query, _ := NewGetOrderTrackingQuery(orderID)
//	view, err := handler.Handle(ctx, query)
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (*GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	view, err := h.summary(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if view.Events, err = h.events(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	return view, nil
}

func (h GetOrderTrackingQueryHandler) summary(ctx context.Context, orderID kernel.UUID) (*GetOrderTrackingQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.status,
			o.payment_status,
			o.delivery_type,
			o.delivery_address,
			o.delivery_fee,
			o.total,
			p.name,
			o.estimated_delivery_at,
			o.created_at,
			o.delivered_at,
			o.cancelled_at,
			o.courier_id,
			c.name,
			cl.lat,
			cl.lon,
			cl.updated_at
		FROM orders o
		JOIN pickup_locations p ON p.id = o.pickup_location_id
		LEFT JOIN couriers c ON c.id = o.courier_id
		LEFT JOIN courier_locations cl ON cl.courier_id = o.courier_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var (
		view        = GetOrderTrackingQueryResponse{OrderID: orderID}
		courierID   uuid.NullUUID
		courierName sql.NullString
		lat, lon    sql.NullFloat64
		seenAt      sql.NullTime
	)
	err := row.Scan(
		&view.Number,
		&view.Status,
		&view.PaymentStatus,
		&view.DeliveryType,
		&view.DeliveryAddress,
		&view.DeliveryFee,
		&view.Total,
		&view.PickupName,
		&view.EstimatedDeliveryAt,
		&view.CreatedAt,
		&view.DeliveredAt,
		&view.CancelledAt,
		&courierID,
		&courierName,
		&lat,
		&lon,
		&seenAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	if courierID.Valid {
		id, idErr := kernel.UUIDFromGoogle(courierID.UUID)
		if idErr != nil {
			return nil, idErr
		}
		view.Courier = &TrackingCourier{ID: id, Name: courierName.String}
		if view.Status == order.OutForDelivery.String() && lat.Valid && lon.Valid {
			view.Courier.Lat, view.Courier.Lon = &lat.Float64, &lon.Float64
			view.Courier.UpdatedAt = &seenAt.Time
		}
	}
	return &view, nil
}

func (h GetOrderTrackingQueryHandler) events(ctx context.Context, orderID kernel.UUID) ([]TrackingEvent, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, message, lat, lon, created_at
		FROM order_status_events
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEvent, 0)
	for rows.Next() {
		var (
			e        TrackingEvent
			lat, lon sql.NullFloat64
		)
		if err = rows.Scan(&e.Status, &e.Message, &lat, &lon, &e.CreatedAt); err != nil {
			return nil, err
		}
		if lat.Valid && lon.Valid {
			e.Lat, e.Lon = &lat.Float64, &lon.Float64
		}
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
