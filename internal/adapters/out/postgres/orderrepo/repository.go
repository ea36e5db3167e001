package orderrepo

import (
	"context"
	"errors"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable lifecycle columns. Items and the courier
// assignment are never rewritten here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":         dto.Status,
		"payment_status": dto.PaymentStatus,
		"delivered_at":   dto.DeliveredAt,
		"cancelled_at":   dto.CancelledAt,
		"updated_at":     time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AssignCourier is a single conditional UPDATE. Under READ COMMITTED a
// concurrent writer blocks on the row and then re-evaluates the predicate,
// so at most one caller ever sees a matched row.
func (r *GormOrderRepository) AssignCourier(ctx context.Context, orderID kernel.UUID, a order.Assignment) (bool, error) {
	if err := errors.Join(orderID.Validate(), a.CourierID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL AND delivery_type = ?",
			orderID.Bytes(), order.Ready.String(), order.DoorDelivery.String()).
		Updates(map[string]any{
			"courier_id":  a.CourierID.Bytes(),
			"assigned_at": a.AssignedAt,
			"assigned_by": a.AssignedBy.Bytes(),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ListDispatchableInRegion returns paid, ready, unassigned door-delivery
// orders picked up in the region, oldest first.
func (r *GormOrderRepository) ListDispatchableInRegion(
	ctx context.Context,
	regionID kernel.UUID,
	limit int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.dispatchable(ctx).
		Joins("JOIN pickup_locations ON pickup_locations.id = orders.pickup_location_id").
		Where("pickup_locations.region_id = ?", regionID.Bytes()).
		Order("orders.created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// ListDispatchableBefore returns dispatchable orders untouched since cutoff.
func (r *GormOrderRepository) ListDispatchableBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.dispatchable(ctx).
		Where("orders.updated_at < ?", cutoff).
		Order("orders.updated_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderRepository) dispatchable(ctx context.Context) *gorm.DB {
	return r.withItems(ctx).
		Select("orders.*").
		Where("orders.status = ? AND orders.payment_status = ? AND orders.delivery_type = ? AND orders.courier_id IS NULL",
			order.Ready.String(), order.PaymentPaid.String(), order.DoorDelivery.String())
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
