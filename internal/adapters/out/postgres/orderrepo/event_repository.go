package orderrepo

import (
	"context"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusEventRepository is the append-only tracking log.
type GormStatusEventRepository struct {
	db *gorm.DB
}

func NewGormStatusEventRepository(db *gorm.DB) *GormStatusEventRepository {
	return &GormStatusEventRepository{db: db}
}

func (r *GormStatusEventRepository) Append(ctx context.Context, event order.StatusEvent) error {
	dto := eventFromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormStatusEventRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusEventDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]order.StatusEvent, 0, len(dtos))
	for _, dto := range dtos {
		e, err := eventToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	order.SortEvents(events)
	return events, nil
}
