package orderrepo

import (
	"context"
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPickupLocationRepository resolves pickup location references.
type GormPickupLocationRepository struct {
	db *gorm.DB
}

func NewGormPickupLocationRepository(db *gorm.DB) *GormPickupLocationRepository {
	return &GormPickupLocationRepository{db: db}
}

// Save upserts a pickup location.
func (r *GormPickupLocationRepository) Save(ctx context.Context, p order.PickupLocation) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := pickupFromDomain(p)
	return r.db.WithContext(ctx).Save(&dto).Error
}

func (r *GormPickupLocationRepository) Get(ctx context.Context, id kernel.UUID) (order.PickupLocation, error) {
	if err := id.Validate(); err != nil {
		return order.PickupLocation{}, err
	}

	var dto PickupLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.PickupLocation{}, errs.NewObjectNotFoundError("pickupLocation", id.String())
		}
		return order.PickupLocation{}, err
	}
	return pickupToDomain(dto)
}

func (r *GormPickupLocationRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]order.PickupLocation, error) {
	result := make(map[kernel.UUID]order.PickupLocation, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []PickupLocationDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}
	for _, dto := range dtos {
		p, err := pickupToDomain(dto)
		if err != nil {
			return nil, err
		}
		result[p.ID()] = p
	}
	return result, nil
}
