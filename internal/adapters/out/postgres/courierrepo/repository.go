package courierrepo

import (
	"context"
	"errors"

	"freshdispatch/internal/core/domain/model/courier"
	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Save upserts a courier profile.
func (r *GormCourierRepository) Save(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActiveInRegion returns the region's active couriers ordered by name.
func (r *GormCourierRepository) ListActiveInRegion(ctx context.Context, regionID kernel.UUID) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("region_id = ? AND status = ?", regionID.Bytes(), courier.Active.String()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

// CountActiveOrders counts the courier's ready or out-for-delivery orders.
func (r *GormCourierRepository) CountActiveOrders(ctx context.Context, courierID kernel.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("courier_id = ? AND status IN ?", courierID.Bytes(),
			[]string{order.Ready.String(), order.OutForDelivery.String()}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *GormCourierRepository) GetLocation(ctx context.Context, courierID kernel.UUID) (courier.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courier.Location{}, errs.NewObjectNotFoundError("courierLocation", courierID.String())
		}
		return courier.Location{}, err
	}
	return locationToDomain(dto)
}

func (r *GormCourierRepository) ListLocations(
	ctx context.Context,
	courierIDs []kernel.UUID,
) (map[kernel.UUID]courier.Location, error) {
	result := make(map[kernel.UUID]courier.Location, len(courierIDs))
	if len(courierIDs) == 0 {
		return result, nil
	}

	raw := make([]uuid.UUID, 0, len(courierIDs))
	for _, id := range courierIDs {
		raw = append(raw, id.Bytes())
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Where("courier_id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}
	for _, dto := range dtos {
		l, err := locationToDomain(dto)
		if err != nil {
			return nil, err
		}
		result[l.CourierID()] = l
	}
	return result, nil
}

// SaveLocation upserts the courier's location; the newest report wins.
func (r *GormCourierRepository) SaveLocation(ctx context.Context, location courier.Location) error {
	dto := locationFromDomain(location)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "courier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lon", "updated_at"}),
	}).Create(&dto).Error
}
