package notificationrepo

import (
	"context"
	"errors"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormContactRepository implements ports.ContactRepository using GORM.
type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Save upserts a contact.
func (r *GormContactRepository) Save(ctx context.Context, c notification.Contact) error {
	if err := c.UserID.Validate(); err != nil {
		return err
	}
	dto := contactFromDomain(c)
	return r.db.WithContext(ctx).Save(&dto).Error
}

func (r *GormContactRepository) Get(ctx context.Context, userID kernel.UUID) (notification.Contact, error) {
	if err := userID.Validate(); err != nil {
		return notification.Contact{}, err
	}

	var dto ContactDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notification.Contact{}, errs.NewObjectNotFoundError("user", userID.String())
		}
		return notification.Contact{}, err
	}
	return contactToDomain(dto)
}

// RemovePushTokens filters the rejected tokens out of the stored array.
func (r *GormContactRepository) RemovePushTokens(ctx context.Context, userID kernel.UUID, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&ContactDTO{}).
		Where("user_id = ?", userID.Bytes()).
		Update("push_tokens", gorm.Expr(
			"ARRAY(SELECT t FROM unnest(push_tokens) AS t WHERE NOT (t = ANY(?::text[])))", pq.StringArray(tokens),
		)).Error
}

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	dto := notificationFromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}
	return notificationToDomain(dto)
}

// MarkChannelSent appends channel to sent_channels once.
func (r *GormNotificationRepository) MarkChannelSent(ctx context.Context, id kernel.UUID, channel notification.Channel) error {
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_channels", gorm.Expr(
			"CASE WHEN ?::text = ANY(sent_channels) THEN sent_channels ELSE array_append(sent_channels, ?::text) END",
			channel.String(), channel.String(),
		))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}
