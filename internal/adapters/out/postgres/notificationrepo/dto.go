// Package notificationrepo persists notification records and the contact
// directory used by the notification worker.
package notificationrepo

import (
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContactDTO is one row of the contacts table.
type ContactDTO struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Email         string
	EmailVerified bool
	Phone         string
	PushTokens    pq.StringArray `gorm:"type:text[]"`
}

func (ContactDTO) TableName() string {
	return "contacts"
}

// NotificationDTO is one row of the notifications table.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid"`
	Type         string
	Title        string
	Message      string
	Payload      map[string]any `gorm:"type:jsonb;serializer:json"`
	Channels     pq.StringArray `gorm:"type:text[]"`
	SentChannels pq.StringArray `gorm:"type:text[]"`
	Read         bool
	CreatedAt    time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func contactFromDomain(c notification.Contact) ContactDTO {
	tokens := c.PushTokens
	if tokens == nil {
		tokens = []string{}
	}
	return ContactDTO{
		UserID:        c.UserID.Bytes(),
		Name:          c.Name,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
		Phone:         c.Phone,
		PushTokens:    tokens,
	}
}

func contactToDomain(dto ContactDTO) (notification.Contact, error) {
	id, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return notification.Contact{}, err
	}
	return notification.Contact{
		UserID:        id,
		Name:          dto.Name,
		Email:         dto.Email,
		EmailVerified: dto.EmailVerified,
		Phone:         dto.Phone,
		PushTokens:    []string(dto.PushTokens),
	}, nil
}

func notificationFromDomain(n *notification.Notification) NotificationDTO {
	channels := make(pq.StringArray, 0, len(n.Channels()))
	sent := make(pq.StringArray, 0, len(n.Channels()))
	for _, c := range n.Channels() {
		channels = append(channels, c.String())
		if n.IsSent(c) {
			sent = append(sent, c.String())
		}
	}

	payload := n.Payload()
	if payload == nil {
		payload = map[string]any{}
	}

	return NotificationDTO{
		ID:           n.ID().Bytes(),
		UserID:       n.UserID().Bytes(),
		Type:         n.Type().String(),
		Title:        n.Title(),
		Message:      n.Message(),
		Payload:      payload,
		Channels:     channels,
		SentChannels: sent,
		Read:         n.IsRead(),
		CreatedAt:    n.CreatedAt(),
	}
}

func notificationToDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}

	channels := make([]notification.Channel, 0, len(dto.Channels))
	for _, raw := range dto.Channels {
		c, parseErr := notification.ParseChannel(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		channels = append(channels, c)
	}

	sent := make(map[notification.Channel]bool, len(dto.SentChannels))
	for _, raw := range dto.SentChannels {
		sent[notification.Channel(raw)] = true
	}

	return notification.RestoreNotification(id, userID, notification.Type(dto.Type),
		dto.Title, dto.Message, dto.Payload, channels, sent, dto.Read, dto.CreatedAt)
}
