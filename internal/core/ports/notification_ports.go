package ports

import (
	"context"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
)

// ContactRepository is the contact directory.
type ContactRepository interface {
	// Get returns the contact or errs.ObjectNotFoundError.
	Get(ctx context.Context, userID kernel.UUID) (notification.Contact, error)

	// RemovePushTokens drops tokens the push provider rejected permanently.
	RemovePushTokens(ctx context.Context, userID kernel.UUID, tokens []string) error
}

// NotificationRepository stores the user-visible notification records.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// Get returns the record or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkChannelSent sets the sent flag of one channel.
	MarkChannelSent(ctx context.Context, id kernel.UUID, channel notification.Channel) error
}

// NotificationQueue is the durable job queue feeding the dispatcher.
type NotificationQueue interface {
	Enqueue(ctx context.Context, job notification.Job) error
}

// RealtimeEmitter pushes an event to every live connection of a user.
type RealtimeEmitter interface {
	// Emit returns how many connections received the event. Zero with a nil
	// error means the user is not connected.
	Emit(ctx context.Context, userID kernel.UUID, event string, data any) (int, error)
}

// PushReport is the outcome of a push send.
type PushReport struct {
	Delivered int
	// InvalidTokens are tokens the provider reported as permanently invalid.
	InvalidTokens []string
}

type PushSender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]any) (PushReport, error)
}

type SMSSender interface {
	Send(ctx context.Context, phone, text string) error
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
