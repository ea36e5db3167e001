package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/ports"
)

// Publisher is the producer side of the notification pipeline. It stores the
// user-visible record first and then enqueues the delivery job, so a queued
// job always refers to an existing record.
type Publisher struct {
	notifications ports.NotificationRepository
	queue         ports.NotificationQueue
	now           func() time.Time
	logger        *slog.Logger
}

func NewPublisher(notifications ports.NotificationRepository, queue ports.NotificationQueue, logger *slog.Logger) *Publisher {
	return &Publisher{
		notifications: notifications,
		queue:         queue,
		now:           time.Now,
		logger:        logger.With("component", "NotificationPublisher"),
	}
}

// NotifyOwner queues a notification of kind for the order's customer over the
// default channel set of kind. extra is merged into the payload and may
// override the standard keys.
func (p *Publisher) NotifyOwner(ctx context.Context, o *order.Order, kind notification.Type, extra map[string]any) error {
	title, message := render(kind, o, extra)

	payload := map[string]any{
		notification.PayloadOrderID:     o.ID().String(),
		notification.PayloadOrderNumber: o.Number(),
		notification.PayloadAmount:      o.Breakdown().Total.Decimal().StringFixed(2),
		notification.PayloadStatus:      o.Status().String(),
	}
	maps.Copy(payload, extra)

	n, err := notification.NewNotification(
		o.CustomerID(),
		kind,
		title,
		message,
		payload,
		notification.DefaultChannels(kind),
		p.now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = p.notifications.Add(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	if err = p.queue.Enqueue(ctx, n.Job()); err != nil {
		return fmt.Errorf("enqueue notification job: %w", err)
	}

	p.logger.DebugContext(ctx, "notification queued",
		"notification_id", n.ID().String(), "user_id", n.UserID().String(), "type", kind.String())
	return nil
}
