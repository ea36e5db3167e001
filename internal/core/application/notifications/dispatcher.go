package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
	"freshdispatch/internal/core/ports"
	"freshdispatch/internal/metrics"
	"freshdispatch/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// RealtimeEvent is the event name used for in-app notifications.
const RealtimeEvent = "notification"

// Failure reasons recorded in channel results.
const (
	ReasonUserNotFound    = "User not found"
	ReasonNotConnected    = "user has no live connection"
	ReasonNoPushTokens    = "no push tokens registered"
	ReasonNoPushDelivered = "no device accepted the push"
	ReasonNoPhone         = "no phone number on file"
	ReasonNoVerifiedEmail = "no verified email address"
	reasonLookupFailed    = "contact lookup failed"
)

type orderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// DispatcherDeps groups the collaborators of a Dispatcher.
type DispatcherDeps struct {
	Contacts      ports.ContactRepository
	Orders        orderReader
	Notifications ports.NotificationRepository
	Realtime      ports.RealtimeEmitter
	Push          ports.PushSender
	SMS           ports.SMSSender
	Email         ports.EmailSender
}

// Dispatcher delivers one notification job over every requested channel.
// Channels are independent: one failing never stops the others, and a job
// whose channels all failed is still considered processed.
type Dispatcher struct {
	deps   DispatcherDeps
	now    func() time.Time
	logger *slog.Logger
}

func NewDispatcher(deps DispatcherDeps, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		deps:   deps,
		now:    time.Now,
		logger: logger.With("component", "NotificationDispatcher"),
	}
}

// delivery is the context gathered before any channel is attempted.
type delivery struct {
	job     notification.Job
	contact notification.Contact
	order   *order.Order
	record  *notification.Notification
}

// Process delivers job and returns the per-channel outcome.
func (d *Dispatcher) Process(ctx context.Context, job notification.Job) notification.Result {
	start := d.now()
	defer func() {
		metrics.NotificationProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	del, reason := d.gather(ctx, job)
	results := make([]notification.ChannelResult, 0, len(job.Channels))
	for _, c := range job.Channels {
		if reason != "" {
			results = append(results, notification.Failed(c, reason))
			continue
		}
		results = append(results, d.deliver(ctx, del, c))
	}

	res := notification.Result{
		NotificationID: job.NotificationID,
		ChannelResults: results,
		ProcessedAt:    d.now().UTC(),
	}
	d.record(ctx, res)
	return res
}

// gather fetches the contact, the order summary and the stored record
// concurrently. A non-empty reason fails every channel.
func (d *Dispatcher) gather(ctx context.Context, job notification.Job) (delivery, string) {
	del := delivery{job: job}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contact, err := d.deps.Contacts.Get(gctx, job.UserID)
		if err != nil {
			return err
		}
		del.contact = contact
		return nil
	})
	if orderID, ok := job.OrderID(); ok {
		g.Go(func() error {
			o, err := d.deps.Orders.Get(gctx, orderID)
			if err != nil {
				d.logger.WarnContext(ctx, "order summary unavailable",
					"notification_id", job.NotificationID.String(), "order_id", orderID.String(), "error", err)
				return nil
			}
			del.order = o
			return nil
		})
	}
	g.Go(func() error {
		n, err := d.deps.Notifications.Get(gctx, job.NotificationID)
		if err != nil {
			d.logger.WarnContext(ctx, "notification record unavailable",
				"notification_id", job.NotificationID.String(), "error", err)
			return nil
		}
		del.record = n
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return del, ReasonUserNotFound
		}
		d.logger.ErrorContext(ctx, "failed to load contact",
			"notification_id", job.NotificationID.String(), "user_id", job.UserID.String(), "error", err)
		return del, reasonLookupFailed
	}
	return del, ""
}

func (d *Dispatcher) deliver(ctx context.Context, del delivery, c notification.Channel) notification.ChannelResult {
	if del.record != nil && del.record.IsSent(c) {
		return notification.Succeeded(c)
	}
	if !c.Supports(del.job.Type) {
		return notification.Failed(c, notification.UnsupportedReason(c, del.job.Type))
	}

	var err error
	switch c {
	case notification.InApp:
		err = d.sendInApp(ctx, del)
	case notification.Push:
		err = d.sendPush(ctx, del)
	case notification.SMS:
		err = d.sendSMS(ctx, del)
	case notification.Email:
		err = d.sendEmail(ctx, del)
	default:
		err = fmt.Errorf("unknown channel: %s", c)
	}
	if err != nil {
		d.logger.WarnContext(ctx, "channel delivery failed",
			"notification_id", del.job.NotificationID.String(), "channel", c.String(), "error", err)
		return notification.Failed(c, err.Error())
	}

	if markErr := d.deps.Notifications.MarkChannelSent(ctx, del.job.NotificationID, c); markErr != nil {
		d.logger.WarnContext(ctx, "failed to record sent channel",
			"notification_id", del.job.NotificationID.String(), "channel", c.String(), "error", markErr)
	}
	return notification.Succeeded(c)
}

func (d *Dispatcher) sendInApp(ctx context.Context, del delivery) error {
	n, err := d.deps.Realtime.Emit(ctx, del.job.UserID, RealtimeEvent, del.job)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New(ReasonNotConnected)
	}
	return nil
}

func (d *Dispatcher) sendPush(ctx context.Context, del delivery) error {
	if !del.contact.HasPushTokens() {
		return errors.New(ReasonNoPushTokens)
	}

	report, err := d.deps.Push.Send(ctx, del.contact.PushTokens, del.job.Title, del.job.Message, del.job.Payload)
	if len(report.InvalidTokens) > 0 {
		if pruneErr := d.deps.Contacts.RemovePushTokens(ctx, del.job.UserID, report.InvalidTokens); pruneErr != nil {
			d.logger.WarnContext(ctx, "failed to prune push tokens",
				"user_id", del.job.UserID.String(), "count", len(report.InvalidTokens), "error", pruneErr)
		}
	}
	if err != nil {
		return err
	}
	if report.Delivered == 0 {
		return errors.New(ReasonNoPushDelivered)
	}
	return nil
}

func (d *Dispatcher) sendSMS(ctx context.Context, del delivery) error {
	if !del.contact.HasPhone() {
		return errors.New(ReasonNoPhone)
	}
	return d.deps.SMS.Send(ctx, del.contact.Phone, del.job.Message)
}

func (d *Dispatcher) sendEmail(ctx context.Context, del delivery) error {
	if !del.contact.HasVerifiedEmail() {
		return errors.New(ReasonNoVerifiedEmail)
	}
	return d.deps.Email.Send(ctx, del.contact.Email, del.job.Title, emailBody(del))
}

func emailBody(del delivery) string {
	greeting := "Hello"
	if del.contact.Name != "" {
		greeting += " " + del.contact.Name
	}
	body := greeting + ",\n\n" + del.job.Message
	if o := del.order; o != nil {
		b := o.Breakdown()
		body += fmt.Sprintf("\n\nOrder %s\nItems: %d\nSubtotal: %s\nDelivery fee: %s\nTotal: %s",
			o.Number(), o.ItemCount(), b.Subtotal, b.DeliveryFee, b.Total)
	}
	return body
}

func (d *Dispatcher) record(ctx context.Context, res notification.Result) {
	for _, cr := range res.ChannelResults {
		outcome := "success"
		if !cr.Success {
			outcome = "failure"
		}
		metrics.NotificationChannelResultsTotal.WithLabelValues(cr.Channel.String(), outcome).Inc()
	}

	if res.AllFailed() {
		metrics.NotificationJobsTotal.WithLabelValues("failed").Inc()
		d.logger.WarnContext(ctx, "notification undelivered on every channel",
			"notification_id", res.NotificationID.String(), "results", res.ChannelResults)
		return
	}
	metrics.NotificationJobsTotal.WithLabelValues("delivered").Inc()
	d.logger.InfoContext(ctx, "notification processed",
		"notification_id", res.NotificationID.String(), "results", res.ChannelResults)
}
