package notification

import (
	"errors"
	"fmt"
	"time"

	"freshdispatch/internal/core/domain/model/kernel"
	"freshdispatch/internal/pkg/errs"
)

// Payload keys written by producers.
const (
	PayloadOrderID     = "orderId"
	PayloadOrderNumber = "orderNumber"
	PayloadAmount      = "amount"
	PayloadCourierID   = "courierId"
	PayloadCourierName = "courierName"
	PayloadStatus      = "status"
)

// Job is one queued unit of delivery work. It is immutable once enqueued and
// travels through the queue as JSON.
type Job struct {
	NotificationID kernel.UUID    `json:"notificationId"`
	UserID         kernel.UUID    `json:"userId"`
	Type           Type           `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Payload        map[string]any `json:"payload,omitempty"`
	Channels       []Channel      `json:"channels"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Validate checks a job before enqueue and after decoding.
func (j Job) Validate() error {
	var channelErrs []error
	if len(j.Channels) == 0 {
		channelErrs = append(channelErrs, errs.NewValueIsRequiredError("channels"))
	}
	for _, c := range j.Channels {
		channelErrs = append(channelErrs, c.Validate())
	}
	return errors.Join(
		j.NotificationID.Validate(),
		j.UserID.Validate(),
		j.Type.Validate(),
		errors.Join(channelErrs...),
	)
}

// OrderID returns the order the job refers to, if the payload carries a valid one.
func (j Job) OrderID() (kernel.UUID, bool) {
	raw, ok := j.Payload[PayloadOrderID]
	if !ok {
		return kernel.UUID{}, false
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// ChannelResult is the outcome of one channel attempt.
type ChannelResult struct {
	Channel Channel `json:"channel"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

func Succeeded(c Channel) ChannelResult {
	return ChannelResult{Channel: c, Success: true}
}

func Failed(c Channel, reason string) ChannelResult {
	return ChannelResult{Channel: c, Error: reason}
}

// Result collects every channel outcome of one processed job.
type Result struct {
	NotificationID kernel.UUID     `json:"notificationId"`
	ChannelResults []ChannelResult `json:"channelResults"`
	ProcessedAt    time.Time       `json:"processedAt"`
}

// AllFailed reports whether no channel succeeded.
func (r Result) AllFailed() bool {
	for _, cr := range r.ChannelResults {
		if cr.Success {
			return false
		}
	}
	return true
}
