package notification

import (
	"fmt"

	"freshdispatch/internal/pkg/errs"
)

// Type is the business event a notification describes.
type Type string

const (
	OrderPlaced       Type = "order_placed"
	OrderConfirmed    Type = "order_confirmed"
	OrderPreparing    Type = "order_preparing"
	OrderReady        Type = "order_ready"
	OrderPickedUp     Type = "order_picked_up"
	OrderDelivered    Type = "order_delivered"
	OrderCancelled    Type = "order_cancelled"
	OrderUpdated      Type = "order_updated"
	PaymentSuccess    Type = "payment_success"
	PaymentFailed     Type = "payment_failed"
	RiderAssigned     Type = "rider_assigned"
	NewOrderAvailable Type = "new_order_available"
)

var knownTypes = map[Type]struct{}{
	OrderPlaced: {}, OrderConfirmed: {}, OrderPreparing: {}, OrderReady: {},
	OrderPickedUp: {}, OrderDelivered: {}, OrderCancelled: {}, OrderUpdated: {},
	PaymentSuccess: {}, PaymentFailed: {}, RiderAssigned: {}, NewOrderAvailable: {},
}

func (t Type) Validate() error {
	if _, ok := knownTypes[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a notification type", string(t)))
	}
	return nil
}

func (t Type) String() string { return string(t) }

// Channel is one delivery mechanism.
type Channel string

const (
	InApp Channel = "in_app"
	Push  Channel = "push"
	SMS   Channel = "sms"
	Email Channel = "email"
)

// Channels lists every channel in the order they are attempted.
func Channels() []Channel {
	return []Channel{InApp, Push, SMS, Email}
}

func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Channel) Validate() error {
	switch c {
	case InApp, Push, SMS, Email:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a channel", string(c)))
}

func (c Channel) String() string { return string(c) }

var (
	smsTypes   = map[Type]struct{}{OrderReady: {}, OrderPickedUp: {}, OrderDelivered: {}}
	emailTypes = map[Type]struct{}{PaymentSuccess: {}, PaymentFailed: {}, OrderDelivered: {}}
)

// Supports reports whether channel c may carry notifications of type t.
// In-app and push carry every type.
func (c Channel) Supports(t Type) bool {
	switch c {
	case SMS:
		_, ok := smsTypes[t]
		return ok
	case Email:
		_, ok := emailTypes[t]
		return ok
	case InApp, Push:
		return true
	}
	return false
}

// UnsupportedReason is the failure text recorded when c cannot carry t.
func UnsupportedReason(c Channel, t Type) string {
	return fmt.Sprintf("%s not supported for notification type: %s", c, t)
}

// DefaultChannels is the channel set requested for a type when the producer
// does not choose one: in-app and push always, plus SMS and email where the type
// is eligible.
func DefaultChannels(t Type) []Channel {
	out := []Channel{InApp, Push}
	if SMS.Supports(t) {
		out = append(out, SMS)
	}
	if Email.Supports(t) {
		out = append(out, Email)
	}
	return out
}
