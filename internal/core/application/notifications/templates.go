package notifications

import (
	"fmt"

	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
)

const noteKey = "note"

type template struct {
	title string
	body  func(o *order.Order, extra map[string]any) string
}

var templates = map[notification.Type]template{
	notification.OrderPlaced: {
		title: "Order placed",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("We received order %s. Total due: %s.", o.Number(), formatAmount(o))
		},
	},
	notification.OrderConfirmed: {
		title: "Order confirmed",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Order %s is confirmed.", o.Number())
		},
	},
	notification.OrderPreparing: {
		title: "Order being prepared",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Order %s is being packed and kept cold.", o.Number())
		},
	},
	notification.OrderReady: {
		title: "Order ready",
		body: func(o *order.Order, _ map[string]any) string {
			if o.DeliveryType() == order.Pickup {
				return fmt.Sprintf("Order %s is ready for collection.", o.Number())
			}
			return fmt.Sprintf("Order %s is ready and waiting for a rider.", o.Number())
		},
	},
	notification.OrderPickedUp: {
		title: "Order on the way",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Order %s is out for delivery.", o.Number())
		},
	},
	notification.OrderDelivered: {
		title: "Order delivered",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Order %s has been delivered. Enjoy!", o.Number())
		},
	},
	notification.OrderCancelled: {
		title: "Order cancelled",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Order %s was cancelled.", o.Number())
		},
	},
	notification.OrderUpdated: {
		title: "Order update",
		body: func(o *order.Order, extra map[string]any) string {
			if note, ok := extra[noteKey].(string); ok && note != "" {
				return fmt.Sprintf("Order %s: %s", o.Number(), note)
			}
			return fmt.Sprintf("Order %s is %s.", o.Number(), o.Status())
		},
	},
	notification.PaymentSuccess: {
		title: "Payment received",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Payment of %s for order %s was successful.", formatAmount(o), o.Number())
		},
	},
	notification.PaymentFailed: {
		title: "Payment failed",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Payment of %s for order %s failed. Please try again.", formatAmount(o), o.Number())
		},
	},
	notification.RiderAssigned: {
		title: "Rider assigned",
		body: func(o *order.Order, extra map[string]any) string {
			if name, ok := extra[notification.PayloadCourierName].(string); ok && name != "" {
				return fmt.Sprintf("%s will deliver order %s.", name, o.Number())
			}
			return fmt.Sprintf("A rider will deliver order %s.", o.Number())
		},
	},
	notification.NewOrderAvailable: {
		title: "New order available",
		body: func(o *order.Order, _ map[string]any) string {
			return fmt.Sprintf("Order %s is ready for pickup near you.", o.Number())
		},
	},
}

// render returns the title and message for kind. Unknown kinds fall back to
// the generic update text.
func render(kind notification.Type, o *order.Order, extra map[string]any) (string, string) {
	t, ok := templates[kind]
	if !ok {
		t = templates[notification.OrderUpdated]
	}
	return t.title, t.body(o, extra)
}

// formatAmount renders the order total as "NGN 12500.00".
func formatAmount(o *order.Order) string {
	return o.Breakdown().Total.String()
}
