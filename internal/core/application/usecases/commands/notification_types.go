package commands

import (
	"freshdispatch/internal/core/domain/model/notification"
	"freshdispatch/internal/core/domain/model/order"
)

// ownerNotificationType picks the owner notification for a transition into s.
// Self-transitions are status notes and always map to order_updated.
func ownerNotificationType(s order.Status, changed bool) notification.Type {
	if !changed {
		return notification.OrderUpdated
	}
	switch s { //nolint:exhaustive // remaining statuses are notes
	case order.Confirmed:
		return notification.OrderConfirmed
	case order.Preparing:
		return notification.OrderPreparing
	case order.Ready:
		return notification.OrderReady
	case order.OutForDelivery:
		return notification.OrderPickedUp
	case order.Delivered:
		return notification.OrderDelivered
	case order.Cancelled:
		return notification.OrderCancelled
	}
	return notification.OrderUpdated
}

// defaultEventMessage is written on status events that carry no explicit message.
func defaultEventMessage(s order.Status) string {
	switch s {
	case order.Pending:
		return "Order placed"
	case order.Confirmed:
		return "Order confirmed"
	case order.Preparing:
		return "Order is being prepared"
	case order.Ready:
		return "Order is ready"
	case order.OutForDelivery:
		return "Order picked up by rider"
	case order.Delivered:
		return "Order delivered"
	case order.Cancelled:
		return "Order cancelled"
	case order.Unknown:
	}
	return ""
}
